// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package network

import (
	"golang.org/x/time/rate"
)

// Default limiter parameters.  Self-hosted NocoDB does not publish rate
// limits; five requests per second with a small burst keeps bulk operations
// polite without throttling interactive use.
const (
	DefRate  = 5.0
	DefBurst = 2
)

// NewLimiter returns a limiter allowing rps requests per second with the
// given burst.  Non-positive arguments fall back to the defaults.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = DefRate
	}
	if burst <= 0 {
		burst = DefBurst
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
