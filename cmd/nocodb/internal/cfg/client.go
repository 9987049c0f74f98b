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

package cfg

import (
	"errors"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/internal/network"
)

var (
	ErrNoURL   = errors.New("no NocoDB URL: set " + envURL + ", use -url, or run 'nocodb auth'")
	ErrNoToken = errors.New("no API token: set " + envToken + ", use -token, or run 'nocodb auth'")
)

// Client returns the NocoDB client initialised from the configuration.  It
// requires SetBaseFlags to have been parsed and the profile applied.
func Client() (*nocodb.Client, error) {
	if BaseURL == "" {
		return nil, ErrNoURL
	}
	if Token == "" {
		return nil, ErrNoToken
	}
	if Limit <= 0 {
		Limit = defLimit
	}
	if Burst <= 0 {
		Burst = defBurst
	}
	return nocodb.New(BaseURL, nocodb.APIToken(Token),
		nocodb.WithLimiter(network.NewLimiter(Limit, Burst)),
		nocodb.WithLogger(Log),
	)
}
