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

package nocodb

import "net/http"

// AuthProvider supplies authentication headers for API requests.
type AuthProvider interface {
	// Apply sets the authentication headers on h.
	Apply(h http.Header)
}

// APIToken authenticates with a NocoDB API token (the xc-token header).
// Create one in the NocoDB UI under Account Settings, or with the tokens
// API.
type APIToken string

// Apply implements AuthProvider.
func (t APIToken) Apply(h http.Header) {
	h.Set("xc-token", string(t))
}

// JWTToken authenticates with a NocoDB session JWT (the xc-auth header).
// Session tokens expire; prefer [APIToken] for long-lived integrations.
type JWTToken string

// Apply implements AuthProvider.
func (t JWTToken) Apply(h http.Header) {
	h.Set("xc-auth", string(t))
}
