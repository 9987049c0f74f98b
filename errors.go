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

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxErrBody limits how much of an error response body is retained.
const maxErrBody = 4096

// APIError is returned for non-2xx API responses.  Code and Message come
// from the NocoDB error body when it is well-formed JSON; Body holds the
// raw (truncated) response text either way.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
	retryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nocodb: %s (%s, http status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("nocodb: http status %d", e.StatusCode)
}

// HTTPStatus returns the HTTP status code of the failed response.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// RetryAfter returns the server-requested wait duration for rate-limited
// responses, or zero if the server did not send one.
func (e *APIError) RetryAfter() time.Duration {
	return e.retryAfter
}

// apiError builds an *APIError from a non-2xx response.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))

	e := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Code = payload.Error
		e.Message = payload.Message
		if e.Message == "" {
			e.Message = payload.Msg
		}
	}
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
			e.retryAfter = time.Duration(secs) * time.Second
		}
	}
	return e
}
