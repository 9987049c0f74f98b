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

// Package bootstrap contains initialisation shared by the CLI commands.
package bootstrap

import (
	"errors"
	"io"
	"os"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
)

// ErrNoBase is returned when a command that operates on a base is invoked
// without one.
var ErrNoBase = errors.New("no base: use -base, set NOCODB_BASE, or save it in the profile")

// Client returns the API client initialised from the configuration.
func Client() (*nocodb.Client, error) {
	return cfg.Client()
}

// BaseID returns the base to operate on, or ErrNoBase if none is
// configured.
func BaseID() (string, error) {
	if cfg.Base == "" {
		return "", ErrNoBase
	}
	return cfg.Base, nil
}

// Output opens the output destination specified by the -o flag.  "-" is
// standard output; the caller must close the returned writer.
func Output() (io.WriteCloser, error) {
	if cfg.Output == "" || cfg.Output == "-" {
		return os.Stdout, nil
	}
	return os.Create(cfg.Output)
}
