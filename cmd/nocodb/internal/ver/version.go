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

// Package ver implements the "nocodb version" command.
package ver

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

// set by the linker at build time.
var (
	commit = "unknown"
	date   = "unknown"
)

var CmdVersion = &base.Command{
	UsageLine: "nocodb version",
	Short:     "print version and exit",
	FlagMask:  base.OmitAll,
	Run:       runVersion,
	Long: `
# Version Command

Prints version and exits, not much else to say.
`,
}

func runVersion(ctx context.Context, cmd *base.Command, args []string) error {
	fmt.Printf("nocodb %s (commit: %s) built on: %s\n", version(), commit, date)
	return nil
}

// version returns the library version, or the module version from the build
// info when installed with "go install".
func version() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "(devel)" && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "v" + nocodb.Version
}
