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

// Package bases implements the "nocodb bases" command.
package bases

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var CmdBases = &base.Command{
	UsageLine: "nocodb bases",
	Short:     "list and inspect bases",
	Long: `
Bases lists the bases (projects) of the NocoDB instance, or shows the
details of a single base.
`,
	Commands: []*base.Command{
		cmdBasesList,
		cmdBasesGet,
	},
}

var cmdBasesList = &base.Command{
	UsageLine:   "nocodb bases list [flags]",
	Short:       "list bases visible to the current token",
	FlagMask:    base.OmitBaseFlag,
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Bases List Command

Lists the bases of the NocoDB instance that are visible to the current API
token, one per line, with their IDs.
`,
}

var listJSON = cmdBasesList.Flag.Bool("json", false, "output in JSON format")

func init() {
	// break the initialisation cycle cmdBasesList -> runBasesList -> listJSON
	cmdBasesList.Run = runBasesList
}

func runBasesList(ctx context.Context, cmd *base.Command, args []string) error {
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	bs, err := client.ListBases(ctx)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}

	out, err := bootstrap.Output()
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	defer out.Close()

	if *listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(bs)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE")
	for _, b := range bs {
		fmt.Fprintf(tw, "%s\t%s\n", b.ID, b.Title)
	}
	return tw.Flush()
}

var cmdBasesGet = &base.Command{
	UsageLine:   "nocodb bases get [flags] <base_id>",
	Short:       "show the details of a base",
	FlagMask:    base.OmitBaseFlag,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runBasesGet,
	Long: `
# Bases Get Command

Prints the details of the base with the given ID in JSON format.
`,
}

func runBasesGet(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one base ID, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	b, err := client.GetBase(ctx, args[0])
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}

	out, err := bootstrap.Output()
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
