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

// Package tables implements the "nocodb tables" command.
package tables

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var CmdTables = &base.Command{
	UsageLine: "nocodb tables",
	Short:     "manage the tables of a base",
	Long: `
Tables lists, inspects, creates and removes tables of a NocoDB base.  All
subcommands operate on the base given with -base (or the NOCODB_BASE
environment variable, or the saved profile).
`,
	Commands: []*base.Command{
		cmdTablesList,
		cmdTablesGet,
		cmdTablesCreate,
		cmdTablesRm,
	},
}

var cmdTablesList = &base.Command{
	UsageLine:   "nocodb tables list [flags]",
	Short:       "list the tables of the base",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Tables List Command

Lists the tables of the base, one per line, with their IDs.
`,
}

var listJSON = cmdTablesList.Flag.Bool("json", false, "output in JSON format")

func init() {
	// break the initialisation cycle cmdTablesList -> runTablesList -> listJSON
	cmdTablesList.Run = runTablesList
}

func runTablesList(ctx context.Context, cmd *base.Command, args []string) error {
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	baseID, err := bootstrap.BaseID()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	tbls, err := client.ListTables(ctx, baseID)
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
		return enc.Encode(tbls)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE")
	for _, tbl := range tbls {
		fmt.Fprintf(tw, "%s\t%s\n", tbl.ID, tbl.Title)
	}
	return tw.Flush()
}

var cmdTablesGet = &base.Command{
	UsageLine:   "nocodb tables get [flags] <table_id>",
	Short:       "show the schema of a table",
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runTablesGet,
	Long: `
# Tables Get Command

Prints the schema of the table, including its fields and their types, in
JSON format.
`,
}

func runTablesGet(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one table ID, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	baseID, err := bootstrap.BaseID()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	tbl, err := client.GetTable(ctx, baseID, args[0])
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
	return enc.Encode(tbl)
}

var cmdTablesCreate = &base.Command{
	UsageLine:   "nocodb tables create [flags] <title>",
	Short:       "create a new table",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Tables Create Command

Creates a new table with the given title in the base.  Use -schema to supply
a JSON schema file with field definitions, otherwise an empty table is
created.
`,
}

var schemaFile = cmdTablesCreate.Flag.String("schema", "", "JSON `file` with the field definitions of the new table")

func init() {
	// break the initialisation cycle cmdTablesCreate -> runTablesCreate -> schemaFile
	cmdTablesCreate.Run = runTablesCreate
}

func runTablesCreate(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one table title, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	baseID, err := bootstrap.BaseID()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	tbl := nocodb.Table{Title: args[0]}
	if *schemaFile != "" {
		if err := loadSchema(*schemaFile, &tbl); err != nil {
			base.SetExitStatus(base.SUserError)
			return err
		}
		tbl.Title = args[0]
	}
	created, err := client.CreateTable(ctx, baseID, tbl)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("created table %s (%s)\n", created.Title, created.ID)
	return nil
}

var cmdTablesRm = &base.Command{
	UsageLine:   "nocodb tables rm [flags] <table_id>",
	Short:       "delete a table",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Tables Rm Command

Deletes the table with the given ID, together with all its records.  Asks
for confirmation unless -y is given.
`,
}

var rmYes = cmdTablesRm.Flag.Bool("y", false, "answer yes to all questions")

func init() {
	// break the initialisation cycle cmdTablesRm -> runTablesRm -> rmYes
	cmdTablesRm.Run = runTablesRm
}

func runTablesRm(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one table ID, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	baseID, err := bootstrap.BaseID()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	if !*rmYes && !base.YesNo(fmt.Sprintf("delete table %s and all its records", args[0])) {
		return base.ErrOpCancelled
	}
	if err := client.DeleteTable(ctx, baseID, args[0]); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("deleted table %s\n", args[0])
	return nil
}
