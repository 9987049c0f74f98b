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

package records

// In this file: records create, update, rm and count subcommands.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var cmdRecordsCreate = &base.Command{
	UsageLine:   "nocodb records create [flags] <table_id> [json]",
	Short:       "create records in a table",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Records Create Command

Creates records in the table.  The payload is a JSON array of field
objects, for example:

    nocodb records create tbl123 '[{"Name":"John","Age":30}]'

A single object is also accepted.  If the payload argument is omitted, it
is read from the file given with -file, or from standard input if -file is
"-" or not set.
`,
}

var createFile = cmdRecordsCreate.Flag.String("file", "", "read the payload from `file` instead of the command line, use \"-\" for stdin")

func init() {
	// break the initialisation cycle cmdRecordsCreate -> runRecordsCreate -> createFile
	cmdRecordsCreate.Run = runRecordsCreate
}

func runRecordsCreate(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected a table ID and an optional payload, got %d arguments", len(args))
	}
	payload, err := payloadBytes(args[1:], *createFile)
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	var fields []nocodb.Fields
	if err := decodeOneOrMany(payload, &fields); err != nil {
		base.SetExitStatus(base.SUserError)
		return err
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
	created, err := client.CreateRecords(ctx, baseID, args[0], fields...)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("created %d record(s)\n", len(created))
	return nil
}

var cmdRecordsUpdate = &base.Command{
	UsageLine:   "nocodb records update [flags] <table_id> [json]",
	Short:       "update records of a table",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Records Update Command

Updates records of the table.  The payload is a JSON array of objects with
an id and the fields to change, for example:

    nocodb records update tbl123 '[{"id":1,"fields":{"Status":"Done"}}]'

If the payload argument is omitted, it is read from the file given with
-file, or from standard input.
`,
}

var updateFile = cmdRecordsUpdate.Flag.String("file", "", "read the payload from `file` instead of the command line, use \"-\" for stdin")

func init() {
	// break the initialisation cycle cmdRecordsUpdate -> runRecordsUpdate -> updateFile
	cmdRecordsUpdate.Run = runRecordsUpdate
}

func runRecordsUpdate(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected a table ID and an optional payload, got %d arguments", len(args))
	}
	payload, err := payloadBytes(args[1:], *updateFile)
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	var recs []nocodb.Record
	if err := decodeOneOrMany(payload, &recs); err != nil {
		base.SetExitStatus(base.SUserError)
		return err
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
	updated, err := client.UpdateRecords(ctx, baseID, args[0], recs...)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("updated %d record(s)\n", len(updated))
	return nil
}

var cmdRecordsRm = &base.Command{
	UsageLine:   "nocodb records rm [flags] <table_id> <record_id> [record_id...]",
	Short:       "delete records from a table",
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Records Rm Command

Deletes the records with the given IDs from the table.  Asks for
confirmation unless -y is given.
`,
}

var rmYes = cmdRecordsRm.Flag.Bool("y", false, "answer yes to all questions")

func init() {
	// break the initialisation cycle cmdRecordsRm -> runRecordsRm -> rmYes
	cmdRecordsRm.Run = runRecordsRm
}

func runRecordsRm(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected a table ID and at least one record ID, got %d arguments", len(args))
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
	ids := make([]nocodb.RecordID, 0, len(args)-1)
	for _, a := range args[1:] {
		ids = append(ids, nocodb.RecordID(a))
	}
	if !*rmYes && !base.YesNo(fmt.Sprintf("delete %d record(s) from %s", len(ids), args[0])) {
		return base.ErrOpCancelled
	}
	deleted, err := client.DeleteRecords(ctx, baseID, args[0], ids...)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("deleted %d record(s)\n", len(deleted))
	return nil
}

var cmdRecordsCount = &base.Command{
	UsageLine:   "nocodb records count [flags] <table_id>",
	Short:       "count the records of a table",
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runRecordsCount,
	Long: `
# Records Count Command

Prints the number of records in the table, optionally matching the filter
conditions given with -where and -f.
`,
}

var (
	countWhere  string
	countFilter filterFlag
)

func init() {
	fs := &cmdRecordsCount.Flag
	fs.StringVar(&countWhere, "where", "", "raw filter `expression`")
	fs.Var(&countFilter, "f", "filter `condition` \"Field,op,value\", may be repeated")
}

func runRecordsCount(ctx context.Context, cmd *base.Command, args []string) error {
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
	where, err := condition(&countFilter, countWhere)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	n, err := client.CountRecords(ctx, baseID, args[0], where)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Println(n)
	return nil
}

// payloadBytes returns the JSON payload from the command line argument, the
// -file flag, or standard input, in that order of preference.
func payloadBytes(args []string, file string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	if file == "" || file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

// decodeOneOrMany unmarshals data into out ([]T).  A single JSON object is
// accepted and treated as a one-element array.
func decodeOneOrMany[T any](data []byte, out *[]T) error {
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("payload: want a JSON object or array: %w", err)
	}
	*out = []T{one}
	return nil
}
