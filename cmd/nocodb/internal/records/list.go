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

// In this file: records list and records get subcommands.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var cmdRecordsList = &base.Command{
	UsageLine:   "nocodb records list [flags] <table_id>",
	Short:       "list the records of a table",
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runRecordsList,
	Long: `
# Records List Command

Lists the records of a table as JSON Lines, one record per line.  By
default a single page is fetched; use -all to follow the pagination to the
end.
`,
}

var (
	listWhere    string
	listFilter   filterFlag
	listFields   cfg.StringSlice
	listSort     cfg.StringSlice
	listView     string
	listPage     int
	listPageSize int
	listAll      bool
)

func init() {
	fs := &cmdRecordsList.Flag
	fs.StringVar(&listWhere, "where", "", "raw filter `expression`")
	fs.Var(&listFilter, "f", "filter `condition` \"Field,op,value\", may be repeated")
	fs.Var(&listFields, "fields", "comma-separated `fields` to return (all if empty)")
	fs.Var(&listSort, "sort", "comma-separated sort `fields`, prefix with '-' for descending")
	fs.StringVar(&listView, "view", "", "`view` ID to apply the view's filters and field visibility")
	fs.IntVar(&listPage, "page", 0, "page `number`, starting from 1")
	fs.IntVar(&listPageSize, "page-size", 0, "records per `page` (server default if 0)")
	fs.BoolVar(&listAll, "all", false, "fetch all pages, not just the first one")
}

func runRecordsList(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one table ID, got %d arguments", len(args))
	}
	tableID := args[0]

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
	where, err := condition(&listFilter, listWhere)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	opts := &nocodb.ListOptions{
		Fields:   listFields,
		Sort:     listSort,
		Where:    where,
		Page:     listPage,
		PageSize: listPageSize,
		ViewID:   listView,
	}

	out, err := bootstrap.Output()
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	defer out.Close()

	if listAll {
		return listAllRecords(ctx, client, out, baseID, tableID, opts)
	}
	page, err := client.ListRecords(ctx, baseID, tableID, opts)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return writeRecords(out, page.Records)
}

func listAllRecords(ctx context.Context, client *nocodb.Client, w io.Writer, baseID, tableID string, opts *nocodb.ListOptions) error {
	enc := json.NewEncoder(w)
	var n int
	for rec, err := range client.Records(ctx, baseID, tableID, opts) {
		if err != nil {
			base.SetExitStatus(base.SApplicationError)
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
		n++
	}
	cfg.Log.DebugContext(ctx, "records listed", "table", tableID, "records", n)
	return nil
}

func writeRecords(w io.Writer, recs []nocodb.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

var cmdRecordsGet = &base.Command{
	UsageLine:   "nocodb records get [flags] <table_id> <record_id>",
	Short:       "get a single record by ID",
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runRecordsGet,
	Long: `
# Records Get Command

Prints a single record in JSON format.
`,
}

func runRecordsGet(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected a table ID and a record ID, got %d arguments", len(args))
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
	rec, err := client.GetRecord(ctx, baseID, args[0], nocodb.RecordID(args[1]))
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
	return enc.Encode(rec)
}
