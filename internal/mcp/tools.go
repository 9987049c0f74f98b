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

package mcp

// In this file: MCP tool definitions and handlers.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/filters"
)

// defPageSize is the page size used by list_records when the caller does not
// specify one.  Kept modest to avoid flooding the agent's context window.
const defPageSize = 25

var errNoBase = errors.New("no base specified: pass base_id or configure a default base")

func (s *Server) toolListBases() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_bases",
			mcplib.WithDescription("List all NocoDB bases (projects) visible to the current token."),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			bases, err := s.client.ListBases(ctx)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(bases)
		},
	}
}

func (s *Server) toolListTables() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_tables",
			mcplib.WithDescription("List the tables of a base."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tables, err := s.client.ListTables(ctx, baseID)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(tables)
		},
	}
}

func (s *Server) toolGetTableSchema() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_table_schema",
			mcplib.WithDescription("Get the schema of a table, including its fields and their types."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			table, err := s.client.GetTable(ctx, baseID, tableID)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(table)
		},
	}
}

func (s *Server) toolListRecords() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_records",
			mcplib.WithDescription("List records of a table. Supports NocoDB filter expressions, sorting, field selection and paging."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("where",
				mcplib.Description("Filter expression, e.g. (Status,eq,Active)~and(Age,gt,18). Use build_filter to construct one."),
			),
			mcplib.WithString("sort",
				mcplib.Description("Comma-separated sort fields; prefix with '-' for descending, e.g. -CreatedAt,Name."),
			),
			mcplib.WithString("fields",
				mcplib.Description("Comma-separated field names to return. All fields if omitted."),
			),
			mcplib.WithString("view_id",
				mcplib.Description("View ID to apply the view's filters and field visibility."),
			),
			mcplib.WithNumber("page",
				mcplib.Description("Page number, starting at 1."),
			),
			mcplib.WithNumber("page_size",
				mcplib.Description(fmt.Sprintf("Records per page (default %d).", defPageSize)),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			opts := &nocodb.ListOptions{
				Page:     intArg(req, "page", 0),
				PageSize: intArg(req, "page_size", defPageSize),
			}
			if where, ok := stringArg(req, "where"); ok && where != "" {
				cond, err := filters.Raw(where)
				if err != nil {
					return resultErr(err), nil
				}
				opts.Where = cond
			}
			if sort, ok := stringArg(req, "sort"); ok && sort != "" {
				opts.Sort = splitList(sort)
			}
			if fields, ok := stringArg(req, "fields"); ok && fields != "" {
				opts.Fields = splitList(fields)
			}
			if viewID, ok := stringArg(req, "view_id"); ok {
				opts.ViewID = viewID
			}
			page, err := s.client.ListRecords(ctx, baseID, tableID, opts)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(page)
		},
	}
}

func (s *Server) toolGetRecord() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_record",
			mcplib.WithDescription("Get a single record by ID."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("record_id",
				mcplib.Description("Record ID."),
				mcplib.Required(),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			recordID, ok := stringArg(req, "record_id")
			if !ok || recordID == "" {
				return resultErr(errors.New("record_id is required")), nil
			}
			rec, err := s.client.GetRecord(ctx, baseID, tableID, nocodb.RecordID(recordID))
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(rec)
		},
	}
}

func (s *Server) toolCreateRecords() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("create_records",
			mcplib.WithDescription("Create one or more records. records_json is a JSON array of field objects, e.g. [{\"Name\":\"John\",\"Age\":30}]."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("records_json",
				mcplib.Description("JSON array of field objects to insert."),
				mcplib.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			raw, ok := stringArg(req, "records_json")
			if !ok || raw == "" {
				return resultErr(errors.New("records_json is required")), nil
			}
			var fields []nocodb.Fields
			if err := json.Unmarshal([]byte(raw), &fields); err != nil {
				return resultErr(fmt.Errorf("records_json: %w", err)), nil
			}
			created, err := s.client.CreateRecords(ctx, baseID, tableID, fields...)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(created)
		},
	}
}

func (s *Server) toolUpdateRecords() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("update_records",
			mcplib.WithDescription("Update one or more records. records_json is a JSON array of objects with id and fields, e.g. [{\"id\":1,\"fields\":{\"Name\":\"Jane\"}}]."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("records_json",
				mcplib.Description("JSON array of {id, fields} objects."),
				mcplib.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			raw, ok := stringArg(req, "records_json")
			if !ok || raw == "" {
				return resultErr(errors.New("records_json is required")), nil
			}
			var records []nocodb.Record
			if err := json.Unmarshal([]byte(raw), &records); err != nil {
				return resultErr(fmt.Errorf("records_json: %w", err)), nil
			}
			updated, err := s.client.UpdateRecords(ctx, baseID, tableID, records...)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(updated)
		},
	}
}

func (s *Server) toolDeleteRecords() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("delete_records",
			mcplib.WithDescription("Delete one or more records by ID. Destructive: requires confirm=true."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("record_ids",
				mcplib.Description("Comma-separated record IDs to delete."),
				mcplib.Required(),
			),
			mcplib.WithBoolean("confirm",
				mcplib.Description("Must be true to actually delete."),
			),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			rawIDs, ok := stringArg(req, "record_ids")
			if !ok || rawIDs == "" {
				return resultErr(errors.New("record_ids is required")), nil
			}
			if !boolArg(req, "confirm", false) {
				return resultErr(errors.New("refusing to delete: set confirm=true to proceed")), nil
			}
			var ids []nocodb.RecordID
			for _, id := range splitList(rawIDs) {
				ids = append(ids, nocodb.RecordID(id))
			}
			deleted, err := s.client.DeleteRecords(ctx, baseID, tableID, ids...)
			if err != nil {
				return resultErr(err), nil
			}
			return resultText(fmt.Sprintf("deleted %d record(s)", len(deleted))), nil
		},
	}
}

func (s *Server) toolCountRecords() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("count_records",
			mcplib.WithDescription("Count records in a table, optionally matching a filter expression."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("where",
				mcplib.Description("Filter expression; counts all records if omitted."),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			var cond filters.Condition
			if where, ok := stringArg(req, "where"); ok && where != "" {
				c, err := filters.Raw(where)
				if err != nil {
					return resultErr(err), nil
				}
				cond = c
			}
			n, err := s.client.CountRecords(ctx, baseID, tableID, cond)
			if err != nil {
				return resultErr(err), nil
			}
			return resultText(fmt.Sprintf("%d", n)), nil
		},
	}
}

func (s *Server) toolListLinks() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_links",
			mcplib.WithDescription("List the records linked to a record through a link field."),
			mcplib.WithString("base_id",
				mcplib.Description("Base ID. Optional if a default base is configured."),
			),
			mcplib.WithString("table_id",
				mcplib.Description("Table ID."),
				mcplib.Required(),
			),
			mcplib.WithString("link_field_id",
				mcplib.Description("ID of the link field."),
				mcplib.Required(),
			),
			mcplib.WithString("record_id",
				mcplib.Description("Record whose links to list."),
				mcplib.Required(),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			baseID := s.base(req)
			if baseID == "" {
				return resultErr(errNoBase), nil
			}
			tableID, ok := stringArg(req, "table_id")
			if !ok || tableID == "" {
				return resultErr(errors.New("table_id is required")), nil
			}
			linkFieldID, ok := stringArg(req, "link_field_id")
			if !ok || linkFieldID == "" {
				return resultErr(errors.New("link_field_id is required")), nil
			}
			recordID, ok := stringArg(req, "record_id")
			if !ok || recordID == "" {
				return resultErr(errors.New("record_id is required")), nil
			}
			page, err := s.client.ListLinks(ctx, baseID, tableID, linkFieldID, nocodb.RecordID(recordID), nil)
			if err != nil {
				return resultErr(err), nil
			}
			return resultJSON(page)
		},
	}
}

// filterSpec is the structured input of the build_filter tool.  Exactly one
// of Field (leaf), And, Or or Not must be set.
type filterSpec struct {
	Field  string        `json:"field,omitempty"`
	Op     string        `json:"op,omitempty"`
	Values []any         `json:"values,omitempty"`
	And    []*filterSpec `json:"and,omitempty"`
	Or     []*filterSpec `json:"or,omitempty"`
	Not    *filterSpec   `json:"not,omitempty"`
}

func (s *Server) toolBuildFilter() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("build_filter",
			mcplib.WithDescription(`Build a NocoDB where-filter string from structured JSON. The input is a condition tree: a leaf is {"field":"Age","op":"gt","values":[18]}; combinators are {"and":[...]}, {"or":[...]} and {"not":{...}}. Returns the wire-format string for use as the where argument of other tools.`),
			mcplib.WithString("filter_json",
				mcplib.Description("JSON condition tree."),
				mcplib.Required(),
			),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			raw, ok := stringArg(req, "filter_json")
			if !ok || raw == "" {
				return resultErr(errors.New("filter_json is required")), nil
			}
			var spec filterSpec
			if err := json.Unmarshal([]byte(raw), &spec); err != nil {
				return resultErr(fmt.Errorf("filter_json: %w", err)), nil
			}
			cond, err := buildCondition(&spec)
			if err != nil {
				return resultErr(err), nil
			}
			return resultText(cond.Where()), nil
		},
	}
}

// buildCondition converts a filterSpec tree into a filters.Condition.
func buildCondition(spec *filterSpec) (filters.Condition, error) {
	if spec == nil {
		return nil, errors.New("empty condition")
	}
	switch {
	case spec.Not != nil:
		child, err := buildCondition(spec.Not)
		if err != nil {
			return nil, err
		}
		return filters.Not(child)
	case len(spec.And) > 0:
		children, err := buildConditions(spec.And)
		if err != nil {
			return nil, err
		}
		return filters.And(children...)
	case len(spec.Or) > 0:
		children, err := buildConditions(spec.Or)
		if err != nil {
			return nil, err
		}
		return filters.Or(children...)
	case spec.Field != "":
		return filters.New(spec.Field, filters.Op(spec.Op), spec.Values...)
	default:
		return nil, errors.New("condition must have field, and, or, or not")
	}
}

func buildConditions(specs []*filterSpec) ([]filters.Condition, error) {
	conds := make([]filters.Condition, 0, len(specs))
	for _, sp := range specs {
		c, err := buildCondition(sp)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// splitList splits a comma-separated argument into trimmed non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
