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

// In this file: v3 data API record operations.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"github.com/nocogo/nocodb/filters"
)

// RecordID is a record identifier.  The server returns numeric IDs for
// regular tables and opaque string IDs in some contexts; both decode into
// a RecordID.
type RecordID string

// UnmarshalJSON accepts both string and number identifiers.
func (id *RecordID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	*id = RecordID(bytes.TrimSpace(b))
	return nil
}

// MarshalJSON emits numeric identifiers as JSON numbers and everything
// else as strings, round-tripping what the server sent.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Fields holds a record's field values, keyed by field name.
type Fields map[string]any

// Record is a table record in the v3 wire shape.
type Record struct {
	ID     RecordID `json:"id"`
	Fields Fields   `json:"fields"`
}

// RecordsPage is one page of a records listing.  Next is the pagination
// URL of the following page, empty on the last page.
type RecordsPage struct {
	Records []Record `json:"records"`
	Next    string   `json:"next,omitempty"`
}

// ListOptions narrows and paginates record listings.
type ListOptions struct {
	// Fields limits the returned field set.
	Fields []string
	// Sort names the sort fields; prefix with "-" for descending.
	Sort []string
	// Where filters the listing.
	Where filters.Condition
	// Page is the 1-indexed page number.
	Page int
	// PageSize is the number of records per page (server max 1000).
	PageSize int
	// ViewID restricts the listing to a view.
	ViewID string
}

// values renders the options as query parameters.
func (o *ListOptions) values() url.Values {
	q := make(url.Values)
	if o == nil {
		return q
	}
	if len(o.Fields) > 0 {
		q.Set("fields", strings.Join(o.Fields, ","))
	}
	if len(o.Sort) > 0 {
		q.Set("sort", strings.Join(o.Sort, ","))
	}
	if o.Where != nil {
		q.Set("where", o.Where.Where())
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.ViewID != "" {
		q.Set("viewId", o.ViewID)
	}
	return q
}

// ListRecords returns one page of records from a table.  opts may be nil.
func (c *Client) ListRecords(ctx context.Context, baseID, tableID string, opts *ListOptions) (*RecordsPage, error) {
	var page RecordsPage
	if err := c.get(ctx, c.api.records(baseID, tableID), opts.values(), &page); err != nil {
		return nil, fmt.Errorf("list records %s/%s: %w", baseID, tableID, err)
	}
	return &page, nil
}

// Records iterates over all records of a table, following pagination until
// the listing is exhausted, the context is cancelled, or an error occurs.
// The error, if any, is yielded as the final pair.
func (c *Client) Records(ctx context.Context, baseID, tableID string, opts *ListOptions) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		page, err := c.ListRecords(ctx, baseID, tableID, opts)
		for {
			if err != nil {
				yield(Record{}, err)
				return
			}
			for _, r := range page.Records {
				if !yield(r, nil) {
					return
				}
			}
			if page.Next == "" {
				return
			}
			var next RecordsPage
			if gerr := c.get(ctx, c.resolve(page.Next), nil, &next); gerr != nil {
				err = fmt.Errorf("list records %s/%s: next page: %w", baseID, tableID, gerr)
				continue
			}
			page = &next
		}
	}
}

// GetRecord fetches a single record by ID.
func (c *Client) GetRecord(ctx context.Context, baseID, tableID string, recordID RecordID) (*Record, error) {
	var rec Record
	if err := c.get(ctx, c.api.record(baseID, tableID, recordID), nil, &rec); err != nil {
		return nil, fmt.Errorf("get record %s/%s/%s: %w", baseID, tableID, recordID, err)
	}
	return &rec, nil
}

// recordsEnvelope decodes mutation responses, which some server versions
// wrap in {"records": [...]} and others return as a bare array.
type recordsEnvelope []Record

func (e *recordsEnvelope) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, (*[]Record)(e))
	}
	var wrapper struct {
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return err
	}
	*e = wrapper.Records
	return nil
}

// CreateRecords inserts one or more records and returns them with their
// assigned IDs.
func (c *Client) CreateRecords(ctx context.Context, baseID, tableID string, fields ...Fields) ([]Record, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("create records %s/%s: no records given", baseID, tableID)
	}
	body := make([]Record, len(fields))
	for i, f := range fields {
		body[i] = Record{Fields: f}
	}
	var created recordsEnvelope
	if err := c.post(ctx, c.api.records(baseID, tableID), body, &created); err != nil {
		return nil, fmt.Errorf("create records %s/%s: %w", baseID, tableID, err)
	}
	return created, nil
}

// UpdateRecords applies partial field updates to one or more records,
// addressed by their IDs.
func (c *Client) UpdateRecords(ctx context.Context, baseID, tableID string, records ...Record) ([]Record, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("update records %s/%s: no records given", baseID, tableID)
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("update records %s/%s: record without an ID", baseID, tableID)
		}
	}
	var updated recordsEnvelope
	if err := c.patch(ctx, c.api.records(baseID, tableID), records, &updated); err != nil {
		return nil, fmt.Errorf("update records %s/%s: %w", baseID, tableID, err)
	}
	return updated, nil
}

// idRef is a record reference used by delete and link payloads.
type idRef struct {
	ID RecordID `json:"id"`
}

func idRefs(ids []RecordID) []idRef {
	refs := make([]idRef, len(ids))
	for i, id := range ids {
		refs[i] = idRef{ID: id}
	}
	return refs
}

// DeleteRecords removes records by ID and returns the IDs the server
// confirmed deleted.
func (c *Client) DeleteRecords(ctx context.Context, baseID, tableID string, ids ...RecordID) ([]RecordID, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("delete records %s/%s: no record IDs given", baseID, tableID)
	}
	var deleted recordsEnvelope
	if err := c.delete(ctx, c.api.records(baseID, tableID), idRefs(ids), &deleted); err != nil {
		return nil, fmt.Errorf("delete records %s/%s: %w", baseID, tableID, err)
	}
	out := make([]RecordID, len(deleted))
	for i, r := range deleted {
		out[i] = r.ID
	}
	return out, nil
}

// CountRecords returns the number of records matching the filter.  where
// may be nil to count the whole table.
func (c *Client) CountRecords(ctx context.Context, baseID, tableID string, where filters.Condition) (int, error) {
	q := make(url.Values)
	if where != nil {
		q.Set("where", where.Where())
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, c.api.count(baseID, tableID), q, &out); err != nil {
		return 0, fmt.Errorf("count records %s/%s: %w", baseID, tableID, err)
	}
	return out.Count, nil
}
