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

import (
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/internal/mcp/mock_client"
)

// callReq builds a CallToolRequest with the given arguments.
func callReq(name string, args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *mock_client.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mc := mock_client.NewMockClient(ctrl)
	s := New(append([]Option{WithClient(mc)}, opts...)...)
	return s, mc
}

func TestToolListBases(t *testing.T) {
	t.Run("returns bases as JSON", func(t *testing.T) {
		s, mc := newTestServer(t)
		mc.EXPECT().ListBases(gomock.Any()).Return([]nocodb.Base{
			{ID: "b1", Title: "CRM"},
		}, nil)

		res, err := s.toolListBases().Handler(t.Context(), callReq("list_bases", nil))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "CRM")
	})
	t.Run("client error becomes tool error", func(t *testing.T) {
		s, mc := newTestServer(t)
		mc.EXPECT().ListBases(gomock.Any()).Return(nil, errors.New("boom"))

		res, err := s.toolListBases().Handler(t.Context(), callReq("list_bases", nil))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
	})
}

func TestToolListTables(t *testing.T) {
	t.Run("uses default base", func(t *testing.T) {
		s, mc := newTestServer(t, WithBaseID("b_def"))
		mc.EXPECT().ListTables(gomock.Any(), "b_def").Return([]nocodb.Table{{ID: "t1", Title: "Contacts"}}, nil)

		res, err := s.toolListTables().Handler(t.Context(), callReq("list_tables", nil))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "Contacts")
	})
	t.Run("explicit base_id wins over default", func(t *testing.T) {
		s, mc := newTestServer(t, WithBaseID("b_def"))
		mc.EXPECT().ListTables(gomock.Any(), "b_other").Return(nil, nil)

		res, err := s.toolListTables().Handler(t.Context(), callReq("list_tables", map[string]any{"base_id": "b_other"}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
	})
	t.Run("no base configured", func(t *testing.T) {
		s, _ := newTestServer(t)
		res, err := s.toolListTables().Handler(t.Context(), callReq("list_tables", nil))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
	})
}

func TestToolGetTableSchema(t *testing.T) {
	s, mc := newTestServer(t, WithBaseID("b1"))
	mc.EXPECT().GetTable(gomock.Any(), "b1", "t1").Return(&nocodb.Table{
		ID:     "t1",
		Title:  "Contacts",
		Fields: []nocodb.Field{{ID: "f1", Title: "Name", Type: "SingleLineText"}},
	}, nil)

	res, err := s.toolGetTableSchema().Handler(t.Context(), callReq("get_table_schema", map[string]any{"table_id": "t1"}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "SingleLineText")
}

func TestToolListRecords(t *testing.T) {
	t.Run("passes query options through", func(t *testing.T) {
		s, mc := newTestServer(t, WithBaseID("b1"))
		mc.EXPECT().
			ListRecords(gomock.Any(), "b1", "t1", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, opts *nocodb.ListOptions) (*nocodb.RecordsPage, error) {
				assert.Equal(t, "(Status,eq,Active)", opts.Where.Where())
				assert.Equal(t, []string{"-CreatedAt"}, opts.Sort)
				assert.Equal(t, []string{"Name", "Age"}, opts.Fields)
				assert.Equal(t, 2, opts.Page)
				assert.Equal(t, 10, opts.PageSize)
				return &nocodb.RecordsPage{Records: []nocodb.Record{
					{ID: "1", Fields: nocodb.Fields{"Name": "John"}},
				}}, nil
			})

		res, err := s.toolListRecords().Handler(t.Context(), callReq("list_records", map[string]any{
			"table_id":  "t1",
			"where":     "(Status,eq,Active)",
			"sort":      "-CreatedAt",
			"fields":    "Name, Age",
			"page":      float64(2),
			"page_size": float64(10),
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "John")
	})
	t.Run("missing table_id", func(t *testing.T) {
		s, _ := newTestServer(t, WithBaseID("b1"))
		res, err := s.toolListRecords().Handler(t.Context(), callReq("list_records", nil))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
	})
}

func TestToolGetRecord(t *testing.T) {
	s, mc := newTestServer(t, WithBaseID("b1"))
	mc.EXPECT().GetRecord(gomock.Any(), "b1", "t1", nocodb.RecordID("42")).
		Return(&nocodb.Record{ID: "42", Fields: nocodb.Fields{"Name": "John"}}, nil)

	res, err := s.toolGetRecord().Handler(t.Context(), callReq("get_record", map[string]any{
		"table_id":  "t1",
		"record_id": "42",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "John")
}

func TestToolCreateRecords(t *testing.T) {
	t.Run("creates from JSON payload", func(t *testing.T) {
		s, mc := newTestServer(t, WithBaseID("b1"))
		mc.EXPECT().
			CreateRecords(gomock.Any(), "b1", "t1", nocodb.Fields{"Name": "a"}, nocodb.Fields{"Name": "b"}).
			Return([]nocodb.Record{{ID: "1"}, {ID: "2"}}, nil)

		res, err := s.toolCreateRecords().Handler(t.Context(), callReq("create_records", map[string]any{
			"table_id":     "t1",
			"records_json": `[{"Name":"a"},{"Name":"b"}]`,
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
	})
	t.Run("invalid JSON", func(t *testing.T) {
		s, _ := newTestServer(t, WithBaseID("b1"))
		res, err := s.toolCreateRecords().Handler(t.Context(), callReq("create_records", map[string]any{
			"table_id":     "t1",
			"records_json": `{not json`,
		}))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
	})
}

func TestToolUpdateRecords(t *testing.T) {
	s, mc := newTestServer(t, WithBaseID("b1"))
	mc.EXPECT().
		UpdateRecords(gomock.Any(), "b1", "t1", nocodb.Record{ID: "1", Fields: nocodb.Fields{"Name": "new"}}).
		Return([]nocodb.Record{{ID: "1", Fields: nocodb.Fields{"Name": "new"}}}, nil)

	res, err := s.toolUpdateRecords().Handler(t.Context(), callReq("update_records", map[string]any{
		"table_id":     "t1",
		"records_json": `[{"id":1,"fields":{"Name":"new"}}]`,
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
}

func TestToolDeleteRecords(t *testing.T) {
	t.Run("refuses without confirm", func(t *testing.T) {
		s, _ := newTestServer(t, WithBaseID("b1"))
		res, err := s.toolDeleteRecords().Handler(t.Context(), callReq("delete_records", map[string]any{
			"table_id":   "t1",
			"record_ids": "1,2",
		}))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "confirm")
	})
	t.Run("deletes with confirm", func(t *testing.T) {
		s, mc := newTestServer(t, WithBaseID("b1"))
		mc.EXPECT().
			DeleteRecords(gomock.Any(), "b1", "t1", nocodb.RecordID("1"), nocodb.RecordID("2")).
			Return([]nocodb.RecordID{"1", "2"}, nil)

		res, err := s.toolDeleteRecords().Handler(t.Context(), callReq("delete_records", map[string]any{
			"table_id":   "t1",
			"record_ids": "1,2",
			"confirm":    true,
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "deleted 2")
	})
}

func TestToolCountRecords(t *testing.T) {
	s, mc := newTestServer(t, WithBaseID("b1"))
	mc.EXPECT().
		CountRecords(gomock.Any(), "b1", "t1", gomock.Any()).
		DoAndReturn(func(_ any, _, _ string, where any) (int, error) {
			return 7, nil
		})

	res, err := s.toolCountRecords().Handler(t.Context(), callReq("count_records", map[string]any{
		"table_id": "t1",
		"where":    "(Age,gt,18)",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Equal(t, "7", firstText(t, res))
}

func TestToolListLinks(t *testing.T) {
	s, mc := newTestServer(t, WithBaseID("b1"))
	mc.EXPECT().
		ListLinks(gomock.Any(), "b1", "t1", "lf1", nocodb.RecordID("42"), gomock.Nil()).
		Return(&nocodb.LinksPage{List: []nocodb.Record{{ID: "9"}}}, nil)

	res, err := s.toolListLinks().Handler(t.Context(), callReq("list_links", map[string]any{
		"table_id":      "t1",
		"link_field_id": "lf1",
		"record_id":     "42",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
}

func TestToolBuildFilter(t *testing.T) {
	tests := []struct {
		name        string
		filterJSON  string
		want        string
		wantIsError bool
	}{
		{
			name:       "leaf",
			filterJSON: `{"field":"Status","op":"eq","values":["Active"]}`,
			want:       "(Status,eq,Active)",
		},
		{
			name: "nested and-or",
			filterJSON: `{"or":[
				{"and":[
					{"field":"Status","op":"eq","values":["Active"]},
					{"field":"Age","op":"gt","values":[18]}
				]},
				{"field":"VIP","op":"is","values":["true"]}
			]}`,
			want: "(Status,eq,Active)~and(Age,gt,18)~or(VIP,is,true)",
		},
		{
			name:       "not",
			filterJSON: `{"not":{"field":"Name","op":"like","values":["%test%"]}}`,
			want:       "~not(Name,like,%test%)",
		},
		{
			name:        "bad operator arity",
			filterJSON:  `{"field":"Age","op":"btw","values":[1]}`,
			wantIsError: true,
		},
		{
			name:        "empty tree",
			filterJSON:  `{}`,
			wantIsError: true,
		},
		{
			name:        "invalid json",
			filterJSON:  `{`,
			wantIsError: true,
		},
	}
	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.toolBuildFilter().Handler(t.Context(), callReq("build_filter", map[string]any{
				"filter_json": tt.filterJSON,
			}))
			require.NoError(t, err)
			if tt.wantIsError {
				assert.True(t, isErrorResult(res))
				return
			}
			require.False(t, isErrorResult(res))
			assert.Equal(t, tt.want, firstText(t, res))
		})
	}
}
