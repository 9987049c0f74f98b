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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/nocogo/nocodb/internal/mcp/mock_client"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mc := mock_client.NewMockClient(ctrl)

	s := New(WithClient(mc), WithBaseID("b1"))
	require.NotNil(t, s)
	assert.NotNil(t, s.mcp)
	assert.Equal(t, "b1", s.baseID)
	assert.Same(t, mc, s.client.(*mock_client.MockClient))
}

func TestInstructions(t *testing.T) {
	t.Run("no default base", func(t *testing.T) {
		got := instructions("")
		assert.Contains(t, got, "No default base is configured")
	})
	t.Run("default base", func(t *testing.T) {
		got := instructions("b1")
		assert.Contains(t, got, `"b1"`)
	})
}

func TestTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(WithClient(mock_client.NewMockClient(ctrl)))

	seen := make(map[string]bool)
	for _, tool := range s.tools() {
		assert.NotEmpty(t, tool.Tool.Name)
		assert.NotEmpty(t, tool.Tool.Description)
		assert.NotNil(t, tool.Handler)
		assert.False(t, seen[tool.Tool.Name], "duplicate tool %s", tool.Tool.Name)
		seen[tool.Tool.Name] = true
	}
	for _, name := range []string{
		"list_bases", "list_tables", "get_table_schema",
		"list_records", "get_record", "create_records", "update_records",
		"delete_records", "count_records", "list_links", "build_filter",
	} {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestResultHelpers(t *testing.T) {
	t.Run("resultText", func(t *testing.T) {
		r := resultText("hello")
		assert.False(t, r.IsError)
		assert.Equal(t, "hello", firstText(t, r))
	})
	t.Run("resultErr", func(t *testing.T) {
		r := resultErr(errors.New("bad"))
		assert.True(t, r.IsError)
		assert.Equal(t, "bad", firstText(t, r))
	})
	t.Run("resultJSON", func(t *testing.T) {
		r, err := resultJSON(map[string]int{"n": 1})
		require.NoError(t, err)
		assert.Contains(t, firstText(t, r), `"n":1`)
	})
}

func TestArgHelpers(t *testing.T) {
	req := callReq("x", map[string]any{
		"s": "str",
		"n": float64(5),
		"b": true,
	})
	t.Run("stringArg", func(t *testing.T) {
		v, ok := stringArg(req, "s")
		assert.True(t, ok)
		assert.Equal(t, "str", v)
		_, ok = stringArg(req, "missing")
		assert.False(t, ok)
		_, ok = stringArg(req, "n")
		assert.False(t, ok)
	})
	t.Run("intArg", func(t *testing.T) {
		assert.Equal(t, 5, intArg(req, "n", 0))
		assert.Equal(t, 9, intArg(req, "missing", 9))
		assert.Equal(t, 9, intArg(req, "s", 9))
	})
	t.Run("boolArg", func(t *testing.T) {
		assert.True(t, boolArg(req, "b", false))
		assert.False(t, boolArg(req, "missing", false))
		assert.True(t, boolArg(req, "missing", true))
	})
}
