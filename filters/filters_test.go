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

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicComparisons(t *testing.T) {
	tests := []struct {
		name string
		fn   func(field string, value any) (Condition, error)
		op   string
	}{
		{"Eq", Eq, "eq"},
		{"Neq", Neq, "neq"},
		{"Gt", Gt, "gt"},
		{"Gte", Gte, "gte"},
		{"Lt", Lt, "lt"},
		{"Lte", Lte, "lte"},
		{"Like", Like, "like"},
		{"NotLike", NotLike, "nlike"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.fn("column", "value")
			require.NoError(t, err)
			assert.Equal(t, "(column,"+tt.op+",value)", c.Where())
		})
	}
}

func TestEq(t *testing.T) {
	c, err := Eq("Status", "Active")
	require.NoError(t, err)
	assert.Equal(t, "(Status,eq,Active)", c.Where())
}

func TestEqEmptyField(t *testing.T) {
	_, err := Eq("", "value")
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "empty field name")
}

func TestNumericValues(t *testing.T) {
	c, err := Gte("age", 18)
	require.NoError(t, err)
	assert.Equal(t, "(age,gte,18)", c.Where())

	c, err = Lte("price", 99.5)
	require.NoError(t, err)
	assert.Equal(t, "(price,lte,99.5)", c.Where())
}

func TestIs(t *testing.T) {
	tests := []struct {
		value IsValue
		want  string
	}{
		{Null, "(Status,is,null)"},
		{NotNull, "(Status,is,notnull)"},
		{True, "(Status,is,true)"},
		{False, "(Status,is,false)"},
		{Empty, "(Status,is,empty)"},
		{NotEmpty, "(Status,is,notempty)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			c, err := Is("Status", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Where())
		})
	}
}

func TestIsInvalidToken(t *testing.T) {
	_, err := Is("Status", IsValue("invalid"))
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, OpIs, cerr.Op)
	assert.Contains(t, cerr.Error(), "invalid")
}

func TestIn(t *testing.T) {
	c, err := In("Tags", "urgent", "important")
	require.NoError(t, err)
	assert.Equal(t, "(Tags,in,urgent,important)", c.Where())
}

func TestInSingleValue(t *testing.T) {
	c, err := In("Status", "open")
	require.NoError(t, err)
	assert.Equal(t, "(Status,in,open)", c.Where())
}

func TestInNoValues(t *testing.T) {
	_, err := In("Tags")
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, OpIn, cerr.Op)
}

func TestInMixedTypes(t *testing.T) {
	c, err := In("Code", 404, 418)
	require.NoError(t, err)
	assert.Equal(t, "(Code,in,404,418)", c.Where())
}

func TestBetween(t *testing.T) {
	c, err := Between("Age", 18, 65)
	require.NoError(t, err)
	assert.Equal(t, "(Age,btw,18,65)", c.Where())
}

func TestBetweenDates(t *testing.T) {
	c, err := Between("Date", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "(Date,btw,2024-01-01,2024-12-31)", c.Where())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		op      Op
		values  []any
		want    string
		wantErr bool
	}{
		{name: "eq", field: "a", op: OpEq, values: []any{"1"}, want: "(a,eq,1)"},
		{name: "btw two values", field: "a", op: OpBetween, values: []any{1, 2}, want: "(a,btw,1,2)"},
		{name: "btw no values", field: "a", op: OpBetween, wantErr: true},
		{name: "btw one value", field: "a", op: OpBetween, values: []any{1}, wantErr: true},
		{name: "btw three values", field: "a", op: OpBetween, values: []any{1, 2, 3}, wantErr: true},
		{name: "eq no values", field: "a", op: OpEq, wantErr: true},
		{name: "eq two values", field: "a", op: OpEq, values: []any{1, 2}, wantErr: true},
		{name: "unknown operator", field: "a", op: Op("bogus"), values: []any{1}, wantErr: true},
		{name: "empty field", field: "", op: OpEq, values: []any{1}, wantErr: true},
		{name: "is valid token", field: "a", op: OpIs, values: []any{"null"}, want: "(a,is,null)"},
		{name: "is invalid token", field: "a", op: OpIs, values: []any{"nope"}, wantErr: true},
		{name: "in list", field: "a", op: OpIn, values: []any{"x", "y", "z"}, want: "(a,in,x,y,z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.field, tt.op, tt.values...)
			if tt.wantErr {
				require.Error(t, err)
				var cerr *ConfigError
				assert.ErrorAs(t, err, &cerr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Where())
		})
	}
}

func TestRaw(t *testing.T) {
	c, err := Raw("(x,y,z)")
	require.NoError(t, err)
	assert.Equal(t, "(x,y,z)", c.Where())
}

func TestRawNoValidation(t *testing.T) {
	// Raw is a passthrough: malformed input renders verbatim.
	c, err := Raw("not-well-formed")
	require.NoError(t, err)
	assert.Equal(t, "not-well-formed", c.Where())
}

func TestRawEmpty(t *testing.T) {
	_, err := Raw("")
	require.Error(t, err)
}

func TestUnescapedDelimiters(t *testing.T) {
	// Documented limitation: delimiter characters inside values are
	// inserted verbatim, matching the wire format's lack of escaping.
	c, err := Eq("Name", "a,b")
	require.NoError(t, err)
	assert.Equal(t, "(Name,eq,a,b)", c.Where())
}

func TestWhereIsIdempotent(t *testing.T) {
	c, err := Between("Age", 18, 65)
	require.NoError(t, err)
	first := c.Where()
	assert.Equal(t, first, c.Where())
}
