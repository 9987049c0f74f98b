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

// mustEq is a test helper for building leaves inline.
func mustEq(t *testing.T, field, value string) Condition {
	t.Helper()
	c, err := Eq(field, value)
	require.NoError(t, err)
	return c
}

func TestAnd(t *testing.T) {
	c, err := And(mustEq(t, "Status", "Active"), mustEq(t, "Role", "admin"))
	require.NoError(t, err)
	assert.Equal(t, "(Status,eq,Active)~and(Role,eq,admin)", c.Where())
}

func TestOr(t *testing.T) {
	c, err := Or(mustEq(t, "Status", "Active"), mustEq(t, "Status", "Pending"))
	require.NoError(t, err)
	assert.Equal(t, "(Status,eq,Active)~or(Status,eq,Pending)", c.Where())
}

func TestAndThreeChildren(t *testing.T) {
	c, err := And(mustEq(t, "a", "1"), mustEq(t, "b", "2"), mustEq(t, "c", "3"))
	require.NoError(t, err)
	assert.Equal(t, "(a,eq,1)~and(b,eq,2)~and(c,eq,3)", c.Where())
}

func TestOrThreeChildren(t *testing.T) {
	c, err := Or(mustEq(t, "a", "1"), mustEq(t, "b", "2"), mustEq(t, "c", "3"))
	require.NoError(t, err)
	assert.Equal(t, "(a,eq,1)~or(b,eq,2)~or(c,eq,3)", c.Where())
}

func TestAndSingleChild(t *testing.T) {
	// A single-child group renders as the child alone, no join token.
	c, err := And(mustEq(t, "column", "value"))
	require.NoError(t, err)
	assert.Equal(t, "(column,eq,value)", c.Where())
}

func TestOrSingleChild(t *testing.T) {
	c, err := Or(mustEq(t, "column", "value"))
	require.NoError(t, err)
	assert.Equal(t, "(column,eq,value)", c.Where())
}

func TestAndNoChildren(t *testing.T) {
	_, err := And()
	require.Error(t, err)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestOrNoChildren(t *testing.T) {
	_, err := Or()
	require.Error(t, err)
}

func TestAndNilChild(t *testing.T) {
	_, err := And(mustEq(t, "a", "1"), nil)
	require.Error(t, err)
}

func TestNot(t *testing.T) {
	c, err := Not(mustEq(t, "Status", "Draft"))
	require.NoError(t, err)
	assert.Equal(t, "~not(Status,eq,Draft)", c.Where())
}

func TestNotNil(t *testing.T) {
	_, err := Not(nil)
	require.Error(t, err)
}

func TestNotWrappingAnd(t *testing.T) {
	and, err := And(mustEq(t, "status", "active"), mustEq(t, "role", "admin"))
	require.NoError(t, err)
	c, err := Not(and)
	require.NoError(t, err)
	assert.Equal(t, "~not(status,eq,active)~and(role,eq,admin)", c.Where())
}

func TestNesting(t *testing.T) {
	like, err := Like("Name", "%test%")
	require.NoError(t, err)
	and, err := And(mustEq(t, "Status", "Active"), like)
	require.NoError(t, err)
	c, err := Or(and, mustEq(t, "Status", "Pending"))
	require.NoError(t, err)
	// Combinators concatenate child renderings literally; no extra
	// parentheses are added around the nested group.
	assert.Equal(t, "(Status,eq,Active)~and(Name,like,%test%)~or(Status,eq,Pending)", c.Where())
}

func TestChildOrderPreserved(t *testing.T) {
	c, err := And(mustEq(t, "b", "2"), mustEq(t, "a", "1"))
	require.NoError(t, err)
	assert.Equal(t, "(b,eq,2)~and(a,eq,1)", c.Where())
}

func TestChildReuse(t *testing.T) {
	// A condition may be shared across combinators; composing never
	// mutates existing nodes.
	shared := mustEq(t, "x", "1")
	and, err := And(shared, mustEq(t, "y", "2"))
	require.NoError(t, err)
	or, err := Or(shared, mustEq(t, "z", "3"))
	require.NoError(t, err)
	assert.Equal(t, "(x,eq,1)~and(y,eq,2)", and.Where())
	assert.Equal(t, "(x,eq,1)~or(z,eq,3)", or.Where())
	assert.Equal(t, "(x,eq,1)", shared.Where())
}

func TestCallerSliceIndependence(t *testing.T) {
	conds := []Condition{mustEq(t, "a", "1"), mustEq(t, "b", "2")}
	c, err := And(conds...)
	require.NoError(t, err)
	want := c.Where()
	conds[0] = mustEq(t, "mutated", "x")
	assert.Equal(t, want, c.Where())
}

func TestRangeWithLogical(t *testing.T) {
	gte, err := Gte("age", 18)
	require.NoError(t, err)
	lte, err := Lte("age", 65)
	require.NoError(t, err)
	c, err := And(gte, lte)
	require.NoError(t, err)
	assert.Equal(t, "(age,gte,18)~and(age,lte,65)", c.Where())
}
