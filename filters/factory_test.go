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

func TestBasic(t *testing.T) {
	eq := Basic("eq")
	c, err := eq("column", "value")
	require.NoError(t, err)
	assert.Equal(t, "(column,eq,value)", c.Where())
}

func TestBasicCustomOperator(t *testing.T) {
	// Operators outside the registry are accepted verbatim.
	custom := Basic("custom_op")
	c, err := custom("field", "value")
	require.NoError(t, err)
	assert.Equal(t, "(field,custom_op,value)", c.Where())
}

func TestBasicRegistryOperators(t *testing.T) {
	gte := Basic("gte")
	lte := Basic("lte")

	c, err := gte("age", 18)
	require.NoError(t, err)
	assert.Equal(t, "(age,gte,18)", c.Where())

	c, err = lte("price", 100)
	require.NoError(t, err)
	assert.Equal(t, "(price,lte,100)", c.Where())
}

func TestBasicEmptyTag(t *testing.T) {
	noop := Basic("")
	_, err := noop("field", "value")
	require.Error(t, err)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestBasicEmptyField(t *testing.T) {
	eq := Basic("eq")
	_, err := eq("", "value")
	require.Error(t, err)
}

func TestBasicComposesWithLogical(t *testing.T) {
	nlike := Basic("nlike")
	c1, err := nlike("name", "test")
	require.NoError(t, err)
	c2, err := Eq("active", "true")
	require.NoError(t, err)
	c, err := And(c1, c2)
	require.NoError(t, err)
	assert.Equal(t, "(name,nlike,test)~and(active,eq,true)", c.Where())
}
