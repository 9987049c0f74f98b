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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIURLs(t *testing.T) {
	a := newAPI("https://noco.example.com/")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"records", a.records("b1", "t1"), "https://noco.example.com/api/v3/data/b1/t1/records"},
		{"record", a.record("b1", "t1", "42"), "https://noco.example.com/api/v3/data/b1/t1/records/42"},
		{"count", a.count("b1", "t1"), "https://noco.example.com/api/v3/data/b1/t1/count"},
		{"links", a.links("b1", "t1", "lf1", "42"), "https://noco.example.com/api/v3/data/b1/t1/links/lf1/42"},
		{"base", a.base3("b1"), "https://noco.example.com/api/v3/meta/bases/b1"},
		{"tables", a.tables("b1"), "https://noco.example.com/api/v3/meta/bases/b1/tables"},
		{"table", a.table("b1", "t1"), "https://noco.example.com/api/v3/meta/bases/b1/tables/t1"},
		{"tokens", a.tokens(), "https://noco.example.com/api/v3/meta/tokens"},
		{"token", a.token("tk1"), "https://noco.example.com/api/v3/meta/tokens/tk1"},
		{"bases v2", a.basesV2(), "https://noco.example.com/api/v2/meta/bases"},
		{"hooks", a.hooks("t1"), "https://noco.example.com/api/v2/meta/tables/t1/hooks"},
		{"hook", a.hook("h1"), "https://noco.example.com/api/v2/meta/hooks/h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
