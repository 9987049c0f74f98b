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

import (
	"flag"
	"fmt"
	"strings"

	"github.com/nocogo/nocodb/filters"
)

// filterFlag accumulates -f flag conditions.  Each occurrence is a
// comma-separated "Field,op,value[,value...]" triple that is validated as
// it is parsed.
type filterFlag struct {
	conds []filters.Condition
	raw   []string
}

var _ flag.Value = new(filterFlag)

func (ff *filterFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return fmt.Errorf("condition %q: want \"Field,op[,value...]\"", s)
	}
	values := make([]any, 0, len(parts)-2)
	for _, v := range parts[2:] {
		values = append(values, v)
	}
	cond, err := filters.New(parts[0], filters.Op(parts[1]), values...)
	if err != nil {
		return err
	}
	ff.conds = append(ff.conds, cond)
	ff.raw = append(ff.raw, s)
	return nil
}

func (ff *filterFlag) String() string {
	return strings.Join(ff.raw, "; ")
}

// condition combines the -f conditions and the raw -where expression into a
// single filter.  Returns nil if neither was given.
func condition(ff *filterFlag, where string) (filters.Condition, error) {
	conds := ff.conds
	if where != "" {
		raw, err := filters.Raw(where)
		if err != nil {
			return nil, err
		}
		conds = append(conds, raw)
	}
	switch len(conds) {
	case 0:
		return nil, nil
	case 1:
		return conds[0], nil
	}
	return filters.And(conds...)
}
