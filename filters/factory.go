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

// BasicFunc constructs a single-value leaf condition for a fixed operator.
type BasicFunc func(field string, value any) (Condition, error)

// Basic returns a constructor for an arity-1 leaf condition using an
// arbitrary operator tag.  It is the escape hatch for server-specific or
// future operators that are not in the registry; the tag is not validated
// beyond being non-empty, and the resulting conditions always take exactly
// one value.  Operators with other arities have no factory form; use the
// named constructors or [Raw].
func Basic(tag string) BasicFunc {
	return func(field string, value any) (Condition, error) {
		if tag == "" {
			return nil, &ConfigError{Field: field, Reason: "empty operator tag"}
		}
		if field == "" {
			return nil, &ConfigError{Field: field, Op: Op(tag), Reason: "empty field name"}
		}
		return leaf{field: field, op: Op(tag), values: render([]any{value})}, nil
	}
}
