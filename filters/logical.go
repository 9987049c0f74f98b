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

// In this file: the ~and, ~or and ~not combinators.
//
// Combinators concatenate child renderings literally and add no
// parentheses of their own: (A,eq,1)~and(B,eq,2).  Each leaf carries its
// own parentheses, which is all the grouping the v3 API expects.  Child
// order is preserved exactly as given; the tree is never flattened,
// sorted or simplified.

import (
	"slices"
	"strings"
)

// group joins child renderings with a logical join token.
type group struct {
	join     string // "~and" or "~or"
	children []Condition
}

func (g group) Where() string {
	if len(g.children) == 1 {
		// Degenerate single-child group: nothing to join.
		return g.children[0].Where()
	}
	var sb strings.Builder
	for i, c := range g.children {
		if i > 0 {
			sb.WriteString(g.join)
		}
		sb.WriteString(c.Where())
	}
	return sb.String()
}

// newGroup validates and copies children so the resulting node is
// independent of the caller's slice.
func newGroup(join string, conds []Condition) (Condition, error) {
	if len(conds) == 0 {
		return nil, &ConfigError{Reason: join + " requires at least one condition"}
	}
	for _, c := range conds {
		if c == nil {
			return nil, &ConfigError{Reason: join + " given a nil condition"}
		}
	}
	return group{join: join, children: slices.Clone(conds)}, nil
}

// And combines one or more conditions with the ~and operator.  A single
// condition renders as itself.
func And(conds ...Condition) (Condition, error) {
	return newGroup("~and", conds)
}

// Or combines one or more conditions with the ~or operator.  A single
// condition renders as itself.
func Or(conds ...Condition) (Condition, error) {
	return newGroup("~or", conds)
}

// not negates a single child condition.
type not struct {
	c Condition
}

func (n not) Where() string { return "~not" + n.c.Where() }

// Not negates a condition with the ~not operator.  Exactly one child is
// taken; it must not be nil.
func Not(c Condition) (Condition, error) {
	if c == nil {
		return nil, &ConfigError{Reason: "~not given a nil condition"}
	}
	return not{c: c}, nil
}
