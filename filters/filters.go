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

// Package filters constructs NocoDB "where" query expressions.
//
// A filter is a tree of [Condition] nodes: leaf comparisons such as
// (Status,eq,Active) combined with the ~and, ~or and ~not operators.  The
// tree is built once, is immutable, and renders deterministically with
// [Condition.Where].  All validation happens at construction time, so a
// successfully constructed Condition always renders.
//
// Known limitation, shared with the NocoDB wire format itself: commas and
// parentheses inside field names or values are inserted verbatim.  The DSL
// has no escaping mechanism, and neither does this package; values
// containing delimiter characters produce ambiguous expressions on the
// server side.
package filters

// In this file: the Condition interface, leaf conditions, the operator
// table and construction-time validation.

import (
	"fmt"
	"strings"
)

// Condition is a node in a filter expression tree.  Where returns the
// wire-format fragment for the node; it is total and deterministic for any
// Condition produced by this package.
type Condition interface {
	Where() string
}

// Op is a NocoDB comparison operator wire code.
type Op string

// Comparison operators supported by the NocoDB v3 API.
const (
	OpEq      Op = "eq"
	OpNeq     Op = "neq"
	OpGt      Op = "gt"
	OpGte     Op = "gte" // v3 API uses gte, not ge
	OpLt      Op = "lt"
	OpLte     Op = "lte" // v3 API uses lte, not le
	OpLike    Op = "like"
	OpNotLike Op = "nlike"
	OpIs      Op = "is"
	OpIn      Op = "in"
	OpBetween Op = "btw"
)

// IsValue is a token accepted by the "is" operator.
type IsValue string

// Tokens accepted by [Is].
const (
	Null     IsValue = "null"
	NotNull  IsValue = "notnull"
	True     IsValue = "true"
	False    IsValue = "false"
	Empty    IsValue = "empty"
	NotEmpty IsValue = "notempty"
)

// arity describes how many operand values an operator takes.
type arity int

const (
	arityOne  arity = iota // exactly one value
	arityTwo               // exactly two values (range)
	arityList              // one or more values (membership)
)

// operators is the fixed registry of supported operators and their arity.
// Ad-hoc operators outside this table are reachable through [Basic].
var operators = map[Op]arity{
	OpEq:      arityOne,
	OpNeq:     arityOne,
	OpGt:      arityOne,
	OpGte:     arityOne,
	OpLt:      arityOne,
	OpLte:     arityOne,
	OpLike:    arityOne,
	OpNotLike: arityOne,
	OpIs:      arityOne,
	OpIn:      arityList,
	OpBetween: arityTwo,
}

// isTokens is the set of values the "is" operator accepts.
var isTokens = map[IsValue]struct{}{
	Null:     {},
	NotNull:  {},
	True:     {},
	False:    {},
	Empty:    {},
	NotEmpty: {},
}

// ConfigError reports an invalid filter construction: an empty field name,
// an unknown operator, a value count that does not match the operator's
// arity, or an invalid "is" token.
type ConfigError struct {
	Field  string
	Op     Op
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("filters: invalid condition (field %q, op %q): %s", e.Field, e.Op, e.Reason)
}

// leaf is a single field comparison.  values are pre-rendered at
// construction so that Where never fails.
type leaf struct {
	field  string
	op     Op
	values []string
}

func (l leaf) Where() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(l.field)
	sb.WriteByte(',')
	sb.WriteString(string(l.op))
	for _, v := range l.values {
		sb.WriteByte(',')
		sb.WriteString(v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// render converts operand values to their wire representation.
func render(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// New constructs a leaf condition for any operator in the registry,
// validating the value count against the operator's arity.  For the "is"
// operator the single value must be one of the [IsValue] tokens.
func New(field string, op Op, values ...any) (Condition, error) {
	if field == "" {
		return nil, &ConfigError{Field: field, Op: op, Reason: "empty field name"}
	}
	ar, ok := operators[op]
	if !ok {
		return nil, &ConfigError{Field: field, Op: op, Reason: "unknown operator"}
	}
	switch ar {
	case arityOne:
		if len(values) != 1 {
			return nil, &ConfigError{Field: field, Op: op, Reason: fmt.Sprintf("requires exactly 1 value, got %d", len(values))}
		}
	case arityTwo:
		if len(values) != 2 {
			return nil, &ConfigError{Field: field, Op: op, Reason: fmt.Sprintf("requires exactly 2 values, got %d", len(values))}
		}
	case arityList:
		if len(values) == 0 {
			return nil, &ConfigError{Field: field, Op: op, Reason: "requires at least 1 value"}
		}
	}
	if op == OpIs {
		if _, ok := isTokens[IsValue(fmt.Sprint(values[0]))]; !ok {
			return nil, &ConfigError{Field: field, Op: op, Reason: fmt.Sprintf("invalid token %q, want one of: null, notnull, true, false, empty, notempty", fmt.Sprint(values[0]))}
		}
	}
	return leaf{field: field, op: op, values: render(values)}, nil
}

// Eq matches records where field equals value.
func Eq(field string, value any) (Condition, error) { return New(field, OpEq, value) }

// Neq matches records where field does not equal value.
func Neq(field string, value any) (Condition, error) { return New(field, OpNeq, value) }

// Gt matches records where field is greater than value.
func Gt(field string, value any) (Condition, error) { return New(field, OpGt, value) }

// Gte matches records where field is greater than or equal to value.
func Gte(field string, value any) (Condition, error) { return New(field, OpGte, value) }

// Lt matches records where field is less than value.
func Lt(field string, value any) (Condition, error) { return New(field, OpLt, value) }

// Lte matches records where field is less than or equal to value.
func Lte(field string, value any) (Condition, error) { return New(field, OpLte, value) }

// Like matches records where field matches the pattern.  The caller
// supplies % wildcards, e.g. Like("Name", "%test%").
func Like(field string, pattern any) (Condition, error) { return New(field, OpLike, pattern) }

// NotLike matches records where field does not match the pattern.
func NotLike(field string, pattern any) (Condition, error) { return New(field, OpNotLike, pattern) }

// Is performs a null/empty/boolean check on field.  value must be one of
// the [IsValue] tokens.
func Is(field string, value IsValue) (Condition, error) { return New(field, OpIs, string(value)) }

// In matches records where field equals any of the given values.
func In(field string, values ...any) (Condition, error) { return New(field, OpIn, values...) }

// Between matches records where field lies between low and high,
// inclusive.  Bound order is preserved in the rendered expression.
func Between(field string, low, high any) (Condition, error) {
	return New(field, OpBetween, low, high)
}

// raw is a pre-formatted wire fragment supplied by the caller.
type raw string

func (r raw) Where() string { return string(r) }

// Raw wraps a pre-formatted wire-format string as a Condition.  No
// validation of well-formedness is performed; the caller is fully
// responsible for correctness.  It exists for operators and server features
// the structured constructors do not cover.
func Raw(expr string) (Condition, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &ConfigError{Reason: "empty raw expression"}
	}
	return raw(expr), nil
}
