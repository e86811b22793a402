// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package wql

import (
	"encoding/json"
	"strings"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// Parse turns a WQL JSON document into an Operator tree and applies the
// algebraic simplifications documented on simplify, once, over the whole
// tree.
func Parse(doc []byte) (Operator, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, errors.ErrInvalidFormat.Wrap(err)
	}

	op, err := parseObject(raw)
	if err != nil {
		return nil, err
	}

	return simplify(op), nil
}

func parseObject(m map[string]json.RawMessage) (Operator, error) {
	if len(m) == 0 {
		return And{}, nil
	}

	terms := make([]Operator, 0, len(m))
	for k, v := range m {
		op, err := parseEntry(k, v)
		if err != nil {
			return nil, err
		}
		terms = append(terms, op)
	}

	if len(terms) == 1 {
		return terms[0], nil
	}
	return And{Operands: terms}, nil
}

func parseEntry(key string, value json.RawMessage) (Operator, error) {
	switch key {
	case "$and":
		return parseVariadic(value, func(ops []Operator) Operator { return And{Operands: ops} })
	case "$or":
		return parseVariadic(value, func(ops []Operator) Operator { return Or{Operands: ops} })
	case "$not":
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(value, &obj); err != nil {
			return nil, errors.ErrInvalidFormat.WithDetail("key", key).Wrap(err)
		}
		inner, err := parseObject(obj)
		if err != nil {
			return nil, err
		}
		return Not{Operand: inner}, nil
	default:
		return parseTagEntry(key, value)
	}
}

func parseVariadic(value json.RawMessage, build func([]Operator) Operator) (Operator, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, errors.ErrInvalidFormat.Wrap(err)
	}

	ops := make([]Operator, 0, len(items))
	for _, item := range items {
		op, err := parseObject(item)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return build(ops), nil
}

// parseTagEntry parses a single `"<name>": <value>` entry, where value
// is either a plain string (equality) or a single-key object naming a
// unary operator.
func parseTagEntry(name string, value json.RawMessage) (Operator, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	var asString *string
	if err := json.Unmarshal(value, &asString); err == nil && asString != nil {
		return Eq{Name: name, Value: *asString}, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(value, &asObject); err != nil {
		return nil, errors.ErrInvalidFormat.WithDetail("tag", name)
	}
	if len(asObject) != 1 {
		return nil, errors.ErrInvalidFormat.WithDetail("tag", name)
	}

	for op, arg := range asObject {
		switch op {
		case "$neq":
			s, err := unmarshalString(arg)
			if err != nil {
				return nil, err
			}
			return Neq{Name: name, Value: s}, nil
		case "$gt", "$gte", "$lt", "$lte", "$like":
			s, err := unmarshalString(arg)
			if err != nil {
				return nil, err
			}
			return buildRangeOperator(op, name, s), nil
		case "$in":
			var values []string
			if err := json.Unmarshal(arg, &values); err != nil {
				return nil, errors.ErrInvalidFormat.WithDetail("tag", name).Wrap(err)
			}
			return In{Name: name, Values: values}, nil
		default:
			return nil, errors.ErrInvalidFormat.WithDetail("operator", op)
		}
	}

	// unreachable: len(asObject) == 1 guarantees the loop body runs once.
	return nil, errors.ErrInvalidFormat.WithDetail("tag", name)
}

func buildRangeOperator(op, name, value string) Operator {
	switch op {
	case "$gt":
		return Gt{Name: name, Value: value}
	case "$gte":
		return Gte{Name: name, Value: value}
	case "$lt":
		return Lt{Name: name, Value: value}
	case "$lte":
		return Lte{Name: name, Value: value}
	default: // "$like"
		return Like{Name: name, Value: value}
	}
}

func unmarshalString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.ErrInvalidFormat.Wrap(err)
	}
	return s, nil
}

// validateTagName rejects tag names that cannot be safely interpolated
// into the JSON path literal used at SQL emission time. This is load
// bearing: JSON_EXTRACT(tags, '$."<name>"') embeds name verbatim, so a
// name carrying a quote or backslash could otherwise escape the path
// expression.
func validateTagName(name string) error {
	if strings.ContainsAny(name, `"\`) {
		return errors.ErrInvalidFormat.WithDetail("tag", name).WithMessage("tag name must not contain '\"' or '\\'")
	}
	return nil
}

// simplify applies the WQL algebraic simplifications in a single
// bottom-up pass over the whole tree:
//
//	Not(Not(x))  -> x
//	And([x])     -> x
//	Or([x])      -> x
//	In(k, [v])   -> Eq(k, v)
//
// Applying this once, after the full document has been parsed, rather
// than scattered through recursive descent, guarantees every subtree -
// including ones nested under $and/$or/$not - is normalised exactly
// once.
func simplify(op Operator) Operator {
	switch v := op.(type) {
	case And:
		ops := simplifyAll(v.Operands)
		if len(ops) == 1 {
			return ops[0]
		}
		return And{Operands: ops}
	case Or:
		ops := simplifyAll(v.Operands)
		if len(ops) == 1 {
			return ops[0]
		}
		return Or{Operands: ops}
	case Not:
		inner := simplify(v.Operand)
		if innerNot, ok := inner.(Not); ok {
			return innerNot.Operand
		}
		return Not{Operand: inner}
	case In:
		if len(v.Values) == 1 {
			return Eq{Name: v.Name, Value: v.Values[0]}
		}
		return v
	default:
		return op
	}
}

func simplifyAll(ops []Operator) []Operator {
	if ops == nil {
		return nil
	}
	out := make([]Operator, len(ops))
	for i, op := range ops {
		out[i] = simplify(op)
	}
	return out
}
