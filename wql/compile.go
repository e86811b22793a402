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
	"fmt"
	"strings"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// Projection selects which columns a fetch-mode query retrieves; an
// unwanted column is emitted as the literal NULL instead of being
// dropped, so every row still has four projected columns.
type Projection struct {
	Type  bool
	Value bool
	Tags  bool
}

// CompileFetch emits a SELECT over the items table for the given wallet
// and record type, applying query as a WHERE predicate and proj to
// decide which columns are real versus NULL. Returned args are ordered:
// the predicate's own arguments first, then type, then walletID.
func CompileFetch(walletID int64, recordType string, query Operator, proj Projection) (string, []interface{}, error) {
	cond, args, err := compileCondition(query)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(column(proj.Type, "type"))
	b.WriteString(", name, ")
	b.WriteString(column(proj.Value, "value"))
	b.WriteString(", ")
	b.WriteString(column(proj.Tags, "tags"))
	b.WriteString(" FROM items WHERE ")
	if cond != "" {
		b.WriteString(enclose(query, cond))
		b.WriteString(" AND ")
	}
	b.WriteString("type = ? AND wallet_id = ?")

	args = append(args, recordType, walletID)
	return b.String(), args, nil
}

// CompileCount emits a SELECT count(*) over the same table and predicate
// as CompileFetch, for SearchOptions.RetrieveTotalCount.
func CompileCount(walletID int64, recordType string, query Operator) (string, []interface{}, error) {
	cond, args, err := compileCondition(query)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT count(*) FROM items i WHERE ")
	if cond != "" {
		b.WriteString(enclose(query, cond))
		b.WriteString(" AND ")
	}
	b.WriteString("i.type = ? AND i.wallet_id = ?")

	args = append(args, recordType, walletID)
	return b.String(), args, nil
}

// enclose parenthesises a top-level leaf predicate before it is joined
// to the type/wallet tail. And/Or already emit their own parentheses and
// Not emits NOT (...), so those are returned unchanged.
func enclose(op Operator, cond string) string {
	switch op.(type) {
	case And, Or, Not:
		return cond
	}
	return "(" + cond + ")"
}

func column(retrieve bool, name string) string {
	if retrieve {
		return name
	}
	return "NULL"
}

// compileCondition renders op as a SQL boolean expression with
// positional placeholders, returning the expression text (empty for an
// unconditional And([])) and its arguments in emission order.
func compileCondition(op Operator) (string, []interface{}, error) {
	switch v := op.(type) {
	case And:
		return joinOperators(v.Operands, "AND")
	case Or:
		return joinOperators(v.Operands, "OR")
	case Not:
		inner, args, err := compileCondition(v.Operand)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("NOT (%s)", inner), args, nil
	case Eq:
		return leaf(v.Name, "="), []interface{}{v.Value}, nil
	case Neq:
		return leaf(v.Name, "!="), []interface{}{v.Value}, nil
	case Gt:
		return compileRange(v.Name, ">", v.Value)
	case Gte:
		return compileRange(v.Name, ">=", v.Value)
	case Lt:
		return compileRange(v.Name, "<", v.Value)
	case Lte:
		return compileRange(v.Name, "<=", v.Value)
	case Like:
		return compileRange(v.Name, "LIKE", v.Value)
	case In:
		placeholders := strings.TrimRight(strings.Repeat("?,", len(v.Values)), ",")
		args := make([]interface{}, len(v.Values))
		for i, val := range v.Values {
			args[i] = val
		}
		return fmt.Sprintf("%s IN (%s)", tagPath(v.Name), placeholders), args, nil
	default:
		return "", nil, errors.ErrInvalidFormat.WithMessage("unknown operator")
	}
}

// compileRange handles Gt/Gte/Lt/Lte/Like, which are legal only against
// plain-text tag names (a leading ~).
func compileRange(name, sqlOp, value string) (string, []interface{}, error) {
	if !isPlainText(name) {
		return "", nil, errors.ErrEncryptedTagComparison.WithDetail("tag", name)
	}
	return leaf(name, sqlOp), []interface{}{value}, nil
}

func leaf(name, sqlOp string) string {
	return fmt.Sprintf("%s %s ?", tagPath(name), sqlOp)
}

func tagPath(name string) string {
	return fmt.Sprintf(`JSON_UNQUOTE(JSON_EXTRACT(tags, '$."%s"'))`, name)
}

func joinOperators(ops []Operator, connective string) (string, []interface{}, error) {
	if len(ops) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(ops))
	var args []interface{}
	for _, op := range ops {
		part, partArgs, err := compileCondition(op)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, part)
		args = append(args, partArgs...)
	}

	return "(" + strings.Join(parts, " "+connective+" ") + ")", args, nil
}
