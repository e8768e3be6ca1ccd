// Package querybuilder composes parameterized postgres statements with
// $n placeholders. It covers the handful of shapes the repositories
// need (filtered selects, batch inserts with conflict suffixes,
// soft-delete updates) rather than general SQL.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// stmt accumulates SQL text together with its bind arguments. The
// placeholder counter is shared so nested fragments keep numbering
// contiguous.
type stmt struct {
	sql  strings.Builder
	args []any
	next int
}

func newStmt() *stmt {
	return &stmt{next: 1}
}

func (s *stmt) raw(text string) {
	s.sql.WriteString(text)
}

func (s *stmt) bind(value any) {
	s.sql.WriteString("$" + strconv.Itoa(s.next))
	s.args = append(s.args, value)
	s.next++
}

// bindExpr copies expr into the statement, replacing each ? with the
// next $n placeholder. Surplus ? marks are copied through untouched.
func (s *stmt) bindExpr(expr string, exprArgs []any) {
	if len(exprArgs) == 0 {
		s.sql.WriteString(expr)
		return
	}

	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || used >= len(exprArgs) {
			s.sql.WriteByte(expr[i])
			continue
		}
		s.bind(exprArgs[used])
		used++
	}
}

// Condition is one WHERE predicate. Conditions combine with AND.
type Condition interface {
	render(s *stmt)
}

type eqCond struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCond{column: column, value: value}
}

func (c eqCond) render(s *stmt) {
	s.raw(c.column)
	s.raw(" = ")
	s.bind(c.value)
}

type inCond struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCond{column: column, values: values}
}

func (c inCond) render(s *stmt) {
	// An empty IN list matches nothing.
	if len(c.values) == 0 {
		s.raw("1=0")
		return
	}

	s.raw(c.column)
	s.raw(" IN (")
	for i, v := range c.values {
		if i > 0 {
			s.raw(", ")
		}
		s.bind(v)
	}
	s.raw(")")
}

type isNullCond struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCond{column: column}
}

func (c isNullCond) render(s *stmt) {
	s.raw(c.column)
	s.raw(" IS NULL")
}

type exprCond struct {
	expr string
	args []any
}

// Expr is an escape hatch for predicates the typed conditions cannot
// express. Use ? for each argument.
func Expr(expr string, args ...any) Condition {
	return exprCond{expr: expr, args: args}
}

func (c exprCond) render(s *stmt) {
	s.bindExpr(c.expr, c.args)
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	s := newStmt()
	s.raw("SELECT ")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(" FROM ")
	s.raw(b.table)
	renderWhere(s, b.where)
	if len(b.orderBy) > 0 {
		s.raw(" ORDER BY ")
		s.raw(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.raw(" LIMIT ")
		s.raw(strconv.Itoa(b.limit))
	}

	return s.sql.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row. Call repeatedly for multi-row inserts.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as an ON CONFLICT clause or
// RETURNING list.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	s := newStmt()
	s.raw("INSERT INTO ")
	s.raw(b.table)
	s.raw(" (")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.raw(", ")
		}
		s.raw("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.raw(", ")
			}
			s.bind(value)
		}
		s.raw(")")
	}

	if b.suffix != "" {
		s.raw(" ")
		s.raw(b.suffix)
	}

	return s.sql.String(), s.args, nil
}

type setClause struct {
	column   string
	value    any
	expr     string
	exprArgs []any
	isExpr   bool
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression, e.g. NOW() for soft deletes.
// Use ? for each argument.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: expr, exprArgs: args, isExpr: true})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	s := newStmt()
	s.raw("UPDATE ")
	s.raw(b.table)
	s.raw(" SET ")
	for i, set := range b.sets {
		if i > 0 {
			s.raw(", ")
		}
		s.raw(set.column)
		s.raw(" = ")
		if set.isExpr {
			s.bindExpr(set.expr, set.exprArgs)
			continue
		}
		s.bind(set.value)
	}
	renderWhere(s, b.where)
	if b.suffix != "" {
		s.raw(" ")
		s.raw(b.suffix)
	}

	return s.sql.String(), s.args, nil
}

func renderWhere(s *stmt, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.raw(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.raw(" AND ")
		}
		c.render(s)
	}
}
