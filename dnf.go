package pagecursor

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

type (
	// predicate is the condition "Column Operator Value".
	predicate struct {
		Column   string
		Value    any
		Operator Operator
	}

	// andGroup is a list of predicates joined by AND.
	andGroup []predicate

	// dnf is a disjunctive normal form: andGroups joined by OR.
	//
	//	dnf = (A11 AND A12) OR (A21 AND A22 AND A23)
	dnf []andGroup
)

// toGORMExpression renders the predicate as "Column Operator ?".
func (p predicate) toGORMExpression() clause.Expression {
	sqlClause, arg := p.toSQLClause()

	return clause.Expr{
		SQL:  sqlClause,
		Vars: []any{arg},
	}
}

func (p predicate) toSQLClause() (string, driver.Value) {
	return fmt.Sprintf("%s %s ?", p.Column, p.Operator), restoreValue(p.Value)
}

// restoreValue turns RFC 3339 strings back into time.Time. Values go through
// JSON inside a token, so timestamps come back as text.
func restoreValue(v any) any {
	parse := func(raw []byte) any {
		var ts time.Time
		if err := ts.UnmarshalText(raw); err == nil {
			return ts
		}

		return v
	}

	switch vt := v.(type) {
	case string:
		return parse([]byte(vt))
	case []byte:
		return parse(vt)
	default:
		return v
	}
}

func (g andGroup) toGORMExpression() clause.Expression {
	exprs := make([]clause.Expression, 0, len(g))
	for _, p := range g {
		exprs = append(exprs, p.toGORMExpression())
	}

	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return clause.And(exprs...)
	}
}

// toSQLClause renders the group as "(P1 AND P2 ...)".
func (g andGroup) toSQLClause() (string, []driver.Value) {
	if len(g) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(g))
	values := make([]driver.Value, 0, len(g))
	for _, p := range g {
		part, value := p.toSQLClause()
		parts = append(parts, part)
		values = append(values, value)
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, " AND ")), values
}

func (d dnf) toGORMExpression() clause.Expression {
	exprs := make([]clause.Expression, 0, len(d))
	for _, g := range d {
		if expr := g.toGORMExpression(); expr != nil {
			exprs = append(exprs, expr)
		}
	}

	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return clause.Or(exprs...)
	}
}

// toSQLClause renders the form as "((G1) OR (G2) ...)", or "TRUE" when empty.
//
// Example:
//
//	{{id < 10}, {id = 10, name < "abc"}} -> ("((id < ?) OR (id = ? AND name < ?))", [10, 10, "abc"])
func (d dnf) toSQLClause() (string, []driver.Value) {
	parts := make([]string, 0, len(d))
	values := make([]driver.Value, 0, len(d))

	for _, g := range d {
		part, groupValues := g.toSQLClause()
		if part == "" {
			continue
		}

		parts = append(parts, part)
		values = append(values, groupValues...)
	}

	if len(parts) == 0 {
		return "TRUE", nil
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, " OR ")), values
}
