package pagecursor

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction is the sort direction of an ordering column.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

// ForOperator returns the keyset operator that moves forward along d.
func (d Direction) ForOperator() Operator {
	switch d {
	case DirectionASC:
		return OperatorGT
	case DirectionDESC:
		return OperatorLT
	default:
		panic(fmt.Errorf("cannot map direction '%s' to operator", d))
	}
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps public sort aliases to column names, e.g. to qualify
	// columns that would otherwise be ambiguous in a join.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Column names end up verbatim in ORDER BY and WHERE clauses.
	if o.Column == "" || !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL renders the orderings as "a ASC, b DESC".
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderings.ToSQL())
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

// Apply adds the ORDER BY clause to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("empty ordering list")
	}

	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// merge appends orderBy to o; a column met again replaces its earlier entry.
func (o Orderings) merge(orderBy ...OrderBy) Orderings {
	for _, next := range orderBy {
		o = lo.Reject(o, func(prev OrderBy, _ int) bool {
			return prev.Column == next.Column
		})
		o = append(o, next)
	}

	return o
}

// ParseSort builds Orderings from strings like "created_at desc". Aliases are
// resolved through columnMapping; an unknown alias yields an error naming the
// closest known one.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		parts := strings.Fields(stringOrdering)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", stringOrdering)
		}

		columnName := columnMapping[parts[0]]
		if columnName == "" {
			return nil, fmt.Errorf("invalid column alias. closest: '%s'", closestAlias(parts[0], aliases))
		}

		direction := Direction(strings.ToUpper(parts[1]))
		if !direction.Valid() {
			return nil, fmt.Errorf("invalid ordering direction '%s'", parts[1])
		}

		ret = append(ret, OrderBy{
			Column:    columnName,
			Direction: direction,
		})
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, alias := range dataSet {
		dist := levenshtein([]rune(alias), []rune(input))
		if dist < minDist || (dist == minDist && alias < closest) {
			minDist = dist
			closest = alias
		}
	}

	return closest
}
