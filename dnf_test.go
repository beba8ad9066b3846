package pagecursor

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func Test_predicate_toGORMExpression(t *testing.T) {
	timeNow := time.Now().UTC()
	timeNowStr, _ := timeNow.MarshalText()

	tests := []struct {
		name    string
		pred    predicate
		wantSQL string
		wantVar any
	}{
		{"string less than", predicate{Column: "name", Operator: OperatorLT, Value: "abc"}, "name < ?", "abc"},
		{"timestamp greater than", predicate{Column: "created_at", Operator: OperatorGT, Value: timeNow}, "created_at > ?", timeNow},
		{"timestamp text becomes timestamp", predicate{Column: "created_at", Operator: OperatorGT, Value: timeNowStr}, "created_at > ?", timeNow},
		{"timestamp string becomes timestamp", predicate{Column: "created_at", Operator: OperatorGT, Value: string(timeNowStr)}, "created_at > ?", timeNow},
		{"integer less than", predicate{Column: "id", Operator: OperatorLT, Value: 10}, "id < ?", 10},
		{"equality", predicate{Column: "id", Operator: operatorEq, Value: 10}, "id = ?", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := tt.pred.toGORMExpression().(clause.Expr)
			require.True(t, ok)
			require.Equal(t, tt.wantSQL, expr.SQL)
			require.Len(t, expr.Vars, 1)
			require.Equal(t, tt.wantVar, expr.Vars[0])
		})
	}
}

func Test_andGroup_toGORMExpression(t *testing.T) {
	require.Nil(t, andGroup{}.toGORMExpression())

	single := andGroup{{Column: "id", Operator: OperatorGT, Value: 5}}.toGORMExpression()
	require.IsType(t, clause.Expr{}, single)

	multi := andGroup{
		{Column: "id", Operator: OperatorGT, Value: 5},
		{Column: "name", Operator: OperatorGT, Value: "a"},
	}.toGORMExpression()
	require.IsType(t, clause.AndConditions{}, multi)
}

func Test_dnf_toGORMExpression(t *testing.T) {
	require.Nil(t, dnf{}.toGORMExpression())
	require.Nil(t, dnf{{}, {}}.toGORMExpression())

	expr := dnf{
		{{Column: "id", Operator: OperatorGT, Value: 5}},
		{{Column: "id", Operator: operatorEq, Value: 5}, {Column: "name", Operator: OperatorGT, Value: "a"}},
	}.toGORMExpression()
	require.IsType(t, clause.OrConditions{}, expr)
}

func Test_dnf_toSQLClause(t *testing.T) {
	timeNow := time.Now().UTC()
	timeNowStr, _ := timeNow.MarshalText()

	tests := []struct {
		name     string
		form     dnf
		wantSQL  string
		wantVals []driver.Value
	}{
		{
			name:     "single predicate",
			form:     dnf{{{Column: "id", Operator: OperatorGT, Value: 5}}},
			wantSQL:  "((id > ?))",
			wantVals: []driver.Value{5},
		},
		{
			name: "several groups",
			form: dnf{
				{{Column: "id", Operator: OperatorGT, Value: 5}, {Column: "name", Operator: OperatorLT, Value: "abc"}},
				{{Column: "id", Operator: OperatorGT, Value: 10}},
			},
			wantSQL:  "((id > ? AND name < ?) OR (id > ?))",
			wantVals: []driver.Value{5, "abc", 10},
		},
		{
			name: "timestamp conversion",
			form: dnf{
				{{Column: "created_at", Operator: OperatorGT, Value: timeNowStr}, {Column: "price", Operator: OperatorLT, Value: 99.99}},
			},
			wantSQL:  "((created_at > ? AND price < ?))",
			wantVals: []driver.Value{timeNow, 99.99},
		},
		{
			name:     "empty",
			form:     dnf{},
			wantSQL:  "TRUE",
			wantVals: nil,
		},
		{
			name:     "empty groups are skipped",
			form:     dnf{{}, {{Column: "id", Operator: OperatorGT, Value: 5}}, {}},
			wantSQL:  "((id > ?))",
			wantVals: []driver.Value{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotVals := tt.form.toSQLClause()

			require.Equal(t, tt.wantSQL, gotSQL)
			require.Len(t, gotVals, len(tt.wantVals))
			for i, wantVal := range tt.wantVals {
				require.Equal(t, wantVal, gotVals[i], "value %d", i)
			}
		})
	}
}
