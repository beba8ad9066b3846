package pagecursor

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// KeysetToken marks the first row of a page by the values of the ordering
// columns of the row right before it.
//
// IMPORTANT:
// The ordering used to build the token MUST end with a unique column,
// otherwise rows sharing the same key would be skipped or repeated.
//
// A token is a list of (column, operator, value) triples:
//
//	[(C1, O1, V1), (C2, O2, V2)... (Cn, On, Vn)]
type KeysetToken struct {
	elements []TokenElement
}

func NewKeysetToken(elements ...TokenElement) *KeysetToken {
	return &KeysetToken{
		elements: elements,
	}
}

// DecodeKeysetToken parses a token produced by KeysetToken.String.
// An empty string decodes to a nil token (start of the dataset).
func DecodeKeysetToken(b64String string) (*KeysetToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	jsonData, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded keyset token: %w", err)
	}

	var elems []TokenElement
	if err = json.Unmarshal(jsonData, &elems); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json encoded keyset token: %w", err)
	}

	return &KeysetToken{
		elements: elems,
	}, nil
}

// String - implements fmt.Stringer.
func (t *KeysetToken) String() string {
	if t.IsEmpty() {
		return ""
	}

	raw, err := json.Marshal(t.elements)
	if err != nil {
		panic(fmt.Errorf("cannot marshal keyset token value: %w", err))
	}

	var buf bytes.Buffer
	if err = json.Compact(&buf, raw); err != nil {
		panic(fmt.Errorf("cannot compact keyset token value: %w", err))
	}

	return _encoder.EncodeToString(buf.Bytes())
}

// MarshalText lets tokens travel as plain strings in JSON payloads.
func (t *KeysetToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsEmpty - implements Token.
func (t *KeysetToken) IsEmpty() bool {
	return t == nil || len(t.elements) == 0
}

// GetElements returns the compressed conditions of the token. They are not a
// usable filter on their own; Apply and ToSQL expand them first.
func (t *KeysetToken) GetElements() []TokenElement {
	if t == nil {
		return nil
	}

	return t.elements
}

func (t *KeysetToken) WithElements(elements []TokenElement) *KeysetToken {
	if t == nil {
		t = new(KeysetToken)
	}

	t.elements = elements

	return t
}

// Apply - implements Token. Adds the keyset condition to a gorm query.
func (t *KeysetToken) Apply(db *gorm.DB) *gorm.DB {
	exp := t.toDNF().toGORMExpression()
	if exp == nil {
		return db
	}

	return db.Clauses(exp)
}

// ToSQL returns the keyset condition as an SQL fragment with "?" placeholders.
//
// Usage:
//
//	where, args := token.ToSQL()
//	query := fmt.Sprintf("SELECT * FROM table WHERE %s", where)
func (t *KeysetToken) ToSQL() (string, []driver.Value) {
	if t.IsEmpty() {
		return "TRUE", nil
	}

	return t.toDNF().toSQLClause()
}

// toDNF inflates the token into a filter. For
//
//	[(C1, O1, V1), (C2, O2, V2)]
//
// the result is
//
//	(C1 O1 V1) OR (C1 = V1 AND C2 O2 V2)
func (t *KeysetToken) toDNF() dnf {
	if t.IsEmpty() {
		return nil
	}

	ret := make(dnf, 0, len(t.elements))
	for i := range t.elements {
		group := lo.Map(t.elements[:i], func(item TokenElement, _ int) predicate {
			return item.equality()
		})
		group = append(group, predicate(t.elements[i]))

		ret = append(ret, group)
	}

	return ret
}

// validate - implements Token.
func (t *KeysetToken) validate(orderings Orderings) error {
	if t.IsEmpty() {
		return nil
	}

	if len(t.elements) != len(orderings) {
		return fmt.Errorf("keyset token column number mismatch")
	}

	for i, elem := range t.elements {
		orderBy := orderings[i]

		if elem.Column != orderBy.Column {
			return fmt.Errorf("unexpected keyset token column '%s'", elem.Column)
		}

		if !elem.Operator.Valid() {
			return fmt.Errorf("invalid keyset token operator '%s'", elem.Operator)
		} else if elem.Operator.ForOrdering() != orderBy.Direction {
			return fmt.Errorf("unexpected keyset token operator '%s'", elem.Operator)
		}
	}

	return nil
}

var (
	_ Token        = (*KeysetToken)(nil)
	_ fmt.Stringer = (*KeysetToken)(nil)
)

// TokenElement is one (column, operator, value) triple of a KeysetToken.
type TokenElement struct {
	Column   string   `json:"c"`
	Value    any      `json:"v"`
	Operator Operator `json:"o"`
}

func (e TokenElement) equality() predicate {
	return predicate{
		Column:   e.Column,
		Value:    e.Value,
		Operator: operatorEq,
	}
}

// Getters maps ordering columns to value extractors of a model. List every
// column the keyset ordering uses:
//
//	pagecursor.Getters[models.User]{
//		"id":         func(u models.User) any { return u.ID },
//		"created_at": func(u models.User) any { return u.CreatedAt },
//	}
type Getters[T any] map[string]func(T) any

// KeysetTokenAfter builds the token of the page that starts right after row.
func KeysetTokenAfter[T any](orderings Orderings, row T, getters Getters[T]) (*KeysetToken, error) {
	if err := orderings.validate(); err != nil {
		return nil, fmt.Errorf("cannot build keyset token: %w", err)
	}

	ret := &KeysetToken{elements: make([]TokenElement, 0, len(orderings))}
	for _, orderBy := range orderings {
		getter, ok := getters[orderBy.Column]
		if !ok {
			return nil, fmt.Errorf("cannot find getter for column '%s' met in ordering", orderBy.Column)
		}

		ret.elements = append(ret.elements, TokenElement{
			Column:   orderBy.Column,
			Value:    getter(row),
			Operator: orderBy.Direction.ForOperator(),
		})
	}

	return ret, nil
}
