package pagecursor

import (
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// RawPageQuery is intended for API payloads that follow a page link. Inline it
// into request structs:
//
//	type MyFilter struct {
//	    Paging RawPageQuery `json:",inline"`
//	}
type RawPageQuery struct {
	// Size - number of records per page.
	Size int `json:"size"`
	// Token - the payload string of the followed page cursor. Empty means the
	// first page.
	Token string `json:"token"`
}

// DecodeKeyset converts RawPageQuery into *PageQuery[*KeysetToken].
func (r RawPageQuery) DecodeKeyset(orderBy ...OrderBy) (*PageQuery[*KeysetToken], error) {
	token, err := DecodeKeysetToken(r.Token)
	if err != nil {
		return nil, err
	}

	return NewPageQuery[*KeysetToken]().WithToken(token).WithSubstitutedSort(orderBy...).WithSize(r.Size), nil
}

// DecodeOffset converts RawPageQuery into *PageQuery[*OffsetToken].
func (r RawPageQuery) DecodeOffset(orderBy ...OrderBy) (*PageQuery[*OffsetToken], error) {
	token, err := DecodeOffsetToken(r.Token)
	if err != nil {
		return nil, err
	}

	return NewPageQuery[*OffsetToken]().WithToken(token).WithSubstitutedSort(orderBy...).WithSize(r.Size), nil
}

// PageQuery loads the rows of one page: it applies the ordering, the page
// token and the page size to a gorm query.
type PageQuery[T Token] struct {
	size  int
	token T
	sort  Orderings
}

func NewPageQuery[T Token]() *PageQuery[T] {
	return &PageQuery[T]{size: DefaultPageSize}
}

// WithSize sets the page size, normalized with NormalizePageSize.
func (q *PageQuery[T]) WithSize(size int) *PageQuery[T] {
	if q == nil {
		q = NewPageQuery[T]()
	}

	q.size = NormalizePageSize(size)

	return q
}

func (q *PageQuery[T]) WithToken(token T) *PageQuery[T] {
	if q == nil {
		q = NewPageQuery[T]()
	}

	q.token = token

	return q
}

// WithSubstitutedSort drops previous orderings and applies the provided ones.
func (q *PageQuery[T]) WithSubstitutedSort(orderBy ...OrderBy) *PageQuery[T] {
	if q == nil {
		q = NewPageQuery[T]()
	}

	q.sort = nil

	return q.WithSort(orderBy...)
}

// WithSort appends orderings; a column met again moves to the end with its
// new direction.
func (q *PageQuery[T]) WithSort(orderBy ...OrderBy) *PageQuery[T] {
	if q == nil {
		q = NewPageQuery[T]()
	}

	q.sort = q.sort.merge(orderBy...)

	return q
}

func (q *PageQuery[T]) GetSize() int {
	if q == nil {
		return 0
	}

	return q.size
}

func (q *PageQuery[T]) GetSort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

func (q *PageQuery[T]) GetToken() T {
	if q == nil {
		return lo.Empty[T]()
	}

	return q.token
}

// Paginate applies the page to db. Returns an error if the token does not
// match the ordering.
func (q *PageQuery[T]) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = q.sort.Apply(db)
	db = q.token.Apply(db)

	return db.Limit(q.size), nil
}

func (q *PageQuery[_]) validate() error {
	if q == nil {
		return fmt.Errorf("page query is nil")
	}

	if err := q.sort.validate(); err != nil {
		return err
	}

	return q.token.validate(q.sort)
}
