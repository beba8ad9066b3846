package pagecursor

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPageOutOfRange is returned by KeysetFetcher for pages past the last row.
var ErrPageOutOfRange = errors.New("page is beyond the end of the dataset")

// KeysetFetcher resolves the KeysetToken that starts each page. Page 1 gets
// an empty token; page n loads the last row of page n-1 under the ordering and
// builds the token from its getter values.
//
// The base query is never mutated, so one fetcher may serve concurrent plans.
type KeysetFetcher[T any] struct {
	db        *gorm.DB
	pageSize  int
	orderings Orderings
	getters   Getters[T]
}

func NewKeysetFetcher[T any](db *gorm.DB, pageSize int, orderings Orderings, getters Getters[T]) *KeysetFetcher[T] {
	return &KeysetFetcher[T]{
		db:        db,
		pageSize:  pageSize,
		orderings: orderings,
		getters:   getters,
	}
}

// FetchPage - implements PageFetcher.
func (f *KeysetFetcher[T]) FetchPage(ctx context.Context, page int) (*KeysetToken, error) {
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch keyset token: %w", err)
	}
	if page <= 0 {
		return nil, &ParamError{Name: "page", Value: int64(page)}
	}

	if page == 1 {
		return NewKeysetToken(), nil
	}

	var rows []T
	err := f.orderings.Apply(f.db.WithContext(ctx)).
		Offset((page-1)*f.pageSize - 1).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("cannot load last row of page %d: %w", page-1, err)
	}
	if len(rows) == 0 {
		return nil, ErrPageOutOfRange
	}

	return KeysetTokenAfter(f.orderings, rows[0], f.getters)
}

func (f *KeysetFetcher[T]) validate() error {
	if f == nil || f.db == nil {
		return fmt.Errorf("keyset fetcher has no database")
	}
	if f.pageSize <= 0 {
		return &ParamError{Name: "pageSize", Value: int64(f.pageSize)}
	}

	return f.orderings.validate()
}

var _ PageFetcher[*KeysetToken] = (*KeysetFetcher[struct{}])(nil)

// CountTotal returns the number of rows matched by db, the TotalCount input
// of a PageRequest.
func CountTotal(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count records: %w", err)
	}

	return total, nil
}
