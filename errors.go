package pagecursor

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every *ParamError.
var ErrInvalidParameter = errors.New("invalid pagination parameter")

// ParamError reports a pagination parameter outside its domain.
type ParamError struct {
	Name  string
	Value int64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %d", ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// FetchError is returned when the injected PageFetcher fails for a page.
// The whole planning call is aborted; no partial PageCursorSet is returned.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
