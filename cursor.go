package pagecursor

import "context"

// PageFetcher produces the caller-defined payload attached to a page.
// Implementations may be called concurrently for different pages.
type PageFetcher[P any] interface {
	FetchPage(ctx context.Context, page int) (P, error)
}

// FetchPageFunc adapts a plain function to PageFetcher.
type FetchPageFunc[P any] func(ctx context.Context, page int) (P, error)

func (f FetchPageFunc[P]) FetchPage(ctx context.Context, page int) (P, error) {
	return f(ctx, page)
}

// PageCursor describes one linkable page.
type PageCursor[P any] struct {
	Page      int      `json:"page"`
	PageInfo  PageInfo `json:"pageInfo"`
	IsCurrent bool     `json:"isCurrent"`
	Payload   P        `json:"payload"`
}

// PageCursorSet is the result of a plan. Around is never nil.
type PageCursorSet[P any] struct {
	First    *PageCursor[P]   `json:"first,omitempty"`
	Previous *PageCursor[P]   `json:"previous,omitempty"`
	Around   []*PageCursor[P] `json:"around"`
	Next     *PageCursor[P]   `json:"next,omitempty"`
	Last     *PageCursor[P]   `json:"last,omitempty"`
}

// AroundPages returns the page numbers of the Around window.
func (s *PageCursorSet[P]) AroundPages() []int {
	if s == nil {
		return nil
	}

	pages := make([]int, 0, len(s.Around))
	for _, c := range s.Around {
		pages = append(pages, c.Page)
	}

	return pages
}

var _ PageFetcher[struct{}] = FetchPageFunc[struct{}](nil)
