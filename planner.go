package pagecursor

import (
	"context"
	"fmt"
)

type windowKind int

const (
	windowEmpty windowKind = iota
	windowShort
	windowNearStart
	windowNearEnd
	windowMiddle
)

func (k windowKind) String() string {
	switch k {
	case windowEmpty:
		return "empty"
	case windowShort:
		return "short"
	case windowNearStart:
		return "near start"
	case windowNearEnd:
		return "near end"
	case windowMiddle:
		return "middle"
	default:
		return fmt.Sprintf("windowKind(%d)", int(k))
	}
}

// window is the page selection of one planning case. Pages [start, end] form
// Around; withFirst/withLast ask for the collection edges outside of it.
type window struct {
	kind      windowKind
	start     int
	end       int
	withFirst bool
	withLast  bool
}

// planWindow classifies the pagination state. buttonCount must be odd.
//
// The cases are checked in order: a short collection must win over the
// near-start/near-end cases, otherwise the window would be wider than the
// collection itself.
func planWindow(currentPage, totalPages, buttonCount int) window {
	half := buttonCount / 2

	switch {
	case totalPages == 0:
		return window{kind: windowEmpty, start: 1, end: 0}
	case totalPages <= buttonCount:
		return window{kind: windowShort, start: 1, end: totalPages}
	case currentPage <= half+1:
		return window{kind: windowNearStart, start: 1, end: buttonCount - 1, withLast: true}
	case currentPage >= totalPages-half:
		return window{kind: windowNearEnd, start: totalPages - buttonCount + 2, end: totalPages, withFirst: true}
	default:
		offset := (buttonCount - 3) / 2
		return window{
			kind:      windowMiddle,
			start:     currentPage - offset,
			end:       currentPage + offset,
			withFirst: true,
			withLast:  true,
		}
	}
}

// planAdjacent returns the previous and next page numbers, 0 meaning absent.
func planAdjacent(currentPage, totalPages int) (previous, next int) {
	if currentPage > 1 && totalPages > 1 {
		previous = currentPage - 1
	}
	if totalPages > currentPage {
		next = currentPage + 1
	}

	return previous, next
}

// Planner computes PageCursorSets. Configure it with the With* methods before
// sharing it; Plan itself keeps no state between calls.
type Planner[P any] struct {
	concurrency int
	warn        WarnFunc
}

func NewPlanner[P any]() *Planner[P] {
	return &Planner[P]{
		concurrency: DefaultConcurrency,
		warn:        noopWarn,
	}
}

// WithConcurrency bounds the number of simultaneous fetches for the Around
// window. Values below 1 are treated as 1 (sequential fetching).
func (p *Planner[P]) WithConcurrency(n int) *Planner[P] {
	if p == nil {
		p = NewPlanner[P]()
	}

	p.concurrency = max(n, 1)

	return p
}

// WithWarnFunc sets the diagnostic sink. A nil func disables diagnostics.
func (p *Planner[P]) WithWarnFunc(warn WarnFunc) *Planner[P] {
	if p == nil {
		p = NewPlanner[P]()
	}

	if warn == nil {
		warn = noopWarn
	}
	p.warn = warn

	return p
}

// Plan builds the page cursors for req, resolving every selected page through
// fetcher exactly once: the Around window concurrently, then the remaining
// edge and adjacent pages in order. Cursors are shared between slots that
// point at the same page and must not be mutated. An even ButtonCount is bumped to the next odd value and reported
// through the WarnFunc.
//
// Any fetch failure aborts the call with a *FetchError; invalid input yields an
// error matching ErrInvalidParameter.
func (p *Planner[P]) Plan(ctx context.Context, req PageRequest, fetcher PageFetcher[P]) (*PageCursorSet[P], error) {
	if p == nil {
		p = NewPlanner[P]()
	}

	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("cannot plan page cursors: %w", err)
	}
	if fetcher == nil {
		return nil, fmt.Errorf("cannot plan page cursors: nil fetcher")
	}

	buttonCount, adjusted := NormalizeButtonCount(req.ButtonCount)
	if adjusted {
		p.warn(buttonCountWarning(req.ButtonCount, buttonCount))
	}

	info := req.pageInfo()
	w := planWindow(req.CurrentPage, info.TotalPages, buttonCount)

	around, err := buildWindow(ctx, w.start, w.end, info, fetcher, p.concurrency)
	if err != nil {
		return nil, err
	}

	set := &PageCursorSet[P]{Around: around}
	if w.kind == windowEmpty {
		return set, nil
	}

	previous, next := planAdjacent(req.CurrentPage, info.TotalPages)

	// Each distinct page is fetched once; slots pointing at the same page
	// share the cursor.
	resolved := make(map[int]*PageCursor[P], len(around)+4)
	for _, c := range around {
		resolved[c.Page] = c
	}

	slots := []struct {
		enabled bool
		page    int
		dst     **PageCursor[P]
	}{
		{w.withFirst, 1, &set.First},
		{w.withLast, info.TotalPages, &set.Last},
		{previous > 0, previous, &set.Previous},
		{next > 0, next, &set.Next},
	}

	for _, slot := range slots {
		if !slot.enabled {
			continue
		}

		cursor, ok := resolved[slot.page]
		if !ok {
			cursor, err = buildCursor(ctx, slot.page, info, fetcher)
			if err != nil {
				return nil, err
			}
			resolved[slot.page] = cursor
		}
		*slot.dst = cursor
	}

	return set, nil
}

// Plan is a shortcut for NewPlanner[P]().Plan.
func Plan[P any](ctx context.Context, req PageRequest, fetcher PageFetcher[P]) (*PageCursorSet[P], error) {
	return NewPlanner[P]().Plan(ctx, req, fetcher)
}
