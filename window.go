package pagecursor

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// buildWindow resolves pages [start, end] with at most limit concurrent
// fetches. The result keeps ascending page order whatever the completion
// order. start > end yields an empty window.
func buildWindow[P any](
	ctx context.Context,
	start, end int,
	info PageInfo,
	fetcher PageFetcher[P],
	limit int,
) ([]*PageCursor[P], error) {
	if start > end {
		return []*PageCursor[P]{}, nil
	}

	pages := lo.RangeFrom(start, end-start+1)
	window := make([]*PageCursor[P], len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			cursor, err := buildCursor(gctx, page, info, fetcher)
			if err != nil {
				return err
			}

			window[i] = cursor

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return window, nil
}
