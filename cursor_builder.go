package pagecursor

import "context"

// buildCursor resolves the payload of a single page. FetchPage is called
// exactly once; a failure (including a cancelled context) becomes a *FetchError.
func buildCursor[P any](ctx context.Context, page int, info PageInfo, fetcher PageFetcher[P]) (*PageCursor[P], error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}

	payload, err := fetcher.FetchPage(ctx, page)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}

	return &PageCursor[P]{
		Page:      page,
		PageInfo:  info,
		IsCurrent: page == info.CurrentPage,
		Payload:   payload,
	}, nil
}
