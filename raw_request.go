package pagecursor

import "github.com/samber/lo"

// RawPageRequest is the API payload form of a PageRequest. Unlike Plan, which
// rejects bad input, Decode clamps every field to a usable value.
type RawPageRequest struct {
	// Page - current page, 1-based. Defaults to 1.
	Page int `json:"page"`
	// Size - records per page. Defaults to DefaultPageSize, capped at MaxPageSize.
	Size int `json:"size"`
	// Buttons - number of page buttons the client renders. Defaults to DefaultButtonCount.
	Buttons int `json:"buttons"`
}

// Decode builds a PageRequest for a collection of totalCount records.
func (r RawPageRequest) Decode(totalCount int64) PageRequest {
	return PageRequest{
		CurrentPage: lo.Ternary(r.Page > 0, r.Page, 1),
		PageSize:    NormalizePageSize(r.Size),
		ButtonCount: lo.Ternary(r.Buttons > 0, r.Buttons, DefaultButtonCount),
		TotalCount:  max(totalCount, 0),
	}
}
