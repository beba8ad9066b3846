package pagecursor

import "github.com/samber/lo"

// PageRequest holds the planner input.
//
// CurrentPage is not checked against the number of pages: a page beyond the
// end simply gets no Next link.
type PageRequest struct {
	CurrentPage int
	PageSize    int
	// ButtonCount is the size of the window a client renders. With a value of
	// 1 the Around window stays empty unless the whole collection fits in it;
	// only First, Last, Previous and Next are produced.
	ButtonCount int
	TotalCount  int64
}

// PageInfo is the pagination metadata shared by every cursor of a plan.
type PageInfo struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// ComputeTotalPages returns ceil(totalCount / pageSize). pageSize must be positive.
func ComputeTotalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}

	size := int64(pageSize)

	return int(totalCount/size + lo.Ternary[int64](totalCount%size != 0, 1, 0))
}

func (r PageRequest) validate() error {
	switch {
	case r.CurrentPage <= 0:
		return &ParamError{Name: "currentPage", Value: int64(r.CurrentPage)}
	case r.PageSize <= 0:
		return &ParamError{Name: "pageSize", Value: int64(r.PageSize)}
	case r.ButtonCount <= 0:
		return &ParamError{Name: "buttonCount", Value: int64(r.ButtonCount)}
	case r.TotalCount < 0:
		return &ParamError{Name: "totalCount", Value: r.TotalCount}
	}

	return nil
}

func (r PageRequest) pageInfo() PageInfo {
	return PageInfo{
		CurrentPage: r.CurrentPage,
		PageSize:    r.PageSize,
		TotalPages:  ComputeTotalPages(r.TotalCount, r.PageSize),
	}
}
