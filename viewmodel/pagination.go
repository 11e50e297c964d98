package viewmodel

// DefaultPageSize is the news-listing page size.
const DefaultPageSize = 5

// maxPagesShown bounds the visible page-number window around the current page.
const maxPagesShown = 5

// TotalPages returns ceil(total/pageSize). Zero items means zero pages; the
// listing renders no controls rather than a "page 1 of 0" artifact.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Offset converts a 1-based page number to a slice offset. Pages below 1
// clamp to the first page; a page past the end simply yields an offset whose
// slice comes back empty, which the listing renders as an empty-page state.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// PageWindow is the bounded run of page numbers shown around the current
// page, plus the first/last shortcuts and ellipsis gaps when truncated.
type PageWindow struct {
	Pages       []int `json:"pages"`
	Current     int   `json:"current"`
	Total       int   `json:"total"`
	ShowFirst   bool  `json:"showFirst"`
	LeadingGap  bool  `json:"leadingGap"`
	ShowLast    bool  `json:"showLast"`
	TrailingGap bool  `json:"trailingGap"`
	HasPrev     bool  `json:"hasPrev"`
	HasNext     bool  `json:"hasNext"`
}

// NewPageWindow computes the visible window for the given current page. With
// one page or fewer there is nothing to paginate and the window is empty.
// An out-of-range current page is clamped into [1, totalPages].
func NewPageWindow(current, totalPages int) PageWindow {
	if totalPages <= 1 {
		return PageWindow{}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - maxPagesShown/2
	if start < 1 {
		start = 1
	}
	end := start + maxPagesShown - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxPagesShown && totalPages > maxPagesShown {
		start = end - maxPagesShown + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return PageWindow{
		Pages:       pages,
		Current:     current,
		Total:       totalPages,
		ShowFirst:   start > 1,
		LeadingGap:  start > 2,
		ShowLast:    end < totalPages,
		TrailingGap: end < totalPages-1,
		HasPrev:     current > 1,
		HasNext:     current < totalPages,
	}
}
