package catalog

import "lapangin-web/config"

// PageItem is one element of the numbered part of the pagination control.
// Ellipsis items carry no page.
type PageItem struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// PageControl is everything needed to draw first/prev/numbers/next/last.
type PageControl struct {
	Page       int
	TotalPages int
	Items      []PageItem
	PrevPage   int
	NextPage   int
	AtFirst    bool
	AtLast     bool
}

// PageWindow builds the pagination control. It returns nil when there is
// nothing to paginate.
func PageWindow(page, totalPages int) *PageControl {
	if totalPages <= 1 {
		return nil
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	window := config.PAGINATION_WINDOW
	start := max(1, page-window/2)
	end := min(totalPages, start+window-1)
	if end-start < window-1 {
		start = max(1, end-window+1)
	}

	pc := &PageControl{
		Page:       page,
		TotalPages: totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		AtFirst:    page == 1,
		AtLast:     page == totalPages,
	}

	if start > 1 {
		pc.Items = append(pc.Items, PageItem{Page: 1})
		if start > 2 {
			pc.Items = append(pc.Items, PageItem{Ellipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		pc.Items = append(pc.Items, PageItem{Page: i, Current: i == page})
	}
	if end < totalPages {
		if end < totalPages-1 {
			pc.Items = append(pc.Items, PageItem{Ellipsis: true})
		}
		pc.Items = append(pc.Items, PageItem{Page: totalPages})
	}
	return pc
}
