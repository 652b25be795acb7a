package models

// Pagination is the envelope the listing endpoint returns next to the data.
type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	TotalCount *int `json:"total_count,omitempty"`
}

// Count returns total_count when the envelope carries a positive one.
func (p Pagination) Count() (int, bool) {
	if p.TotalCount == nil || *p.TotalCount <= 0 {
		return 0, false
	}
	return *p.TotalCount, true
}

// LocalPagination derives an envelope for a list that is paginated locally.
func LocalPagination(page, pageSize, total int) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}
	count := total
	return Pagination{Page: page, TotalPages: pages, TotalCount: &count}
}
