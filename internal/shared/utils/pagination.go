package utils

// PageMeta describes the position of a page within an ordered result set.
type PageMeta struct {
	PageIndex   int   `json:"page_index"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// NewPageMeta computes pagination metadata for a 1-based page index.
func NewPageMeta(totalCount int64, pageIndex, pageSize int) PageMeta {
	totalPages := TotalPages(totalCount, pageSize)
	return PageMeta{
		PageIndex:   pageIndex,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: pageIndex > 1 && totalCount > 0,
		HasNext:     pageIndex < totalPages,
	}
}

// PageOffset returns the LIMIT/OFFSET window for a 1-based page index.
// Out-of-range indices produce an offset past the end, which the database
// resolves to an empty result set.
func PageOffset(pageIndex, pageSize int) (limit, offset int) {
	if pageIndex < 1 {
		// Past-the-end sentinel so invalid pages come back empty
		return pageSize, 1 << 30
	}
	return pageSize, (pageIndex - 1) * pageSize
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
