package queries

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination(page, size, fallbackSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = fallbackSize
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Pagination{Page: page, PageSize: size}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Info(total int64) PageInfo {
	pages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}
