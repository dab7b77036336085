package domain

// Pagination is the page window embedded by every list filter type.
type Pagination struct {
	Page     int
	PageSize int
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}
