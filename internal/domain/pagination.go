package domain

// Page is a 1-based page request
type Page struct {
	Page  int
	Limit int
}

// Pagination limits
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps the page and limit into usable values
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset is the number of rows to skip
func (p Page) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Pagination describes a page of results
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination builds the response metadata for p over total rows
func NewPagination(p Page, total int) Pagination {
	n := p.Normalize()
	pages := 0
	if total > 0 {
		pages = (total + n.Limit - 1) / n.Limit
	}
	return Pagination{Page: n.Page, Limit: n.Limit, Total: total, TotalPages: pages}
}

// PagedResult pairs a page of rows with its pagination metadata
type PagedResult[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
