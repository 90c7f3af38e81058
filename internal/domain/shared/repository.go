package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderDir string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 50,
		OrderDir: "asc",
	}
}

// Normalized clamps paging values into a usable range
func (f Filter) Normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 500 {
		f.PageSize = 50
	}
	if f.OrderDir != "desc" {
		f.OrderDir = "asc"
	}
	return f
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	n := f.Normalized()
	return (n.Page - 1) * n.PageSize
}
