package pagination

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 20
	MaxPageSize      = 200
)

// Normalize applies the listing defaults: page index starts at 1, size defaults to
// DefaultPageSize and is capped at MaxPageSize.
func Normalize(pageIndex, pageSize int) (int, int) {
	if pageIndex < 1 {
		pageIndex = DefaultPageIndex
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageIndex, pageSize
}

// TotalPages is the number of pages needed for total rows.
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
