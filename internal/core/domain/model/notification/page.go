package notification

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Page is a 1-based page request. Out-of-range input is clamped, never rejected.
type Page struct {
	number int
	limit  int
}

// NewPage clamps number to >= 1 and limit to [1, MaxPageSize]; a limit of 0
// selects DefaultPageSize.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit < 1:
		limit = 1
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	return Page{number: number, limit: limit}
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Limit() int {
	return p.limit
}

func (p Page) Offset() int {
	return (p.number - 1) * p.limit
}

// TotalPages is ceil(total/limit), and at least 1 so an empty feed still has a page.
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.limit <= 0 {
		return 1
	}
	return int((total + int64(p.limit) - 1) / int64(p.limit))
}
