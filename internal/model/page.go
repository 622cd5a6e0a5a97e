package model

// Pagination constants
const (
	PageSize        = 12
	MaxPageButtons  = 5
	PageWindowLead  = 2 // pages shown before the current one once scrolled
	PageWindowStart = 3 // first page index at which the window starts sliding
)

// PageCount returns the number of pages needed for total recipes
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// PageOffset returns the skip value for a zero-based page
func PageOffset(page int) int {
	if page < 0 {
		page = 0
	}
	return page * PageSize
}

// VisiblePages returns the zero-based page indices that get a button.
// Up to MaxPageButtons are shown; the window starts at 0 while the current
// page is below PageWindowStart and otherwise begins PageWindowLead pages
// before the current one. Indices past the last page are dropped.
func VisiblePages(current, count int) []int {
	if count <= 0 {
		return nil
	}
	n := MaxPageButtons
	if count < n {
		n = count
	}
	start := 0
	if current >= PageWindowStart {
		start = current - PageWindowLead
	}
	pages := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := start + i
		if p >= count {
			break
		}
		pages = append(pages, p)
	}
	return pages
}

// PageRange returns the 1-based first and last item numbers shown on page
// for the "Showing a-b of n" label. Both are 0 when total is 0.
func PageRange(page, total int) (first, last int) {
	if total <= 0 {
		return 0, 0
	}
	first = PageOffset(page) + 1
	last = (page + 1) * PageSize
	if last > total {
		last = total
	}
	if first > last {
		first = last
	}
	return first, last
}

// ClampPage bounds page to [0, PageCount(total)-1]
func ClampPage(page, total int) int {
	count := PageCount(total)
	if page >= count {
		page = count - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}
