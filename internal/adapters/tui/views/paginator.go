package views

import "github.com/charmbracelet/bubbles/paginator"

// Paginator tracks a cursor over a paged list. Page arithmetic is
// delegated to the bubbles paginator; the cursor always stays on the
// visible page.
type Paginator struct {
	pages  paginator.Model
	cursor int
	total  int
}

// NewPaginator creates a paginator showing pageSize rows per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := paginator.New()
	pages.Type = paginator.Arabic
	pages.PerPage = pageSize
	pages.TotalPages = 1
	return &Paginator{pages: pages}
}

// SetTotal sets the number of rows, clamping the cursor
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	if p.total == 0 {
		p.pages.TotalPages = 1
	} else {
		p.pages.SetTotalPages(p.total)
	}
	p.SetCursor(p.cursor)
}

// Total returns the number of rows
func (p *Paginator) Total() int {
	return p.total
}

// Cursor returns the absolute index of the selected row
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor to pos and follows it with the page
func (p *Paginator) SetCursor(pos int) {
	p.cursor = min(max(pos, 0), max(p.total-1, 0))
	p.pages.Page = p.cursor / p.pages.PerPage
}

// CursorUp moves the cursor one row up
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor one row down
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// VisibleRange returns the bounds of the rows on the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pages.GetSliceBounds(p.total)
}

// TotalPages returns the number of pages, at least one
func (p *Paginator) TotalPages() int {
	return p.pages.TotalPages
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.pages.Page + 1
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	if p.pages.OnLastPage() {
		return false
	}
	p.pages.NextPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pages.Page == 0 {
		return false
	}
	p.pages.PrevPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// Reset empties the list
func (p *Paginator) Reset() {
	p.cursor = 0
	p.SetTotal(0)
}

// RemoveAtCursor drops the selected row and returns the new cursor
func (p *Paginator) RemoveAtCursor() int {
	if p.total == 0 {
		return 0
	}
	p.SetTotal(p.total - 1)
	return p.cursor
}
