package views

import "testing"

func TestPaginator_CursorFollowsPages(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Fatalf("TotalPages() = %d, want 3", p.TotalPages())
	}

	for range 3 {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("cursor %d page %d, want 3 and 2", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("VisibleRange() = %d, %d, want 3, 6", start, end)
	}

	if !p.NextPage() || p.Cursor() != 6 {
		t.Errorf("NextPage() cursor = %d, want 6", p.Cursor())
	}
	if p.NextPage() {
		t.Error("NextPage() on last page should fail")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("VisibleRange() = %d, %d, want 6, 7", start, end)
	}

	if !p.PrevPage() || p.Cursor() != 3 {
		t.Errorf("PrevPage() cursor = %d, want 3", p.Cursor())
	}
}

func TestPaginator_RemoveAtCursor(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(3)
	p.SetCursor(2)

	if got := p.RemoveAtCursor(); got != 1 {
		t.Errorf("RemoveAtCursor() = %d, want 1", got)
	}
	if p.CurrentPage() != 1 || p.TotalPages() != 1 {
		t.Errorf("page %d of %d, want 1 of 1", p.CurrentPage(), p.TotalPages())
	}

	p.RemoveAtCursor()
	p.RemoveAtCursor()
	if p.Total() != 0 || p.Cursor() != 0 {
		t.Errorf("total %d cursor %d, want 0 and 0", p.Total(), p.Cursor())
	}
	if p.CursorDown() || p.CursorUp() {
		t.Error("cursor should not move in an empty list")
	}
}
