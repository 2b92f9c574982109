package pagination

import "testing"

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	if p.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", p.Page)
	}
	if p.PerPage != 100 {
		t.Fatalf("expected per_page clamped to 100, got %d", p.PerPage)
	}

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	if p.PerPage != 15 {
		t.Fatalf("expected default per_page 15, got %d", p.PerPage)
	}
	if p.Offset() != 30 {
		t.Fatalf("expected offset 30, got %d", p.Offset())
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 35)
	if pg.TotalPages != 4 {
		t.Fatalf("expected 4 pages, got %d", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatal("page 2 of 4 must have both neighbors")
	}

	last := NewPagination(4, 10, 35)
	if last.HasNext {
		t.Fatal("last page must not have a next page")
	}
}
