package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees", nil)

	p := ParseParams(r, 10)

	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.Limit != 10 {
		t.Errorf("Limit = %d, want 10", p.Limit)
	}
	if p.SortBy != "" || p.SortOrder != "" {
		t.Errorf("expected empty sort params, got %q %q", p.SortBy, p.SortOrder)
	}
}

func TestParseParams_Values(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees?page=3&limit=25&sortBy=full_name&sortOrder=ASC", nil)

	p := ParseParams(r, 10)

	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
	if p.Limit != 25 {
		t.Errorf("Limit = %d, want 25", p.Limit)
	}
	if p.SortBy != "full_name" {
		t.Errorf("SortBy = %q, want full_name", p.SortBy)
	}
	if p.SortOrder != "asc" {
		t.Errorf("SortOrder = %q, want asc", p.SortOrder)
	}
}

func TestParseParams_InvalidFallsBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees?page=-2&limit=abc&sortOrder=sideways", nil)

	p := ParseParams(r, 10)

	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.Limit != 10 {
		t.Errorf("Limit = %d, want 10", p.Limit)
	}
	if p.SortOrder != "" {
		t.Errorf("SortOrder = %q, want empty", p.SortOrder)
	}
}

func TestParams_Offset(t *testing.T) {
	cases := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}
	for _, c := range cases {
		p := Params{Page: c.page, Limit: c.limit}
		if got := p.Offset(); got != c.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", c.page, c.limit, got, c.want)
		}
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 25)

	if meta.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", meta.CurrentPage)
	}
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", meta.TotalPages)
	}
	if meta.Total != 25 {
		t.Errorf("Total = %d, want 25", meta.Total)
	}
	if !meta.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if !meta.HasPrevPage {
		t.Error("HasPrevPage = false, want true")
	}
}

func TestNewMeta_Edges(t *testing.T) {
	first := NewMeta(1, 10, 5)
	if first.TotalPages != 1 || first.HasNextPage || first.HasPrevPage {
		t.Errorf("unexpected meta for single page: %+v", first)
	}

	empty := NewMeta(1, 10, 0)
	if empty.TotalPages != 0 || empty.HasNextPage || empty.HasPrevPage {
		t.Errorf("unexpected meta for empty result: %+v", empty)
	}

	last := NewMeta(3, 10, 25)
	if last.HasNextPage {
		t.Error("HasNextPage on last page = true, want false")
	}
	if !last.HasPrevPage {
		t.Error("HasPrevPage on last page = false, want true")
	}
}
