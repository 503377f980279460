package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"second page", 2, 20, 20, 20},
		{"custom size", 3, 10, 20, 10},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -5, 10, 0, 10},
		{"zero size uses default", 1, 0, 0, DefaultPageSize},
		{"oversized uses default", 2, 500, 20, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("expected current page 2, got %d", info.CurrentPage)
	}
	if info.TotalItems != 45 {
		t.Errorf("expected 45 total items, got %d", info.TotalItems)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("expected an empty result to report 1 page, got %d", empty.TotalPages)
	}

	clamped := NewPaginationInfo(10, 9, 20)
	if clamped.CurrentPage != 1 {
		t.Errorf("expected page past the end to clamp to 1, got %d", clamped.CurrentPage)
	}
}
