package pagination

import "testing"

func TestDefaults(t *testing.T) {
	var req PageRequest
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected page 1 size 20, got %d/%d", req.Page, req.PageSize)
	}
	if req.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", req.Offset())
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 2, 10, 21)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSlicePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("middle page", func(t *testing.T) {
		resp := SlicePage(items, PageRequest{Page: 2, PageSize: 2})
		if len(resp.Data) != 2 || resp.Data[0] != 3 || resp.Data[1] != 4 {
			t.Errorf("unexpected data %v", resp.Data)
		}
		if resp.TotalItems != 5 || resp.TotalPages != 3 {
			t.Errorf("unexpected totals %d/%d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		resp := SlicePage(items, PageRequest{Page: 3, PageSize: 2})
		if len(resp.Data) != 1 || resp.Data[0] != 5 {
			t.Errorf("unexpected data %v", resp.Data)
		}
	})

	t.Run("past the end", func(t *testing.T) {
		resp := SlicePage(items, PageRequest{Page: 9, PageSize: 2})
		if len(resp.Data) != 0 {
			t.Errorf("expected no data, got %v", resp.Data)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		resp := SlicePage(items, PageRequest{})
		if resp.Page != 1 || resp.PageSize != 20 || len(resp.Data) != 5 {
			t.Errorf("unexpected response %+v", resp)
		}
	})
}
