package game

import "testing"

func TestLoadFontCachesBySize(t *testing.T) {
	rm := NewResourceManager()

	a, err := rm.LoadFont(16)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	b, err := rm.LoadFont(16)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if a != b {
		t.Error("same size should return the cached face")
	}

	c := rm.FontOrNil(30)
	if c == nil || c == a {
		t.Error("different size should return a new face")
	}
	if c.Source != a.Source {
		t.Error("faces should share one font source")
	}
}
