package config

import "testing"

func TestIndicatorSlotWidth(t *testing.T) {
	if got := IndicatorSlotWidth(); got != 30 {
		t.Errorf("IndicatorSlotWidth: got %v, want 30", got)
	}
}

func TestIndicatorRowOrigin(t *testing.T) {
	tests := []struct {
		name  string
		count int
		wantX float64
	}{
		{name: "4 页", count: 4, wantX: 140},
		{name: "1 页", count: 1, wantX: 185},
		{name: "10 页", count: 10, wantX: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := IndicatorRowOrigin(tt.count, ScreenWidth)
			if x != tt.wantX || y != IndicatorRowTop {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, tt.wantX, IndicatorRowTop)
			}

			// 行居中：左右留白相等
			right := ScreenWidth - (x + float64(tt.count)*IndicatorSlotWidth())
			if right != x {
				t.Errorf("row not centered: left %v right %v", x, right)
			}
		})
	}
}

func TestSkipButtonFitsScreen(t *testing.T) {
	if SkipButtonMarginRight+SkipButtonWidth > ScreenWidth {
		t.Error("skip button wider than screen")
	}
	if SkipButtonCornerRadius*2 > SkipButtonHeight {
		t.Error("corner radius larger than half the button height")
	}
}
