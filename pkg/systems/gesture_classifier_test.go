package systems

import (
	"math"
	"testing"

	"github.com/decker502/onboarding/pkg/config"
)

func newTestClassifier() GestureClassifier {
	return NewGestureClassifier(config.DefaultOnboardingConfig().Gesture)
}

func TestShouldClaim(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{name: "no movement", want: false},
		{name: "horizontal at threshold", dx: 20, want: false},
		{name: "horizontal past threshold", dx: 21, want: true},
		{name: "horizontal negative", dx: -25, want: true},
		{name: "vertical at threshold", dy: 80, want: false},
		{name: "vertical past threshold", dy: 81, want: true},
		{name: "vertical negative", dy: -90, want: true},
		{name: "small diagonal", dx: 15, dy: 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ShouldClaim(tt.dx, tt.dy); got != tt.want {
				t.Errorf("ShouldClaim(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name   string
		dx, dy float64
		want   Intent
	}{
		{name: "swipe right retreats", dx: 25, want: IntentRetreat},
		{name: "swipe left advances", dx: -25, want: IntentAdvance},
		{name: "horizontal at threshold is none", dx: 20, want: IntentNone},
		{name: "swipe down jumps to last", dy: 150, want: IntentJumpToLast},
		{name: "swipe up jumps to last", dy: -150, want: IntentJumpToLast},
		{name: "vertical at threshold is none", dy: 100, want: IntentNone},
		{name: "claimed but short vertical", dy: 90, want: IntentNone},
		{name: "horizontal wins over vertical", dx: -30, dy: 200, want: IntentAdvance},
		{name: "horizontal wins over vertical retreat", dx: 30, dy: -200, want: IntentRetreat},
		{name: "zero length", want: IntentNone},
		{name: "NaN is none", dx: math.NaN(), dy: math.NaN(), want: IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

// 分类只依赖 (dx, dy)：反复调用、穿插其他输入，结果不变
func TestClassifyIsPure(t *testing.T) {
	c := newTestClassifier()
	inputs := [][2]float64{{-25, 0}, {0, 150}, {30, 30}, {5, 5}}

	first := make([]Intent, len(inputs))
	for i, in := range inputs {
		first[i] = c.Classify(in[0], in[1])
	}

	for round := 0; round < 3; round++ {
		for i := len(inputs) - 1; i >= 0; i-- {
			in := inputs[i]
			if got := c.Classify(in[0], in[1]); got != first[i] {
				t.Errorf("round %d: Classify(%v, %v) = %v, first call gave %v", round, in[0], in[1], got, first[i])
			}
		}
	}
}

func TestIntentString(t *testing.T) {
	want := map[Intent]string{
		IntentNone:       "none",
		IntentAdvance:    "advance",
		IntentRetreat:    "retreat",
		IntentJumpToLast: "jump-to-last",
	}
	for intent, name := range want {
		if intent.String() != name {
			t.Errorf("Intent(%d).String() = %q, want %q", intent, intent.String(), name)
		}
	}
}
