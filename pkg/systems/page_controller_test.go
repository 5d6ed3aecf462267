package systems

import (
	"errors"
	"testing"
)

// recordingObserver 记录收到的页码通知
type recordingObserver struct {
	pages []int
}

func (r *recordingObserver) OnPageChanged(page int) {
	r.pages = append(r.pages, page)
}

func TestNewPageController(t *testing.T) {
	pc := NewPageController(4)
	if pc.Page() != 1 {
		t.Errorf("initial page: got %d, want 1", pc.Page())
	}
	if pc.PageCount() != 4 {
		t.Errorf("PageCount: got %d, want 4", pc.PageCount())
	}

	if NewPageController(0).PageCount() != 1 {
		t.Error("page count below 1 should be raised to 1")
	}
}

func TestPageControllerBoundaries(t *testing.T) {
	pc := NewPageController(4)
	obs := &recordingObserver{}
	pc.AddObserver(obs)

	// 第一页后退为空操作
	pc.Retreat()
	if pc.Page() != 1 {
		t.Errorf("Retreat at 1: got %d, want 1", pc.Page())
	}

	pc.JumpToLast()
	if pc.Page() != 4 || !pc.IsLast() {
		t.Errorf("JumpToLast: got %d, want 4", pc.Page())
	}

	// 最后一页前进为空操作
	pc.Advance()
	pc.Advance()
	if pc.Page() != 4 {
		t.Errorf("Advance at N: got %d, want 4", pc.Page())
	}

	// 只有实际变化（1 -> 4）才通知
	if len(obs.pages) != 1 || obs.pages[0] != 4 {
		t.Errorf("notifications: got %v, want [4]", obs.pages)
	}
}

func TestPageControllerRoundTrip(t *testing.T) {
	const n = 6
	for start := 2; start < n; start++ {
		pc := NewPageController(n)
		if err := pc.JumpTo(start); err != nil {
			t.Fatalf("JumpTo(%d): %v", start, err)
		}

		pc.Advance()
		pc.Retreat()

		if pc.Page() != start {
			t.Errorf("Advance+Retreat from %d: got %d", start, pc.Page())
		}
	}
}

func TestPageControllerJumpTo(t *testing.T) {
	tests := []struct {
		name     string
		k        int
		wantPage int
		wantErr  bool
	}{
		{name: "first", k: 1, wantPage: 1},
		{name: "interior", k: 3, wantPage: 3},
		{name: "last", k: 4, wantPage: 4},
		{name: "zero rejected", k: 0, wantPage: 2, wantErr: true},
		{name: "negative rejected", k: -3, wantPage: 2, wantErr: true},
		{name: "past end rejected", k: 5, wantPage: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := NewPageController(4)
			pc.Advance() // 从第 2 页开始

			err := pc.JumpTo(tt.k)
			if tt.wantErr {
				if !errors.Is(err, ErrPageOutOfRange) {
					t.Errorf("JumpTo(%d): got %v, want ErrPageOutOfRange", tt.k, err)
				}
			} else if err != nil {
				t.Errorf("JumpTo(%d): unexpected error %v", tt.k, err)
			}

			if pc.Page() != tt.wantPage {
				t.Errorf("JumpTo(%d): page %d, want %d", tt.k, pc.Page(), tt.wantPage)
			}
		})
	}
}

func TestPageControllerApply(t *testing.T) {
	pc := NewPageController(4)

	steps := []struct {
		intent Intent
		want   int
	}{
		{IntentAdvance, 2},
		{IntentAdvance, 3},
		{IntentRetreat, 2},
		{IntentNone, 2},
		{IntentJumpToLast, 4},
		{IntentRetreat, 3},
	}

	for i, step := range steps {
		pc.Apply(step.intent)
		if pc.Page() != step.want {
			t.Errorf("step %d (%v): page %d, want %d", i, step.intent, pc.Page(), step.want)
		}
	}
}

func TestPageControllerObserverOrder(t *testing.T) {
	pc := NewPageController(3)

	var calls []string
	pc.AddObserver(PageObserverFunc(func(page int) { calls = append(calls, "first") }))
	pc.AddObserver(PageObserverFunc(func(page int) {
		// 通知是同步的：观察者看到的已经是新页码
		if pc.Page() != page {
			t.Errorf("observer saw page %d, controller has %d", page, pc.Page())
		}
		calls = append(calls, "second")
	}))

	pc.Advance()

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("observer calls: got %v", calls)
	}

	// 跳到当前页不通知
	calls = nil
	if err := pc.JumpTo(2); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Errorf("JumpTo current page should not notify, got %v", calls)
	}
}
