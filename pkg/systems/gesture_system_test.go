package systems

import (
	"testing"

	"github.com/decker502/onboarding/pkg/utils"
)

func TestGestureSystemClaimDuringMove(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	s.Press(200, 300)
	if s.State() != GesturePressed {
		t.Fatalf("after Press: state %v, want GesturePressed", s.State())
	}

	if s.Move(190, 300) {
		t.Error("dx=-10 should not claim")
	}
	if !s.Move(175, 300) {
		t.Error("dx=-25 should claim")
	}

	// 一旦接管，回到阈值以内也保持接管
	if !s.Move(195, 300) {
		t.Error("claim should persist for the rest of the gesture")
	}

	result := s.Release(175, 300)
	if result.Tap || result.Intent != IntentAdvance {
		t.Errorf("Release: got %+v, want Advance", result)
	}
	if s.State() != GestureIdle {
		t.Errorf("after Release: state %v, want GestureIdle", s.State())
	}
}

func TestGestureSystemUnclaimedIsTap(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	s.Press(100, 100)
	s.Move(105, 110)
	result := s.Release(105, 110)

	if !result.Tap {
		t.Fatalf("small movement should be a tap, got %+v", result)
	}
	if result.Intent != IntentNone {
		t.Errorf("tap intent: got %v, want none", result.Intent)
	}
	if result.TapX != 105 || result.TapY != 110 {
		t.Errorf("tap position: got (%v, %v)", result.TapX, result.TapY)
	}
	if result.PressX != 100 || result.PressY != 100 {
		t.Errorf("press position: got (%v, %v)", result.PressX, result.PressY)
	}
}

func TestGestureSystemClaimOnRelease(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	// 没有中间采样的快速滑动
	s.Press(200, 100)
	result := s.Release(200, 250)

	if result.Tap || result.Intent != IntentJumpToLast {
		t.Errorf("fast vertical flick: got %+v, want JumpToLast", result)
	}
}

func TestGestureSystemClaimedButNone(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	// dy=90 超过接管阈值 80，但未达到跳转阈值 100
	s.Press(200, 100)
	s.Move(200, 190)
	result := s.Release(200, 190)

	if result.Tap {
		t.Error("claimed gesture must not be treated as a tap")
	}
	if result.Intent != IntentNone {
		t.Errorf("intent: got %v, want none", result.Intent)
	}
}

func TestGestureSystemReleaseWithoutPress(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	if s.Move(50, 50) {
		t.Error("Move without Press should not claim")
	}
	result := s.Release(50, 50)
	if result != (GestureResult{}) {
		t.Errorf("Release without Press: got %+v, want zero result", result)
	}
}

func TestGestureSystemUpdateFromDragInfo(t *testing.T) {
	s := NewGestureSystem(newTestClassifier())

	frames := []utils.DragInfo{
		{State: utils.DragStateStarted, StartX: 300, StartY: 400, CurrentX: 300, CurrentY: 400},
		{State: utils.DragStateDragging, StartX: 300, StartY: 400, CurrentX: 290, CurrentY: 400},
		{State: utils.DragStateDragging, StartX: 300, StartY: 400, CurrentX: 260, CurrentY: 402},
	}
	for i, f := range frames {
		if _, ended := s.Update(f); ended {
			t.Fatalf("frame %d: gesture ended early", i)
		}
	}
	if !s.Claimed() {
		t.Fatal("gesture should be claimed after dx=-40")
	}

	result, ended := s.Update(utils.DragInfo{
		State: utils.DragStateEnded, StartX: 300, StartY: 400, CurrentX: 260, CurrentY: 402,
	})
	if !ended {
		t.Fatal("Ended frame should end the gesture")
	}
	if result.Intent != IntentAdvance {
		t.Errorf("intent: got %v, want advance", result.Intent)
	}

	if _, ended := s.Update(utils.DragInfo{State: utils.DragStateNone}); ended {
		t.Error("idle frame should not end a gesture")
	}
}
