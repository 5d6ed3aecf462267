package systems

import (
	"log"

	"github.com/decker502/onboarding/pkg/utils"
)

// GestureState 单次手势的生命周期状态（按下 -> 移动 -> 释放），不跨手势保留
type GestureState int

const (
	// GestureIdle 没有进行中的手势
	GestureIdle GestureState = iota
	// GesturePressed 已按下，位移尚未达到接管阈值
	GesturePressed
	// GestureClaimed 已接管为翻页手势，松手时会被分类
	GestureClaimed
)

// GestureResult 一次手势结束时的结果
//
// 已接管的手势给出 Intent（可能为 IntentNone）；
// 未接管的手势视为一次点击，Tap 为 true，由按钮系统用按下点和释放点做命中测试。
type GestureResult struct {
	Intent Intent
	Tap    bool
	PressX float64
	PressY float64
	TapX   float64
	TapY   float64
}

// GestureSystem 手势系统
//
// 职责：
//   - 跟踪单个指针的按下/移动/释放
//   - 移动过程中用 ShouldClaim 持续判断是否接管
//   - 释放时对已接管的手势调用 Classify
type GestureSystem struct {
	classifier GestureClassifier

	state          GestureState
	startX, startY float64
	lastX, lastY   float64
}

// NewGestureSystem 创建手势系统
func NewGestureSystem(classifier GestureClassifier) *GestureSystem {
	return &GestureSystem{classifier: classifier}
}

// State 返回当前手势状态
func (s *GestureSystem) State() GestureState {
	return s.state
}

// Claimed 当前手势是否已被接管
func (s *GestureSystem) Claimed() bool {
	return s.state == GestureClaimed
}

// Press 指针按下，开始一次新手势（覆盖任何未完成的手势）
func (s *GestureSystem) Press(x, y float64) {
	s.state = GesturePressed
	s.startX, s.startY = x, y
	s.lastX, s.lastY = x, y
}

// Move 指针移动，x/y 为当前位置；返回本次手势是否已被接管
func (s *GestureSystem) Move(x, y float64) bool {
	if s.state == GestureIdle {
		return false
	}

	s.lastX, s.lastY = x, y
	if s.state == GesturePressed && s.classifier.ShouldClaim(x-s.startX, y-s.startY) {
		s.state = GestureClaimed
		log.Printf("[GestureSystem] Claimed gesture at dx=%.0f dy=%.0f", x-s.startX, y-s.startY)
	}
	return s.state == GestureClaimed
}

// Release 指针释放，结束手势并返回结果
func (s *GestureSystem) Release(x, y float64) GestureResult {
	if s.state == GestureIdle {
		return GestureResult{}
	}

	// 释放位置也参与接管判断（快速滑动时可能没有中间采样）
	s.Move(x, y)
	dx, dy := x-s.startX, y-s.startY
	startX, startY := s.startX, s.startY

	var result GestureResult
	if s.state == GestureClaimed {
		result.Intent = s.classifier.Classify(dx, dy)
		log.Printf("[GestureSystem] Released dx=%.0f dy=%.0f -> %s", dx, dy, result.Intent)
	} else {
		result = GestureResult{Tap: true, PressX: startX, PressY: startY, TapX: x, TapY: y}
	}

	s.Cancel()
	return result
}

// Cancel 丢弃进行中的手势
func (s *GestureSystem) Cancel() {
	s.state = GestureIdle
	s.startX, s.startY = 0, 0
	s.lastX, s.lastY = 0, 0
}

// Update 用拖拽管理器本帧的状态驱动手势
// 返回值 ended 为 true 时表示本帧手势结束，result 有效
func (s *GestureSystem) Update(info utils.DragInfo) (result GestureResult, ended bool) {
	switch info.State {
	case utils.DragStateStarted:
		s.Press(float64(info.StartX), float64(info.StartY))

	case utils.DragStateDragging:
		if s.state == GestureIdle {
			s.Press(float64(info.StartX), float64(info.StartY))
		}
		s.Move(float64(info.CurrentX), float64(info.CurrentY))

	case utils.DragStateEnded:
		if s.state == GestureIdle {
			s.Press(float64(info.StartX), float64(info.StartY))
		}
		return s.Release(float64(info.CurrentX), float64(info.CurrentY)), true
	}

	return GestureResult{}, false
}
