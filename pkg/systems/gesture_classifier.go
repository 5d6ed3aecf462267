package systems

import (
	"math"

	"github.com/decker502/onboarding/pkg/config"
)

// Intent 手势分类结果：一次完整手势对应的导航意图
type Intent int

const (
	// IntentNone 不导航
	IntentNone Intent = iota
	// IntentAdvance 下一页
	IntentAdvance
	// IntentRetreat 上一页
	IntentRetreat
	// IntentJumpToLast 跳到最后一页
	IntentJumpToLast
)

// String 返回意图名称（日志用）
func (i Intent) String() string {
	switch i {
	case IntentAdvance:
		return "advance"
	case IntentRetreat:
		return "retreat"
	case IntentJumpToLast:
		return "jump-to-last"
	default:
		return "none"
	}
}

// GestureClassifier 手势分类器
//
// 拆成两个互相独立的纯函数：
//   - ShouldClaim: 拖动过程中持续判断是否接管这次手势
//   - Classify: 松手时根据累计位移给出导航意图
//
// 两者都只依赖 (dx, dy)，与历史无关。
type GestureClassifier struct {
	thresholds config.GestureThresholds
}

// NewGestureClassifier 创建手势分类器
func NewGestureClassifier(thresholds config.GestureThresholds) GestureClassifier {
	return GestureClassifier{thresholds: thresholds}
}

// ShouldClaim 判断拖动是否已经足以被视为翻页手势
// 条件：|dx| > ClaimDX 或 |dy| > ClaimDY
func (c GestureClassifier) ShouldClaim(dx, dy float64) bool {
	return math.Abs(dx) > c.thresholds.ClaimDX || math.Abs(dy) > c.thresholds.ClaimDY
}

// Classify 对一次已接管的手势做松手分类，按优先级：
//  1. dx > SwipeDX  -> 上一页
//  2. dx < -SwipeDX -> 下一页
//  3. |dy| > SwipeDY -> 跳到最后一页
//  4. 其余          -> 不导航
//
// 水平条件优先于垂直条件。
func (c GestureClassifier) Classify(dx, dy float64) Intent {
	switch {
	case dx > c.thresholds.SwipeDX:
		return IntentRetreat
	case dx < -c.thresholds.SwipeDX:
		return IntentAdvance
	case math.Abs(dy) > c.thresholds.SwipeDY:
		return IntentJumpToLast
	default:
		return IntentNone
	}
}
