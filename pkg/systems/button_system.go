package systems

import (
	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮（跳过、继续、指示器）的悬停、按下状态和点击分发
//
// 职责：
//   - 根据指针位置更新按钮状态（Normal/Hovered/Clicked）
//   - 对一次点击做命中测试并触发 OnClick 回调
//   - 不可见或禁用的按钮不响应交互
//
// 点击由 GestureSystem 判定（未被接管的手势才算点击），本系统不直接读取输入设备。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// UpdateHover 根据指针位置更新按钮状态
// pressed 为 true 且指针在按钮内时显示按下效果
func (s *ButtonSystem) UpdateHover(pointerX, pointerY float64, pressed bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		switch {
		case !button.Visible || !s.isPointInButton(pointerX, pointerY, pos, button):
			button.State = components.UINormal
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
}

// HandleTap 对一次点击做命中测试，命中时触发回调
// 按下点和释放点必须落在同一个按钮内才算命中；
// 多个按钮重叠时取最后创建（绘制在最上层）的按钮
// 返回是否命中了按钮
func (s *ButtonSystem) HandleTap(pressX, pressY, x, y float64) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for i := len(entities) - 1; i >= 0; i-- {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entities[i])
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entities[i])

		if !button.Visible || !button.Enabled {
			continue
		}
		if !s.isPointInButton(x, y, pos, button) {
			continue
		}
		if !s.isPointInButton(pressX, pressY, pos, button) {
			// 在按钮外按下、滑入后释放，不算点击
			return false
		}

		button.State = components.UIHovered
		if button.OnClick != nil {
			button.OnClick()
		}
		return true
	}
	return false
}

// isPointInButton 检测点是否在按钮范围内
func (s *ButtonSystem) isPointInButton(x, y float64, pos *components.PositionComponent, button *components.ButtonComponent) bool {
	return x >= pos.X &&
		x <= pos.X+button.Width &&
		y >= pos.Y &&
		y <= pos.Y+button.Height
}
