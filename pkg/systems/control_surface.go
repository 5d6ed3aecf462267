package systems

import (
	"log"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
)

// ControlSurface 控制区域：跳过按钮、继续按钮和指示器行
//
// 纯输入层，所有导航都委托给 PageController：
//   - 跳过：第 1 ~ N-1 页显示，调用 JumpToLast
//   - 继续：仅第 N 页显示，调用外部提供的完成回调（可为 nil）
//   - 指示器 i：调用 JumpTo(i)
type ControlSurface struct {
	entityManager *ecs.EntityManager
	controller    *PageController
	onComplete    func()

	skipEntity        ecs.EntityID
	continueEntity    ecs.EntityID
	indicatorEntities []ecs.EntityID
}

// NewControlSurface 创建控制区域的所有实体，并按当前页设置按钮可见性
func NewControlSurface(em *ecs.EntityManager, controller *PageController, screenWidth float64, onComplete func()) *ControlSurface {
	cs := &ControlSurface{
		entityManager:     em,
		controller:        controller,
		onComplete:        onComplete,
		indicatorEntities: make([]ecs.EntityID, 0, controller.PageCount()),
	}

	buttonX := screenWidth - config.SkipButtonMarginRight - config.SkipButtonWidth
	cs.skipEntity = cs.createButton(components.ButtonKindSkip, "Skip", buttonX, cs.TapSkip)
	cs.continueEntity = cs.createButton(components.ButtonKindContinue, "Continue", buttonX, cs.TapContinue)

	originX, originY := config.IndicatorRowOrigin(controller.PageCount(), screenWidth)
	for i := 1; i <= controller.PageCount(); i++ {
		cs.indicatorEntities = append(cs.indicatorEntities, cs.createIndicator(i, originX, originY))
	}

	cs.OnPageChanged(controller.Page())
	log.Printf("[ControlSurface] Created %d indicators", len(cs.indicatorEntities))
	return cs
}

func (cs *ControlSurface) createButton(kind components.ButtonKind, label string, x float64, onClick func()) ecs.EntityID {
	id := cs.entityManager.CreateEntity()
	ecs.AddComponent(cs.entityManager, id, &components.PositionComponent{
		X: x,
		Y: config.SkipButtonMarginTop,
	})
	ecs.AddComponent(cs.entityManager, id, &components.ButtonComponent{
		Kind:    kind,
		Text:    label,
		Width:   config.SkipButtonWidth,
		Height:  config.SkipButtonHeight,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	return id
}

func (cs *ControlSurface) createIndicator(index int, originX, originY float64) ecs.EntityID {
	slot := config.IndicatorSlotWidth()
	id := cs.entityManager.CreateEntity()
	ecs.AddComponent(cs.entityManager, id, &components.PositionComponent{
		X: originX + float64(index-1)*slot,
		Y: originY,
	})
	ecs.AddComponent(cs.entityManager, id, &components.ButtonComponent{
		Kind:    components.ButtonKindIndicator,
		Width:   slot,
		Height:  slot,
		State:   components.UINormal,
		Enabled: true,
		Visible: true,
		OnClick: func() { cs.TapIndicator(index) },
	})
	ecs.AddComponent(cs.entityManager, id, &components.IndicatorComponent{Index: index})
	return id
}

// OnPageChanged 实现 PageObserver：切换跳过/继续按钮的可见性
func (cs *ControlSurface) OnPageChanged(page int) {
	last := page == cs.controller.PageCount()
	cs.setVisible(cs.skipEntity, !last)
	cs.setVisible(cs.continueEntity, last)
}

func (cs *ControlSurface) setVisible(id ecs.EntityID, visible bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](cs.entityManager, id); ok {
		button.Visible = visible
		if !visible {
			button.State = components.UINormal
		}
	}
}

// SkipVisible 跳过按钮当前是否显示
func (cs *ControlSurface) SkipVisible() bool {
	return cs.isVisible(cs.skipEntity)
}

// ContinueVisible 继续按钮当前是否显示
func (cs *ControlSurface) ContinueVisible() bool {
	return cs.isVisible(cs.continueEntity)
}

func (cs *ControlSurface) isVisible(id ecs.EntityID) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](cs.entityManager, id)
	return ok && button.Visible
}

// IndicatorEntities 返回指示器实体（下标 0 对应第 1 页）
func (cs *ControlSurface) IndicatorEntities() []ecs.EntityID {
	return cs.indicatorEntities
}

// TapSkip 点击跳过按钮；按钮不可见时忽略
func (cs *ControlSurface) TapSkip() {
	if !cs.SkipVisible() {
		return
	}
	log.Printf("[ControlSurface] Skip clicked")
	cs.controller.JumpToLast()
}

// TapContinue 点击继续按钮；未提供完成回调时为空操作
func (cs *ControlSurface) TapContinue() {
	if !cs.ContinueVisible() {
		return
	}
	log.Printf("[ControlSurface] Continue clicked")
	if cs.onComplete != nil {
		cs.onComplete()
	}
}

// TapIndicator 点击第 i 个指示器
func (cs *ControlSurface) TapIndicator(i int) error {
	if err := cs.controller.JumpTo(i); err != nil {
		log.Printf("[ControlSurface] Indicator tap rejected: %v", err)
		return err
	}
	return nil
}

// Dispose 销毁所有控制区域实体
func (cs *ControlSurface) Dispose() {
	cs.entityManager.DestroyEntity(cs.skipEntity)
	cs.entityManager.DestroyEntity(cs.continueEntity)
	for _, id := range cs.indicatorEntities {
		cs.entityManager.DestroyEntity(id)
	}
	cs.entityManager.RemoveMarkedEntities()
	cs.indicatorEntities = nil
	cs.onComplete = nil
}
