package systems

import (
	"image/color"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 指示器颜色：当前页白色，其余灰色
var (
	IndicatorColorInactive = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	IndicatorColorActive   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// IndicatorRenderSystem 指示器渲染系统
// 圆点半径随缩放变化，颜色按缩放在 [未强调, 强调] 区间内的位置从灰色过渡到白色
type IndicatorRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewIndicatorRenderSystem 创建指示器渲染系统
func NewIndicatorRenderSystem(em *ecs.EntityManager) *IndicatorRenderSystem {
	return &IndicatorRenderSystem{entityManager: em}
}

// IndicatorColor 计算缩放值对应的颜色
func IndicatorColor(scale, deemphasized, emphasized float64) color.RGBA {
	t := utils.EaseOutQuad(utils.Clamp01(utils.InverseLerp(deemphasized, emphasized, scale)))
	return utils.BlendColor(IndicatorColorInactive, IndicatorColorActive, t)
}

// Draw 绘制所有指示器
func (s *IndicatorRenderSystem) Draw(screen *ebiten.Image, frame *CarouselFrame, deemphasized, emphasized float64) {
	entities := ecs.GetEntitiesWith3[*components.IndicatorComponent, *components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		indicator, _ := ecs.GetComponent[*components.IndicatorComponent](s.entityManager, id)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Visible || indicator.Index < 1 || indicator.Index > len(frame.Emphases) {
			continue
		}

		scale := frame.Emphases[indicator.Index-1]
		cx := pos.X + button.Width/2
		cy := pos.Y + button.Height/2
		radius := config.IndicatorDiameter / 2 * scale

		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius),
			IndicatorColor(scale, deemphasized, emphasized), true)
	}
}
