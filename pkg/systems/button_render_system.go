package systems

import (
	"image/color"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonFillColor 跳过/继续按钮背景色（purple）
var ButtonFillColor = color.RGBA{R: 128, G: 0, B: 128, A: 255}

// ButtonPressedAlpha 按下时的不透明度
const ButtonPressedAlpha = 0.5

// ButtonRenderSystem 按钮渲染系统
// 只绘制跳过/继续按钮；指示器由 IndicatorRenderSystem 绘制
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	face          *text.GoTextFace

	// 圆角背景只绘制一次，之后按状态调整透明度复用
	background *ebiten.Image
}

// NewButtonRenderSystem 创建按钮渲染系统，face 可为 nil
func NewButtonRenderSystem(em *ecs.EntityManager, face *text.GoTextFace) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		face:          face,
	}
}

// ButtonAlpha 返回按钮在给定状态下的不透明度
func ButtonAlpha(state components.UIState) float32 {
	if state == components.UIClicked {
		return ButtonPressedAlpha
	}
	return 1
}

// Draw 绘制所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Visible || button.Kind == components.ButtonKindIndicator {
			continue
		}
		s.drawButton(screen, button, pos)
	}
}

func (s *ButtonRenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, pos *components.PositionComponent) {
	alpha := ButtonAlpha(button.State)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(s.backgroundImage(button.Width, button.Height), op)

	centerX := pos.X + button.Width/2
	centerY := pos.Y + button.Height/2

	if s.face == nil {
		ebitenutil.DebugPrintAt(screen, button.Text, int(pos.X+config.SkipButtonCornerRadius), int(centerY)-8)
		return
	}

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(centerX, centerY)
	textOp.PrimaryAlign = text.AlignCenter
	textOp.SecondaryAlign = text.AlignCenter
	textOp.ColorScale.ScaleWithColor(color.White)
	textOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, button.Text, s.face, textOp)
}

// backgroundImage 返回圆角矩形背景（按钮尺寸变化时重建）
func (s *ButtonRenderSystem) backgroundImage(width, height float64) *ebiten.Image {
	w, h := int(width), int(height)
	if s.background != nil {
		b := s.background.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return s.background
		}
		s.background.Deallocate()
	}

	img := ebiten.NewImage(w, h)
	r := float32(config.SkipButtonCornerRadius)
	fw, fh := float32(w), float32(h)

	vector.DrawFilledRect(img, r, 0, fw-2*r, fh, ButtonFillColor, false)
	vector.DrawFilledRect(img, 0, r, fw, fh-2*r, ButtonFillColor, false)
	vector.DrawFilledCircle(img, r, r, r, ButtonFillColor, true)
	vector.DrawFilledCircle(img, fw-r, r, r, ButtonFillColor, true)
	vector.DrawFilledCircle(img, r, fh-r, r, ButtonFillColor, true)
	vector.DrawFilledCircle(img, fw-r, fh-r, r, ButtonFillColor, true)

	s.background = img
	return img
}

// Dispose 释放缓存的背景图
func (s *ButtonRenderSystem) Dispose() {
	if s.background != nil {
		s.background.Deallocate()
		s.background = nil
	}
}
