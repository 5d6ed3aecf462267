package systems

import (
	"image/color"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CarouselRenderSystem 页面渲染系统
// 把 CarouselFrame 中的位移映射为屏幕平移，按页序绘制（后面的页在上层）
type CarouselRenderSystem struct {
	pages        []config.PageConfig
	colors       []color.RGBA
	width        float64
	height       float64
	titleFace    *text.GoTextFace
	subtitleFace *text.GoTextFace
	subtitles    [][]string // 按页面宽度换行后的副标题
}

// NewCarouselRenderSystem 创建页面渲染系统
// 字体可为 nil，此时使用调试文字绘制标题
func NewCarouselRenderSystem(pages []config.PageConfig, width, height float64, titleFace, subtitleFace *text.GoTextFace) *CarouselRenderSystem {
	colors := make([]color.RGBA, len(pages))
	subtitles := make([][]string, len(pages))
	for i, p := range pages {
		colors[i] = p.RGBA()
		if p.Subtitle != "" {
			subtitles[i] = utils.WrapText(p.Subtitle, subtitleFace, width-2*config.PageTextMarginX)
		}
	}
	return &CarouselRenderSystem{
		pages:        pages,
		colors:       colors,
		width:        width,
		height:       height,
		titleFace:    titleFace,
		subtitleFace: subtitleFace,
		subtitles:    subtitles,
	}
}

// Draw 绘制所有页面
func (s *CarouselRenderSystem) Draw(screen *ebiten.Image, frame *CarouselFrame) {
	for i := 1; i <= len(s.pages) && i <= len(frame.Placements); i++ {
		tx, ty := frame.Translation(i)
		if !s.onScreen(tx, ty) {
			continue
		}
		s.drawPage(screen, i, tx, ty)
	}
}

// onScreen 页面与屏幕是否有交集
func (s *CarouselRenderSystem) onScreen(tx, ty float64) bool {
	pageHeight := s.height + config.ScreenPaddingTop
	return tx < s.width && tx+s.width > 0 && ty < s.height && ty+pageHeight > 0
}

func (s *CarouselRenderSystem) drawPage(screen *ebiten.Image, i int, tx, ty float64) {
	page := s.pages[i-1]

	vector.DrawFilledRect(screen,
		float32(tx), float32(ty),
		float32(s.width), float32(s.height+config.ScreenPaddingTop),
		s.colors[i-1], false)

	centerX := tx + s.width/2
	centerY := ty + s.height/2

	if s.titleFace == nil {
		ebitenutil.DebugPrintAt(screen, page.Title, int(centerX)-len(page.Title)*3, int(centerY))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY-config.PageTitleFontSize/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, page.Title, s.titleFace, op)

	if s.subtitleFace == nil {
		return
	}
	y := centerY + config.PageTitleFontSize
	for _, line := range s.subtitles[i-1] {
		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX, y)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
		text.Draw(screen, line, s.subtitleFace, op)
		y += config.PageSubtitleLineHeight
	}
}
