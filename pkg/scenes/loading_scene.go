package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 加载指示器参数
const (
	loadingDotCount   = 3
	loadingDotRadius  = 8.0
	loadingDotSpacing = 28.0
	loadingDotPeriod  = 0.9 // 每个圆点一次完整脉动的时长（秒）
)

var loadingDotColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// LoadingScene 加载转场
//
// 持有加载标志：显示 loadingDuration 秒的加载指示器，
// 结束后清除标志并通过 SceneManager 切换到引导页（此时才挂载轮播）。
type LoadingScene struct {
	sceneManager *game.SceneManager
	textFace     *text.GoTextFace

	duration    float64
	elapsedTime float64
	loading     bool
}

// NewLoadingScene creates a new loading scene.
// duration <= 0 时在第一次 Update 中立即完成。
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, duration float64) *LoadingScene {
	var face *text.GoTextFace
	if rm != nil {
		face = rm.FontOrNil(config.PageSubtitleFontSize)
	}

	log.Printf("[LoadingScene] Loading for %.2fs", duration)
	return &LoadingScene{
		sceneManager: sm,
		textFace:     face,
		duration:     duration,
		loading:      true,
	}
}

// Update 推进加载计时，到时后切换到引导页
func (s *LoadingScene) Update(deltaTime float64) {
	if !s.loading {
		return
	}

	s.elapsedTime += deltaTime
	if s.elapsedTime < s.duration {
		return
	}

	s.loading = false
	log.Printf("[LoadingScene] Loading complete after %.2fs", s.elapsedTime)
	if s.sceneManager != nil {
		s.sceneManager.SwitchToNamed(SceneOnboarding)
	}
}

// Loading 加载标志
func (s *LoadingScene) Loading() bool {
	return s.loading
}

// Progress 返回加载进度 0.0 ~ 1.0
func (s *LoadingScene) Progress() float64 {
	if s.duration <= 0 {
		return 1
	}
	return utils.Clamp01(s.elapsedTime / s.duration)
}

// dotScale 计算第 i 个圆点当前的缩放，圆点依次错开三分之一周期
func (s *LoadingScene) dotScale(i int) float64 {
	phase := s.elapsedTime/loadingDotPeriod + float64(i)/loadingDotCount
	t := phase - math.Floor(phase)
	// 0 -> 1 -> 0 的三角波，经过缓动得到平滑脉动
	if t > 0.5 {
		t = 1 - t
	}
	return 0.5 + 0.5*utils.EaseInOutCubic(t*2)
}

// Draw 绘制背景和加载指示器
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	cx := float64(config.ScreenWidth) / 2
	cy := float64(config.ScreenHeight) / 2
	startX := cx - loadingDotSpacing*float64(loadingDotCount-1)/2

	for i := 0; i < loadingDotCount; i++ {
		r := loadingDotRadius * s.dotScale(i)
		x := startX + float64(i)*loadingDotSpacing
		vector.DrawFilledCircle(screen, float32(x), float32(cy), float32(r), loadingDotColor, true)
	}

	if s.textFace == nil {
		ebitenutil.DebugPrintAt(screen, "Loading...", int(cx)-30, int(cy)+30)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy+30)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(loadingDotColor)
	text.Draw(screen, "Loading...", s.textFace, op)
}
