package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/modules"
	"github.com/decker502/onboarding/pkg/systems"
	"github.com/decker502/onboarding/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OnboardingScene 引导页场景
//
// 场景即挂载点：构造时挂载一个 OnboardingModule，Dispose 时卸载。
// 场景负责把 Ebiten 的输入（DragManager + 指针位置）转交给模块，并按帧快照渲染。
type OnboardingScene struct {
	resourceManager *game.ResourceManager
	entityManager   *ecs.EntityManager
	dragManager     *utils.DragManager
	callbacks       modules.OnboardingCallbacks

	module *modules.OnboardingModule

	carouselRender  *systems.CarouselRenderSystem
	indicatorRender *systems.IndicatorRenderSystem
	buttonRender    *systems.ButtonRenderSystem

	buttonFace *text.GoTextFace
	disposed   bool
}

// NewOnboardingScene 创建引导页场景并挂载轮播
//
// 参数：
//   - rm: 资源管理器（字体），可为 nil，此时使用调试文字
//   - cfg: 引导页配置
//   - callbacks: 轮播回调（完成回调由 app 提供）
func NewOnboardingScene(rm *game.ResourceManager, cfg *config.OnboardingConfig, callbacks modules.OnboardingCallbacks) (*OnboardingScene, error) {
	s := &OnboardingScene{
		resourceManager: rm,
		entityManager:   ecs.NewEntityManager(),
		dragManager:     utils.NewDragManager(),
		callbacks:       callbacks,
	}
	if rm != nil {
		s.buttonFace = rm.FontOrNil(config.SkipButtonFontSize)
	}

	if err := s.mount(cfg); err != nil {
		return nil, err
	}
	s.indicatorRender = systems.NewIndicatorRenderSystem(s.entityManager)
	s.buttonRender = systems.NewButtonRenderSystem(s.entityManager, s.buttonFace)
	return s, nil
}

func (s *OnboardingScene) mount(cfg *config.OnboardingConfig) error {
	viewport := systems.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight}
	module, err := modules.NewOnboardingModule(s.entityManager, cfg, viewport, s.callbacks)
	if err != nil {
		return fmt.Errorf("failed to mount onboarding: %w", err)
	}

	var titleFace, subtitleFace *text.GoTextFace
	if s.resourceManager != nil {
		titleFace = s.resourceManager.FontOrNil(config.PageTitleFontSize)
		subtitleFace = s.resourceManager.FontOrNil(config.PageSubtitleFontSize)
	}

	s.module = module
	s.carouselRender = systems.NewCarouselRenderSystem(cfg.Pages, viewport.Width, viewport.Height, titleFace, subtitleFace)
	return nil
}

// Reload 用新配置重新挂载轮播（配置热更新）
// 新配置无效时保持当前轮播不变并返回错误；当前页在新页数范围内时保留
func (s *OnboardingScene) Reload(cfg *config.OnboardingConfig) error {
	if s.disposed {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("rejecting reloaded config: %w", err)
	}

	page := s.module.Page()
	s.module.Dispose()
	s.dragManager.Reset()

	if err := s.mount(cfg); err != nil {
		return err
	}
	if page <= s.module.PageCount() {
		// 页码已在范围内检查过，不会返回错误
		_ = s.module.Controller().JumpTo(page)
	}

	log.Printf("[OnboardingScene] Reloaded config with %d pages (page %d)", cfg.PageCount(), s.module.Page())
	return nil
}

// Update 读取输入并推进轮播
func (s *OnboardingScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	s.dragManager.Update()
	pressed, x, y := utils.GetPointerState()
	pointerX, pointerY := float64(x), float64(y)
	if utils.IsMobile() && !pressed {
		// 触屏没有悬停，抬起后最后的触点位置不应再高亮按钮
		pointerX, pointerY = -1, -1
	}
	s.step(deltaTime, s.dragManager.GetInfo(), pointerX, pointerY, pressed)
}

// step 不依赖输入设备的单帧推进
func (s *OnboardingScene) step(deltaTime float64, drag utils.DragInfo, pointerX, pointerY float64, pressed bool) {
	s.module.Hover(pointerX, pointerY, pressed)
	s.module.Update(deltaTime, drag)
}

// Draw 绘制背景、页面、指示器和按钮
func (s *OnboardingScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	if s.disposed {
		return
	}

	frame := s.module.Frame()
	deemphasized, emphasized := s.module.Drive().EmphasisRange()

	s.carouselRender.Draw(screen, frame)
	s.indicatorRender.Draw(screen, frame, deemphasized, emphasized)
	s.buttonRender.Draw(screen)
}

// Module 返回当前挂载的轮播
func (s *OnboardingScene) Module() *modules.OnboardingModule {
	return s.module
}

// Dispose 实现 game.Disposable：卸载轮播并释放渲染缓存
func (s *OnboardingScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.module.Dispose()
	s.buttonRender.Dispose()
	log.Printf("[OnboardingScene] Unmounted")
}
