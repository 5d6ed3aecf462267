// Package app 提供引导页应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/modules"
	"github.com/decker502/onboarding/pkg/scenes"
	"github.com/decker502/onboarding/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 用于 gdata 存储目录
const AppName = "onboarding"

// 固定逻辑帧时长（Ebiten 默认 60 TPS）
const frameDeltaTime = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 引导页配置文件路径，为空时使用嵌入的默认配置
	ConfigPath string
	// SkipLoading 跳过加载转场，直接挂载轮播
	SkipLoading bool
	// Watch 监听配置文件变化并热更新轮播
	Watch bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager

	onboardingConfig *config.OnboardingConfig
	onboardingScene  *scenes.OnboardingScene
	watcher          *config.ConfigWatcher

	finished bool
	verbose  bool
}

// NewApp 创建并初始化应用
//
// 桌面端调用此函数前应先调用 embedded.Init()，否则只能读取磁盘上的配置文件，
// 配置文件不存在时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultOnboardingConfigPath
	}
	onboardingConfig, err := loadOnboardingConfig(path)
	if err != nil {
		return nil, err
	}

	a := &App{
		sceneManager:     game.NewSceneManager(),
		resourceManager:  game.NewResourceManager(),
		settingsManager:  game.NewSettingsManager(openStorage()),
		onboardingConfig: onboardingConfig,
		verbose:          cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.createScene)

	if a.settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	switch {
	case !cfg.Watch:
	case config.IsEmbeddedPath(path):
		// 嵌入资源在运行期间不会变化，磁盘上同名文件的修改也不会被读取
		log.Printf("[App] Config watch disabled: %s is read from embedded data, pass a file path to watch", path)
	default:
		watcher, err := config.NewConfigWatcher(path)
		if err != nil {
			log.Printf("[App] Config watch disabled: %v", err)
		} else {
			a.watcher = watcher
			log.Printf("[App] Watching %s", path)
		}
	}

	if cfg.SkipLoading {
		log.Printf("[App] SkipLoading enabled, mounting carousel directly")
		if !a.sceneManager.SwitchToNamed(scenes.SceneOnboarding) {
			a.Close()
			return nil, fmt.Errorf("failed to mount onboarding scene")
		}
	} else {
		a.sceneManager.SwitchTo(scenes.NewLoadingScene(a.resourceManager, a.sceneManager, onboardingConfig.LoadingDuration))
	}

	return a, nil
}

// loadOnboardingConfig 加载配置文件；文件不存在时使用默认配置，内容无效时返回错误
func loadOnboardingConfig(path string) (*config.OnboardingConfig, error) {
	cfg, err := config.LoadOnboardingConfig(path)
	if err == nil {
		log.Printf("[App] Loaded onboarding config %s (%d pages)", path, cfg.PageCount())
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[App] %v, using built-in defaults", err)
		return config.DefaultOnboardingConfig(), nil
	}
	return nil, fmt.Errorf("onboarding config: %w", err)
}

// openStorage 打开 gdata 存储；失败时返回 nil（设置降级为仅内存）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Settings storage unavailable: %v", err)
		return nil
	}

	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Settings storage unavailable: %v", err)
		return nil
	}
	return m
}

// createScene 场景工厂
func (a *App) createScene(name string) game.Scene {
	switch name {
	case scenes.SceneOnboarding:
		scene, err := scenes.NewOnboardingScene(a.resourceManager, a.onboardingConfig, modules.OnboardingCallbacks{
			OnComplete: a.complete,
		})
		if err != nil {
			log.Printf("[App] %v", err)
			return nil
		}
		a.onboardingScene = scene
		return scene
	case scenes.SceneLoading:
		return scenes.NewLoadingScene(a.resourceManager, a.sceneManager, a.onboardingConfig.LoadingDuration)
	}
	return nil
}

// complete 是轮播的完成回调：最后一页点击"继续"后结束应用
func (a *App) complete() {
	if a.finished {
		return
	}
	log.Printf("[App] Onboarding complete")
	a.finished = true
}

// Watching 是否在监听配置文件
func (a *App) Watching() bool {
	return a.watcher != nil
}

// Finished 完成回调是否已触发
func (a *App) Finished() bool {
	return a.finished
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）；完成后返回 ebiten.Termination
func (a *App) Update() error {
	if a.finished {
		a.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := a.settingsManager.ToggleFullscreen()
		ebiten.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	a.applyReloads()
	a.sceneManager.Update(frameDeltaTime)
	return nil
}

// applyReloads 取出配置监听器发来的新配置（非阻塞），只处理最新的一份
func (a *App) applyReloads() {
	if a.watcher == nil {
		return
	}

	select {
	case cfg := <-a.watcher.Reloads():
		a.applyConfig(cfg)
	default:
	}
}

func (a *App) applyConfig(cfg *config.OnboardingConfig) {
	if cfg == nil {
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[App] Ignoring reloaded config: %v", err)
		return
	}

	a.onboardingConfig = cfg
	if a.onboardingScene != nil && a.sceneManager.GetCurrentScene() == game.Scene(a.onboardingScene) {
		if err := a.onboardingScene.Reload(cfg); err != nil {
			log.Printf("[App] %v", err)
		}
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close 卸载当前场景并停止配置监听，可重复调用
func (a *App) Close() {
	a.sceneManager.Shutdown()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Failed to close config watcher: %v", err)
		}
		a.watcher = nil
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// OnboardingScene 返回最近一次挂载的引导页场景（尚未挂载时为 nil）
func (a *App) OnboardingScene() *scenes.OnboardingScene {
	return a.onboardingScene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
