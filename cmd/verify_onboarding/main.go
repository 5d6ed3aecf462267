package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/modules"
	"github.com/decker502/onboarding/pkg/scenes"
	"github.com/decker502/onboarding/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/onboarding.yaml", "引导页配置文件")
	slowMotion = flag.Float64("slow", 1.0, "动画时间缩放（0.25 = 四分之一速度）")
)

var errQuit = errors.New("quit")

// VerifyOnboardingGame 轮播验证程序
// 直接挂载 OnboardingScene，叠加调试信息，并提供键盘快捷键驱动各个入口
type VerifyOnboardingGame struct {
	scene     *scenes.OnboardingScene
	completed int
	paused    bool
	showDebug bool
}

// NewVerifyOnboardingGame 创建验证程序实例
func NewVerifyOnboardingGame() (*VerifyOnboardingGame, error) {
	cfg, err := config.LoadOnboardingConfig(*configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	vg := &VerifyOnboardingGame{showDebug: true}
	scene, err := scenes.NewOnboardingScene(game.NewResourceManager(), cfg, modules.OnboardingCallbacks{
		OnComplete: func() {
			vg.completed++
			log.Printf("[Callback] Continue clicked (%d)", vg.completed)
		},
	})
	if err != nil {
		return nil, err
	}
	vg.scene = scene

	log.Println("[VerifyOnboardingGame] 轮播验证程序已启动")
	return vg, nil
}

// Update 更新逻辑
func (vg *VerifyOnboardingGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Println("[VerifyOnboardingGame] 退出验证程序")
		return errQuit
	}

	m := vg.scene.Module()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		m.Controller().Apply(systems.IntentAdvance)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		m.Controller().Apply(systems.IntentRetreat)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.Controller().Apply(systems.IntentJumpToLast)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.TapSkip()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		m.TapContinue()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		vg.paused = !vg.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		vg.showDebug = !vg.showDebug
	}

	// 数字键 1-9 点击对应指示器
	for i := 0; i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			if err := m.TapIndicator(i + 1); err != nil {
				log.Printf("[VerifyOnboardingGame] %v", err)
			}
		}
	}

	if !vg.paused {
		vg.scene.Update(*slowMotion / 60.0)
	}
	return nil
}

// Draw 绘制画面
func (vg *VerifyOnboardingGame) Draw(screen *ebiten.Image) {
	vg.scene.Draw(screen)
	if vg.showDebug {
		vg.drawDebugInfo(screen)
	}
}

// Layout 设置屏幕布局
func (vg *VerifyOnboardingGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// drawDebugInfo 绘制每页位移、指示器缩放和快捷键说明
func (vg *VerifyOnboardingGame) drawDebugInfo(screen *ebiten.Image) {
	m := vg.scene.Module()
	d := m.Drive()

	var b strings.Builder
	fmt.Fprintf(&b, "page %d/%d settled=%v paused=%v completed=%d\n",
		m.Page(), m.PageCount(), m.Settled(), vg.paused, vg.completed)
	for i := 1; i <= d.PageCount(); i++ {
		p, e := d.Placement(i), d.Emphasis(i)
		fmt.Fprintf(&b, "%d %-15s x=%7.1f v=%7.1f -> %6.0f  s=%.3f\n",
			i, d.Axis(i), p.Value, p.Velocity, p.Target, e.Value)
	}
	b.WriteString("\nLeft/Right/Down = swipe  1-9 = indicator\nS = skip  C = continue  P = pause  D = debug  Q = quit")

	lines := strings.Count(b.String(), "\n") + 1
	vector.DrawFilledRect(screen, 0, float32(config.ScreenHeight-lines*16-10), config.ScreenWidth, float32(lines*16+10),
		color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, b.String(), 5, config.ScreenHeight-lines*16-5)
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	verifyGame, err := NewVerifyOnboardingGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create verify game: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("轮播验证 - Onboarding")
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)

	if err := ebiten.RunGame(verifyGame); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
