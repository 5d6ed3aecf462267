package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/onboarding/pkg/app"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	configPath  = flag.String("config", config.DefaultOnboardingConfigPath, "引导页配置文件（data/ 开头时读取嵌入资源）")
	skipLoading = flag.Bool("skip-loading", false, "跳过加载转场，直接显示轮播")
	watch       = flag.Bool("watch", false, "监听配置文件变化并热更新（仅对磁盘文件有效，嵌入的 data/ 配置不监听）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	onboardingApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		SkipLoading: *skipLoading,
		Watch:       *watch,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer onboardingApp.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Onboarding")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(onboardingApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
