// check_config 校验引导页配置文件，并打印每页的离屏位置表
//
// 用法：
//
//	go run ./cmd/check_config -config data/onboarding.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/systems"
)

var (
	configPath = flag.String("config", config.DefaultOnboardingConfigPath, "引导页配置文件")
	width      = flag.Float64("width", config.ScreenWidth, "视口宽度")
	height     = flag.Float64("height", config.ScreenHeight, "视口高度")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadOnboardingConfig(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d pages, spring ω=%.3f ζ=%.3f, loading %.2fs\n",
		*configPath, cfg.PageCount(), cfg.Spring.AngularFrequency(), cfg.Spring.DampingRatio(), cfg.LoadingDuration)

	d := systems.NewAnimationDrive(cfg, systems.Viewport{Width: *width, Height: *height})
	fmt.Printf("%-4s %-16s %10s %10s  %s\n", "page", "axis", "upcoming", "passed", "title")
	for i := 1; i <= d.PageCount(); i++ {
		// 第 i 页在当前页为 i+1（已翻过）和 i-1（未到达）时的目标
		upcoming := d.PlacementTarget(i, i-1)
		passed := d.PlacementTarget(i, i+1)
		fmt.Printf("%-4d %-16s %10.1f %10.1f  %s\n", i, d.Axis(i), upcoming, passed, cfg.Pages[i-1].Title)
	}
}
