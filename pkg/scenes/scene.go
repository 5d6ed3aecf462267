package scenes

import (
	"image/color"

	"github.com/decker502/onboarding/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景名称（用于 SceneManager 的场景工厂）
const (
	SceneLoading    = "loading"
	SceneOnboarding = "onboarding"
)

// BackgroundColor 引导页背景色（violet）
var BackgroundColor = color.RGBA{R: 238, G: 130, B: 238, A: 255}
