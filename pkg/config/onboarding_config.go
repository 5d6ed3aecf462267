package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/decker502/onboarding/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultOnboardingConfigPath 默认引导页配置文件（嵌入资源路径）
const DefaultOnboardingConfigPath = "data/onboarding.yaml"

// 引导页默认参数（与原版引导页一致）
const (
	// DefaultPageCount 默认页数
	DefaultPageCount = 4

	// DefaultSpringDamping 弹簧阻尼系数
	DefaultSpringDamping = 15.0
	// DefaultSpringStiffness 弹簧刚度
	DefaultSpringStiffness = 50.0
	// DefaultSpringMass 弹簧质量
	DefaultSpringMass = 1.0

	// DefaultEmphasized 当前页指示器的缩放
	DefaultEmphasized = 1.3
	// DefaultDeemphasized 其他页指示器的缩放
	DefaultDeemphasized = 0.8

	// DefaultClaimDX 拖动过程中水平位移超过该值即接管手势
	DefaultClaimDX = 20.0
	// DefaultClaimDY 拖动过程中垂直位移超过该值即接管手势
	DefaultClaimDY = 80.0
	// DefaultSwipeDX 松手时水平位移超过该值视为翻页
	DefaultSwipeDX = 20.0
	// DefaultSwipeDY 松手时垂直位移超过该值视为跳到最后一页
	DefaultSwipeDY = 100.0

	// DefaultLoadingDuration 加载转场时长（秒）
	DefaultLoadingDuration = 1.0

	// DefaultPageColor 页面背景色（violet）
	DefaultPageColor = "#ee82ee"
)

// ErrNoPages 配置中没有任何页面
var ErrNoPages = errors.New("onboarding config has no pages")

// PageAxis 页面离屏时所在的轴向和方向
// 每一页在构造时确定，生命周期内不变
type PageAxis string

const (
	// AxisVerticalBottom 垂直轴，未到达时藏在屏幕下方
	AxisVerticalBottom PageAxis = "vertical-bottom"
	// AxisHorizontal 水平轴，未到达时藏在屏幕右侧，经过后停在左侧
	AxisHorizontal PageAxis = "horizontal"
	// AxisVerticalTop 垂直轴，藏在屏幕上方
	AxisVerticalTop PageAxis = "vertical-top"
)

// Valid 检查轴向是否为已知值
func (a PageAxis) Valid() bool {
	switch a {
	case AxisVerticalBottom, AxisHorizontal, AxisVerticalTop:
		return true
	}
	return false
}

// IsVertical 返回该轴向是否沿 Y 方向位移
func (a PageAxis) IsVertical() bool {
	return a == AxisVerticalBottom || a == AxisVerticalTop
}

// DefaultFactors 返回该轴向默认的离屏系数（相对于轴向上的屏幕尺寸）
//
// 返回：
//   - upcoming: 尚未到达时的位置（同时也是挂载时的初始位置）
//   - passed: 已经翻过后的位置
func (a PageAxis) DefaultFactors() (upcoming, passed float64) {
	switch a {
	case AxisVerticalBottom:
		// 第一页：从下方进入，离开时完全越过上边缘
		return 2.0, -1.3
	case AxisVerticalTop:
		return -1.5, -1.5
	default:
		return 2.0, -1.0
	}
}

// PageConfig 单页配置
type PageConfig struct {
	Axis     PageAxis `yaml:"axis"`     // 离屏轴向
	Title    string   `yaml:"title"`    // 页面标题，默认 "Page N"
	Subtitle string   `yaml:"subtitle"` // 副标题（可选）
	Color    string   `yaml:"color"`    // 背景色，十六进制，如 "#ee82ee"

	// 可选：覆盖轴向的默认离屏系数
	Upcoming *float64 `yaml:"upcoming,omitempty"`
	Passed   *float64 `yaml:"passed,omitempty"`
}

// PagePlacement 单页的放置规则（离屏偏移系数表中的一行）
type PagePlacement struct {
	Axis     PageAxis
	Upcoming float64
	Passed   float64
}

// Offsets 将系数换算为逻辑像素偏移
func (p PagePlacement) Offsets(viewportWidth, viewportHeight float64) (upcoming, passed float64) {
	extent := viewportWidth
	if p.Axis.IsVertical() {
		extent = viewportHeight
	}
	return p.Upcoming * extent, p.Passed * extent
}

// Placement 返回该页的放置规则，未覆盖的系数取轴向默认值
func (pc PageConfig) Placement() PagePlacement {
	upcoming, passed := pc.Axis.DefaultFactors()
	if pc.Upcoming != nil {
		upcoming = *pc.Upcoming
	}
	if pc.Passed != nil {
		passed = *pc.Passed
	}
	return PagePlacement{Axis: pc.Axis, Upcoming: upcoming, Passed: passed}
}

// RGBA 解析背景色，解析失败时返回默认背景色
func (pc PageConfig) RGBA() color.RGBA {
	c, err := colorful.Hex(pc.Color)
	if err != nil {
		c, _ = colorful.Hex(DefaultPageColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// SpringConfig 阻尼弹簧参数
type SpringConfig struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
}

// AngularFrequency 无阻尼角频率 ω = sqrt(k/m)
func (s SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio 阻尼比 ζ = c / (2·sqrt(k·m))
// 默认参数 (15, 50, 1) 约为 1.06，接近临界阻尼
func (s SpringConfig) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// EmphasisConfig 指示器缩放的两个静止值
type EmphasisConfig struct {
	Emphasized   float64 `yaml:"emphasized"`
	Deemphasized float64 `yaml:"deemphasized"`
}

// GestureThresholds 手势阈值（逻辑像素）
type GestureThresholds struct {
	ClaimDX float64 `yaml:"claimDX"`
	ClaimDY float64 `yaml:"claimDY"`
	SwipeDX float64 `yaml:"swipeDX"`
	SwipeDY float64 `yaml:"swipeDY"`
}

// OnboardingConfig 引导页完整配置
type OnboardingConfig struct {
	Pages           []PageConfig      `yaml:"pages"`
	Spring          SpringConfig      `yaml:"spring"`
	Emphasis        EmphasisConfig    `yaml:"emphasis"`
	Gesture         GestureThresholds `yaml:"gesture"`
	LoadingDuration float64           `yaml:"loadingDuration"` // 秒
}

// DefaultOnboardingConfig 返回内置默认配置：
// 第一页从下方进入，中间页水平切换，最后一页藏在上方
func DefaultOnboardingConfig() *OnboardingConfig {
	pages := make([]PageConfig, DefaultPageCount)
	for i := range pages {
		axis := AxisHorizontal
		switch i {
		case 0:
			axis = AxisVerticalBottom
		case DefaultPageCount - 1:
			axis = AxisVerticalTop
		}
		pages[i] = PageConfig{Axis: axis}
	}

	cfg := &OnboardingConfig{
		Pages: pages,
		Spring: SpringConfig{
			Damping:   DefaultSpringDamping,
			Stiffness: DefaultSpringStiffness,
			Mass:      DefaultSpringMass,
		},
		Emphasis: EmphasisConfig{
			Emphasized:   DefaultEmphasized,
			Deemphasized: DefaultDeemphasized,
		},
		Gesture: GestureThresholds{
			ClaimDX: DefaultClaimDX,
			ClaimDY: DefaultClaimDY,
			SwipeDX: DefaultSwipeDX,
			SwipeDY: DefaultSwipeDY,
		},
		LoadingDuration: DefaultLoadingDuration,
	}
	applyPageDefaults(cfg)
	return cfg
}

// PageCount 返回页数 N
func (c *OnboardingConfig) PageCount() int {
	return len(c.Pages)
}

// Placements 返回每页的放置规则表（下标 0 对应第 1 页）
func (c *OnboardingConfig) Placements() []PagePlacement {
	table := make([]PagePlacement, len(c.Pages))
	for i, p := range c.Pages {
		table[i] = p.Placement()
	}
	return table
}

// MinOffscreenFactor 离屏系数的最小绝对值
// 小于 1 时页面会有一部分留在屏幕内
const MinOffscreenFactor = 1.0

// Validate 验证配置有效性
//
// 检查：
//   - 至少一页，且每页轴向合法、颜色可解析
//   - 离屏系数有限且 |f| >= 1，保证任一时刻只有当前页停在 0
//   - 所有数值有限
//   - 弹簧刚度和质量为正，阻尼非负
//   - 指示器缩放为正，且强调值与非强调值不同
//   - 手势阈值和加载时长非负
func (c *OnboardingConfig) Validate() error {
	if len(c.Pages) == 0 {
		return ErrNoPages
	}

	for i, p := range c.Pages {
		if !p.Axis.Valid() {
			return fmt.Errorf("page %d: unknown axis %q", i+1, p.Axis)
		}
		if _, err := colorful.Hex(p.Color); err != nil {
			return fmt.Errorf("page %d: invalid color %q: %w", i+1, p.Color, err)
		}
		pl := p.Placement()
		if err := checkOffscreenFactor("upcoming", pl.Upcoming); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if err := checkOffscreenFactor("passed", pl.Passed); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	numbers := []struct {
		name  string
		value float64
	}{
		{"spring.damping", c.Spring.Damping},
		{"spring.stiffness", c.Spring.Stiffness},
		{"spring.mass", c.Spring.Mass},
		{"emphasis.emphasized", c.Emphasis.Emphasized},
		{"emphasis.deemphasized", c.Emphasis.Deemphasized},
		{"gesture.claimDX", c.Gesture.ClaimDX},
		{"gesture.claimDY", c.Gesture.ClaimDY},
		{"gesture.swipeDX", c.Gesture.SwipeDX},
		{"gesture.swipeDY", c.Gesture.SwipeDY},
		{"loadingDuration", c.LoadingDuration},
	}
	for _, n := range numbers {
		if !isFinite(n.value) {
			return fmt.Errorf("%s must be finite, got %v", n.name, n.value)
		}
	}

	if c.Spring.Stiffness <= 0 || c.Spring.Mass <= 0 {
		return fmt.Errorf("spring stiffness and mass must be positive, got stiffness=%.2f mass=%.2f",
			c.Spring.Stiffness, c.Spring.Mass)
	}
	if c.Spring.Damping < 0 {
		return fmt.Errorf("spring damping must be >= 0, got %.2f", c.Spring.Damping)
	}

	if c.Emphasis.Emphasized <= 0 || c.Emphasis.Deemphasized <= 0 {
		return fmt.Errorf("emphasis scales must be positive, got %.2f/%.2f",
			c.Emphasis.Emphasized, c.Emphasis.Deemphasized)
	}
	if c.Emphasis.Emphasized == c.Emphasis.Deemphasized {
		return fmt.Errorf("emphasis scales must differ, both are %.2f", c.Emphasis.Emphasized)
	}

	g := c.Gesture
	if g.ClaimDX < 0 || g.ClaimDY < 0 || g.SwipeDX < 0 || g.SwipeDY < 0 {
		return fmt.Errorf("gesture thresholds must be >= 0, got %+v", g)
	}

	if c.LoadingDuration < 0 {
		return fmt.Errorf("loadingDuration must be >= 0, got %.2f", c.LoadingDuration)
	}

	return nil
}

func checkOffscreenFactor(name string, f float64) error {
	if !isFinite(f) {
		return fmt.Errorf("%s factor must be finite, got %v", name, f)
	}
	if math.Abs(f) < MinOffscreenFactor {
		return fmt.Errorf("%s factor %.2f leaves the page partly on screen (need |f| >= %.0f)",
			name, f, MinOffscreenFactor)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseOnboardingConfig 解析 YAML 配置
// 未出现的字段保留默认值；pages 一旦出现则整体替换默认页面
func ParseOnboardingConfig(data []byte) (*OnboardingConfig, error) {
	cfg := DefaultOnboardingConfig()
	cfg.Pages = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse onboarding config YAML: %w", err)
	}

	if len(cfg.Pages) == 0 {
		cfg.Pages = DefaultOnboardingConfig().Pages
	}
	applyPageDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid onboarding config: %w", err)
	}
	return cfg, nil
}

// LoadOnboardingConfig 从文件加载配置
// "data/" 开头的路径优先从嵌入资源读取，其余路径从文件系统读取
func LoadOnboardingConfig(path string) (*OnboardingConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read onboarding config file %s: %w", path, err)
	}

	cfg, err := ParseOnboardingConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// IsEmbeddedPath 该路径是否会从嵌入资源读取（而不是磁盘文件）
func IsEmbeddedPath(path string) bool {
	return strings.HasPrefix(path, "data/") && embedded.IsInitialized() && embedded.Exists(path)
}

func readConfigFile(path string) ([]byte, error) {
	if IsEmbeddedPath(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// applyPageDefaults 为缺失的可选字段设置默认值
func applyPageDefaults(cfg *OnboardingConfig) {
	last := len(cfg.Pages) - 1
	for i := range cfg.Pages {
		p := &cfg.Pages[i]
		if p.Axis == "" {
			switch {
			case i == 0:
				p.Axis = AxisVerticalBottom
			case i == last:
				p.Axis = AxisVerticalTop
			default:
				p.Axis = AxisHorizontal
			}
		}
		if p.Title == "" {
			p.Title = fmt.Sprintf("Page %d", i+1)
		}
		if p.Color == "" {
			p.Color = DefaultPageColor
		}
	}
}
