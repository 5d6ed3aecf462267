package systems

import (
	"log"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/onboarding/pkg/config"
)

// AnimatedValue 一个由弹簧驱动的数值
type AnimatedValue struct {
	Value    float64
	Velocity float64
	Target   float64
}

// RestThreshold 判定静止的阈值：速度和到目标的距离都低于阈值即视为静止
type RestThreshold struct {
	Displacement float64
	Speed        float64
}

// 静止阈值：位移以像素计，指示器缩放是无量纲的小数值，需要更严格的阈值
var (
	PlacementRest = RestThreshold{Displacement: 0.5, Speed: 2.0}
	EmphasisRest  = RestThreshold{Displacement: 0.001, Speed: 0.01}
)

// AtRest 检查是否已静止
func (v AnimatedValue) AtRest(th RestThreshold) bool {
	return math.Abs(v.Velocity) < th.Speed && math.Abs(v.Value-v.Target) < th.Displacement
}

// Viewport 逻辑视口尺寸，用于把离屏系数换算成像素
type Viewport struct {
	Width  float64
	Height float64
}

// AnimationDrive 动画驱动
//
// 维护两组定长（N）的弹簧数值，构造时一次性分配，之后只重新设定目标，不重建：
//   - placements[i]: 第 i+1 页沿自身轴向的偏移，0 表示完全可见
//   - emphases[i]:   第 i+1 个指示器的缩放
//
// 重新设定目标只修改 Target，当前值和速度保留，
// 所以动画进行中连续翻页时弹簧会从当前位置、当前速度继续。
type AnimationDrive struct {
	table    []config.PagePlacement
	upcoming []float64 // 尚未到达时的像素偏移（也是挂载时的初始位置）
	passed   []float64 // 已翻过后的像素偏移

	emphasis  config.EmphasisConfig
	springCfg config.SpringConfig
	spring    harmonica.Spring
	springDT  float64

	placements []AnimatedValue
	emphases   []AnimatedValue

	page    int
	stopped bool
}

// NewAnimationDrive 创建动画驱动并立即以第 1 页为目标做第一次定位
func NewAnimationDrive(cfg *config.OnboardingConfig, viewport Viewport) *AnimationDrive {
	n := cfg.PageCount()
	d := &AnimationDrive{
		table:      cfg.Placements(),
		upcoming:   make([]float64, n),
		passed:     make([]float64, n),
		emphasis:   cfg.Emphasis,
		springCfg:  cfg.Spring,
		placements: make([]AnimatedValue, n),
		emphases:   make([]AnimatedValue, n),
	}

	for i, p := range d.table {
		d.upcoming[i], d.passed[i] = p.Offsets(viewport.Width, viewport.Height)
		d.placements[i] = AnimatedValue{Value: d.upcoming[i], Target: d.upcoming[i]}
		d.emphases[i] = AnimatedValue{Value: 1, Target: 1}
	}

	d.Retarget(1)
	return d
}

// PageCount 返回页数 N
func (d *AnimationDrive) PageCount() int {
	return len(d.placements)
}

// Page 返回最近一次定位所用的当前页
func (d *AnimationDrive) Page() int {
	return d.page
}

// Axis 返回第 i 页（从 1 开始）的轴向
func (d *AnimationDrive) Axis(i int) config.PageAxis {
	return d.table[i-1].Axis
}

// Placement 返回第 i 页（从 1 开始）的位移
func (d *AnimationDrive) Placement(i int) AnimatedValue {
	return d.placements[i-1]
}

// Emphasis 返回第 i 个指示器（从 1 开始）的缩放
func (d *AnimationDrive) Emphasis(i int) AnimatedValue {
	return d.emphases[i-1]
}

// EmphasisRange 返回指示器缩放的两个静止值
func (d *AnimationDrive) EmphasisRange() (deemphasized, emphasized float64) {
	return d.emphasis.Deemphasized, d.emphasis.Emphasized
}

// PlacementTarget 计算当前页为 page 时第 i 页的目标偏移
//
//	i == page -> 0
//	i <  page -> 已翻过的离屏位置
//	i >  page -> 尚未到达的离屏位置
//
// 第一页离开时越过上边缘这一特殊性体现在放置表中，而不是这里的分支。
func (d *AnimationDrive) PlacementTarget(i, page int) float64 {
	switch {
	case i == page:
		return 0
	case i < page:
		return d.passed[i-1]
	default:
		return d.upcoming[i-1]
	}
}

// EmphasisTarget 计算当前页为 page 时第 i 个指示器的目标缩放
func (d *AnimationDrive) EmphasisTarget(i, page int) float64 {
	if i == page {
		return d.emphasis.Emphasized
	}
	return d.emphasis.Deemphasized
}

// OnPageChanged 实现 PageObserver
func (d *AnimationDrive) OnPageChanged(page int) {
	d.Retarget(page)
}

// Retarget 以 page 为当前页，重新设定所有页面和所有指示器的目标
func (d *AnimationDrive) Retarget(page int) {
	if d.stopped {
		return
	}
	if page < 1 || page > len(d.placements) {
		log.Printf("[AnimationDrive] Ignoring retarget to page %d (count %d)", page, len(d.placements))
		return
	}

	d.page = page
	for i := range d.placements {
		d.placements[i].Target = d.PlacementTarget(i+1, page)
		d.emphases[i].Target = d.EmphasisTarget(i+1, page)
	}
}

// Update 推进所有弹簧 dt 秒
func (d *AnimationDrive) Update(dt float64) {
	if d.stopped || dt <= 0 {
		return
	}

	if dt != d.springDT {
		d.spring = harmonica.NewSpring(dt, d.springCfg.AngularFrequency(), d.springCfg.DampingRatio())
		d.springDT = dt
	}

	for i := range d.placements {
		d.step(&d.placements[i], PlacementRest)
		d.step(&d.emphases[i], EmphasisRest)
	}
}

func (d *AnimationDrive) step(v *AnimatedValue, th RestThreshold) {
	if v.Value == v.Target && v.Velocity == 0 {
		return
	}

	v.Value, v.Velocity = d.spring.Update(v.Value, v.Velocity, v.Target)
	if v.AtRest(th) {
		v.Value = v.Target
		v.Velocity = 0
	}
}

// Settled 所有数值是否都已静止在目标上
func (d *AnimationDrive) Settled() bool {
	for i := range d.placements {
		if d.placements[i].Value != d.placements[i].Target || d.placements[i].Velocity != 0 {
			return false
		}
		if d.emphases[i].Value != d.emphases[i].Target || d.emphases[i].Velocity != 0 {
			return false
		}
	}
	return true
}

// Stop 停止驱动（卸载时调用），之后 Update 和 Retarget 都是空操作
func (d *AnimationDrive) Stop() {
	d.stopped = true
}

// Stopped 是否已停止
func (d *AnimationDrive) Stopped() bool {
	return d.stopped
}
