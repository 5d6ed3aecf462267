package systems

import "github.com/decker502/onboarding/pkg/config"

// CarouselFrame 每帧交给渲染层的快照：当前页、各页位移、各指示器缩放
// 切片下标 0 对应第 1 页
type CarouselFrame struct {
	Page       int
	Placements []float64
	Emphases   []float64
	Axes       []config.PageAxis
	Settled    bool
}

// NewCarouselFrame 预分配 n 页的快照缓冲区
func NewCarouselFrame(n int) *CarouselFrame {
	return &CarouselFrame{
		Placements: make([]float64, n),
		Emphases:   make([]float64, n),
		Axes:       make([]config.PageAxis, n),
	}
}

// Capture 把动画驱动的当前值写入快照（复用已有缓冲区）
func (f *CarouselFrame) Capture(d *AnimationDrive) {
	f.Page = d.Page()
	for i := range f.Placements {
		f.Placements[i] = d.Placement(i + 1).Value
		f.Emphases[i] = d.Emphasis(i + 1).Value
		f.Axes[i] = d.Axis(i + 1)
	}
	f.Settled = d.Settled()
}

// Translation 返回第 i 页（从 1 开始）在屏幕上的平移量
func (f *CarouselFrame) Translation(i int) (tx, ty float64) {
	if f.Axes[i-1].IsVertical() {
		return 0, f.Placements[i-1]
	}
	return f.Placements[i-1], 0
}
