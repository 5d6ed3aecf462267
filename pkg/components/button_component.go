package components

// ButtonKind 区分引导页上的几类可点击元素
type ButtonKind int

const (
	// ButtonKindSkip 跳过按钮（第 1 ~ N-1 页显示）
	ButtonKindSkip ButtonKind = iota
	// ButtonKindContinue 继续按钮（仅最后一页显示）
	ButtonKindContinue
	// ButtonKindIndicator 页面指示器圆点
	ButtonKindIndicator
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：文字、尺寸、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 命中区域为 PositionComponent 起点、Width x Height 的矩形
//   - 不可见或禁用的按钮不响应点击
type ButtonComponent struct {
	// Kind 按钮类别
	Kind ButtonKind

	// Text 按钮上显示的文字（指示器为空）
	Text string

	// Width 命中区域宽度（像素）
	Width float64
	// Height 命中区域高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Visible 是否显示（隐藏时既不绘制也不响应点击）
	Visible bool

	// OnClick 点击回调函数
	OnClick func()
}
