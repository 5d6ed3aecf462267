package components

// IndicatorComponent 页面指示器
// 与 ButtonComponent 搭配使用：ButtonComponent 负责点击，本组件记录对应的页码
type IndicatorComponent struct {
	// Index 对应的页码（从 1 开始）
	Index int
}
