package config

// 布局配置常量
// 本文件定义了引导页的逻辑屏幕尺寸以及跳过/继续按钮、页面指示器的位置参数
// 所有坐标均为逻辑屏幕坐标（Ebitengine 会自动缩放到实际窗口）

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth 逻辑屏幕宽度（竖屏布局）
	ScreenWidth = 400

	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 720

	// ScreenPaddingTop 顶部留白，对应页面高度比屏幕多出的部分
	ScreenPaddingTop = 40.0
)

// Control Surface Layout (控制区域布局)
const (
	// SkipButtonMarginRight 跳过/继续按钮距离屏幕右边缘的距离
	SkipButtonMarginRight = 20.0

	// SkipButtonMarginTop 跳过/继续按钮距离屏幕上边缘的距离
	SkipButtonMarginTop = 20.0

	// SkipButtonWidth 跳过/继续按钮宽度
	SkipButtonWidth = 90.0

	// SkipButtonHeight 跳过/继续按钮高度
	SkipButtonHeight = 40.0

	// SkipButtonCornerRadius 按钮圆角半径
	SkipButtonCornerRadius = 10.0

	// SkipButtonFontSize 按钮文字字号
	SkipButtonFontSize = 16.0

	// IndicatorRowTop 指示器行的 Y 坐标（行的上边缘）
	IndicatorRowTop = 50.0

	// IndicatorDiameter 单个指示器圆点的直径（缩放前）
	IndicatorDiameter = 20.0

	// IndicatorMargin 指示器四周的外边距
	IndicatorMargin = 5.0

	// PageTitleFontSize 页面标题字号
	PageTitleFontSize = 30.0

	// PageSubtitleFontSize 页面副标题字号
	PageSubtitleFontSize = 16.0

	// PageSubtitleLineHeight 副标题行高
	PageSubtitleLineHeight = 22.0

	// PageTextMarginX 页面文字距离页面左右边缘的最小距离
	PageTextMarginX = 30.0
)

// IndicatorSlotWidth 返回一个指示器占用的横向宽度（直径 + 左右外边距）
func IndicatorSlotWidth() float64 {
	return IndicatorDiameter + 2*IndicatorMargin
}

// IndicatorRowOrigin 计算指示器行在屏幕上居中时的左上角坐标
//
// 参数：
//   - count: 指示器数量（等于页数）
//   - screenWidth: 逻辑屏幕宽度
//
// 返回：
//   - x, y: 第一个指示器槽位的左上角
func IndicatorRowOrigin(count int, screenWidth float64) (x, y float64) {
	rowWidth := float64(count) * IndicatorSlotWidth()
	return (screenWidth - rowWidth) / 2, IndicatorRowTop
}
