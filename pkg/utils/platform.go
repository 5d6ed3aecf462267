//go:build !mobile

package utils

import "os"

// IsMobile 是否运行在触屏设备上
// 桌面端编译时返回 false；设置环境变量 ONBOARDING_MOBILE_EMULATE=1 可在桌面上模拟触屏（不显示悬停效果）
func IsMobile() bool {
	return os.Getenv("ONBOARDING_MOBILE_EMULATE") == "1"
}
