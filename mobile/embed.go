//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/onboarding.yaml 是根目录 data/onboarding.yaml 的副本，
// 修改配置后需要同步两份文件。
package mobile

import "embed"

//go:embed data/onboarding.yaml
var dataFS embed.FS
