//go:build !mobile

// Package mobile 是引导页轮播的 ebitenmobile 绑定。
//
// 桌面构建（go build ./...、go test ./...）只编译这个文件，
// 不引入 ebiten/mobile，也不嵌入 mobile/data 下的配置；
// 真正的入口在 mobile.go，需要 -tags mobile 才会编译。
package mobile

// Dummy 与 mobile.go 中的同名函数对应，桌面构建下什么也不做
func Dummy() {}
