package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendColor 在两种颜色之间按 t ∈ [0, 1] 混合（RGB 空间），alpha 线性插值
func BlendColor(from, to color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	a, _ := colorful.MakeColor(opaque(from))
	b, _ := colorful.MakeColor(opaque(to))
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return color.RGBA{
		R: r,
		G: g,
		B: bl,
		A: uint8(Lerp(float64(from.A), float64(to.A), t) + 0.5),
	}
}

// opaque 去掉 alpha，colorful.MakeColor 对 alpha 为 0 的颜色会失败
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
