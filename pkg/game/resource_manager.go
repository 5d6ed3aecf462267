package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 管理引导页使用的字体资源
// 字体来自 Go 字体（gofont），不依赖外部文件；同一字号的字体只创建一次
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadFont 返回指定字号的字体，首次调用时解析字体数据
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
		log.Printf("[ResourceManager] Font source loaded")
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// FontOrNil 同 LoadFont，失败时记录日志并返回 nil（调用方需回退到调试文字）
func (rm *ResourceManager) FontOrNil(size float64) *text.GoTextFace {
	face, err := rm.LoadFont(size)
	if err != nil {
		log.Printf("[ResourceManager] Failed to load font (size %.0f): %v", size, err)
		return nil
	}
	return face
}
