package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度换行
//
// 换行规则:
//   - 在空白处断行，多个连续空白视为一个
//   - 单个单词超过最大宽度时按字符强制断行
//   - font 为 nil 或 maxWidth <= 0 时原样返回一行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身超宽：按字符拆开，最后一段留给下一个单词拼接
		for measureTextWidth(word, font) > maxWidth {
			head := breakRunes(word, font, maxWidth)
			lines = append(lines, head)
			word = word[len(head):]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// breakRunes 返回 s 能放进 maxWidth 的最长前缀（至少一个字符）
func breakRunes(s string, font *text.GoTextFace, maxWidth float64) string {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && measureTextWidth(s[:end+size], font) > maxWidth {
			break
		}
		end += size
	}
	return s[:end]
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
