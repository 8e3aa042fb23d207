package ass

import "strings"

// 判断字符串是否有前缀（不区分大小写）
func startWith(raw string, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(raw), strings.ToLower(prefix))
}

// NormalizeFontName 归一化字体名称：去空白、转小写
// 前缀 @ 用于跳过字体存在性检查，不参与比较，一并去掉
func NormalizeFontName(name string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "@")
}

// MapBoldToWeight 把 \b 标签的数值映射到离散的 OpenType 字重
// 0 及以下恢复常规，1 表示粗体，其余按 100 为步长分档
func MapBoldToWeight(value int) int {
	switch {
	case value <= 0:
		return defaultFontWeight
	case value == 1:
		return defaultBoldWeight
	case value <= 150:
		return 100
	case value <= 250:
		return 200
	case value <= 350:
		return 300
	case value <= 450:
		return 400
	case value <= 550:
		return 500
	case value <= 650:
		return 600
	case value <= 750:
		return 700
	case value <= 850:
		return 800
	default:
		return 900
	}
}

// 样式块中的 Bold 字段只区分开关，"1" 和 "-1" 表示粗体
func parseStyleBold(raw string) int {
	switch strings.TrimSpace(raw) {
	case "1", "-1":
		return defaultBoldWeight
	default:
		return defaultFontWeight
	}
}

// 样式块中的 Italic 字段，"1" 和 "-1" 表示斜体
func parseStyleItalic(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "1", "-1":
		return true
	default:
		return false
	}
}
