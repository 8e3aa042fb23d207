package ass

import (
	"regexp"
	"strconv"
	"strings"
)

// 行文本由覆盖块和其后的文本交替组成：{tags}text{tags}text
var linePattern = regexp.MustCompile(`(?:\{([^}]*)\}?)?([^{]*)`)

// 标签数值必须紧跟在标签名之后，\bord0.5、\blur3 这类不会被误认成 \b
var (
	boldPattern   = regexp.MustCompile(`\\b[+-]?[0-9]+`)
	italicPattern = regexp.MustCompile(`\\i[+-]?[0-9]+`)
	fontPattern   = regexp.MustCompile(`\\fn([^\\]*)`)
	intPattern    = regexp.MustCompile(`[+-]?[0-9]+`)
)

// 每个覆盖块末尾补上的合成分隔符
// 前一个块末尾的 '\' 不能与后一个块的首字符拼出标签（比如 \r），
// 字体名的捕获也在这里被截断
const blockSeparator = `\}`

// 样式重置标签，其后的文本恢复为行的基础样式
const resetTag = `\r`

// ParseLine 扫描一行对话文本，返回实际绘制过字形的全部有效样式
// 覆盖标签跨块累积，直到被再次覆盖或被 \r 重置
// 块后没有文本时不会产生字体需求
// warn 接收可恢复的标签警告，可以为 nil
func ParseLine(text string, base Style, warn WarnFn) StyleSet {
	styleSet := make(StyleSet)

	current := base
	// 末尾多出来的空匹配没有文本，不会产生需求，无需剔除
	for _, m := range linePattern.FindAllStringSubmatch(text, -1) {
		current = applyOverride(m[1]+blockSeparator, current, base, warn)
		if m[2] != "" {
			styleSet[current] = struct{}{}
		}
	}
	return styleSet
}

// applyOverride 把一个覆盖块（已带分隔符）的标签应用到当前样式
// 块内出现 \r 时先恢复基础样式，只有最后一次重置之后的标签还有效
func applyOverride(chunk string, current, base Style, warn WarnFn) Style {
	if idx := strings.LastIndex(chunk, resetTag); idx >= 0 {
		current = base
		chunk = chunk[idx+len(resetTag):]
		if chunk == "" {
			return current
		}
	}

	// 同类标签只有最后一个生效
	if bold := boldPattern.FindAllString(chunk, -1); len(bold) > 0 {
		if value, err := strconv.Atoi(intPattern.FindString(bold[len(bold)-1])); err == nil {
			current.Weight = MapBoldToWeight(value)
		}
	}
	if italic := italicPattern.FindAllString(chunk, -1); len(italic) > 0 {
		if value, err := strconv.Atoi(intPattern.FindString(italic[len(italic)-1])); err == nil {
			current.Italic = value == 1
		}
	}
	if fonts := fontPattern.FindAllStringSubmatch(chunk, -1); len(fonts) > 0 {
		name := fonts[len(fonts)-1][1]
		if strings.ContainsAny(name, "()") {
			// 标记语法无法表达字体名里的括号，放弃该标签并保留原字体
			if warn != nil {
				warn(&InvalidFontNameError{Name: name})
			}
		} else if normalized := NormalizeFontName(name); normalized != "" {
			current.FontName = normalized
		}
	}
	return current
}
