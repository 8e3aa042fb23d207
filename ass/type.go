package ass

import (
	"errors"
	"fmt"
)

// Style 表示文档中某一处文本的有效外观
// FontName 已归一化（去空白、转小写、去掉前缀 @）
// 相等性与哈希只由这三个字段决定，来源不同的两个相同样式可以互换
type Style struct {
	FontName string // 字体名称
	Weight   int    // 字重（100-900，400=常规，700=粗体）
	Italic   bool   // 是否斜体
}

// String 返回 Style 的字符串表示，用于排序与日志
func (s Style) String() string {
	return fmt.Sprintf("%s_%d_%t", s.FontName, s.Weight, s.Italic)
}

// StyleTable 保存 [V4+ Styles] 中声明的基础样式（样式名->样式）
type StyleTable map[string]Style

// StyleSet 一行或整个文档实际用到的样式集合
type StyleSet map[Style]struct{}

// DialogueEvent 一行对话事件
type DialogueEvent struct {
	StyleName string // 引用的样式名称
	Text      string // 原始文本（含覆盖标签）
	LineNum   uint   // 文件行号，从 1 开始
}

// Document 解析后的字幕文档
type Document struct {
	Styles StyleTable      // 样式表
	Events []DialogueEvent // 对话事件，按文件顺序
}

// WarnFn 接收可恢复的警告，可以为 nil
type WarnFn func(error)

const (
	defaultStyleName  = "Default" // 缺省样式名称
	defaultFontWeight = 400       // 默认字重
	defaultBoldWeight = 700       // 粗体字重
)

var (
	ErrStyleParseFailed   = errors.New("failed to parse style") // 未找到 [V4 Styles] 等模块
	ErrInvalidStyleFormat = errors.New("invalid style format")  // Styles 格式解析失败
	ErrEventParseFailed   = errors.New("failed to parse event") // 未找到 [Events] 等模块
	ErrInvalidEventFormat = errors.New("invalid event format")  // Events 格式解析失败
	ErrMissingFormat      = errors.New("missing format line")   // 缺少格式定义行
)

// StyleNotFoundError 对话引用了未声明的样式
// 文档已无法得出有意义的解析结果，整个运行必须中止
type StyleNotFoundError struct {
	StyleName string
	LineNum   uint
}

func (e *StyleNotFoundError) Error() string {
	return fmt.Sprintf(`unknown style "%s" on line %d`, e.StyleName, e.LineNum)
}

// InvalidFontNameError 字体名标签包含非法字符，标签被忽略
type InvalidFontNameError struct {
	Name string
}

func (e *InvalidFontNameError) Error() string {
	return fmt.Sprintf(`font name can not contain "(" or ")": %q`, e.Name)
}

var _ error = (*StyleNotFoundError)(nil)
var _ error = (*InvalidFontNameError)(nil)
