package ass

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type ContentInfo struct {
	LineNum    uint   // 行号
	RawContent string // 文本内容
}

type FormatInfo struct {
	Fields []string // 字段名称列表
}

type parseState struct {
	inStyleSection bool        // 是否在 [V4 Styles] 模块中
	inEventSection bool        // 是否在 [Events] 模块中
	hasStyle       bool        // 是否已找到样式行
	hasEvent       bool        // 是否已找到事件行
	styleFormat    *FormatInfo // 样式表格式定义
	eventFormat    *FormatInfo // 事件表格式定义
}

type Parser struct {
	Contents []ContentInfo // 元素内容
}

// NewParser 读取整个脚本内容
// 输入先经过 BOM 识别转换，UTF-8-sig 与 UTF-16 的脚本可以直接读取
// [Fonts] 和 [Graphics] 中的内嵌数据与字体解析无关，直接跳过
func NewParser(reader io.Reader) (*Parser, error) {
	p := &Parser{
		Contents: make([]ContentInfo, 0, 200),
	}

	decoded := transform.NewReader(reader, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var lineNum uint = 0
	var inEmbeddedSection = false
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text() // 读取一行
		temp := strings.TrimSpace(strings.ToLower(line))

		switch temp {
		case "[fonts]", "[graphics]":
			inEmbeddedSection = true // 设置标志位
			continue
		case "[events]", "[script info]", "[v4 styles]", "[v4+ styles]":
			inEmbeddedSection = false // 清除标志位
		}
		if !inEmbeddedSection {
			p.Contents = append(p.Contents, ContentInfo{LineNum: lineNum, RawContent: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to new Parser: %w", err)
	}
	return p, nil
}

// Parse 解析样式表与事件表
func (p *Parser) Parse() (*Document, error) {
	doc := &Document{
		Styles: make(StyleTable),
		Events: make([]DialogueEvent, 0, len(p.Contents)),
	}

	var s parseState
	var err error
	for i := range p.Contents {
		s, err = p.parseContent(doc, i, s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ass content at line %d: %w", p.Contents[i].LineNum, err)
		}
	}

	// 验证必要区块
	if !s.hasStyle {
		return nil, ErrStyleParseFailed
	}
	if !s.hasEvent {
		return nil, ErrEventParseFailed
	}
	return doc, nil
}

func (p *Parser) parseContent(doc *Document, i int, s parseState) (parseState, error) {
	ci := p.Contents[i]
	// 检查区块开始
	switch {
	case startWith(ci.RawContent, "[V4+ Styles]"), startWith(ci.RawContent, "[V4 Styles]"):
		s.inStyleSection = true
		s.inEventSection = false
		s.styleFormat = nil // 重置格式定义
		return s, nil
	case startWith(ci.RawContent, "[Events]"):
		s.inEventSection = true
		s.inStyleSection = false
		s.eventFormat = nil // 重置格式定义
		return s, nil
	case startWith(ci.RawContent, "["):
		s.inStyleSection = false
		s.inEventSection = false
	}

	// 根据当前状态处理行
	switch {
	case s.inStyleSection && startWith(ci.RawContent, "Format:"):
		format, err := ParseFormat(ci.RawContent)
		if err != nil {
			return s, err
		}
		s.styleFormat = format

	case s.inStyleSection && startWith(ci.RawContent, "Style:"):
		if s.styleFormat == nil {
			return s, ErrMissingFormat
		}
		fields, err := ParseDataLine(ci.RawContent, s.styleFormat)
		if err != nil {
			return s, ErrInvalidStyleFormat
		}
		appendStyle(doc.Styles, fields)
		s.hasStyle = true

	case s.inEventSection && startWith(ci.RawContent, "Format:"):
		format, err := ParseFormat(ci.RawContent)
		if err != nil {
			return s, err
		}
		s.eventFormat = format

	case s.inEventSection && startWith(ci.RawContent, "Dialogue:"):
		if s.eventFormat == nil {
			return s, ErrMissingFormat
		}
		fields, err := ParseDataLine(ci.RawContent, s.eventFormat)
		if err != nil {
			return s, ErrInvalidEventFormat
		}
		styleName := fields["Style"]
		if styleName == "" {
			styleName = defaultStyleName
		}
		doc.Events = append(doc.Events, DialogueEvent{
			StyleName: styleName,
			Text:      fields["Text"],
			LineNum:   ci.LineNum,
		})
		s.hasEvent = true

	case s.inEventSection && startWith(ci.RawContent, "Comment:"):
		// Comment 行不会被渲染，不产生字体需求
		s.hasEvent = true
	}
	return s, nil
}

// 把一行 Style: 记录合并进样式表
// 样式块里的 Bold 只区分开关，字重只会是 400 或 700
func appendStyle(st StyleTable, fields map[string]string) {
	name, ok := fields["Name"]
	if !ok || name == "" {
		name = defaultStyleName
	}

	st[name] = Style{
		FontName: NormalizeFontName(fields["Fontname"]),
		Weight:   parseStyleBold(fields["Bold"]),
		Italic:   parseStyleItalic(fields["Italic"]),
	}
}

// ParseFormat 解析格式定义行（Format:）
func ParseFormat(line string) (*FormatInfo, error) {
	// Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, ...
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed format line: %q", line)
	}

	fieldNames := strings.Split(strings.TrimSpace(parts[1]), ",")

	// 清理字段名称
	for i := range fieldNames {
		fieldNames[i] = strings.TrimSpace(fieldNames[i])
	}

	return &FormatInfo{Fields: fieldNames}, nil
}

// ParseDataLine 解析数据行（Style: 或 Dialogue:）并返回字段映射
// 最后一个字段（通常是 Text）可以包含逗号
func ParseDataLine(line string, format *FormatInfo) (map[string]string, error) {
	// Style: Default,方正准圆_GBK,48,&H00FFFFFF,&HF0000000,&H00665806,&H0058281B,0,0,0,0,100,100,1,0,1,2,0,2,30,30,10,1
	// Dialogue: 1,0:56:02.80,0:56:08.34,OP-JP,,0,0,10,,{\an2\c&HFFFFFF&\bord4}突然降る夕立　あぁ傘もないや嫌

	// Style: 和 Dialogue: 共用这里，具体的哨兵错误由调用方决定
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed data line: %q", line)
	}

	fieldCount := len(format.Fields)
	values := strings.SplitN(strings.TrimSpace(parts[1]), ",", fieldCount)

	result := make(map[string]string)

	// 将分割的值与对应的字段名进行映射
	for i := 0; i < fieldCount && i < len(values); i++ {
		result[format.Fields[i]] = strings.TrimSpace(values[i])
	}

	return result, nil
}
