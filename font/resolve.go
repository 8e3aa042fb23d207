package font

import (
	"sort"

	"github.com/naveen-98/FontCollector/ass"
)

// Result 把文档所需的样式划分成已找到与缺失两部分
// 每个所需样式恰好落在其中一侧
// 同一家族的多个未满足样式在 Missing 中合并为一个名字
type Result struct {
	Found   map[ass.Style]Descriptor // 所需样式 -> 最佳匹配
	Missing []string                 // 无任何候选的字体家族，去重且有序
}

// Fonts 返回已找到的描述符，顺序稳定
func (r *Result) Fonts() []Descriptor {
	fonts := make([]Descriptor, 0, len(r.Found))
	for _, d := range r.Found {
		fonts = append(fonts, d)
	}
	sort.Slice(fonts, func(i, j int) bool {
		return fonts[i].String() < fonts[j].String()
	})
	return fonts
}

// Resolve 解析整个文档的字体需求并在字体池中完成匹配
// 对话引用了未声明的样式时返回 *ass.StyleNotFoundError，不产生部分结果
// 匹配不到字体不是错误，剩余样式会继续处理
func Resolve(styles ass.StyleTable, events []ass.DialogueEvent, fonts []Descriptor, warn ass.WarnFn) (*Result, error) {
	required := make([]ass.Style, 0, len(events))
	seen := make(ass.StyleSet)

	for i := range events {
		ev := &events[i]
		base, ok := styles[ev.StyleName]
		if !ok {
			return nil, &ass.StyleNotFoundError{StyleName: ev.StyleName, LineNum: ev.LineNum}
		}
		for style := range ass.ParseLine(ev.Text, base, warn) {
			if _, ok := seen[style]; !ok {
				seen[style] = struct{}{}
				required = append(required, style)
			}
		}
	}

	result := &Result{
		Found: make(map[ass.Style]Descriptor, len(required)),
	}
	missing := make(map[string]struct{})

	// 每个所需样式只匹配一次
	for _, style := range required {
		matched := Match(style, fonts)
		if len(matched) > 0 {
			result.Found[style] = matched[0]
		} else {
			missing[style.FontName] = struct{}{}
		}
	}

	for name := range missing {
		result.Missing = append(result.Missing, name)
	}
	sort.Strings(result.Missing)
	return result, nil
}
