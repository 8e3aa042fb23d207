package ass_test

import (
	"strings"
	"testing"

	"github.com/naveen-98/FontCollector/ass"

	"github.com/stretchr/testify/require"
)

const sampleScript = `[Script Info]
Title: 测试脚本
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, Bold, Italic
Style: Default,Arial,48,&H00FFFFFF,0,0
Style: Song,@方正准圆_GBK,54,&H00FFFFFF,-1,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello, world
Comment: 0,0:00:02.00,0:00:03.00,Default,,0,0,0,,注释行不渲染
Dialogue: 0,0:00:03.00,0:00:04.00,Song,,0,0,0,,{\b1}加粗
`

func TestParse(t *testing.T) {
	p, err := ass.NewParser(strings.NewReader(sampleScript))
	require.NoError(t, err)

	doc, err := p.Parse()
	require.NoError(t, err)

	require.Equal(t, ass.StyleTable{
		"Default": {FontName: "arial", Weight: 400, Italic: false},
		"Song":    {FontName: "方正准圆_gbk", Weight: 700, Italic: true},
	}, doc.Styles)

	require.Equal(t, []ass.DialogueEvent{
		{StyleName: "Default", Text: "Hello, world", LineNum: 12},
		{StyleName: "Song", Text: `{\b1}加粗`, LineNum: 14},
	}, doc.Events)
}

func TestParseWithBOM(t *testing.T) {
	p, err := ass.NewParser(strings.NewReader("\uFEFF" + sampleScript))
	require.NoError(t, err)

	doc, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, doc.Styles, 2)
	require.Len(t, doc.Events, 2)
}

func TestParseSkipsEmbeddedSections(t *testing.T) {
	script := `[Script Info]
Title: 内嵌字体

[Fonts]
fontname: chaucer_B0.ttf
!Ft$bp&!5nK:"aw@bp1_X6

[V4+ Styles]
Format: Name, Fontname, Fontsize, Bold, Italic
Style: Default,Arial,48,0,0

[Events]
Format: Layer, Start, End, Style, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,文本
`
	p, err := ass.NewParser(strings.NewReader(script))
	require.NoError(t, err)

	doc, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, doc.Styles, 1)
	require.Len(t, doc.Events, 1)
	// 行号按原始文件计数，跳过的内嵌区块也占行号
	require.Equal(t, uint(14), doc.Events[0].LineNum)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		expect error
	}{
		{
			name: "缺少样式区块",
			script: `[Events]
Format: Layer, Start, End, Style, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,文本
`,
			expect: ass.ErrStyleParseFailed,
		},
		{
			name: "缺少事件区块",
			script: `[V4+ Styles]
Format: Name, Fontname, Fontsize, Bold, Italic
Style: Default,Arial,48,0,0
`,
			expect: ass.ErrEventParseFailed,
		},
		{
			name: "样式行早于格式定义",
			script: `[V4+ Styles]
Style: Default,Arial,48,0,0
`,
			expect: ass.ErrMissingFormat,
		},
		{
			name: "事件行早于格式定义",
			script: `[V4+ Styles]
Format: Name, Fontname, Fontsize, Bold, Italic
Style: Default,Arial,48,0,0

[Events]
Dialogue: 0,0:00:01.00,0:00:02.00,Default,文本
`,
			expect: ass.ErrMissingFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ass.NewParser(strings.NewReader(tc.script))
			require.NoError(t, err)

			_, err = p.Parse()
			require.ErrorIs(t, err, tc.expect)
		})
	}
}

func TestParseDataLineLastFieldKeepsCommas(t *testing.T) {
	format, err := ass.ParseFormat("Format: Layer, Start, End, Style, Text")
	require.NoError(t, err)
	require.Equal(t, []string{"Layer", "Start", "End", "Style", "Text"}, format.Fields)

	fields, err := ass.ParseDataLine("Dialogue: 0,0:00:01.00,0:00:02.00,Default,你好，世界, 再见", format)
	require.NoError(t, err)
	require.Equal(t, "Default", fields["Style"])
	require.Equal(t, "你好，世界, 再见", fields["Text"])
}

func TestParseDataLineMalformed(t *testing.T) {
	format, err := ass.ParseFormat("Format: Layer, Start, End, Style, Text")
	require.NoError(t, err)

	// 数据行对样式和事件通用，错误不能偏向某一侧的哨兵
	_, err = ass.ParseDataLine("no separator here", format)
	require.Error(t, err)
	require.NotErrorIs(t, err, ass.ErrInvalidStyleFormat)
	require.NotErrorIs(t, err, ass.ErrInvalidEventFormat)
}
