package font

import (
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/naveen-98/FontCollector/ass"
)

var (
	tagOS2  = ot.MustNewTag("OS/2")
	tagFvar = ot.MustNewTag("fvar")
)

// ParseFontFile 提取一个字体文件（.ttf/.otf/.ttc/.otc）中全部字体面的元数据
// 集合文件里的每个字体面各产生一个 Descriptor
func ParseFontFile(path string) ([]Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open font file %s: %w", path, err)
	}
	defer file.Close()

	loaders, err := ot.NewLoaders(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load font file %s: %w", path, err)
	}

	descriptors := make([]Descriptor, 0, len(loaders))
	for _, ld := range loaders {
		desc, err := gotext.Describe(ld, nil)
		if err != nil {
			continue // 无法识别的字体面直接跳过
		}
		d := Descriptor{
			Path:     path,
			Family:   ass.NormalizeFontName(desc.Family),
			Weight:   normalizeWeightClass(int(desc.Aspect.Weight)),
			Italic:   desc.Aspect.Style == gotext.StyleItalic,
			Variable: ld.HasTable(tagFvar),
		}
		// OS/2 表是字重与斜体的权威来源
		// 缺表的字体保留上面的推断值（常规 400、不斜体）
		if raw, err := ld.RawTable(tagOS2); err == nil {
			if os2, _, err := tables.ParseOs2(raw); err == nil {
				d.Weight = normalizeWeightClass(int(os2.USWeightClass))
				d.Italic = os2.FsSelection&0b1 > 0
			}
		}
		descriptors = append(descriptors, d)
	}
	if len(descriptors) == 0 {
		return nil, ErrNoValidFontFace
	}
	return descriptors, nil
}

// 个别设计师把字重写成 1-9，OS/2 规范要求 100-900
func normalizeWeightClass(weight int) int {
	if weight >= 1 && weight <= 9 {
		return weight * 100
	}
	return weight
}
