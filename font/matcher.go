package font

import (
	"sort"

	"github.com/naveen-98/FontCollector/ass"
)

// 渲染引擎在现有字重比需求轻太多时会合成粗体
// 这里在比较时同样把明显偏轻的候选加重 150，近似该行为，按原样保留
const (
	boostGap  = 150 // 触发加重的字重差
	boostCap  = 850 // 需求字重超过该值时不再加重
	boostStep = 150 // 比较时加上的字重
)

// comparisonWeight 返回参与排序的字重
// 只影响比较值，候选描述符本身不会被修改
func comparisonWeight(required ass.Style, d *Descriptor) int {
	if d.Weight < required.Weight-boostGap && required.Weight <= boostCap {
		return d.Weight + boostStep
	}
	return d.Weight
}

// Match 在字体池中为所需样式挑选候选，返回按匹配优先级排序的列表
// 排序键依次为：斜体符合度、与需求字重的差值、加权后的字重（偏轻优先）
// 键完全相同的候选保持它们在字体池中的先后顺序，结果完全确定
func Match(required ass.Style, fonts []Descriptor) []Descriptor {
	matched := make([]Descriptor, 0, 4)
	for _, d := range fonts {
		if d.Family == required.FontName {
			matched = append(matched, d)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if a.Italic != b.Italic {
			if required.Italic {
				return a.Italic // 要求斜体时斜体面优先，哪怕字重差更大
			}
			return !a.Italic // 否则正体面优先
		}
		wa, wb := comparisonWeight(required, a), comparisonWeight(required, b)
		da, db := abs(required.Weight-wa), abs(required.Weight-wb)
		if da != db {
			return da < db
		}
		return wa < wb
	})
	return matched
}
