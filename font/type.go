package font

import (
	"encoding/json"
	"fmt"
	"os"
)

// Descriptor 描述一个已加载的物理字体面
// Family 已归一化（去空白、转小写、去掉前缀 @），OS/2 中 1-9 的字重已乘到 100-900
// 相等性只看 (Family, Weight, Italic)：元数据相同的两个文件互为重复，
// 满足同一个视觉需求只需要其中一个，路径不参与比较
type Descriptor struct {
	Path     string `json:"path"`     // 字体文件路径
	Family   string `json:"family"`   // 字体家族名称
	Weight   int    `json:"weight"`   // 字重
	Italic   bool   `json:"italic"`   // 是否斜体
	Variable bool   `json:"variable"` // 是否可变字体
}

// String 返回 Descriptor 的字符串表示，用于排序与日志
func (d Descriptor) String() string {
	return fmt.Sprintf("%s_%d_%t", d.Family, d.Weight, d.Italic)
}

// 去重键，路径不参与
type identity struct {
	family string
	weight int
	italic bool
}

func (d *Descriptor) identity() identity {
	return identity{family: d.Family, weight: d.Weight, italic: d.Italic}
}

// Collection 一次解析运行使用的字体池快照
// 保留加入顺序（匹配的平局规则依赖它），按元数据去重
type Collection struct {
	fonts []Descriptor
	seen  map[identity]struct{}
}

func NewCollection() *Collection {
	return &Collection{
		fonts: make([]Descriptor, 0, 64),
		seen:  make(map[identity]struct{}),
	}
}

// Add 把描述符加入集合
// 元数据重复时丢弃并返回 false
func (c *Collection) Add(d Descriptor) bool {
	key := d.identity()
	if _, ok := c.seen[key]; ok {
		return false
	}
	c.seen[key] = struct{}{}
	c.fonts = append(c.fonts, d)
	return true
}

// Fonts 返回集合内容，调用方不应修改
func (c *Collection) Fonts() []Descriptor {
	return c.fonts
}

func (c *Collection) Len() int {
	return len(c.fonts)
}

// Build 在给定目录（外加系统字体目录）下扫描字体文件并提取元数据
// fn 接收无法解析的文件等提示，返回 false 时中止扫描
func (c *Collection) Build(fontsDirs []string, extraFiles []string, withSystemFontPath bool, fn CheckErrFn) error {
	fontPaths := FindFontFiles(fontsDirs, withSystemFontPath)
	fontPaths = append(fontPaths, extraFiles...)
	if len(fontPaths) == 0 {
		return ErrNoFontFileFound
	}

	for _, fontPath := range fontPaths {
		descriptors, err := ParseFontFile(fontPath)
		if err != nil {
			if fn != nil && !fn(NewWarningMsg("failed to parse font %s: %s", fontPath, err)) {
				return err
			}
			continue
		}
		for _, d := range descriptors {
			c.Add(d)
		}
	}
	if fn != nil {
		fn(NewInfoMsg("collected %d font faces from %d files", c.Len(), len(fontPaths)))
	}
	return nil
}

// Save 把扫描结果保存为 JSON 数据库，省去下次的全盘扫描
func (c *Collection) Save(dbPath string) error {
	data, err := json.MarshalIndent(c.fonts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal font collection: %w", err)
	}
	if err := os.WriteFile(dbPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write font database to %s: %w", dbPath, err)
	}
	return nil
}

// Load 加载之前保存的数据库
func (c *Collection) Load(dbPath string) error {
	data, err := os.ReadFile(dbPath)
	if err != nil {
		return fmt.Errorf(`cannot read fonts database: "%s"`, dbPath)
	}

	var fonts []Descriptor
	if err := json.Unmarshal(data, &fonts); err != nil {
		return fmt.Errorf(`cannot load fonts database: "%s"`, dbPath)
	}
	for _, d := range fonts {
		c.Add(d)
	}
	return nil
}
