package font

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

var fontFilePattern = regexp.MustCompile(`(?i).+\.(ttf|otf|ttc|otc)$`)

// FindFontFiles 在给定目录（以及系统字体目录）下递归查找字体文件
func FindFontFiles(fontsDirs []string, withSystemFontPath bool) []string {
	if withSystemFontPath {
		fontsDirs = append(fontsDirs, getDefaultFontPaths()...)
	}
	fontsPath := make([]string, 0, 10)
	for _, dir := range fontsDirs {
		if dir == "" {
			continue
		}
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // 忽略错误
			}
			if !d.IsDir() && fontFilePattern.MatchString(d.Name()) {
				absPath, err := filepath.Abs(path)
				if err != nil {
					fontsPath = append(fontsPath, path)
				} else {
					fontsPath = append(fontsPath, absPath)
				}
			}
			return nil
		})
	}
	return fontsPath
}

// CopyFiles 把匹配到的字体文件复制到输出目录
// 同一个文件满足多个样式时只复制一次
func CopyFiles(fonts []Descriptor, outputDir string) error {
	copied := make(map[string]struct{}, len(fonts))
	for i := range fonts {
		src := fonts[i].Path
		if _, ok := copied[src]; ok {
			continue
		}
		copied[src] = struct{}{}
		if err := copyFile(src, filepath.Join(outputDir, filepath.Base(src))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open font file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
