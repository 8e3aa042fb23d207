package mkv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/h2non/filetype"

	"github.com/naveen-98/FontCollector/font"
)

// mpv 识别为字体附件的 MIME 类型
// 摘自 mpv 的 sub/sd_ass.c，删除附件时按这些类型匹配
var fontMIMETypes = []string{
	"application/x-truetype-font",
	"application/vnd.ms-opentype",
	"application/x-font-ttf",
	"application/x-font",
	"application/font-sfnt",
	"font/collection",
	"font/otf",
	"font/sfnt",
	"font/ttf",
}

var ErrPropEditNotFound = errors.New("mkvpropedit not found in PATH")

// PropEdit 包装 mkvpropedit 命令行工具
type PropEdit struct {
	path string
}

// NewPropEdit 定位 mkvpropedit
// path 为空时在 PATH 中查找
func NewPropEdit(path string) (*PropEdit, error) {
	if path == "" {
		found, err := exec.LookPath("mkvpropedit")
		if err != nil {
			return nil, ErrPropEditNotFound
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("invalid mkvpropedit path %s: %w", path, err)
	}
	return &PropEdit{path: path}, nil
}

// IsMatroska 检查文件是否为 Matroska 容器
func IsMatroska(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	// 文件头足够 filetype 识别容器类型
	head := make([]byte, 261)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return filetype.Is(head[:n], "mkv"), nil
}

// DeleteFonts 删除 mkv 中已附加的全部字体
func (p *PropEdit) DeleteFonts(ctx context.Context, mkvPath string) error {
	return p.run(ctx, deleteFontArgs(mkvPath))
}

// AttachFonts 把字体文件附加进 mkv
// 同一个文件只附加一次
func (p *PropEdit) AttachFonts(ctx context.Context, mkvPath string, fonts []font.Descriptor) error {
	return p.run(ctx, attachFontArgs(mkvPath, fonts))
}

func deleteFontArgs(mkvPath string) []string {
	args := make([]string, 0, 1+len(fontMIMETypes)*2)
	args = append(args, mkvPath)
	for _, mime := range fontMIMETypes {
		args = append(args, "--delete-attachment", "mime-type:"+mime)
	}
	return args
}

func attachFontArgs(mkvPath string, fonts []font.Descriptor) []string {
	args := []string{mkvPath}
	seen := make(map[string]struct{}, len(fonts))
	for i := range fonts {
		path := fonts[i].Path
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		args = append(args, "--add-attachment", path)
	}
	return args
}

// mkvpropedit 出错时会写 stderr，即使退出码为 0 也视为失败
func (p *PropEdit) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, p.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mkvpropedit failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		return fmt.Errorf("mkvpropedit reported an error: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}
