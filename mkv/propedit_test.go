package mkv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/naveen-98/FontCollector/font"

	"github.com/stretchr/testify/require"
)

func TestDeleteFontArgs(t *testing.T) {
	args := deleteFontArgs("/videos/ep01.mkv")

	require.Equal(t, "/videos/ep01.mkv", args[0])
	require.Len(t, args, 1+len(fontMIMETypes)*2)
	// 每种字体 MIME 类型对应一组 --delete-attachment
	for i, mime := range fontMIMETypes {
		require.Equal(t, "--delete-attachment", args[1+i*2])
		require.Equal(t, "mime-type:"+mime, args[2+i*2])
	}
}

func TestAttachFontArgs(t *testing.T) {
	fonts := []font.Descriptor{
		{Path: "/fonts/arial.ttf", Family: "arial", Weight: 400},
		{Path: "/fonts/arial.ttf", Family: "arial", Weight: 700}, // 同一文件承载多个面
		{Path: "/fonts/song.otf", Family: "宋体", Weight: 400},
	}

	args := attachFontArgs("/videos/ep01.mkv", fonts)
	// 同一个文件只挂载一次
	require.Equal(t, []string{
		"/videos/ep01.mkv",
		"--add-attachment", "/fonts/arial.ttf",
		"--add-attachment", "/fonts/song.otf",
	}, args)
}

func TestIsMatroska(t *testing.T) {
	dir := t.TempDir()

	// EBML 头 + DocType "matroska"
	mkvHead := append([]byte{0x1a, 0x45, 0xdf, 0xa3, 0x93, 0x42, 0x82, 0x88},
		[]byte("matroska")...)
	mkvPath := filepath.Join(dir, "video.mkv")
	require.NoError(t, os.WriteFile(mkvPath, mkvHead, 0644))

	ok, err := IsMatroska(mkvPath)
	require.NoError(t, err)
	require.True(t, ok)

	txtPath := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("just text"), 0644))

	ok, err = IsMatroska(txtPath)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = IsMatroska(filepath.Join(dir, "absent.mkv"))
	require.Error(t, err)
}

func TestNewPropEditExplicitPath(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "mkvpropedit")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	p, err := NewPropEdit(bin)
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = NewPropEdit(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
