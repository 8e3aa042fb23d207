package font_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/naveen-98/FontCollector/font"

	"github.com/stretchr/testify/require"
)

func TestCollectionAdd(t *testing.T) {
	c := font.NewCollection()

	require.True(t, c.Add(font.Descriptor{Path: "a.ttf", Family: "arial", Weight: 400}))
	require.True(t, c.Add(font.Descriptor{Path: "b.ttf", Family: "arial", Weight: 700}))
	// 元数据相同、路径不同的文件是重复，只保留先加入的
	require.False(t, c.Add(font.Descriptor{Path: "copy/a.ttf", Family: "arial", Weight: 400}))
	// 斜体参与去重键
	require.True(t, c.Add(font.Descriptor{Path: "i.ttf", Family: "arial", Weight: 400, Italic: true}))

	require.Equal(t, 3, c.Len())
	fonts := c.Fonts()
	require.Equal(t, "a.ttf", fonts[0].Path)
	require.Equal(t, "b.ttf", fonts[1].Path)
	require.Equal(t, "i.ttf", fonts[2].Path)
}

func TestCollectionSaveLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fonts.json")

	c := font.NewCollection()
	c.Add(font.Descriptor{Path: "/fonts/arial.ttf", Family: "arial", Weight: 400})
	c.Add(font.Descriptor{Path: "/fonts/song.otf", Family: "方正准圆_gbk", Weight: 700, Italic: true, Variable: true})
	require.NoError(t, c.Save(dbPath))

	loaded := font.NewCollection()
	require.NoError(t, loaded.Load(dbPath))
	require.Equal(t, c.Fonts(), loaded.Fonts())
}

func TestCollectionLoadErrors(t *testing.T) {
	c := font.NewCollection()
	require.Error(t, c.Load(filepath.Join(t.TempDir(), "absent.json")))

	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("not json"), 0644))
	require.Error(t, c.Load(badPath))
}

func TestBuildNoFontFile(t *testing.T) {
	c := font.NewCollection()
	err := c.Build([]string{t.TempDir()}, nil, false, nil)
	require.ErrorIs(t, err, font.ErrNoFontFileFound)
}
