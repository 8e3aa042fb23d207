package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveen-98/FontCollector/ass"
	"github.com/naveen-98/FontCollector/font"
	"github.com/naveen-98/FontCollector/logging"
	"github.com/naveen-98/FontCollector/mkv"
)

var (
	inputPath       string
	outputDir       string
	mkvPath         string
	propEditPath    string
	deleteFonts     bool
	additionalFonts []string
	dbPath          string
	verbose         bool

	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "fontcollector",
	Short: "Font collector for Advanced SubStation Alpha scripts",
	Long: `FontCollector resolves every font face an ASS subtitle script actually
renders with, matches the requirements against the fonts available on this
machine, and copies the selected files and/or attaches them to a Matroska
container with mkvpropedit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Subtitle file, must be an ASS script")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory the matched font files are copied to")
	rootCmd.Flags().StringVar(&mkvPath, "mkv", "", "Matroska file the matched fonts are attached to")
	rootCmd.Flags().StringVar(&propEditPath, "mkvpropedit", "", "Path to mkvpropedit when it is not in PATH")
	rootCmd.Flags().BoolVarP(&deleteFonts, "delete-fonts", "d", false, "Delete the fonts attached to the mkv before attaching the new ones")
	rootCmd.Flags().StringSliceVar(&additionalFonts, "additional-fonts", nil, "Extra font file or directory with fonts, may be repeated")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Font database file, loaded when it exists, written after scanning otherwise")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	if strings.ToLower(filepath.Ext(inputPath)) != ".ass" {
		return fmt.Errorf("the input file %q is not an .ass file", inputPath)
	}
	if outputDir != "" && !isDir(outputDir) {
		return fmt.Errorf("the output path %q is not a valid folder", outputDir)
	}

	var propEdit *mkv.PropEdit
	if mkvPath != "" {
		ok, err := mkv.IsMatroska(mkvPath)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("the file %q is not a Matroska file", mkvPath)
		}
		propEdit, err = mkv.NewPropEdit(propEditPath)
		if err != nil {
			return err
		}
	}

	collection, err := buildCollection()
	if err != nil {
		return err
	}
	logger.Infow("font collection ready", "fonts", collection.Len())

	doc, err := parseDocument(inputPath)
	if err != nil {
		return err
	}

	result, err := font.Resolve(doc.Styles, doc.Events, collection.Fonts(), func(warnErr error) {
		logger.Warnw("override tag ignored", "reason", warnErr)
	})
	if err != nil {
		return err
	}

	for style, desc := range result.Found {
		logger.Debugw("font matched", "style", style.String(), "font", desc.Path)
	}
	if len(result.Missing) > 0 {
		logger.Errorw("some fonts were not found, are they installed?",
			"fonts", strings.Join(result.Missing, ", "))
	} else {
		logger.Infow("all fonts found", "styles", len(result.Found))
	}

	fonts := result.Fonts()
	for i := range fonts {
		if fonts[i].Variable {
			// libass 不支持可变字体，提示但不阻止
			logger.Warnw("variable font selected, most subtitle renderers can not use it as-is",
				"font", fonts[i].Path)
		}
	}

	if outputDir != "" {
		if err := font.CopyFiles(fonts, outputDir); err != nil {
			return err
		}
		logger.Infow("fonts copied", "dir", outputDir, "count", len(fonts))
	}

	if propEdit != nil {
		ctx := cmd.Context()
		if deleteFonts {
			if err := propEdit.DeleteFonts(ctx, mkvPath); err != nil {
				return err
			}
			logger.Infow("deleted attached fonts", "mkv", mkvPath)
		}
		if err := propEdit.AttachFonts(ctx, mkvPath, fonts); err != nil {
			return err
		}
		logger.Infow("fonts attached", "mkv", mkvPath, "count", len(fonts))
	}
	return nil
}

// buildCollection 构建字体池：优先读数据库，否则扫描系统与附加路径
func buildCollection() (*font.Collection, error) {
	collection := font.NewCollection()

	if dbPath != "" {
		if _, err := os.Stat(dbPath); err == nil {
			if err := collection.Load(dbPath); err != nil {
				return nil, err
			}
			logger.Debugw("font database loaded", "db", dbPath)
			return collection, nil
		}
	}

	var dirs, files []string
	for _, p := range additionalFonts {
		fi, err := os.Stat(p)
		switch {
		case err != nil:
			return nil, fmt.Errorf("additional font path %q does not exist", p)
		case fi.IsDir():
			dirs = append(dirs, p)
		default:
			files = append(files, p)
		}
	}

	err := collection.Build(dirs, files, true, func(buildErr error) bool {
		if _, ok := buildErr.(*font.InfoMsg); ok {
			logger.Infow("font scan", "status", buildErr)
		} else {
			logger.Warnw("font skipped", "reason", buildErr)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if dbPath != "" {
		if err := collection.Save(dbPath); err != nil {
			return nil, err
		}
		logger.Debugw("font database saved", "db", dbPath)
	}
	return collection, nil
}

func parseDocument(path string) (*ass.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	parser, err := ass.NewParser(file)
	if err != nil {
		return nil, err
	}
	return parser.Parse()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
