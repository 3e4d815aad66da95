// Package app はepubinfoコマンドのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ikota3/images-utility/internal/epub/archive"
	"github.com/ikota3/images-utility/internal/epub/config"
	"github.com/ikota3/images-utility/internal/epub/fileutil"
	"github.com/ikota3/images-utility/internal/epub/format"
	"github.com/ikota3/images-utility/internal/epub/interfaces"
	"github.com/ikota3/images-utility/internal/epub/metadata"
	"github.com/ikota3/images-utility/internal/epub/unpack"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config    *config.Config
	logger    *config.DebugLogger
	fs        interfaces.FileSystem
	extractor interfaces.MetadataExtractor
	images    interfaces.ImageArchive
	unpacker  *unpack.Unpacker
	out       io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Extractor  interfaces.MetadataExtractor
	Images     interfaces.ImageArchive
	Out        io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = metadata.NewOPFExtractor()
	}

	images := opts.Images
	if images == nil {
		images = archive.NewZipImageArchive()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config:    cfg,
		logger:    logger,
		fs:        fs,
		extractor: extractor,
		images:    images,
		unpacker:  unpack.New(fs, images),
		out:       out,
	}
}

// ShowRename は各EPubの書誌情報からrenameコマンドを組み立てて表示します
func (a *App) ShowRename(ctx context.Context) error {
	if err := a.validateInput(); err != nil {
		return err
	}

	return a.eachEPub(ctx, func(path string) error {
		info, err := a.extractor.Extract(path)
		if err != nil {
			return errors.Wrapf(err, "failed to extract metadata from %s", path)
		}

		line := format.BuildRenameCommand(filepath.Base(path), info, a.config.ShowGenre)

		// Windowsのコンソール（CP932）で表示できない文字を落とす
		if sanitized, err := fileutil.SanitizeForCP932(line); err == nil {
			line = sanitized
		}

		fmt.Fprintln(a.out, line)
		return nil
	})
}

// Unpack は各EPub内の画像を出力先ディレクトリに展開します
func (a *App) Unpack(ctx context.Context) error {
	if err := a.validateInput(); err != nil {
		return err
	}

	outputDir := a.config.OutputDir
	if outputDir == "" {
		// 出力先が未指定の場合は入力と同じ場所に展開する
		outputDir = a.dirname()
	}
	if !a.fs.IsDir(outputDir) {
		return errors.Wrapf(ErrInvalidOutputDir, "%s", outputDir)
	}

	return a.eachEPub(ctx, func(path string) error {
		return a.unpacker.Unpack(ctx, path, outputDir)
	})
}

// CountImages は各EPub内の画像の枚数を表示します
func (a *App) CountImages(ctx context.Context) error {
	if err := a.validateInput(); err != nil {
		return err
	}

	return a.eachEPub(ctx, func(path string) error {
		count, err := a.images.CountImages(path)
		if err != nil {
			return errors.Wrapf(err, "failed to count images in %s", path)
		}

		fmt.Fprintf(a.out, "%4d: %s\n", count, fileutil.BaseWithoutExt(path))
		return nil
	})
}

// validateInput は入力パスを検証します
func (a *App) validateInput() error {
	input := a.config.InputPath

	isFile := a.fs.FileExists(input)
	isDir := a.fs.IsDir(input)

	if !isFile && !isDir {
		return errors.Wrapf(ErrInvalidInput, "%s", input)
	}

	if isFile && !fileutil.IsEPubFile(input) {
		return errors.Wrapf(ErrNotEPubFile, "%s", input)
	}

	return nil
}

// eachEPub は対象のEPubファイルそれぞれに対して処理を実行します。
// ディレクトリとEPub以外のファイルは読み飛ばします。再帰的には探索しません。
func (a *App) eachEPub(ctx context.Context, fn func(path string) error) error {
	filenames, err := a.filenames()
	if err != nil {
		return err
	}

	dirname := a.dirname()

	for _, filename := range filenames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(dirname, filename)
		if a.fs.IsDir(path) || !fileutil.IsEPubFile(path) {
			a.logger.Printf("skip: %s\n", path)
			continue
		}

		if err := fn(path); err != nil {
			return err
		}
	}

	return nil
}

// filenames は処理対象のファイル名一覧を返します
func (a *App) filenames() ([]string, error) {
	if a.fs.FileExists(a.config.InputPath) {
		return []string{filepath.Base(a.config.InputPath)}, nil
	}

	entries, err := a.fs.ReadDir(a.config.InputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", a.config.InputPath)
	}

	filenames := make([]string, len(entries))
	for i, entry := range entries {
		filenames[i] = entry.Name()
	}
	return filenames, nil
}

// dirname は処理対象のディレクトリを返します
func (a *App) dirname() string {
	if a.fs.FileExists(a.config.InputPath) {
		return filepath.Dir(a.config.InputPath)
	}
	return a.config.InputPath
}
