// Package unpack はEPub内の画像を書き出し、書籍名のディレクトリに並べ直します
package unpack

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/ikota3/images-utility/internal/epub/fileutil"
	"github.com/ikota3/images-utility/internal/epub/interfaces"
	"github.com/ikota3/images-utility/internal/epub/models"
)

// Unpacker はEPubから画像を展開し、ディレクトリ構成を整えます。
//
// 展開後のディレクトリは次の手順で並べ直します。
//
//	{output}/{第1ディレクトリ}/{第2ディレクトリ}/*  展開直後の構成
//	{output}/{書籍名}/{第2ディレクトリ}/*           第1ディレクトリを書籍名にリネーム
//	{output}/{書籍名}/*                             画像を書籍名ディレクトリ直下に移動
//	{output}/{書籍名}/*                             空になった第2ディレクトリを削除
type Unpacker struct {
	fs            interfaces.FileSystem
	images        interfaces.ImageArchive
	retryInterval time.Duration
}

// New は新しいUnpackerを作成します
func New(fs interfaces.FileSystem, images interfaces.ImageArchive) *Unpacker {
	return &Unpacker{
		fs:            fs,
		images:        images,
		retryInterval: time.Second,
	}
}

// Unpack はEPubファイル内のすべての画像を出力先ディレクトリに展開します
func (u *Unpacker) Unpack(ctx context.Context, epubPath, outputDir string) error {
	imagePaths, err := u.images.ListImages(epubPath)
	if err != nil {
		return errors.Wrapf(err, "failed to list images in %s", epubPath)
	}
	if len(imagePaths) == 0 {
		return errors.Wrapf(ErrNoImages, "%s", epubPath)
	}

	base := fileutil.BaseWithoutExt(epubPath)

	log.Infof("EXTRACTING... %s", base)
	bar := progressbar.Default(int64(len(imagePaths)))
	err = u.images.ExtractImages(ctx, epubPath, outputDir, func() {
		_ = bar.Add(1)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to extract images in %s", epubPath)
	}
	log.Infof("EXTRACT COMPLETE! %s", base)

	layout, err := resolveLayout(imagePaths, base)
	if err != nil {
		return err
	}

	return u.arrange(ctx, outputDir, layout)
}

// resolveLayout は展開された画像のアーカイブ内パスからディレクトリ構成を割り出します
func resolveLayout(imagePaths []string, base string) (models.UnpackLayout, error) {
	// アーカイブ内のパスは常にスラッシュ区切り
	parts := strings.Split(imagePaths[0], "/")
	if len(parts) < 3 {
		return models.UnpackLayout{}, errors.Wrapf(ErrUnexpectedLayout, "%s", imagePaths[0])
	}

	return models.UnpackLayout{
		FirstDir:  parts[0],
		SecondDir: parts[1],
		BookDir:   base,
	}, nil
}

// arrange は展開後のディレクトリを書籍名の構成に並べ直します
func (u *Unpacker) arrange(ctx context.Context, outputDir string, layout models.UnpackLayout) error {
	// 第1ディレクトリを書籍名にリネーム
	before := filepath.Join(outputDir, layout.FirstDir)
	after := filepath.Join(outputDir, layout.BookDir)
	u.withRetry(ctx, "renaming", func() error {
		return u.fs.Rename(before, after)
	})
	log.Infof("Rename %s -> %s", before, after)

	// 画像を書籍名ディレクトリ直下に移動
	imageDir := filepath.Join(after, layout.SecondDir)
	entries, err := u.fs.ReadDir(imageDir)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", imageDir)
	}

	log.Infof("Move %s -> %s", filepath.Join(imageDir, "*"), filepath.Join(after, "*"))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(imageDir, entry.Name())
		dst := filepath.Join(after, entry.Name())
		if err := u.fs.Rename(src, dst); err != nil {
			return errors.Wrapf(err, "failed to move %s", src)
		}
	}

	// 空になったディレクトリを削除
	log.Infof("Delete %s", imageDir)
	u.withRetry(ctx, "deleting", func() error {
		return u.fs.RemoveDir(imageDir)
	})

	return nil
}

// withRetry は一時的なOSエラーに備えて操作を成功するまで繰り返します。
// 失敗のたびに一定間隔を置いて再試行します。
func (u *Unpacker) withRetry(ctx context.Context, op string, f func() error) {
	for {
		err := f()
		if err == nil {
			return
		}

		log.WithError(err).Errorf("Exception occurred in %s...", op)
		log.Error("Try again...")

		select {
		case <-ctx.Done():
			return
		case <-time.After(u.retryInterval):
		}
	}
}
