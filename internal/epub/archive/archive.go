// Package archive はEPubアーカイブ（ZIP）内の画像ファイルの列挙と展開を行います
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// maxEntrySize はZIPエントリ1つあたりの展開サイズ上限。zip爆弾対策。
const maxEntrySize int64 = 256 * 1024 * 1024

// listExtensions は展開対象とする画像の拡張子
var listExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// countExtensions は枚数カウントの対象とする画像の拡張子。gifは含めない。
var countExtensions = []string{".jpg", ".jpeg", ".png"}

// reExcludedImageDir は展開対象から除外するディレクトリ（出版社の宣伝画像など）
var reExcludedImageDir = regexp.MustCompile(`[\\/]public(image|_image| image)s?`)

// ZipImageArchive はZIPとしてEPubを開き画像エントリを扱います
type ZipImageArchive struct{}

// NewZipImageArchive は新しいZipImageArchiveを作成します
func NewZipImageArchive() *ZipImageArchive {
	return &ZipImageArchive{}
}

// ListImages はアーカイブ内の画像エントリ名を列挙します。
// 宣伝画像用のディレクトリ配下のエントリは除外します。
func (a *ZipImageArchive) ListImages(archivePath string) ([]string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenArchive, archivePath, err)
	}
	defer zr.Close()

	var images []string
	for _, f := range zr.File {
		if !hasAnySuffix(f.Name, listExtensions) {
			continue
		}
		if reExcludedImageDir.MatchString(f.Name) {
			continue
		}
		images = append(images, f.Name)
	}

	return images, nil
}

// CountImages はアーカイブ内の画像エントリ数を返します
func (a *ZipImageArchive) CountImages(archivePath string) (int, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOpenArchive, archivePath, err)
	}
	defer zr.Close()

	count := 0
	for _, f := range zr.File {
		if hasAnySuffix(f.Name, countExtensions) {
			count++
		}
	}

	return count, nil
}

// ExtractImages は画像エントリをアーカイブ内のパスを保ったまま出力先に展開します。
// エントリを1つ展開するたびに onExtract を呼び出します。
func (a *ZipImageArchive) ExtractImages(ctx context.Context, archivePath, outputDir string, onExtract func()) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOpenArchive, archivePath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !hasAnySuffix(f.Name, listExtensions) {
			continue
		}
		if reExcludedImageDir.MatchString(f.Name) {
			continue
		}

		if err := extractEntry(f, outputDir); err != nil {
			return err
		}

		if onExtract != nil {
			onExtract()
		}
	}

	return nil
}

// extractEntry はZIPエントリを出力先ディレクトリに書き出します
func extractEntry(f *zip.File, outputDir string) error {
	if !isSafePath(f.Name) {
		return fmt.Errorf("%w: %s", ErrUnsafeEntryPath, f.Name)
	}
	if f.UncompressedSize64 > uint64(maxEntrySize) {
		return fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}

	target := filepath.Join(outputDir, filepath.FromSlash(f.Name))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreateDirectory, target, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadEntry, f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreateFile, target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(rc, maxEntrySize)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadEntry, f.Name, err)
	}

	return nil
}

// isSafePath はZIPエントリのパスがアーカイブ外に出ないことを検査します
func isSafePath(p string) bool {
	cleaned := path.Clean(p)
	if strings.HasPrefix(cleaned, "/") {
		return false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	return true
}

// hasAnySuffix は名前がいずれかの拡張子で終わるかを判定します
func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
