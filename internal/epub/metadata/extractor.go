// Package metadata はEPubのOPFコンテナXMLから書誌情報を取得します
package metadata

import (
	"archive/zip"
	"fmt"
	"regexp"
	"strings"

	"github.com/ikota3/images-utility/internal/epub/models"
)

// reAuthorSpaces は著者名から取り除く空白（半角スペースと全角スペース）
var reAuthorSpaces = regexp.MustCompile(`[ 　]`)

// OPFExtractor はEPub（ZIP）内のOPFファイルから書誌情報を取得します
type OPFExtractor struct{}

// NewOPFExtractor は新しいOPFExtractorを作成します
func NewOPFExtractor() *OPFExtractor {
	return &OPFExtractor{}
}

// Extract はEPubファイルから書誌情報を取得します。
// 著者とジャンルが存在しない場合は models.NotFound を設定します。
func (e *OPFExtractor) Extract(path string) (models.BookInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return models.BookInfo{}, fmt.Errorf("%w: %s: %w", ErrOpenEPub, path, err)
	}
	defer zr.Close()

	opfPath, err := e.resolveOPFPath(&zr.Reader)
	if err != nil {
		return models.BookInfo{}, err
	}

	opfFile := findFileInsensitive(&zr.Reader, opfPath)
	if opfFile == nil {
		return models.BookInfo{}, fmt.Errorf("%w: %s", ErrOPFNotFound, opfPath)
	}

	opfData, err := readZipFile(opfFile)
	if err != nil {
		return models.BookInfo{}, err
	}

	pkg, err := parseOPF(opfData)
	if err != nil {
		return models.BookInfo{}, err
	}

	return e.buildBookInfo(pkg)
}

// resolveOPFPath はコンテナ文書からOPFファイルのパスを解決します
func (e *OPFExtractor) resolveOPFPath(zr *zip.Reader) (string, error) {
	containerFile := findFileInsensitive(zr, containerPath)
	if containerFile == nil {
		return "", ErrContainerNotFound
	}

	data, err := readZipFile(containerFile)
	if err != nil {
		return "", err
	}

	return parseContainer(data)
}

// buildBookInfo は解析済みのOPFから書誌情報を組み立てます
func (e *OPFExtractor) buildBookInfo(pkg *opfPackage) (models.BookInfo, error) {
	// タイトル
	if len(pkg.Metadata.Titles) == 0 {
		return models.BookInfo{}, ErrTitleNotFound
	}
	title := pkg.Metadata.Titles[0]

	// 著者。空白は取り除く。
	author := models.NotFound
	if len(pkg.Metadata.Creators) != 0 {
		author = reAuthorSpaces.ReplaceAllString(pkg.Metadata.Creators[0], "")
	}

	// ジャンル（book-typeメタ情報）
	genre := models.NotFound
	if content, ok := pkg.metaContent("book-type"); ok {
		genre = strings.ToUpper(content)
	}

	return models.BookInfo{
		Title:  title,
		Author: author,
		Genre:  genre,
	}, nil
}
