// Package interfaces はepubinfoコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/ikota3/images-utility/internal/epub/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(path string) bool
	IsDir(path string) bool
	ReadDir(dirname string) ([]DirEntry, error)
	Rename(oldpath, newpath string) error
	RemoveDir(path string) error
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// MetadataExtractor はEPubから書誌情報を取得するインターフェース
type MetadataExtractor interface {
	Extract(path string) (models.BookInfo, error)
}

// ImageArchive はEPubアーカイブ内の画像ファイルを扱うインターフェース
type ImageArchive interface {
	// ListImages はアーカイブ内の画像エントリ名を列挙します
	ListImages(path string) ([]string, error)

	// ExtractImages は画像エントリを出力先に展開します。
	// エントリを1つ展開するたびに onExtract を呼び出します。
	ExtractImages(ctx context.Context, path, outputDir string, onExtract func()) error

	// CountImages はアーカイブ内の画像エントリ数を返します
	CountImages(path string) (int, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
