package compress

import "errors"

var (
	// ErrInvalidInputDir は入力ディレクトリが存在しない場合のエラー
	ErrInvalidInputDir = errors.New("有効な入力ディレクトリを指定してください")

	// ErrInvalidOutputDir は出力先ディレクトリが存在しない場合のエラー
	ErrInvalidOutputDir = errors.New("有効な出力先ディレクトリを指定してください")

	// ErrUnsupportedFormat は対応していない圧縮形式が指定された場合のエラー
	ErrUnsupportedFormat = errors.New("対応していない圧縮形式です")
)
