package app

import "errors"

var (
	// ErrInvalidInput は入力パスが存在しない場合のエラー
	ErrInvalidInput = errors.New("有効なディレクトリまたはファイルを指定してください")

	// ErrNotEPubFile は入力ファイルがEPubでない場合のエラー
	ErrNotEPubFile = errors.New("EPubファイルを指定してください")

	// ErrInvalidOutputDir は出力先ディレクトリが存在しない場合のエラー
	ErrInvalidOutputDir = errors.New("有効な出力先ディレクトリを指定してください")
)
