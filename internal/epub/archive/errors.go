package archive

import "errors"

var (
	// ErrOpenArchive はアーカイブを開けなかった場合のエラー
	ErrOpenArchive = errors.New("アーカイブを開けませんでした")

	// ErrUnsafeEntryPath はエントリのパスがアーカイブ外を指している場合のエラー
	ErrUnsafeEntryPath = errors.New("エントリのパスが安全ではありません")

	// ErrEntryTooLarge はエントリが大きすぎる場合のエラー
	ErrEntryTooLarge = errors.New("エントリが大きすぎます")

	// ErrReadEntry はエントリの読み込みに失敗した場合のエラー
	ErrReadEntry = errors.New("エントリの読み込みに失敗しました")

	// ErrCreateDirectory はディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("ディレクトリの作成に失敗しました")

	// ErrCreateFile はファイルの作成に失敗した場合のエラー
	ErrCreateFile = errors.New("ファイルの作成に失敗しました")
)
