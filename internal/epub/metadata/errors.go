package metadata

import "errors"

var (
	// ErrOpenEPub はEPubファイルを開けなかった場合のエラー
	ErrOpenEPub = errors.New("EPubファイルを開けませんでした")

	// ErrContainerNotFound はコンテナ文書が存在しない場合のエラー
	ErrContainerNotFound = errors.New("META-INF/container.xml が見つかりません")

	// ErrParseContainer はコンテナ文書の解析に失敗した場合のエラー
	ErrParseContainer = errors.New("コンテナ文書の解析に失敗しました")

	// ErrRootfileNotFound はコンテナ文書にrootfileが存在しない場合のエラー
	ErrRootfileNotFound = errors.New("コンテナ文書にrootfileがありません")

	// ErrOPFNotFound はOPFファイルが存在しない場合のエラー
	ErrOPFNotFound = errors.New("OPFファイルが見つかりません")

	// ErrParseOPF はOPFファイルの解析に失敗した場合のエラー
	ErrParseOPF = errors.New("OPFファイルの解析に失敗しました")

	// ErrTitleNotFound はOPFにタイトルが存在しない場合のエラー
	ErrTitleNotFound = errors.New("OPFにタイトルがありません")

	// ErrReadEntry はZIPエントリの読み込みに失敗した場合のエラー
	ErrReadEntry = errors.New("ZIPエントリの読み込みに失敗しました")

	// ErrEntryTooLarge はZIPエントリが大きすぎる場合のエラー
	ErrEntryTooLarge = errors.New("ZIPエントリが大きすぎます")
)
