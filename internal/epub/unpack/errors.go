package unpack

import "errors"

var (
	// ErrNoImages はアーカイブ内に画像が存在しない場合のエラー
	ErrNoImages = errors.New("アーカイブ内に画像がありません")

	// ErrUnexpectedLayout は画像のアーカイブ内パスが想定した構成でない場合のエラー
	ErrUnexpectedLayout = errors.New("画像のディレクトリ構成が想定と異なります")
)
