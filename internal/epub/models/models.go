// Package models はepubinfoコマンドで使用するデータモデルを定義します
package models

// NotFound は書誌情報が存在しなかった場合に設定される値
const NotFound = "NotFound"

// BookInfo はEPubのOPFから取得した書誌情報を表します
type BookInfo struct {
	Title  string
	Author string // 取得できない場合は NotFound
	Genre  string // 取得できない場合は NotFound
}

// UnpackLayout は画像を展開したあとのディレクトリ構成を表します
type UnpackLayout struct {
	FirstDir  string // アーカイブ直下のディレクトリ名
	SecondDir string // 画像が格納されているディレクトリ名
	BookDir   string // 書籍名にリネームした後のディレクトリ名
}
