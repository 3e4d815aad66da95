// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// FileExists はファイルが存在するか確認します
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsDir がディレクトリとして存在するか確認します
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsEPubFile は拡張子からEPubファイルかどうかを判定します。大文字小文字は区別しません。
func IsEPubFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".epub")
}

// BaseWithoutExt はパスから拡張子を除いたファイル名を返します
func BaseWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SanitizeForCP932 はCP932（Windowsのコンソール）で表示できない文字を
// 代替文字に置き換えます。Shift-JISへ一度エンコードしてから復元することで、
// 表示できない文字だけを落とします。
func SanitizeForCP932(str string) (string, error) {
	encoder := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
	encoded, err := io.ReadAll(transform.NewReader(strings.NewReader(str), encoder))
	if err != nil {
		return "", err
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(encoded), japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
