package metadata

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// maxEntrySize はZIPエントリ1つあたりの展開サイズ上限。zip爆弾対策。
const maxEntrySize int64 = 64 * 1024 * 1024

// findFileInsensitive はZIPエントリをパスで検索します。
// まず完全一致を試し、見つからなければ大文字小文字を無視して比較します。
func findFileInsensitive(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}

	lower := strings.ToLower(name)
	for _, f := range zr.File {
		if strings.ToLower(f.Name) == lower {
			return f
		}
	}
	return nil
}

// readZipFile はZIPエントリの内容をすべて読み込みます。
// 宣言されたサイズが偽装されている場合に備えて実際の展開サイズも検査します。
func readZipFile(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > uint64(maxEntrySize) {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrEntryTooLarge, f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadEntry, f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadEntry, f.Name, err)
	}
	if int64(len(data)) > maxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}

	return data, nil
}

// stripBOM は先頭のUTF-8 BOMを取り除きます
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
