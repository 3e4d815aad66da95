package fileutil

import (
	"os"

	"github.com/ikota3/images-utility/internal/epub/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(path string) bool {
	return FileExists(path)
}

// IsDir はディレクトリとして存在するか確認します
func (fs *OSFileSystem) IsDir(path string) bool {
	return IsDir(path)
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = &osDirEntry{entry}
	}
	return result, nil
}

// Rename はファイルまたはディレクトリの名前を変更します
func (fs *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// RemoveDir は空のディレクトリを削除します
func (fs *OSFileSystem) RemoveDir(path string) error {
	return os.Remove(path)
}

// osDirEntry はos.DirEntryのラッパー
type osDirEntry struct {
	os.DirEntry
}

// Name はエントリ名を返します
func (de *osDirEntry) Name() string {
	return de.DirEntry.Name()
}

// IsDir はディレクトリかどうかを返します
func (de *osDirEntry) IsDir() bool {
	return de.DirEntry.IsDir()
}
