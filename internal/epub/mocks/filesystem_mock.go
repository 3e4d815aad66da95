// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ikota3/images-utility/internal/epub/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool

	// RenameFailures は最初のn回のRenameを失敗させます
	RenameFailures int
	// RemoveFailures は最初のn回のRemoveDirを失敗させます
	RemoveFailures int

	Renames     [][2]string
	RemovedDirs []string
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(path string) bool {
	_, exists := fs.Files[path]
	return exists
}

// IsDir はディレクトリとして存在するか確認します
func (fs *MockFileSystem) IsDir(path string) bool {
	return fs.Dirs[path]
}

// ReadDir はディレクトリ直下のエントリを列挙します
func (fs *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	if !fs.Dirs[dirname] {
		return nil, errors.New("directory not found")
	}

	prefix := dirname + string(filepath.Separator)
	seen := make(map[string]bool)
	var entries []interfaces.DirEntry

	add := func(path string, isDir bool) {
		rest := strings.TrimPrefix(path, prefix)
		parts := strings.SplitN(rest, string(filepath.Separator), 2)
		name := parts[0]
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		entries = append(entries, &mockDirEntry{
			name:  name,
			isDir: len(parts) > 1 || isDir,
		})
	}

	for path := range fs.Files {
		if strings.HasPrefix(path, prefix) {
			add(path, false)
		}
	}
	for path := range fs.Dirs {
		if strings.HasPrefix(path, prefix) {
			add(path, true)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// Rename はファイルまたはディレクトリの名前を変更します
func (fs *MockFileSystem) Rename(oldpath, newpath string) error {
	if fs.RenameFailures > 0 {
		fs.RenameFailures--
		return errors.New("rename failed")
	}

	fs.Renames = append(fs.Renames, [2]string{oldpath, newpath})

	if fs.Dirs[oldpath] {
		delete(fs.Dirs, oldpath)
		fs.Dirs[newpath] = true
		fs.renameChildren(oldpath, newpath)
		return nil
	}

	if data, ok := fs.Files[oldpath]; ok {
		delete(fs.Files, oldpath)
		fs.Files[newpath] = data
		return nil
	}

	return errors.New("no such file or directory")
}

// renameChildren はディレクトリ配下のパスをすべて付け替えます
func (fs *MockFileSystem) renameChildren(oldpath, newpath string) {
	oldPrefix := oldpath + string(filepath.Separator)
	newPrefix := newpath + string(filepath.Separator)

	for path, data := range fs.Files {
		if strings.HasPrefix(path, oldPrefix) {
			delete(fs.Files, path)
			fs.Files[newPrefix+strings.TrimPrefix(path, oldPrefix)] = data
		}
	}
	for path := range fs.Dirs {
		if strings.HasPrefix(path, oldPrefix) {
			delete(fs.Dirs, path)
			fs.Dirs[newPrefix+strings.TrimPrefix(path, oldPrefix)] = true
		}
	}
}

// RemoveDir は空のディレクトリを削除します
func (fs *MockFileSystem) RemoveDir(path string) error {
	if fs.RemoveFailures > 0 {
		fs.RemoveFailures--
		return errors.New("remove failed")
	}

	if !fs.Dirs[path] {
		return errors.New("directory not found")
	}

	delete(fs.Dirs, path)
	fs.RemovedDirs = append(fs.RemovedDirs, path)
	return nil
}

// mockDirEntry はテスト用のディレクトリエントリ
type mockDirEntry struct {
	name  string
	isDir bool
}

// Name はエントリ名を返します
func (de *mockDirEntry) Name() string {
	return de.name
}

// IsDir はディレクトリかどうかを返します
func (de *mockDirEntry) IsDir() bool {
	return de.isDir
}
