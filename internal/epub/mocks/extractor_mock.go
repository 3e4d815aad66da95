package mocks

import (
	"context"
	"errors"

	"github.com/ikota3/images-utility/internal/epub/models"
)

// MockMetadataExtractor はテスト用の書誌情報取得モック
type MockMetadataExtractor struct {
	Infos map[string]models.BookInfo
	Err   error
}

// NewMockMetadataExtractor は新しいMockMetadataExtractorを作成します
func NewMockMetadataExtractor() *MockMetadataExtractor {
	return &MockMetadataExtractor{
		Infos: make(map[string]models.BookInfo),
	}
}

// Extract は登録済みの書誌情報を返します
func (e *MockMetadataExtractor) Extract(path string) (models.BookInfo, error) {
	if e.Err != nil {
		return models.BookInfo{}, e.Err
	}

	info, ok := e.Infos[path]
	if !ok {
		return models.BookInfo{}, errors.New("metadata not found")
	}
	return info, nil
}

// MockImageArchive はテスト用の画像アーカイブモック
type MockImageArchive struct {
	Images map[string][]string
	Counts map[string]int
	Err    error

	ExtractedTo []string
}

// NewMockImageArchive は新しいMockImageArchiveを作成します
func NewMockImageArchive() *MockImageArchive {
	return &MockImageArchive{
		Images: make(map[string][]string),
		Counts: make(map[string]int),
	}
}

// ListImages は登録済みの画像エントリ名を返します
func (a *MockImageArchive) ListImages(path string) ([]string, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Images[path], nil
}

// ExtractImages は展開先を記録し、画像の数だけonExtractを呼び出します
func (a *MockImageArchive) ExtractImages(ctx context.Context, path, outputDir string, onExtract func()) error {
	if a.Err != nil {
		return a.Err
	}

	a.ExtractedTo = append(a.ExtractedTo, outputDir)
	for range a.Images[path] {
		if onExtract != nil {
			onExtract()
		}
	}
	return nil
}

// CountImages は登録済みの画像エントリ数を返します
func (a *MockImageArchive) CountImages(path string) (int, error) {
	if a.Err != nil {
		return 0, a.Err
	}
	return a.Counts[path], nil
}
