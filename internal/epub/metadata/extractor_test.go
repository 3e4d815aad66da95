package metadata

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ikota3/images-utility/internal/epub/models"
)

const testContainerXML = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// writeEPub はテスト用のEPub（ZIP）ファイルを作成します
func writeEPub(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.epub")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write epub: %v", err)
	}
	return path
}

func TestOPFExtractor_Extract(t *testing.T) {
	opf := `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:title>テスト　タイトル</dc:title>
    <dc:creator>山田 太郎</dc:creator>
    <meta name="book-type" content="comic"/>
  </metadata>
</package>`

	path := writeEPub(t, map[string]string{
		"META-INF/container.xml": testContainerXML,
		"OEBPS/content.opf":      opf,
	})

	info, err := NewOPFExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if info.Title != "テスト　タイトル" {
		t.Errorf("Title = %q; want %q", info.Title, "テスト　タイトル")
	}
	// 著者の空白（半角・全角）は取り除かれる
	if info.Author != "山田太郎" {
		t.Errorf("Author = %q; want %q", info.Author, "山田太郎")
	}
	// ジャンルは大文字になる
	if info.Genre != "COMIC" {
		t.Errorf("Genre = %q; want %q", info.Genre, "COMIC")
	}
}

func TestOPFExtractor_Extract_FullwidthSpaceInAuthor(t *testing.T) {
	opf := `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:title>Title</dc:title>
    <dc:creator>山田　太郎</dc:creator>
  </metadata>
</package>`

	path := writeEPub(t, map[string]string{
		"META-INF/container.xml": testContainerXML,
		"OEBPS/content.opf":      opf,
	})

	info, err := NewOPFExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if info.Author != "山田太郎" {
		t.Errorf("Author = %q; want %q", info.Author, "山田太郎")
	}
}

func TestOPFExtractor_Extract_MissingAuthorAndGenre(t *testing.T) {
	opf := `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:title>Title</dc:title>
  </metadata>
</package>`

	path := writeEPub(t, map[string]string{
		"META-INF/container.xml": testContainerXML,
		"OEBPS/content.opf":      opf,
	})

	info, err := NewOPFExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if info.Author != models.NotFound {
		t.Errorf("Author = %q; want %q", info.Author, models.NotFound)
	}
	if info.Genre != models.NotFound {
		t.Errorf("Genre = %q; want %q", info.Genre, models.NotFound)
	}
}

func TestOPFExtractor_Extract_MissingTitle(t *testing.T) {
	opf := `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:creator>Author</dc:creator>
  </metadata>
</package>`

	path := writeEPub(t, map[string]string{
		"META-INF/container.xml": testContainerXML,
		"OEBPS/content.opf":      opf,
	})

	_, err := NewOPFExtractor().Extract(path)
	if !errors.Is(err, ErrTitleNotFound) {
		t.Errorf("Extract error = %v; want ErrTitleNotFound", err)
	}
}

func TestOPFExtractor_Extract_MissingContainer(t *testing.T) {
	path := writeEPub(t, map[string]string{
		"mimetype": "application/epub+zip",
	})

	_, err := NewOPFExtractor().Extract(path)
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("Extract error = %v; want ErrContainerNotFound", err)
	}
}

func TestOPFExtractor_Extract_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.epub")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewOPFExtractor().Extract(path)
	if !errors.Is(err, ErrOpenEPub) {
		t.Errorf("Extract error = %v; want ErrOpenEPub", err)
	}
}

func TestParseContainer(t *testing.T) {
	opfPath, err := parseContainer([]byte(testContainerXML))
	if err != nil {
		t.Fatalf("parseContainer failed: %v", err)
	}
	if opfPath != "OEBPS/content.opf" {
		t.Errorf("opfPath = %q; want %q", opfPath, "OEBPS/content.opf")
	}
}

func TestParseContainer_NoRootfile(t *testing.T) {
	data := `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles/>
</container>`

	_, err := parseContainer([]byte(data))
	if !errors.Is(err, ErrRootfileNotFound) {
		t.Errorf("parseContainer error = %v; want ErrRootfileNotFound", err)
	}
}

func TestParseOPF_WithBOM(t *testing.T) {
	opf := "\xEF\xBB\xBF" + `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:title>Title</dc:title>
  </metadata>
</package>`

	pkg, err := parseOPF([]byte(opf))
	if err != nil {
		t.Fatalf("parseOPF failed: %v", err)
	}
	if len(pkg.Metadata.Titles) != 1 || pkg.Metadata.Titles[0] != "Title" {
		t.Errorf("Titles = %v; want [Title]", pkg.Metadata.Titles)
	}
}
