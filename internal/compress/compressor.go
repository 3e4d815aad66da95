package compress

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Compressor は入力ディレクトリ直下の各ディレクトリを個別の圧縮ファイルにします
type Compressor struct {
	config *Config
	in     io.Reader
	out    io.Writer
}

// New は新しいCompressorを作成します
func New(cfg *Config) *Compressor {
	return &Compressor{
		config: cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Run は入力ディレクトリ直下の各ディレクトリを圧縮します
func (c *Compressor) Run(ctx context.Context) error {
	if err := c.config.Validate(); err != nil {
		return err
	}

	dirs, err := c.subdirectories()
	if err != nil {
		return err
	}

	log.Infof("%d directories will be executed.", len(dirs))

	if !c.config.Yes {
		if Ask(c.in, c.out) == ResponseNo {
			log.Info("Abort...")
			return nil
		}
	}

	log.Info("Start Compressing each directories...")

	bar := progressbar.Default(int64(len(dirs)))
	for _, dir := range dirs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		log.Infof("Compressing %s", dir)

		src := filepath.Join(c.config.InputDir, dir)
		dest := filepath.Join(c.config.OutputDir, dir+".zip")
		if err := zipDirectory(src, dest); err != nil {
			return errors.Wrapf(err, "failed to compress %s", dir)
		}

		log.Infof("Compress complete! The %s file is located at %s", c.config.Format, dest)
		_ = bar.Add(1)
	}

	return nil
}

// subdirectories は入力ディレクトリ直下のディレクトリ名を列挙します
func (c *Compressor) subdirectories() ([]string, error) {
	entries, err := os.ReadDir(c.config.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", c.config.InputDir)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// zipDirectory はディレクトリの内容をZIPファイルに書き出します。
// エントリ名はディレクトリからの相対パス（スラッシュ区切り）になります。
func zipDirectory(srcDir, destZip string) error {
	zipFile, err := os.Create(destZip)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", destZip)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return errors.Wrapf(err, "failed to write %s", destZip)
	}

	return zw.Close()
}
