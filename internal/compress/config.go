// Package compress はディレクトリごとの圧縮ファイル作成を行います
package compress

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/ikota3/images-utility/internal/epub/fileutil"
)

const Version = "0.1.0"

// フラグ名
const (
	InputFlag  = "input"
	OutputFlag = "output"
	FormatFlag = "format"
	YesFlag    = "yes"
)

// SupportedFormats は対応している圧縮形式
var SupportedFormats = []string{"zip"}

// Config は圧縮処理の設定を保持します
type Config struct {
	InputDir  string
	OutputDir string // 未指定の場合はInputDirと同じ
	Format    string
	Yes       bool // 確認せずに実行する
}

// RegisterFlags はcompressdirコマンドのフラグを登録します
func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:  InputFlag + ", i",
			Usage: "directory whose subdirectories will be compressed",
		},
		cli.StringFlag{
			Name:  OutputFlag + ", o",
			Usage: "where the compressed files will be output (default: the input directory)",
		},
		cli.StringFlag{
			Name:  FormatFlag + ", f",
			Usage: "compressed file format",
			Value: "zip",
		},
		cli.BoolFlag{
			Name:  YesFlag + ", y",
			Usage: "execute immediately without asking",
		},
	)
}

// NewConfig はCLIコンテキストから設定を組み立てます
func NewConfig(c *cli.Context) *Config {
	cfg := &Config{
		InputDir:  c.String(InputFlag),
		OutputDir: c.String(OutputFlag),
		Format:    strings.ToLower(c.String(FormatFlag)),
		Yes:       c.Bool(YesFlag),
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.InputDir
	}
	return cfg
}

// Validate は設定を検証します
func (c *Config) Validate() error {
	if !fileutil.IsDir(c.InputDir) {
		return fmt.Errorf("%w: %s", ErrInvalidInputDir, c.InputDir)
	}

	if !fileutil.IsDir(c.OutputDir) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputDir, c.OutputDir)
	}

	if !isSupportedFormat(c.Format) {
		return fmt.Errorf("%w: %s (対応形式: %s)", ErrUnsupportedFormat, c.Format, strings.Join(SupportedFormats, ", "))
	}

	return nil
}

// isSupportedFormat は対応している圧縮形式かどうかを判定します
func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
