// Package config はepubinfoコマンドの設定管理を行います
package config

import (
	"fmt"

	"github.com/urfave/cli"
)

const Version = "0.1.0"

// フラグ名
const (
	InputFlag   = "input"
	OutputFlag  = "output"
	NoGenreFlag = "no-genre"
	DebugFlag   = "debug"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	InputPath string // 対象のEPubファイルまたはディレクトリ
	OutputDir string // unpackの出力先ディレクトリ
	ShowGenre bool   // リネームコマンドにジャンルを表示するか
	DebugMode bool
}

// RegisterCommonFlags はすべてのサブコマンドで共通のフラグを登録します
func RegisterCommonFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:  InputFlag + ", i",
			Usage: "path to an EPub file or a directory containing EPub files",
		},
		cli.BoolFlag{
			Name:  DebugFlag + ", d",
			Usage: "enable debug output",
		},
	)
}

// RegisterShowRenameFlags はshow-renameサブコマンドのフラグを登録します
func RegisterShowRenameFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.BoolFlag{
			Name:  NoGenreFlag,
			Usage: "hide the book's genre from the rename command",
		},
	)
}

// RegisterUnpackFlags はunpackサブコマンドのフラグを登録します
func RegisterUnpackFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:  OutputFlag + ", o",
			Usage: "output directory (default: the input directory)",
		},
	)
}

// New はCLIコンテキストから設定を組み立てます
func New(c *cli.Context) *Config {
	return &Config{
		InputPath: c.String(InputFlag),
		OutputDir: c.String(OutputFlag),
		ShowGenre: !c.Bool(NoGenreFlag),
		DebugMode: c.Bool(DebugFlag),
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
