package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/ikota3/images-utility/internal/compress"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "compressdir"
	cliApp.Usage = "入力ディレクトリ直下の各ディレクトリを個別の圧縮ファイルにする"
	cliApp.Version = compress.Version
	cliApp.Flags = compress.RegisterFlags(nil)
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("failed to run application")
	}
}

func run(c *cli.Context) error {
	return compress.New(compress.NewConfig(c)).Run(context.Background())
}
