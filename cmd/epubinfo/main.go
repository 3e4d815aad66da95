package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/ikota3/images-utility/internal/epub/app"
	"github.com/ikota3/images-utility/internal/epub/config"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "epubinfo"
	cliApp.Usage = "EPubの書誌情報を使ったリネーム支援と画像の取り出し"
	cliApp.Version = config.Version
	cliApp.Commands = []cli.Command{
		makeShowRenameCMD(),
		makeUnpackCMD(),
		makeCountImageCMD(),
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("failed to run application")
	}
}

func makeShowRenameCMD() cli.Command {
	cmd := cli.Command{
		Name:    "show-rename",
		Aliases: []string{"r"},
		Usage:   "show rename commands built from each EPub's metadata",
		Action:  showRename,
	}
	cmd.Flags = config.RegisterShowRenameFlags(config.RegisterCommonFlags(nil))
	return cmd
}

func showRename(c *cli.Context) error {
	return app.New(config.New(c)).ShowRename(context.Background())
}

func makeUnpackCMD() cli.Command {
	cmd := cli.Command{
		Name:    "unpack",
		Aliases: []string{"u"},
		Usage:   "unpack all images in each EPub into a directory named after the book",
		Action:  unpack,
	}
	cmd.Flags = config.RegisterUnpackFlags(config.RegisterCommonFlags(nil))
	return cmd
}

func unpack(c *cli.Context) error {
	return app.New(config.New(c)).Unpack(context.Background())
}

func makeCountImageCMD() cli.Command {
	cmd := cli.Command{
		Name:    "count-image",
		Aliases: []string{"c"},
		Usage:   "count the images in each EPub",
		Action:  countImage,
	}
	cmd.Flags = config.RegisterCommonFlags(nil)
	return cmd
}

func countImage(c *cli.Context) error {
	return app.New(config.New(c)).CountImages(context.Background())
}
