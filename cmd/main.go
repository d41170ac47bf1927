package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/cmd"
)

func main() {
	app := &cli.App{
		Name:  "class2swagger",
		Usage: "generate swagger definitions from scala case classes and sql migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "one of debug, info, warn and error",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "working-dir",
				Aliases: []string{"w"},
				Usage:   "directory to resolve the config and input paths against",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err.Error())
	}
}

func run(cliCtx *cli.Context) error {
	level, err := logrus.ParseLevel(cliCtx.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	wd := cliCtx.String("working-dir")
	if len(wd) == 0 {
		if wd, err = os.Getwd(); err != nil {
			return errors.New("failed to determine working directory")
		}
	}

	return cmd.Run(cmd.Settings{
		WorkingDir: wd,
		Config:     cliCtx.String("config"),
	})
}
