// Command ddstool inspects, verifies, creates and converts DX10 DDS files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/dds/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

func app() *cli.Command {
	return &cli.Command{
		Name:  "ddstool",
		Usage: "Inspect and build DX10 DDS texture containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json)",
				Value:       "text",
				Destination: &logFormat,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log := logger.ForFormat(cmd.Root().ErrWriter, logFormat, logger.ParseLevel(logLevel))
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(),
			verifyCmd(),
			newCmd(),
			exportCmd(),
			encodeCmd(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func main() {
	if err := app().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stdout returns the writer configured on the root command.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
