package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/logger"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check that DDS files are structurally valid",
		ArgsUsage: "<file.dds>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return errors.New("missing input files")
			}

			log := logger.FromContext(ctx)
			failed := 0
			for _, path := range files {
				img, err := dds.ReadFile(path)
				if err != nil {
					failed++
					log.Error("invalid", "file", path, "err", err)
					continue
				}
				log.Info("ok", "file", path, "format", img.Format().String(),
					"width", img.Width(), "height", img.Height(), "mipmaps", img.MipMapCount())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed verification", failed, len(files))
			}

			return nil
		},
	}
}
