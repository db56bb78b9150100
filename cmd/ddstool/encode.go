package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/logger"
)

func encodeCmd() *cli.Command {
	var (
		out        string
		formatName string
		maxMipMaps int
	)

	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode a PNG, BMP or TIFF image into a DDS file",
		ArgsUsage: "<image>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path", Destination: &out, Required: true},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "DXGI format (BC1-BC5, R8G8B8A8, B8G8R8A8)", Value: "BC3_UNORM", Destination: &formatName},
			&cli.IntFlag{Name: "mipmaps", Usage: "maximum mip levels (0 = full chain)", Destination: &maxMipMaps},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("missing input image")
			}
			if maxMipMaps < 0 {
				return errors.New("mipmaps must not be negative")
			}

			format, err := dds.ParseFormat(formatName)
			if err != nil {
				return err
			}

			src, err := decodeFile(path)
			if err != nil {
				return err
			}

			img, err := dds.FromImage(src, format, maxMipMaps, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := img.WriteFile(out); err != nil {
				return err
			}

			logger.FromContext(ctx).Info("encoded", "file", path, "out", out,
				"format", format.String(), "mipmaps", img.MipMapCount())
			return nil
		},
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	return img, nil
}
