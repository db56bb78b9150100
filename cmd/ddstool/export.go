package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/logger"
)

func exportCmd() *cli.Command {
	var (
		out                string
		layer, face, level int
	)

	return &cli.Command{
		Name:      "export",
		Usage:     "Decode one subresource to PNG, BMP or TIFF",
		ArgsUsage: "<file.dds>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path (.png, .bmp, .tif, .tiff)", Destination: &out, Required: true},
			&cli.IntFlag{Name: "layer", Usage: "array layer", Destination: &layer},
			&cli.IntFlag{Name: "face", Usage: "cube face", Destination: &face},
			&cli.IntFlag{Name: "level", Usage: "mip level", Destination: &level},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("missing input file")
			}
			if layer < 0 || face < 0 || level < 0 {
				return errors.New("layer, face and level must not be negative")
			}

			img, err := dds.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			// #nosec G115 -- checked non-negative above.
			decoded, err := img.DecodeImage(uint32(layer), uint32(face), uint32(level), nil)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if err := writeImage(out, decoded); err != nil {
				return err
			}

			logger.FromContext(ctx).Info("exported", "file", path, "out", out,
				"layer", layer, "face", face, "level", level)
			return nil
		},
	}
}

func writeImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}

	return f.Close()
}
