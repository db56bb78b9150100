package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/logger"
)

type imageInfo struct {
	File            string     `json:"file"`
	Format          string     `json:"format"`
	FormatCode      uint32     `json:"format_code"`
	Width           uint32     `json:"width"`
	Height          uint32     `json:"height"`
	Depth           uint32     `json:"depth"`
	MipMaps         uint32     `json:"mipmaps"`
	ArraySize       uint32     `json:"array_size"`
	Cubemap         bool       `json:"cubemap"`
	Dimension       string     `json:"dimension"`
	BlockCompressed bool       `json:"block_compressed"`
	BitsPerPixel    uint32     `json:"bits_per_pixel"`
	PayloadBytes    int        `json:"payload_bytes"`
	Header          dds.Header `json:"header"`
}

func describe(path string, img *dds.Image) imageInfo {
	hdr := img.Header()
	return imageInfo{
		File:            path,
		Format:          img.Format().String(),
		FormatCode:      uint32(img.Format()),
		Width:           img.Width(),
		Height:          img.Height(),
		Depth:           img.Depth(),
		MipMaps:         img.MipMapCount(),
		ArraySize:       img.ArraySize(),
		Cubemap:         img.IsCubemap(),
		Dimension:       hdr.DX10.ResourceDimension.String(),
		BlockCompressed: img.Format().IsBlockCompressed(),
		BitsPerPixel:    img.Format().BitsPerPixel(),
		PayloadBytes:    len(img.Data()),
		Header:          hdr,
	}
}

func infoCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "info",
		Usage:     "Print the geometry and format of a DDS file",
		ArgsUsage: "<file.dds>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print as JSON including the raw header", Destination: &asJSON},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("missing input file")
			}

			logger.FromContext(ctx).Debug("reading", "file", path)
			img, err := dds.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			info := describe(path, img)
			w := stdout(cmd)

			if asJSON {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(out))
				return err
			}

			_, _ = fmt.Fprintf(w, "file:       %s\n", info.File)
			_, _ = fmt.Fprintf(w, "format:     %s (%d)\n", info.Format, info.FormatCode)
			_, _ = fmt.Fprintf(w, "size:       %dx%dx%d\n", info.Width, info.Height, info.Depth)
			_, _ = fmt.Fprintf(w, "dimension:  %s\n", info.Dimension)
			_, _ = fmt.Fprintf(w, "mipmaps:    %d\n", info.MipMaps)
			_, _ = fmt.Fprintf(w, "array size: %d\n", info.ArraySize)
			_, _ = fmt.Fprintf(w, "cubemap:    %t\n", info.Cubemap)
			_, _ = fmt.Fprintf(w, "payload:    %d bytes\n", info.PayloadBytes)

			return nil
		},
	}
}
