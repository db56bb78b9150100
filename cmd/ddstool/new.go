package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/logger"
)

type newParams struct {
	out          string
	manifestPath string
	format       string
	width        int
	height       int
	depth        int
	mipMaps      int
	arraySize    int
	cubemap      bool
}

func newCmd() *cli.Command {
	var p newParams

	return &cli.Command{
		Name:  "new",
		Usage: "Create a zero-filled DDS file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path", Destination: &p.out, Required: true},
			&cli.StringFlag{Name: "manifest", Aliases: []string{"m"}, Usage: "YAML file with construction parameters", Destination: &p.manifestPath},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "DXGI format name or code", Value: "R8G8B8A8_UNORM", Destination: &p.format},
			&cli.IntFlag{Name: "width", Usage: "width in texels", Value: 1, Destination: &p.width},
			&cli.IntFlag{Name: "height", Usage: "height in texels", Value: 1, Destination: &p.height},
			&cli.IntFlag{Name: "depth", Usage: "depth in texels", Value: 1, Destination: &p.depth},
			&cli.IntFlag{Name: "mipmaps", Usage: "number of mip levels", Value: 1, Destination: &p.mipMaps},
			&cli.IntFlag{Name: "array-size", Usage: "number of array layers", Value: 1, Destination: &p.arraySize},
			&cli.BoolFlag{Name: "cubemap", Usage: "create a cubemap", Destination: &p.cubemap},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if p.manifestPath != "" {
				m, err := loadManifest(p.manifestPath)
				if err != nil {
					return err
				}
				m.apply(cmd, &p)
			}

			img, err := p.build()
			if err != nil {
				return err
			}
			if err := img.WriteFile(p.out); err != nil {
				return err
			}

			logger.FromContext(ctx).Info("created", "file", p.out, "format", img.Format().String(),
				"width", img.Width(), "height", img.Height(), "payload", len(img.Data()))
			return nil
		},
	}
}

func (p *newParams) build() (*dds.Image, error) {
	format, err := dds.ParseFormat(p.format)
	if err != nil {
		return nil, err
	}

	dims := [...]struct {
		name  string
		value int
	}{
		{"width", p.width},
		{"height", p.height},
		{"depth", p.depth},
		{"mipmaps", p.mipMaps},
		{"array-size", p.arraySize},
	}
	var u [len(dims)]uint32
	for i, d := range dims {
		if d.value < 0 || int64(d.value) > int64(^uint32(0)) {
			return nil, fmt.Errorf("%s out of range: %d", d.name, d.value)
		}
		u[i] = uint32(d.value)
	}

	return dds.New(u[0], u[1], u[2], u[3], u[4], format, p.cubemap), nil
}
