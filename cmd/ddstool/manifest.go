package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// manifest describes construction parameters for "ddstool new".
// Pointer fields distinguish unset values from zero.
type manifest struct {
	Width     *int   `yaml:"width"`
	Height    *int   `yaml:"height"`
	Depth     *int   `yaml:"depth"`
	MipMaps   *int   `yaml:"mipmaps"`
	ArraySize *int   `yaml:"array_size"`
	Format    string `yaml:"format"`
	Cubemap   *bool  `yaml:"cubemap"`
}

func loadManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest %q: %w", path, err)
	}

	return m, nil
}

// apply copies manifest values into p for every flag not set on the command line.
func (m manifest) apply(c *cli.Command, p *newParams) {
	if m.Width != nil && !c.IsSet("width") {
		p.width = *m.Width
	}
	if m.Height != nil && !c.IsSet("height") {
		p.height = *m.Height
	}
	if m.Depth != nil && !c.IsSet("depth") {
		p.depth = *m.Depth
	}
	if m.MipMaps != nil && !c.IsSet("mipmaps") {
		p.mipMaps = *m.MipMaps
	}
	if m.ArraySize != nil && !c.IsSet("array-size") {
		p.arraySize = *m.ArraySize
	}
	if m.Format != "" && !c.IsSet("format") {
		p.format = m.Format
	}
	if m.Cubemap != nil && !c.IsSet("cubemap") {
		p.cubemap = *m.Cubemap
	}
}
