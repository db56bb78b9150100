package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/woozymasta/dds"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := app()
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{"ddstool"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestNewInfoVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.dds")

	if _, _, err := run(t, "new", "--out", path, "--format", "BC7_UNORM",
		"--width", "64", "--height", "64", "--mipmaps", "7", "--cubemap"); err != nil {
		t.Fatalf("new: %v", err)
	}

	img, err := dds.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !img.IsCubemap() || img.Format() != dds.FormatBC7Unorm || img.MipMapCount() != 7 {
		t.Fatalf("unexpected image: %+v", img.Header())
	}

	out, _, err := run(t, "info", "--json", path)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	var info imageInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("info output is not JSON: %v\n%s", err, out)
	}
	if info.Format != "BC7_UNORM" || info.Width != 64 || !info.Cubemap || info.Dimension != "2D" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.PayloadBytes != len(img.Data()) {
		t.Fatalf("payload %d, want %d", info.PayloadBytes, len(img.Data()))
	}

	out, _, err = run(t, "info", path)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(out, "BC7_UNORM (98)") || !strings.Contains(out, "cubemap:    true") {
		t.Fatalf("unexpected text info:\n%s", out)
	}

	bad := filepath.Join(dir, "bad.dds")
	if err := os.WriteFile(bad, []byte("not a dds file at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, logs, err := run(t, "--log-format", "json", "verify", path, bad)
	if err == nil {
		t.Fatal("verify must fail when a file is invalid")
	}
	if !strings.Contains(logs, `"msg":"ok"`) || !strings.Contains(logs, `"msg":"invalid"`) {
		t.Fatalf("unexpected verify logs:\n%s", logs)
	}
}

func TestNewManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "tex.yaml")
	manifest := "width: 32\nheight: 16\nmipmaps: 3\narray_size: 2\nformat: R8G8B8A8_UNORM\n"
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "out.dds")
	if _, _, err := run(t, "new", "--manifest", manifestPath, "--height", "8", "--out", path); err != nil {
		t.Fatalf("new: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var hdr dds.Header
	if err := hdr.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if hdr.Width != 32 || hdr.Height != 8 || hdr.MipMapCount != 3 || hdr.DX10.ArraySize != 2 {
		t.Fatalf("flag override not applied: %+v", hdr)
	}
	// 32x8 + 16x4 + 8x2 texels of 4 bytes, two layers
	if want := dds.HeaderSize + 2*4*(256+64+16); len(raw) != want {
		t.Fatalf("file is %d bytes, want %d", len(raw), want)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := run(t, "new", "--out", filepath.Join(dir, "a.dds"), "--format", "NOPE"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, _, err := run(t, "new", "--out", filepath.Join(dir, "b.dds"), "--width", "-1"); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestEncodeExport(t *testing.T) {
	dir := t.TempDir()

	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255}) //nolint:gosec // bounded
		}
	}
	pngPath := filepath.Join(dir, "in.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ddsPath := filepath.Join(dir, "out.dds")
	if _, _, err := run(t, "encode", "--format", "B8G8R8A8_UNORM", "--out", ddsPath, pngPath); err != nil {
		t.Fatalf("encode: %v", err)
	}

	for _, name := range []string{"level0.png", "level0.bmp", "level0.tiff"} {
		out := filepath.Join(dir, name)
		if _, _, err := run(t, "export", "--out", out, ddsPath); err != nil {
			t.Fatalf("export %s: %v", name, err)
		}

		got, err := decodeFile(out)
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 8 {
			t.Fatalf("%s: unexpected size %v", name, got.Bounds())
		}
		r, g, b, a := got.At(3, 5).RGBA()
		if r>>8 != 90 || g>>8 != 150 || b>>8 != 100 || a>>8 != 255 {
			t.Fatalf("%s: pixel (3,5) = %d,%d,%d,%d", name, r>>8, g>>8, b>>8, a>>8)
		}
	}

	if _, _, err := run(t, "export", "--out", filepath.Join(dir, "x.gif"), ddsPath); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if _, _, err := run(t, "export", "--level", "9", "--out", filepath.Join(dir, "y.png"), ddsPath); err == nil {
		t.Fatal("expected error for out of range level")
	}
}
