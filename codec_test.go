package dds

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func testPattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 30), //nolint:gosec // bounded
				G: uint8(y * 30), //nolint:gosec // bounded
				B: 100,
				A: 255,
			})
		}
	}
	return img
}

func TestFromImageDecodeImage(t *testing.T) {
	t.Parallel()

	src := testPattern(8, 8)

	img, err := FromImage(src, FormatB8G8R8A8Unorm, 0, nil)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if img.MipMapCount() != 4 {
		t.Fatalf("mipmaps = %d, want 4", img.MipMapCount())
	}
	if len(img.Data()) != 340 {
		t.Fatalf("payload = %d, want 340", len(img.Data()))
	}

	raw, err := img.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	loaded, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	got, err := loaded.DecodeImage(0, 0, 0, nil)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	gotImg, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", got)
	}
	if gotImg.Bounds().Dx() != 8 || gotImg.Bounds().Dy() != 8 {
		t.Fatalf("unexpected size: %dx%d", gotImg.Bounds().Dx(), gotImg.Bounds().Dy())
	}
	if !bytes.Equal(gotImg.Pix, src.Pix) {
		t.Fatal("pixel mismatch")
	}

	small, err := loaded.DecodeImage(0, 0, 3, nil)
	if err != nil {
		t.Fatalf("DecodeImage level 3: %v", err)
	}
	if small.Bounds().Dx() != 1 || small.Bounds().Dy() != 1 {
		t.Fatalf("level 3 size: %v", small.Bounds())
	}
}

func TestFromImageCompressed(t *testing.T) {
	t.Parallel()

	img, err := FromImage(testPattern(16, 16), FormatBC3Unorm, 1, nil)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if img.MipMapCount() != 1 || len(img.Data()) != 256 {
		t.Fatalf("mipmaps %d, payload %d", img.MipMapCount(), len(img.Data()))
	}

	decoded, err := img.DecodeImage(0, 0, 0, nil)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 16 {
		t.Fatalf("unexpected size %v", decoded.Bounds())
	}
}

func TestFromImageUnsupported(t *testing.T) {
	t.Parallel()

	_, err := FromImage(testPattern(4, 4), FormatR32G32B32A32Float, 0, nil)
	if !errors.Is(err, ErrUnsupportedDecode) {
		t.Fatalf("expected ErrUnsupportedDecode, got %v", err)
	}

	_, err = FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)), FormatR8G8B8A8Unorm, 0, nil)
	if !errors.Is(err, ErrEncodeImage) {
		t.Fatalf("expected ErrEncodeImage for an empty image, got %v", err)
	}
}

func TestDecodeImageUnsupported(t *testing.T) {
	t.Parallel()

	img := New(4, 4, 1, 1, 1, FormatR16G16Float, false)
	if img.CanDecode() {
		t.Fatal("R16G16_FLOAT must not be decodable")
	}
	if _, err := img.DecodeImage(0, 0, 0, nil); !errors.Is(err, ErrUnsupportedDecode) {
		t.Fatalf("expected ErrUnsupportedDecode, got %v", err)
	}
}

func TestImageRegistration(t *testing.T) {
	t.Parallel()

	img, err := FromImage(testPattern(8, 4), FormatR8G8B8A8Unorm, 1, nil)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	raw, err := img.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("image.DecodeConfig: %v", err)
	}
	if name != "dds" || cfg.Width != 8 || cfg.Height != 4 {
		t.Fatalf("DecodeConfig = %q %dx%d", name, cfg.Width, cfg.Height)
	}

	decoded, name, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if name != "dds" || decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 4 {
		t.Fatalf("Decode = %q %v", name, decoded.Bounds())
	}
}
