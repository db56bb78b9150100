package dds

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/woozymasta/bcn"
)

func init() {
	image.RegisterFormat("dds", Magic, Decode, DecodeConfig)
}

// Decode reads a DDS file and decodes mip level 0 of the first layer and face.
func Decode(r io.Reader) (image.Image, error) {
	img, err := Read(r)
	if err != nil {
		return nil, err
	}

	return img.DecodeImage(0, 0, 0, nil)
}

// DecodeConfig reads only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(hdr.Width),
		Height:     int(hdr.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// CanDecode reports whether texels of the image format can be decoded with bcn.
func (img *Image) CanDecode() bool {
	return bcnFormat(img.Format()) != bcn.FormatUnknown
}

// DecodeImage decodes one subresource into an image using bcn.
// Nil opts uses default decoding.
func (img *Image) DecodeImage(layer, face, level uint32, opts *bcn.DecodeOptions) (image.Image, error) {
	format := bcnFormat(img.Format())
	if format == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDecode, img.Format())
	}

	mip, err := img.MipLevel(level)
	if err != nil {
		return nil, err
	}
	data, err := img.Subresource(layer, face, level)
	if err != nil {
		return nil, err
	}

	decoded, err := bcn.DecodeImageWithOptions(data, int(mip.Width), int(mip.Height), format, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: layer %d face %d level %d: %v", ErrDecodeImage, layer, face, level, err)
	}

	return decoded, nil
}

// FromImage encodes src with bcn into a new 2D image of the given format.
// The mip chain is generated from src and stops at the last level whose
// dimensions are both non-zero. maxMipMaps=0 means the full chain.
func FromImage(src image.Image, format Format, maxMipMaps int, opts *bcn.EncodeOptions) (*Image, error) {
	codec := bcnFormat(format)
	if codec == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDecode, format)
	}

	bounds := src.Bounds()
	width, err := u32FromInt(bounds.Dx())
	if err != nil {
		return nil, err
	}
	height, err := u32FromInt(bounds.Dy())
	if err != nil {
		return nil, err
	}

	levels := MaxMipLevels(width, height)
	if levels == 0 {
		return nil, fmt.Errorf("%w: empty source image", ErrEncodeImage)
	}
	if maxMipMaps > 0 && uint64(maxMipMaps) < uint64(levels) {
		levels = uint32(maxMipMaps)
	}

	mips := bcn.GenerateMipmaps(src, false)
	if uint64(len(mips)) < uint64(levels) {
		levels = uint32(len(mips))
	}
	if levels == 0 {
		return nil, fmt.Errorf("%w: no mipmaps generated", ErrEncodeImage)
	}

	img := New(width, height, 1, levels, 1, format, false)
	for level := uint32(0); level < levels; level++ {
		encoded, _, _, err := bcn.EncodeImageWithOptions(mips[level], codec, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: mipmap %d: %v", ErrEncodeImage, level, err)
		}

		dst, err := img.Subresource(0, 0, level)
		if err != nil {
			return nil, err
		}
		if len(encoded) != len(dst) {
			return nil, fmt.Errorf("%w: mipmap %d: expected %d, got %d", ErrMipmapSizeMismatch, level, len(dst), len(encoded))
		}
		copy(dst, encoded)
	}

	return img, nil
}
