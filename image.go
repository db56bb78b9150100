package dds

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/bcn"
)

// Image is a loaded or constructed DDS container: one header and the raw
// payload of every layer, face and mip level.
//
// An Image is not safe for concurrent mutation. Any number of goroutines may
// read it at once; writers to Data or to a View need exclusive access.
type Image struct {
	header Header
	data   []byte
}

// New builds a zero-filled image. Flags, capabilities and the resource
// dimension are derived from the arguments. Inputs are trusted: no check is
// made for zero dimensions, and an unknown format panics.
//
// The pitch or linear size of mip 0 is stored in a 32-bit field and wraps
// when mip 0 reaches 4 GiB; Read compares against the same wrapped value.
func New(width, height, depth, mipMapCount, arraySize uint32, format Format, cubemap bool) *Image {
	flags := FlagCaps | FlagPixelFormat
	caps := CapsTexture
	caps2 := uint32(0)
	dimension := DimensionUnknown

	compressed := format.IsBlockCompressed()
	if compressed {
		flags |= FlagLinearSize
	}

	if width > 1 {
		flags |= FlagWidth
		dimension = DimensionTexture1D
	}
	if height > 1 {
		flags |= FlagHeight
		dimension = DimensionTexture2D
	}
	if depth > 1 {
		flags |= FlagDepth
		dimension = DimensionTexture3D
		caps |= CapsComplex
		caps2 |= Caps2Volume
	}
	if mipMapCount > 1 {
		flags |= FlagMipMapCount
		caps |= CapsMipmap | CapsComplex
	}

	miscFlag := uint32(0)
	if cubemap {
		caps |= CapsComplex
		caps2 |= Caps2Cubemap | Caps2CubemapAllFaces
		miscFlag |= MiscTextureCube
	}

	rowPitch, linearSize := PitchAndLinearSize(width, height, format)
	pitchOrLinearSize := rowPitch
	if compressed {
		pitchOrLinearSize = linearSize
	}

	hdr := Header{
		Magic: bcn.DDSMagic,
		DDSHeader: bcn.DDSHeader{
			Size:              baseHeaderSize,
			Flags:             flags,
			Height:            height,
			Width:             width,
			PitchOrLinearSize: pitchOrLinearSize,
			Depth:             depth,
			MipMapCount:       mipMapCount,
			PixelFormat: bcn.DDSPixelFormat{
				Size:   pixelFormatSize,
				Flags:  PixelFormatFourCC,
				FourCC: FourCCDX10,
			},
			Caps:  caps,
			Caps2: caps2,
		},
		DX10: HeaderDX10{
			DXGIFormat:        format,
			ResourceDimension: dimension,
			MiscFlag:          miscFlag,
			ArraySize:         arraySize,
		},
	}

	size := mipChainSize(width, height, mipMapCount, format)
	if cubemap {
		size *= cubeFaces
	}
	size *= uint64(arraySize)

	n, err := intFromU64(size)
	if err != nil {
		panic(fmt.Sprintf("dds: payload of %d bytes cannot be allocated: %v", size, err))
	}

	return &Image{header: hdr, data: make([]byte, n)}
}

const cubeFaces = 6

// Header returns a copy of the image header.
func (img *Image) Header() Header {
	return img.header
}

// Size returns width, height and depth.
func (img *Image) Size() (width, height, depth uint32) {
	return img.header.Width, img.header.Height, img.header.Depth
}

// Width returns the width of mip level 0.
func (img *Image) Width() uint32 {
	return img.header.Width
}

// Height returns the height of mip level 0.
func (img *Image) Height() uint32 {
	return img.header.Height
}

// Depth returns the depth of mip level 0.
func (img *Image) Depth() uint32 {
	return img.header.Depth
}

// MipMapCount returns the declared number of mip levels.
func (img *Image) MipMapCount() uint32 {
	return img.header.MipMapCount
}

// ArraySize returns the declared number of array layers.
func (img *Image) ArraySize() uint32 {
	return img.header.DX10.ArraySize
}

// BlockSize returns the compressed block size of the image format.
func (img *Image) BlockSize() uint32 {
	return img.header.DX10.DXGIFormat.BlockSize()
}

// Format returns the DXGI format code.
func (img *Image) Format() Format {
	return img.header.DX10.DXGIFormat
}

// Is1D reports whether the stored resource dimension is TEXTURE1D.
func (img *Image) Is1D() bool {
	return img.header.DX10.ResourceDimension == DimensionTexture1D
}

// Is2D reports whether the stored resource dimension is TEXTURE2D.
func (img *Image) Is2D() bool {
	return img.header.DX10.ResourceDimension == DimensionTexture2D
}

// Is3D reports whether the stored resource dimension is TEXTURE3D.
func (img *Image) Is3D() bool {
	return img.header.DX10.ResourceDimension == DimensionTexture3D
}

// IsCubemap reports whether the image is a cubemap.
func (img *Image) IsCubemap() bool {
	return img.header.IsCubemap()
}

// Data returns the payload buffer. Writes through it modify the image.
func (img *Image) Data() []byte {
	return img.data
}

// Reader returns a read-only view of the payload.
func (img *Image) Reader() *bytes.Reader {
	return bytes.NewReader(img.data)
}
