package dds

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/woozymasta/bcn"
)

const (
	// HeaderSize is the encoded size of Header: magic, base header and DX10 extension.
	HeaderSize = 148

	// Magic is the four byte file signature.
	Magic = "DDS "
	// FourCCDX10 is the pixel format FourCC ("DX10") announcing the DX10 extension.
	FourCCDX10 = uint32(bcn.DDSFourCCDX10)

	baseHeaderSize  = uint32(bcn.DDSHeaderSize)
	pixelFormatSize = uint32(bcn.DDSPixelFormatSize)
)

// Header flags (dwFlags).
const (
	FlagCaps        = uint32(bcn.DDSFlagCaps)
	FlagHeight      = uint32(bcn.DDSFlagHeight)
	FlagWidth       = uint32(bcn.DDSFlagWidth)
	FlagPitch       = uint32(bcn.DDSFlagPitch)
	FlagPixelFormat = uint32(bcn.DDSFlagPixelFormat)
	FlagMipMapCount = uint32(bcn.DDSFlagMipmapCount)
	FlagLinearSize  = uint32(bcn.DDSFlagLinearSize)
	FlagDepth       = uint32(bcn.DDSFlagDepth)
)

// Pixel format flags.
const (
	PixelFormatFourCC = uint32(bcn.DDSPFFourCC)
)

// Surface capabilities (dwCaps).
const (
	CapsComplex = uint32(bcn.DDSCapsComplex)
	CapsTexture = uint32(bcn.DDSCapsTexture)
	CapsMipmap  = uint32(bcn.DDSCapsMipmap)
)

// Extended capabilities (dwCaps2).
const (
	Caps2Cubemap          = uint32(bcn.DDSCaps2Cubemap)
	Caps2CubemapPositiveX = uint32(0x400)
	Caps2CubemapNegativeX = uint32(0x800)
	Caps2CubemapPositiveY = uint32(0x1000)
	Caps2CubemapNegativeY = uint32(0x2000)
	Caps2CubemapPositiveZ = uint32(0x4000)
	Caps2CubemapNegativeZ = uint32(0x8000)
	Caps2Volume           = uint32(0x200000)

	Caps2CubemapAllFaces = Caps2CubemapPositiveX | Caps2CubemapNegativeX |
		Caps2CubemapPositiveY | Caps2CubemapNegativeY |
		Caps2CubemapPositiveZ | Caps2CubemapNegativeZ
)

// MiscTextureCube is the DX10 misc flag bit marking a cubemap.
const MiscTextureCube = uint32(0x4)

// ResourceDimension is the D3D10_RESOURCE_DIMENSION of the DX10 header.
type ResourceDimension uint32

// Resource dimensions.
const (
	DimensionUnknown   ResourceDimension = 0
	DimensionBuffer    ResourceDimension = 1
	DimensionTexture1D ResourceDimension = 2
	DimensionTexture2D ResourceDimension = 3
	DimensionTexture3D ResourceDimension = 4
)

func (d ResourceDimension) String() string {
	switch d {
	case DimensionUnknown:
		return "unknown"
	case DimensionBuffer:
		return "buffer"
	case DimensionTexture1D:
		return "1D"
	case DimensionTexture2D:
		return "2D"
	case DimensionTexture3D:
		return "3D"
	default:
		return fmt.Sprintf("dimension(%d)", uint32(d))
	}
}

// HeaderDX10 is the 20 byte DDS_HEADER_DXT10 record with typed format and
// dimension fields. It has the layout of bcn.DDSHeaderDX10.
type HeaderDX10 struct {
	DXGIFormat        Format            `json:"dxgi_format"`
	ResourceDimension ResourceDimension `json:"resource_dimension"`
	MiscFlag          uint32            `json:"misc_flag"`
	ArraySize         uint32            `json:"array_size"`
	MiscFlags2        uint32            `json:"misc_flags2"`
}

func dx10FromBCN(d *bcn.DDSHeaderDX10) HeaderDX10 {
	return HeaderDX10{
		DXGIFormat:        Format(d.DXGIFormat),
		ResourceDimension: ResourceDimension(d.ResourceDimension),
		MiscFlag:          d.MiscFlag,
		ArraySize:         d.ArraySize,
		MiscFlags2:        d.MiscFlags2,
	}
}

func (d HeaderDX10) toBCN() bcn.DDSHeaderDX10 {
	return bcn.DDSHeaderDX10{
		DXGIFormat:        uint32(d.DXGIFormat),
		ResourceDimension: uint32(d.ResourceDimension),
		MiscFlag:          d.MiscFlag,
		ArraySize:         d.ArraySize,
		MiscFlags2:        d.MiscFlags2,
	}
}

// Header is the complete fixed-size file header: the magic, the base
// DDS_HEADER and the DX10 extension.
type Header struct {
	Magic uint32 `json:"magic"`
	bcn.DDSHeader
	DX10 HeaderDX10 `json:"dx10"`
}

// IsCubemap reports whether the DX10 misc flags mark a cubemap.
func (h *Header) IsCubemap() bool {
	return h.DX10.MiscFlag&MiscTextureCube == MiscTextureCube
}

// HasFlags reports whether every bit of mask is set in Flags.
func (h *Header) HasFlags(mask uint32) bool {
	return h.Flags&mask == mask
}

// HasCaps reports whether every bit of mask is set in Caps.
func (h *Header) HasCaps(mask uint32) bool {
	return h.Caps&mask == mask
}

// HasCaps2 reports whether every bit of mask is set in Caps2.
func (h *Header) HasCaps2(mask uint32) bool {
	return h.Caps2&mask == mask
}

// Validate checks the structural fields in load order: magic, base size,
// pixel format size and the DX10 FourCC.
func (h *Header) Validate() error {
	if h.Magic != bcn.DDSMagic {
		return fmt.Errorf("%w: %q", ErrBadFileMagic, fourCC(h.Magic))
	}
	if h.Size != baseHeaderSize {
		return fmt.Errorf("%w: size %d, want %d", ErrBadFileHeader, h.Size, baseHeaderSize)
	}
	if h.PixelFormat.Size != pixelFormatSize {
		return fmt.Errorf("%w: size %d, want %d", ErrBadPixelFormat, h.PixelFormat.Size, pixelFormatSize)
	}

	return checkFourCC(&h.DDSHeader)
}

func checkFourCC(h *bcn.DDSHeader) error {
	if h.PixelFormat.FourCC != FourCCDX10 {
		return fmt.Errorf("%w: file does not have DX10 headers, DX9 files are not supported (FourCC %q)",
			ErrNotImplemented, fourCC(h.PixelFormat.FourCC))
	}

	return nil
}

// fourCC spells a little-endian four character code.
func fourCC(v uint32) string {
	return string([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// MarshalBinary encodes the header into HeaderSize bytes.
func (h *Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// AppendBinary appends the little-endian encoding of the header to b.
func (h *Header) AppendBinary(b []byte) ([]byte, error) {
	return binary.Append(b, binary.LittleEndian, h)
}

// UnmarshalBinary decodes the first HeaderSize bytes of data.
// No validation is performed; see Validate.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("header needs %d bytes, got %d: %w", HeaderSize, len(data), io.ErrUnexpectedEOF)
	}

	_, err := binary.Decode(data[:HeaderSize], binary.LittleEndian, h)
	return err
}
