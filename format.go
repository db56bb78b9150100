package dds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/woozymasta/bcn"
)

// Format is a DXGI_FORMAT code as stored in the DX10 header.
type Format uint32

// DXGI formats.
const (
	FormatUnknown                Format = 0
	FormatR32G32B32A32Typeless   Format = 1
	FormatR32G32B32A32Float      Format = 2
	FormatR32G32B32A32Uint       Format = 3
	FormatR32G32B32A32Sint       Format = 4
	FormatR32G32B32Typeless      Format = 5
	FormatR32G32B32Float         Format = 6
	FormatR32G32B32Uint          Format = 7
	FormatR32G32B32Sint          Format = 8
	FormatR16G16B16A16Typeless   Format = 9
	FormatR16G16B16A16Float      Format = 10
	FormatR16G16B16A16Unorm      Format = 11
	FormatR16G16B16A16Uint       Format = 12
	FormatR16G16B16A16Snorm      Format = 13
	FormatR16G16B16A16Sint       Format = 14
	FormatR32G32Typeless         Format = 15
	FormatR32G32Float            Format = 16
	FormatR32G32Uint             Format = 17
	FormatR32G32Sint             Format = 18
	FormatR32G8X24Typeless       Format = 19
	FormatD32FloatS8X24Uint      Format = 20
	FormatR32FloatX8X24Typeless  Format = 21
	FormatX32TypelessG8X24Uint   Format = 22
	FormatR10G10B10A2Typeless    Format = 23
	FormatR10G10B10A2Unorm       Format = 24
	FormatR10G10B10A2Uint        Format = 25
	FormatR11G11B10Float         Format = 26
	FormatR8G8B8A8Typeless       Format = 27
	FormatR8G8B8A8Unorm          Format = 28
	FormatR8G8B8A8UnormSRGB      Format = 29
	FormatR8G8B8A8Uint           Format = 30
	FormatR8G8B8A8Snorm          Format = 31
	FormatR8G8B8A8Sint           Format = 32
	FormatR16G16Typeless         Format = 33
	FormatR16G16Float            Format = 34
	FormatR16G16Unorm            Format = 35
	FormatR16G16Uint             Format = 36
	FormatR16G16Snorm            Format = 37
	FormatR16G16Sint             Format = 38
	FormatR32Typeless            Format = 39
	FormatD32Float               Format = 40
	FormatR32Float               Format = 41
	FormatR32Uint                Format = 42
	FormatR32Sint                Format = 43
	FormatR24G8Typeless          Format = 44
	FormatD24UnormS8Uint         Format = 45
	FormatR24UnormX8Typeless     Format = 46
	FormatX24TypelessG8Uint      Format = 47
	FormatR8G8Typeless           Format = 48
	FormatR8G8Unorm              Format = 49
	FormatR8G8Uint               Format = 50
	FormatR8G8Snorm              Format = 51
	FormatR8G8Sint               Format = 52
	FormatR16Typeless            Format = 53
	FormatR16Float               Format = 54
	FormatD16Unorm               Format = 55
	FormatR16Unorm               Format = 56
	FormatR16Uint                Format = 57
	FormatR16Snorm               Format = 58
	FormatR16Sint                Format = 59
	FormatR8Typeless             Format = 60
	FormatR8Unorm                Format = 61
	FormatR8Uint                 Format = 62
	FormatR8Snorm                Format = 63
	FormatR8Sint                 Format = 64
	FormatA8Unorm                Format = 65
	FormatR1Unorm                Format = 66
	FormatR9G9B9E5SharedExp      Format = 67
	FormatR8G8B8G8Unorm          Format = 68
	FormatG8R8G8B8Unorm          Format = 69
	FormatBC1Typeless            Format = 70
	FormatBC1Unorm               Format = 71
	FormatBC1UnormSRGB           Format = 72
	FormatBC2Typeless            Format = 73
	FormatBC2Unorm               Format = 74
	FormatBC2UnormSRGB           Format = 75
	FormatBC3Typeless            Format = 76
	FormatBC3Unorm               Format = 77
	FormatBC3UnormSRGB           Format = 78
	FormatBC4Typeless            Format = 79
	FormatBC4Unorm               Format = 80
	FormatBC4Snorm               Format = 81
	FormatBC5Typeless            Format = 82
	FormatBC5Unorm               Format = 83
	FormatBC5Snorm               Format = 84
	FormatB5G6R5Unorm            Format = 85
	FormatB5G5R5A1Unorm          Format = 86
	FormatB8G8R8A8Unorm          Format = 87
	FormatB8G8R8X8Unorm          Format = 88
	FormatR10G10B10XRBiasA2Unorm Format = 89
	FormatB8G8R8A8Typeless       Format = 90
	FormatB8G8R8A8UnormSRGB      Format = 91
	FormatB8G8R8X8Typeless       Format = 92
	FormatB8G8R8X8UnormSRGB      Format = 93
	FormatBC6HTypeless           Format = 94
	FormatBC6HUF16               Format = 95
	FormatBC6HSF16               Format = 96
	FormatBC7Typeless            Format = 97
	FormatBC7Unorm               Format = 98
	FormatBC7UnormSRGB           Format = 99
	FormatAYUV                   Format = 100
	FormatY410                   Format = 101
	FormatY416                   Format = 102
	FormatNV12                   Format = 103
	FormatP010                   Format = 104
	FormatP016                   Format = 105
	Format420Opaque              Format = 106
	FormatYUY2                   Format = 107
	FormatY210                   Format = 108
	FormatY216                   Format = 109
	FormatNV11                   Format = 110
	FormatAI44                   Format = 111
	FormatIA44                   Format = 112
	FormatP8                     Format = 113
	FormatA8P8                   Format = 114
	FormatB4G4R4A4Unorm          Format = 115
	FormatP208                   Format = 130
	FormatV208                   Format = 131
	FormatV408                   Format = 132
	FormatA4B4G4R4Unorm          Format = 191
)

type formatInfo struct {
	name string
	bpp  uint32
}

var formatTable = map[Format]formatInfo{
	FormatUnknown:                {"UNKNOWN", 0},
	FormatR32G32B32A32Typeless:   {"R32G32B32A32_TYPELESS", 128},
	FormatR32G32B32A32Float:      {"R32G32B32A32_FLOAT", 128},
	FormatR32G32B32A32Uint:       {"R32G32B32A32_UINT", 128},
	FormatR32G32B32A32Sint:       {"R32G32B32A32_SINT", 128},
	FormatR32G32B32Typeless:      {"R32G32B32_TYPELESS", 96},
	FormatR32G32B32Float:         {"R32G32B32_FLOAT", 96},
	FormatR32G32B32Uint:          {"R32G32B32_UINT", 96},
	FormatR32G32B32Sint:          {"R32G32B32_SINT", 96},
	FormatR16G16B16A16Typeless:   {"R16G16B16A16_TYPELESS", 64},
	FormatR16G16B16A16Float:      {"R16G16B16A16_FLOAT", 64},
	FormatR16G16B16A16Unorm:      {"R16G16B16A16_UNORM", 64},
	FormatR16G16B16A16Uint:       {"R16G16B16A16_UINT", 64},
	FormatR16G16B16A16Snorm:      {"R16G16B16A16_SNORM", 64},
	FormatR16G16B16A16Sint:       {"R16G16B16A16_SINT", 64},
	FormatR32G32Typeless:         {"R32G32_TYPELESS", 64},
	FormatR32G32Float:            {"R32G32_FLOAT", 64},
	FormatR32G32Uint:             {"R32G32_UINT", 64},
	FormatR32G32Sint:             {"R32G32_SINT", 64},
	FormatR32G8X24Typeless:       {"R32G8X24_TYPELESS", 64},
	FormatD32FloatS8X24Uint:      {"D32_FLOAT_S8X24_UINT", 64},
	FormatR32FloatX8X24Typeless:  {"R32_FLOAT_X8X24_TYPELESS", 64},
	FormatX32TypelessG8X24Uint:   {"X32_TYPELESS_G8X24_UINT", 64},
	FormatR10G10B10A2Typeless:    {"R10G10B10A2_TYPELESS", 32},
	FormatR10G10B10A2Unorm:       {"R10G10B10A2_UNORM", 32},
	FormatR10G10B10A2Uint:        {"R10G10B10A2_UINT", 32},
	FormatR11G11B10Float:         {"R11G11B10_FLOAT", 32},
	FormatR8G8B8A8Typeless:       {"R8G8B8A8_TYPELESS", 32},
	FormatR8G8B8A8Unorm:          {"R8G8B8A8_UNORM", 32},
	FormatR8G8B8A8UnormSRGB:      {"R8G8B8A8_UNORM_SRGB", 32},
	FormatR8G8B8A8Uint:           {"R8G8B8A8_UINT", 32},
	FormatR8G8B8A8Snorm:          {"R8G8B8A8_SNORM", 32},
	FormatR8G8B8A8Sint:           {"R8G8B8A8_SINT", 32},
	FormatR16G16Typeless:         {"R16G16_TYPELESS", 32},
	FormatR16G16Float:            {"R16G16_FLOAT", 32},
	FormatR16G16Unorm:            {"R16G16_UNORM", 32},
	FormatR16G16Uint:             {"R16G16_UINT", 32},
	FormatR16G16Snorm:            {"R16G16_SNORM", 32},
	FormatR16G16Sint:             {"R16G16_SINT", 32},
	FormatR32Typeless:            {"R32_TYPELESS", 32},
	FormatD32Float:               {"D32_FLOAT", 32},
	FormatR32Float:               {"R32_FLOAT", 32},
	FormatR32Uint:                {"R32_UINT", 32},
	FormatR32Sint:                {"R32_SINT", 32},
	FormatR24G8Typeless:          {"R24G8_TYPELESS", 32},
	FormatD24UnormS8Uint:         {"D24_UNORM_S8_UINT", 32},
	FormatR24UnormX8Typeless:     {"R24_UNORM_X8_TYPELESS", 32},
	FormatX24TypelessG8Uint:      {"X24_TYPELESS_G8_UINT", 32},
	FormatR8G8Typeless:           {"R8G8_TYPELESS", 16},
	FormatR8G8Unorm:              {"R8G8_UNORM", 16},
	FormatR8G8Uint:               {"R8G8_UINT", 16},
	FormatR8G8Snorm:              {"R8G8_SNORM", 16},
	FormatR8G8Sint:               {"R8G8_SINT", 16},
	FormatR16Typeless:            {"R16_TYPELESS", 16},
	FormatR16Float:               {"R16_FLOAT", 16},
	FormatD16Unorm:               {"D16_UNORM", 16},
	FormatR16Unorm:               {"R16_UNORM", 16},
	FormatR16Uint:                {"R16_UINT", 16},
	FormatR16Snorm:               {"R16_SNORM", 16},
	FormatR16Sint:                {"R16_SINT", 16},
	FormatR8Typeless:             {"R8_TYPELESS", 8},
	FormatR8Unorm:                {"R8_UNORM", 8},
	FormatR8Uint:                 {"R8_UINT", 8},
	FormatR8Snorm:                {"R8_SNORM", 8},
	FormatR8Sint:                 {"R8_SINT", 8},
	FormatA8Unorm:                {"A8_UNORM", 8},
	FormatR1Unorm:                {"R1_UNORM", 1},
	FormatR9G9B9E5SharedExp:      {"R9G9B9E5_SHAREDEXP", 32},
	FormatR8G8B8G8Unorm:          {"R8G8_B8G8_UNORM", 32},
	FormatG8R8G8B8Unorm:          {"G8R8_G8B8_UNORM", 32},
	FormatBC1Typeless:            {"BC1_TYPELESS", 4},
	FormatBC1Unorm:               {"BC1_UNORM", 4},
	FormatBC1UnormSRGB:           {"BC1_UNORM_SRGB", 4},
	FormatBC2Typeless:            {"BC2_TYPELESS", 8},
	FormatBC2Unorm:               {"BC2_UNORM", 8},
	FormatBC2UnormSRGB:           {"BC2_UNORM_SRGB", 8},
	FormatBC3Typeless:            {"BC3_TYPELESS", 8},
	FormatBC3Unorm:               {"BC3_UNORM", 8},
	FormatBC3UnormSRGB:           {"BC3_UNORM_SRGB", 8},
	FormatBC4Typeless:            {"BC4_TYPELESS", 4},
	FormatBC4Unorm:               {"BC4_UNORM", 4},
	FormatBC4Snorm:               {"BC4_SNORM", 4},
	FormatBC5Typeless:            {"BC5_TYPELESS", 8},
	FormatBC5Unorm:               {"BC5_UNORM", 8},
	FormatBC5Snorm:               {"BC5_SNORM", 8},
	FormatB5G6R5Unorm:            {"B5G6R5_UNORM", 16},
	FormatB5G5R5A1Unorm:          {"B5G5R5A1_UNORM", 16},
	FormatB8G8R8A8Unorm:          {"B8G8R8A8_UNORM", 32},
	FormatB8G8R8X8Unorm:          {"B8G8R8X8_UNORM", 32},
	FormatR10G10B10XRBiasA2Unorm: {"R10G10B10_XR_BIAS_A2_UNORM", 32},
	FormatB8G8R8A8Typeless:       {"B8G8R8A8_TYPELESS", 32},
	FormatB8G8R8A8UnormSRGB:      {"B8G8R8A8_UNORM_SRGB", 32},
	FormatB8G8R8X8Typeless:       {"B8G8R8X8_TYPELESS", 32},
	FormatB8G8R8X8UnormSRGB:      {"B8G8R8X8_UNORM_SRGB", 32},
	FormatBC6HTypeless:           {"BC6H_TYPELESS", 8},
	FormatBC6HUF16:               {"BC6H_UF16", 8},
	FormatBC6HSF16:               {"BC6H_SF16", 8},
	FormatBC7Typeless:            {"BC7_TYPELESS", 8},
	FormatBC7Unorm:               {"BC7_UNORM", 8},
	FormatBC7UnormSRGB:           {"BC7_UNORM_SRGB", 8},
	FormatAYUV:                   {"AYUV", 32},
	FormatY410:                   {"Y410", 32},
	FormatY416:                   {"Y416", 64},
	FormatNV12:                   {"NV12", 12},
	FormatP010:                   {"P010", 24},
	FormatP016:                   {"P016", 24},
	Format420Opaque:              {"420_OPAQUE", 12},
	FormatYUY2:                   {"YUY2", 32},
	FormatY210:                   {"Y210", 64},
	FormatY216:                   {"Y216", 64},
	FormatNV11:                   {"NV11", 12},
	FormatAI44:                   {"AI44", 8},
	FormatIA44:                   {"IA44", 8},
	FormatP8:                     {"P8", 8},
	FormatA8P8:                   {"A8P8", 16},
	FormatB4G4R4A4Unorm:          {"B4G4R4A4_UNORM", 16},
	FormatP208:                   {"P208", 16},
	FormatV208:                   {"V208", 16},
	FormatV408:                   {"V408", 24},
	FormatA4B4G4R4Unorm:          {"A4B4G4R4_UNORM", 16},
}

// Known reports whether f is present in the format tables.
func (f Format) Known() bool {
	_, ok := formatTable[f]
	return ok
}

// IsBlockCompressed reports whether f belongs to the BC1-BC7 family.
// Unknown codes are treated as uncompressed.
func (f Format) IsBlockCompressed() bool {
	switch {
	case f >= FormatBC1Typeless && f <= FormatBC5Snorm:
		return true
	case f >= FormatBC6HTypeless && f <= FormatBC7UnormSRGB:
		return true
	default:
		return false
	}
}

// BitsPerPixel returns the texel width of f in bits.
// It panics for a code missing from the format tables; headers produced by
// Read are checked with Known first.
func (f Format) BitsPerPixel() uint32 {
	info, ok := formatTable[f]
	if !ok {
		panic(fmt.Sprintf("dds: bits per pixel requested for unknown format %d", uint32(f)))
	}

	return info.bpp
}

// BlockSize returns the byte size of one 4x4 block of f: 8 for BC1 and BC4,
// 16 for everything else (including uncompressed formats, where the value is
// meaningless).
func (f Format) BlockSize() uint32 {
	switch f {
	case FormatBC1Typeless, FormatBC1Unorm, FormatBC1UnormSRGB,
		FormatBC4Typeless, FormatBC4Unorm, FormatBC4Snorm:
		return 8
	default:
		return 16
	}
}

// String returns the DXGI name without the DXGI_FORMAT_ prefix.
func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}

	return fmt.Sprintf("UNKNOWN(%d)", uint32(f))
}

// ParseFormat resolves a DXGI name (with or without the DXGI_FORMAT_ prefix,
// case insensitive) or a decimal code.
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "DXGI_FORMAT_")

	if n, err := strconv.ParseUint(name, 10, 32); err == nil {
		f := Format(n)
		if !f.Known() {
			return FormatUnknown, fmt.Errorf("%w: %d", ErrUnknownFormat, n)
		}
		return f, nil
	}

	for f, info := range formatTable {
		if info.name == name {
			return f, nil
		}
	}

	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// bcnFormat maps a DXGI code to the bcn codec able to handle its texels.
func bcnFormat(f Format) bcn.Format {
	switch f {
	case FormatBC1Unorm, FormatBC1UnormSRGB:
		return bcn.FormatDXT1
	case FormatBC2Unorm, FormatBC2UnormSRGB:
		return bcn.FormatDXT3
	case FormatBC3Unorm, FormatBC3UnormSRGB:
		return bcn.FormatDXT5
	case FormatBC4Unorm:
		return bcn.FormatBC4
	case FormatBC5Unorm:
		return bcn.FormatBC5
	case FormatB8G8R8A8Unorm, FormatB8G8R8A8UnormSRGB:
		return bcn.FormatBGRA8
	case FormatR8G8B8A8Unorm, FormatR8G8B8A8UnormSRGB:
		return bcn.FormatRGBA8
	default:
		return bcn.FormatUnknown
	}
}
