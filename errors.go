package dds

import "errors"

var (
	// ErrBadFileMagic indicates the stream does not start with "DDS ".
	ErrBadFileMagic = errors.New("bad file magic")
	// ErrBadFileHeader indicates the base header size is not 124.
	ErrBadFileHeader = errors.New("bad file header")
	// ErrBadPixelFormat indicates the pixel format size is not 32.
	ErrBadPixelFormat = errors.New("bad pixel format")
	// ErrNotImplemented indicates a valid but unsupported file variant.
	ErrNotImplemented = errors.New("not implemented yet")
	// ErrBadLinearSize indicates a linear size mismatch for a compressed format.
	ErrBadLinearSize = errors.New("bad linear size")
	// ErrBadPitch indicates a row pitch mismatch for an uncompressed format.
	ErrBadPitch = errors.New("bad pitch")
	// ErrBadDataSize indicates a payload length mismatch.
	ErrBadDataSize = errors.New("bad data size")
	// ErrUnknownFormat indicates a DXGI format missing from the format tables.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrIO indicates the underlying reader or writer failed.
	ErrIO = errors.New("i/o failure")
	// ErrInvalidSubresource indicates an out of range layer, face or mip level.
	ErrInvalidSubresource = errors.New("invalid subresource")
	// ErrUnsupportedDecode indicates the format has no bcn codec.
	ErrUnsupportedDecode = errors.New("format not supported by bcn")
	// ErrMipmapSizeMismatch indicates an encoded mip does not fit its slot.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrDecodeImage indicates bcn failed to decode pixel data.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrEncodeImage indicates bcn failed to encode pixel data.
	ErrEncodeImage = errors.New("encode image failed")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
)
