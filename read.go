package dds

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// ReadFile opens path and reads a DDS image from it.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read reads a header and the remaining stream as payload, then checks the
// payload against the geometry declared in the header.
func Read(r io.Reader) (*Image, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading payload: %w", ErrIO, err)
	}

	img := &Image{header: *hdr, data: data}
	if err := img.validate(); err != nil {
		return nil, err
	}

	return img, nil
}

// ReadHeader reads and validates exactly HeaderSize bytes from r.
func ReadHeader(r io.Reader) (*Header, error) {
	base, err := bcn.ReadDDSHeader(r)
	switch {
	case errors.Is(err, bcn.ErrInvalidDDSMagic):
		return nil, fmt.Errorf("%w: %v", ErrBadFileMagic, err)
	case errors.Is(err, bcn.ErrInvalidDDSHeaderSize):
		return nil, fmt.Errorf("%w: %v", ErrBadFileHeader, err)
	case errors.Is(err, bcn.ErrInvalidDDSPixelFormatSize):
		return nil, fmt.Errorf("%w: %v", ErrBadPixelFormat, err)
	case err != nil:
		return nil, fmt.Errorf("%w: reading header: %w", ErrIO, err)
	}
	if err := checkFourCC(base); err != nil {
		return nil, err
	}

	// bcn.ReadDDSHeaderDX10 skips the record when DDPF_FOURCC is clear,
	// the FourCC alone decides here.
	var dx10 bcn.DDSHeaderDX10
	if err := binary.Read(r, binary.LittleEndian, &dx10); err != nil {
		return nil, fmt.Errorf("%w: reading DX10 header: %w", ErrIO, err)
	}

	hdr := &Header{Magic: bcn.DDSMagic, DDSHeader: *base, DX10: dx10FromBCN(&dx10)}
	if !hdr.DX10.DXGIFormat.Known() {
		return nil, fmt.Errorf("%w: DXGI %d", ErrUnknownFormat, uint32(hdr.DX10.DXGIFormat))
	}

	return hdr, nil
}

// validate compares the declared pitch or linear size and the payload length
// with the values derived from width, height, format and mip count.
// The array size is not part of the expected payload length here.
func (img *Image) validate() error {
	h := &img.header
	format := h.DX10.DXGIFormat

	// The header field holds 32 bits; compare against the value New stores.
	rowPitch, linearSize := PitchAndLinearSize(h.Width, h.Height, format)
	if format.IsBlockCompressed() {
		if linearSize != h.PitchOrLinearSize {
			return fmt.Errorf("%w: expected %d, header has %d", ErrBadLinearSize, linearSize, h.PitchOrLinearSize)
		}
	} else if rowPitch != h.PitchOrLinearSize {
		return fmt.Errorf("%w: expected %d, header has %d", ErrBadPitch, rowPitch, h.PitchOrLinearSize)
	}

	expected := mipChainSize(h.Width, h.Height, h.MipMapCount, format)
	if h.IsCubemap() {
		expected *= cubeFaces
	}
	if expected != uint64(len(img.data)) {
		return fmt.Errorf("%w: expected %d, got %d", ErrBadDataSize, expected, len(img.data))
	}

	return nil
}
