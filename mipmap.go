package dds

import "fmt"

// MipLevel describes the geometry of one mip level.
type MipLevel struct {
	Width      uint32
	Height     uint32
	RowPitch   uint32
	LinearSize uint32
}

// MaxMipLevels returns the number of levels whose dimensions stay non-zero
// when width and height are halved by a right shift.
func MaxMipLevels(width, height uint32) uint32 {
	count := uint32(0)
	for width > 0 && height > 0 {
		count++
		width >>= 1
		height >>= 1
	}

	return count
}

// MipLevel returns the geometry of the given level. Dimensions are shifted
// without clamping to 1, as in the payload size checks.
func (img *Image) MipLevel(level uint32) (MipLevel, error) {
	if level >= max(1, img.header.MipMapCount) {
		return MipLevel{}, fmt.Errorf("%w: mip level %d of %d", ErrInvalidSubresource, level, img.header.MipMapCount)
	}

	w := img.header.Width >> level
	h := img.header.Height >> level
	pitch, size := PitchAndLinearSize(w, h, img.header.DX10.DXGIFormat)

	return MipLevel{Width: w, Height: h, RowPitch: pitch, LinearSize: size}, nil
}

// Faces returns 6 for cubemaps and 1 otherwise.
func (img *Image) Faces() uint32 {
	if img.IsCubemap() {
		return cubeFaces
	}

	return 1
}

// Subresource returns the payload slice of one mip level of one face of one
// array layer. Layers are stored one after another, each holding its faces,
// each face holding its full mip chain from the largest level down.
// The returned slice aliases the payload.
func (img *Image) Subresource(layer, face, level uint32) ([]byte, error) {
	h := &img.header
	if layer >= max(1, h.DX10.ArraySize) {
		return nil, fmt.Errorf("%w: layer %d of %d", ErrInvalidSubresource, layer, h.DX10.ArraySize)
	}
	if face >= img.Faces() {
		return nil, fmt.Errorf("%w: face %d of %d", ErrInvalidSubresource, face, img.Faces())
	}
	if _, err := img.MipLevel(level); err != nil {
		return nil, err
	}

	format := h.DX10.DXGIFormat
	chain := mipChainSize(h.Width, h.Height, h.MipMapCount, format)

	offset := (uint64(layer)*uint64(img.Faces())+uint64(face))*chain +
		mipRangeSize(h.Width, h.Height, level, format)
	_, size := pitchAndLinearSize(h.Width>>level, h.Height>>level, format)

	end := offset + size
	if end > uint64(len(img.data)) {
		return nil, fmt.Errorf("%w: layer %d face %d level %d ends at %d, payload has %d bytes",
			ErrInvalidSubresource, layer, face, level, end, len(img.data))
	}

	return img.data[offset:end:end], nil
}
