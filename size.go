package dds

// PitchAndLinearSize returns the row pitch and the byte size of one mip level
// of the given dimensions. Values that do not fit in 32 bits wrap, matching
// what a header field can store.
func PitchAndLinearSize(width, height uint32, format Format) (rowPitch, linearSize uint32) {
	p, l := pitchAndLinearSize(width, height, format)
	// #nosec G115 -- header fields are 32 bits wide.
	return uint32(p), uint32(l)
}

// pitchAndLinearSize is the only place where level sizes are derived.
func pitchAndLinearSize(width, height uint32, format Format) (rowPitch, linearSize uint64) {
	if format.IsBlockCompressed() {
		blocksWide := max(1, (uint64(width)+3)/4)
		blocksHigh := max(1, (uint64(height)+3)/4)
		rowPitch = blocksWide * uint64(format.BlockSize())
		return rowPitch, rowPitch * blocksHigh
	}

	rowPitch = (uint64(width)*uint64(format.BitsPerPixel()) + 7) / 8
	return rowPitch, rowPitch * uint64(height)
}

// mipChainSize sums the linear size of levels [0, mipMapCount) of one face.
// Level 0 is always counted.
func mipChainSize(width, height, mipMapCount uint32, format Format) uint64 {
	return mipRangeSize(width, height, max(1, mipMapCount), format)
}

// mipRangeSize sums the linear size of levels [0, count). Dimensions are
// shifted without clamping, so once both reach zero every further level is
// empty for uncompressed formats and exactly one block for compressed ones.
// That tail is added in one step.
func mipRangeSize(width, height, count uint32, format Format) uint64 {
	var total uint64
	mip := uint32(0)
	for ; mip < count; mip++ {
		w, h := width>>mip, height>>mip
		if w == 0 && h == 0 {
			break
		}
		_, size := pitchAndLinearSize(w, h, format)
		total += size
	}

	if mip < count && format.IsBlockCompressed() {
		total += uint64(count-mip) * uint64(format.BlockSize())
	}

	return total
}
