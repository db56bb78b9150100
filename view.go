package dds

import "unsafe"

// View reinterprets the payload as a slice of T. It succeeds only when the
// size of T equals BitsPerPixel/8 of the image format, in which case the
// returned slice covers the whole payload and aliases it: writes through the
// view modify the image. Holding views of two different element types over
// the same image at once is the caller's responsibility to avoid.
func View[T any](img *Image) ([]T, bool) {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 || size != uint64(img.header.DX10.DXGIFormat.BitsPerPixel()/8) {
		return nil, false
	}

	n := uint64(len(img.data))
	if n%size != 0 {
		return nil, false
	}
	if n == 0 {
		return []T{}, true
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(img.data))), n/size), true
}
