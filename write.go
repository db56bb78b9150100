package dds

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// WriteFile creates or truncates path and writes the image to it.
func (img *Image) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %q: %w", ErrIO, path, err)
	}

	if _, err := img.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrIO, path, err)
	}

	return nil
}

// WriteTo writes the header followed by the payload. It implements io.WriterTo.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	if err := bcn.WriteDDSMagic(cw); err != nil {
		return cw.n, fmt.Errorf("%w: writing magic: %w", ErrIO, err)
	}
	if err := bcn.WriteDDSHeader(cw, &img.header.DDSHeader); err != nil {
		return cw.n, fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}
	dx10 := img.header.DX10.toBCN()
	if err := binary.Write(cw, binary.LittleEndian, &dx10); err != nil {
		return cw.n, fmt.Errorf("%w: writing DX10 header: %w", ErrIO, err)
	}

	if _, err := cw.Write(img.data); err != nil {
		return cw.n, fmt.Errorf("%w: writing payload: %w", ErrIO, err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// MarshalBinary returns the complete file encoding of the image.
func (img *Image) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, HeaderSize+len(img.data))
	out, err := img.header.AppendBinary(out)
	if err != nil {
		return nil, err
	}

	return append(out, img.data...), nil
}
