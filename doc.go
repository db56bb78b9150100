/*
Package dds implements reading, validation, construction and writing of DDS
texture containers that carry the DX10 extended header.

A DDS file is a fixed 148 byte header (magic, base header, pixel format and
DX10 extension) followed by the raw payload: every mip level of every cube
face of every array layer, back to back. The package never touches texel
contents; it only checks that the payload length agrees with the geometry
declared in the header and exposes views over it.

Pixel decode and encode of the formats supported by github.com/woozymasta/bcn
are available through DecodeImage and FromImage.
*/
package dds
