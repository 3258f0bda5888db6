package shapefile

import "io"

const (
	fileCode   int32 = 9994
	headerSize       = 100
	unusedSize       = 20 // bytes 4..24, reserved, always zero
)

// Header is the decoded 100-byte shapefile header. File-length is measured
// in 16-bit words, including the header itself.
type Header struct {
	FileLength             int32
	ShapeType              ShapeType
	Version                int32
	XMin, YMin, XMax, YMax float64
	ZMin, ZMax             float64
	MMin, MMax             float64
}

// DefaultHeader returns the header defaults from spec.md §3: file_length of
// 50 words (100 bytes), Null shape type, version 1000, all ranges zeroed.
func DefaultHeader() Header {
	return Header{
		FileLength: headerSize / 2,
		ShapeType:  ShapeTypeNull,
		Version:    1000,
	}
}

// ReadHeader decodes a 100-byte shapefile header from src. All framing
// fields (file code, file length) are big-endian; every other field is
// little-endian, per spec.md §4.2. The header's shape-type tag is accepted
// as-written even when it falls outside the closed enumeration validated
// elsewhere in the codec, mirroring the original source's lenient header
// parse (only the file code is checked at this layer).
func ReadHeader(src io.Reader) (Header, error) {
	code, err := readI32BE(src)
	if err != nil {
		return Header{}, err
	}
	if code != fileCode {
		return Header{}, &ErrInvalidFileCode{Value: code}
	}

	var skip [unusedSize]byte
	if err := readExact(src, skip[:]); err != nil {
		return Header{}, err
	}

	h := DefaultHeader()

	fileLength, err := readI32BE(src)
	if err != nil {
		return Header{}, err
	}
	h.FileLength = fileLength

	version, err := readI32LE(src)
	if err != nil {
		return Header{}, err
	}
	h.Version = version

	rawShapeType, err := readI32LE(src)
	if err != nil {
		return Header{}, err
	}
	h.ShapeType = ShapeType(rawShapeType)

	for _, f := range []*float64{&h.XMin, &h.YMin, &h.XMax, &h.YMax, &h.ZMin, &h.ZMax, &h.MMin, &h.MMax} {
		v, err := readF64LE(src)
		if err != nil {
			return Header{}, err
		}
		*f = v
	}

	return h, nil
}

// WriteHeader encodes h as exactly 100 bytes, always emitting file code 9994.
func WriteHeader(dst io.Writer, h Header) error {
	if err := writeI32BE(dst, fileCode); err != nil {
		return err
	}

	var skip [unusedSize]byte
	if _, err := dst.Write(skip[:]); err != nil {
		return err
	}

	if err := writeI32BE(dst, h.FileLength); err != nil {
		return err
	}
	if err := writeI32LE(dst, h.Version); err != nil {
		return err
	}
	if err := writeI32LE(dst, i32FromShapeType(h.ShapeType)); err != nil {
		return err
	}

	for _, v := range []float64{h.XMin, h.YMin, h.XMax, h.YMax, h.ZMin, h.ZMax, h.MMin, h.MMax} {
		if err := writeF64LE(dst, v); err != nil {
			return err
		}
	}

	return nil
}
