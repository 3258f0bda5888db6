package shapefile

import "io"

// Point variants carry no bbox, no counts, no parts — the content is just
// the coordinates themselves (spec.md §4.5).

func decodePoint(r io.Reader) (Point, error) {
	x, err := readF64LE(r)
	if err != nil {
		return Point{}, err
	}
	y, err := readF64LE(r)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func encodePoint(w io.Writer, p Point) error {
	if err := writeF64LE(w, p.X); err != nil {
		return err
	}
	return writeF64LE(w, p.Y)
}

// SizeInBytes is the encoded content size of a Point: two f64 coordinates.
func (Point) SizeInBytes() int { return 16 }

// decodePointM decodes a PointM record. The trailing M scalar is optional;
// its absence is inferred from recordSize, which must be exactly 16 (no M)
// or 24 (with M) — any other value is ErrInvalidShapeRecordSize.
func decodePointM(r io.Reader, recordSize int) (PointM, error) {
	if recordSize != 16 && recordSize != 24 {
		return PointM{}, &ErrInvalidShapeRecordSize{ShapeType: ShapeTypePointM, Declared: recordSize, Expected: []int{16, 24}}
	}

	x, err := readF64LE(r)
	if err != nil {
		return PointM{}, err
	}
	y, err := readF64LE(r)
	if err != nil {
		return PointM{}, err
	}
	m := NoData
	if recordSize == 24 {
		m, err = readF64LE(r)
		if err != nil {
			return PointM{}, err
		}
	}
	return PointM{X: x, Y: y, M: m}, nil
}

func encodePointM(w io.Writer, p PointM) error {
	if err := writeF64LE(w, p.X); err != nil {
		return err
	}
	if err := writeF64LE(w, p.Y); err != nil {
		return err
	}
	return writeF64LE(w, p.M)
}

// SizeInBytes is the encoded content size of a PointM: x, y, m.
func (PointM) SizeInBytes() int { return 24 }

// decodePointZ decodes a PointZ record. Z is mandatory for the Z variant and
// is always read; only the trailing M scalar is optional, inferred from
// recordSize, which must be exactly 24 (no M) or 32 (with M) — any other
// value is ErrInvalidShapeRecordSize.
func decodePointZ(r io.Reader, recordSize int) (PointZ, error) {
	if recordSize != 24 && recordSize != 32 {
		return PointZ{}, &ErrInvalidShapeRecordSize{ShapeType: ShapeTypePointZ, Declared: recordSize, Expected: []int{24, 32}}
	}

	x, err := readF64LE(r)
	if err != nil {
		return PointZ{}, err
	}
	y, err := readF64LE(r)
	if err != nil {
		return PointZ{}, err
	}
	z, err := readF64LE(r)
	if err != nil {
		return PointZ{}, err
	}
	m := NoData
	if recordSize == 32 {
		m, err = readF64LE(r)
		if err != nil {
			return PointZ{}, err
		}
	}
	return PointZ{X: x, Y: y, Z: z, M: m}, nil
}

func encodePointZ(w io.Writer, p PointZ) error {
	if err := writeF64LE(w, p.X); err != nil {
		return err
	}
	if err := writeF64LE(w, p.Y); err != nil {
		return err
	}
	if err := writeF64LE(w, p.Z); err != nil {
		return err
	}
	return writeF64LE(w, p.M)
}

// SizeInBytes is the encoded content size of a PointZ: x, y, z, m.
func (PointZ) SizeInBytes() int { return 32 }
