package shapefile

import (
	"bytes"
	"fmt"
	"io"
)

// SizeInBytes is the encoded content size of a null shape record: zero,
// the tag is the entire content.
func (NullShape) SizeInBytes() int { return 0 }

// ReadRecord reads the next record's framing, dispatches on its shape-type
// tag, and decodes the matching concrete shape. headerShapeType is the
// file header's declared tag; every record must carry that tag or the Null
// shape (spec.md §3), and any other tag is rejected with
// ErrMismatchedShapeType.
func ReadRecord(src io.Reader, headerShapeType ShapeType) (int32, Shape, error) {
	recordNumber, err := readI32BE(src)
	if err != nil {
		return 0, nil, err
	}
	contentLengthWords, err := readI32BE(src)
	if err != nil {
		return 0, nil, err
	}
	contentLengthBytes := 2 * int(contentLengthWords)

	rawTag, err := readI32LE(src)
	if err != nil {
		return 0, nil, err
	}
	tag, err := shapeTypeFromI32(rawTag)
	if err != nil {
		return 0, nil, err
	}
	if tag != headerShapeType && tag != ShapeTypeNull {
		return 0, nil, &ErrMismatchedShapeType{Expected: headerShapeType, Actual: tag}
	}

	// The tag itself has already been consumed; the remaining content is
	// everything after it (spec.md §4.4).
	contentSize := contentLengthBytes - 4

	shape, err := decodeShapeContent(src, tag, contentSize)
	if err != nil {
		return 0, nil, err
	}
	return recordNumber, shape, nil
}

// decodeShapeContent is the polymorphic dispatch point: it is the only
// place in the codec that branches on the wire tag. Every concrete decoder
// below it is monomorphic (spec.md §4.6).
func decodeShapeContent(src io.Reader, tag ShapeType, contentSize int) (Shape, error) {
	switch tag {
	case ShapeTypeNull:
		return NullShape{}, nil
	case ShapeTypePoint:
		return decodePoint(src)
	case ShapeTypePointM:
		return decodePointM(src, contentSize)
	case ShapeTypePointZ:
		return decodePointZ(src, contentSize)
	case ShapeTypeMultiPoint:
		return decodeMultiPointPlain(src, contentSize)
	case ShapeTypeMultiPointM:
		return decodeMultiPointM(src, contentSize)
	case ShapeTypeMultiPointZ:
		return decodeMultiPointZ(src, contentSize)
	case ShapeTypePolyline:
		m, err := decodeMultipartPlain(src, contentSize, tag)
		return Polyline[Point]{Multipart: m}, err
	case ShapeTypePolylineM:
		m, err := decodeMultipartM(src, contentSize, tag)
		return Polyline[PointM]{Multipart: m}, err
	case ShapeTypePolylineZ:
		m, err := decodeMultipartZ(src, contentSize, tag)
		return Polyline[PointZ]{Multipart: m}, err
	case ShapeTypePolygon:
		// Polygon shares Polyline's wire layout exactly (spec.md §4.5); the
		// decoder is the same, only the wrapper type differs.
		m, err := decodeMultipartPlain(src, contentSize, tag)
		return Polygon[Point]{Multipart: m}, err
	case ShapeTypePolygonM:
		m, err := decodeMultipartM(src, contentSize, tag)
		return Polygon[PointM]{Multipart: m}, err
	case ShapeTypePolygonZ:
		m, err := decodeMultipartZ(src, contentSize, tag)
		return Polygon[PointZ]{Multipart: m}, err
	default:
		return nil, &ErrInvalidShapeType{Value: int32(tag)}
	}
}

type sizedShape interface {
	Shape
	SizeInBytes() int
}

// WriteRecord writes the 8-byte big-endian record framing followed by the
// little-endian tag and the shape's content. The content is encoded into a
// scratch buffer first, so a MalformedShape rejection (invalid parts array)
// never leaves a partial record on dst.
func WriteRecord(dst io.Writer, recordNumber int32, shape Shape) error {
	sized, ok := shape.(sizedShape)
	if !ok {
		return fmt.Errorf("shapefile: shape %T does not report its size", shape)
	}

	var content bytes.Buffer
	if err := encodeShapeContent(&content, shape); err != nil {
		return err
	}
	if content.Len() != sized.SizeInBytes() {
		return fmt.Errorf("shapefile: internal error: %T encoded %d bytes, expected %d", shape, content.Len(), sized.SizeInBytes())
	}

	totalContentBytes := content.Len() + 4 // +4 for the tag
	words := int32(totalContentBytes / 2)

	if err := writeI32BE(dst, recordNumber); err != nil {
		return err
	}
	if err := writeI32BE(dst, words); err != nil {
		return err
	}
	if err := writeI32LE(dst, i32FromShapeType(shape.ShapeType())); err != nil {
		return err
	}
	_, err := dst.Write(content.Bytes())
	return err
}

func encodeShapeContent(w io.Writer, shape Shape) error {
	switch s := shape.(type) {
	case NullShape:
		return nil
	case Point:
		return encodePoint(w, s)
	case PointM:
		return encodePointM(w, s)
	case PointZ:
		return encodePointZ(w, s)
	case MultiPoint[Point]:
		return encodeMultiPointPlain(w, s)
	case MultiPoint[PointM]:
		return encodeMultiPointM(w, s)
	case MultiPoint[PointZ]:
		return encodeMultiPointZ(w, s)
	case Polyline[Point]:
		return encodeMultipartPlain(w, s.Multipart)
	case Polyline[PointM]:
		return encodeMultipartM(w, s.Multipart)
	case Polyline[PointZ]:
		return encodeMultipartZ(w, s.Multipart)
	case Polygon[Point]:
		return encodeMultipartPlain(w, s.Multipart)
	case Polygon[PointM]:
		return encodeMultipartM(w, s.Multipart)
	case Polygon[PointZ]:
		return encodeMultipartZ(w, s.Multipart)
	default:
		return fmt.Errorf("shapefile: unsupported shape type %T", shape)
	}
}
