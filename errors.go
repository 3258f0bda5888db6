package shapefile

import "fmt"

// ErrInvalidFileCode indicates a header whose leading magic number was not 9994.
type ErrInvalidFileCode struct {
	Value int32
}

func (e *ErrInvalidFileCode) Error() string {
	return fmt.Sprintf("shapefile: invalid file code %d, expected %d", e.Value, fileCode)
}

// ErrInvalidShapeType indicates a wire shape-type tag outside the closed enumeration.
type ErrInvalidShapeType struct {
	Value int32
}

func (e *ErrInvalidShapeType) Error() string {
	return fmt.Sprintf("shapefile: invalid shape type %d", e.Value)
}

// ErrMismatchedShapeType indicates a record's shape-type tag differs from the
// header's declared tag, and the record's tag is not Null.
type ErrMismatchedShapeType struct {
	Expected ShapeType
	Actual   ShapeType
}

func (e *ErrMismatchedShapeType) Error() string {
	return fmt.Sprintf("shapefile: mismatched shape type: header declares %v, record has %v", e.Expected, e.Actual)
}

// ErrInvalidShapeRecordSize indicates a record's declared content length
// matches neither the with-M nor the without-M expected size for the parsed counts.
type ErrInvalidShapeRecordSize struct {
	ShapeType ShapeType
	Declared  int
	Expected  []int
}

func (e *ErrInvalidShapeRecordSize) Error() string {
	return fmt.Sprintf("shapefile: invalid record size for %v: got %d, expected one of %v",
		e.ShapeType, e.Declared, e.Expected)
}

// ErrMalformedShape indicates a shape that violates an invariant required to
// encode it. A polygon conversion that cannot be resolved is reported as
// ErrOrphanInnerRing instead.
type ErrMalformedShape struct {
	Reason string
}

func (e *ErrMalformedShape) Error() string {
	return fmt.Sprintf("shapefile: malformed shape: %s", e.Reason)
}

// ErrOrphanInnerRing indicates a polygon ring sequence with an interior
// (counter-clockwise) ring appearing before any exterior ring.
type ErrOrphanInnerRing struct{}

func (e *ErrOrphanInnerRing) Error() string {
	return "shapefile: malformed shape: interior ring has no preceding exterior ring"
}
