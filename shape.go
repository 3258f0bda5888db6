package shapefile

// Shape is the closed interface implemented by every concrete decoded
// value: the twelve non-null shape variants plus NullShape. It is the tagged-variant
// dispatch point the design notes in SPEC_FULL.md §9 describe — a closed
// interface rather than an open one, matching the closed registry in
// shapetype.go.
type Shape interface {
	ShapeType() ShapeType
}

type pointKind int

const (
	kindPlain pointKind = iota
	kindM
	kindZ
)

// coordinateKind reports which of Point/PointM/PointZ the type parameter is.
func coordinateKind[P Coordinate]() pointKind {
	var zero P
	switch any(zero).(type) {
	case Point:
		return kindPlain
	case PointM:
		return kindM
	case PointZ:
		return kindZ
	default:
		panic("shapefile: unreachable coordinate kind")
	}
}

func (Point) ShapeType() ShapeType  { return ShapeTypePoint }
func (PointM) ShapeType() ShapeType { return ShapeTypePointM }
func (PointZ) ShapeType() ShapeType { return ShapeTypePointZ }

func (pl Polyline[P]) ShapeType() ShapeType {
	switch coordinateKind[P]() {
	case kindM:
		return ShapeTypePolylineM
	case kindZ:
		return ShapeTypePolylineZ
	default:
		return ShapeTypePolyline
	}
}

func (pg Polygon[P]) ShapeType() ShapeType {
	switch coordinateKind[P]() {
	case kindM:
		return ShapeTypePolygonM
	case kindZ:
		return ShapeTypePolygonZ
	default:
		return ShapeTypePolygon
	}
}

func (mp MultiPoint[P]) ShapeType() ShapeType {
	switch coordinateKind[P]() {
	case kindM:
		return ShapeTypeMultiPointM
	case kindZ:
		return ShapeTypeMultiPointZ
	default:
		return ShapeTypeMultiPoint
	}
}

// NullShape is the zero-content shape carried by a record whose tag is Null.
type NullShape struct{}

func (NullShape) ShapeType() ShapeType { return ShapeTypeNull }
