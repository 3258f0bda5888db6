package shapefile

// ShapeType is the wire tag identifying a shape's variant. It appears both
// in the file header and at the head of every record.
type ShapeType int32

const (
	ShapeTypeNull        ShapeType = 0
	ShapeTypePoint       ShapeType = 1
	ShapeTypePolyline    ShapeType = 3
	ShapeTypePolygon     ShapeType = 5
	ShapeTypeMultiPoint  ShapeType = 8
	ShapeTypePointZ      ShapeType = 11
	ShapeTypePolylineZ   ShapeType = 13
	ShapeTypePolygonZ    ShapeType = 15
	ShapeTypeMultiPointZ ShapeType = 18
	ShapeTypePointM      ShapeType = 21
	ShapeTypePolylineM   ShapeType = 23
	ShapeTypePolygonM    ShapeType = 25
	ShapeTypeMultiPointM ShapeType = 28
)

var shapeTypeNames = map[ShapeType]string{
	ShapeTypeNull:        "Null",
	ShapeTypePoint:       "Point",
	ShapeTypePolyline:    "Polyline",
	ShapeTypePolygon:     "Polygon",
	ShapeTypeMultiPoint:  "MultiPoint",
	ShapeTypePointZ:      "PointZ",
	ShapeTypePolylineZ:   "PolylineZ",
	ShapeTypePolygonZ:    "PolygonZ",
	ShapeTypeMultiPointZ: "MultiPointZ",
	ShapeTypePointM:      "PointM",
	ShapeTypePolylineM:   "PolylineM",
	ShapeTypePolygonM:    "PolygonM",
	ShapeTypeMultiPointM: "MultiPointM",
}

func (t ShapeType) String() string {
	if name, ok := shapeTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// shapeTypeFromI32 maps a wire tag to a ShapeType, rejecting unknown values.
func shapeTypeFromI32(v int32) (ShapeType, error) {
	t := ShapeType(v)
	if _, ok := shapeTypeNames[t]; !ok {
		return 0, &ErrInvalidShapeType{Value: v}
	}
	return t, nil
}

// i32FromShapeType returns the wire tag for a ShapeType.
func i32FromShapeType(t ShapeType) int32 {
	return int32(t)
}

// HasZ reports whether the variant carries a Z coordinate.
func HasZ(t ShapeType) bool {
	switch t {
	case ShapeTypePointZ, ShapeTypePolylineZ, ShapeTypePolygonZ, ShapeTypeMultiPointZ:
		return true
	default:
		return false
	}
}

// HasM reports whether the variant carries an M (measurement) value: both
// the M and the Z variants do. For either, the decoders accept records with
// or without the trailing M block, and the encoders always write it.
func HasM(t ShapeType) bool {
	switch t {
	case ShapeTypePointM, ShapeTypePolylineM, ShapeTypePolygonM, ShapeTypeMultiPointM,
		ShapeTypePointZ, ShapeTypePolylineZ, ShapeTypePolygonZ, ShapeTypeMultiPointZ:
		return true
	default:
		return false
	}
}

// IsMultipart reports whether the variant carries a parts array
// (Polyline and Polygon families).
func IsMultipart(t ShapeType) bool {
	switch t {
	case ShapeTypePolyline, ShapeTypePolylineM, ShapeTypePolylineZ,
		ShapeTypePolygon, ShapeTypePolygonM, ShapeTypePolygonZ:
		return true
	default:
		return false
	}
}

// IsMultipoint reports whether the variant is a flat MultiPoint bag.
func IsMultipoint(t ShapeType) bool {
	switch t {
	case ShapeTypeMultiPoint, ShapeTypeMultiPointM, ShapeTypeMultiPointZ:
		return true
	default:
		return false
	}
}

// IsPolygon reports whether the variant is one of the Polygon family.
func IsPolygon(t ShapeType) bool {
	switch t {
	case ShapeTypePolygon, ShapeTypePolygonM, ShapeTypePolygonZ:
		return true
	default:
		return false
	}
}

// IsPoint reports whether the variant is a single-point shape.
func IsPoint(t ShapeType) bool {
	switch t {
	case ShapeTypePoint, ShapeTypePointM, ShapeTypePointZ:
		return true
	default:
		return false
	}
}
