package shapefile

// NoData is the sentinel marking a missing M (measurement) value. Any value
// at or below this threshold is treated as "no measurement".
const NoData = -1e38

func isNoData(v float64) bool {
	return v <= NoData
}

// Point is a plain (x, y) coordinate.
type Point struct {
	X, Y float64
}

func (p Point) xy() (float64, float64) { return p.X, p.Y }

// PointM is a coordinate carrying an optional measurement. M equal to or
// below NoData means "no measurement".
type PointM struct {
	X, Y, M float64
}

func (p PointM) xy() (float64, float64) { return p.X, p.Y }

// PointZ is a coordinate carrying both an elevation and an optional
// measurement, with the same NoData convention as PointM.
type PointZ struct {
	X, Y, Z, M float64
}

func (p PointZ) xy() (float64, float64) { return p.X, p.Y }

// Coordinate is the constraint satisfied by the three point flavors the
// multipart and multipoint containers are parameterised over.
type Coordinate interface {
	Point | PointM | PointZ
	xy() (float64, float64)
}

// BBox is a 2-D axis-aligned bounding box.
type BBox struct {
	XMin, YMin, XMax, YMax float64
}

// bboxFromCoordinates computes the 2-D bounding box of a point sequence.
// An empty sequence yields the zero BBox, per spec.
func bboxFromCoordinates[P Coordinate](points []P) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	x0, y0 := points[0].xy()
	b := BBox{XMin: x0, YMin: y0, XMax: x0, YMax: y0}
	for _, p := range points[1:] {
		x, y := p.xy()
		if x < b.XMin {
			b.XMin = x
		}
		if x > b.XMax {
			b.XMax = x
		}
		if y < b.YMin {
			b.YMin = y
		}
		if y > b.YMax {
			b.YMax = y
		}
	}
	return b
}

// Multipart is the shared container behind the Polyline and Polygon
// families: an ordered point sequence plus a parts array marking the start
// of each contiguous sub-sequence (ring or linestring).
type Multipart[P Coordinate] struct {
	BBox   BBox
	Points []P
	Parts  []int32
}

// partsArrayValid checks the parts_array_valid invariant from spec.md §3:
// parts is non-empty, starts at 0, is strictly increasing, and every entry
// is a valid index into points.
func partsArrayValid[P Coordinate](m Multipart[P]) bool {
	if len(m.Parts) == 0 {
		return false
	}
	if m.Parts[0] != 0 {
		return false
	}
	for i, p := range m.Parts {
		if p < 0 || int(p) >= len(m.Points) {
			return false
		}
		if i > 0 && p <= m.Parts[i-1] {
			return false
		}
	}
	return true
}

// PartRuns returns, for each part, the sub-slice of Points it denotes: the
// run from the part's start index up to (but not including) the next
// part's start, or the end of Points for the last part.
func (m Multipart[P]) PartRuns() [][]P {
	runs := make([][]P, len(m.Parts))
	for i, start := range m.Parts {
		end := int32(len(m.Points))
		if i+1 < len(m.Parts) {
			end = m.Parts[i+1]
		}
		runs[i] = m.Points[start:end]
	}
	return runs
}

// Polyline is a Multipart whose sub-sequences are linestrings.
type Polyline[P Coordinate] struct {
	Multipart[P]
}

// Polygon is a Multipart whose sub-sequences are closed, oriented rings.
type Polygon[P Coordinate] struct {
	Multipart[P]
}

// AsPolygon reinterprets a Polyline's ring sequence as a Polygon. The wire
// layout of Polyline and Polygon is identical (spec.md §4.5); this is a
// semantic relabeling, not a data transformation.
func (pl Polyline[P]) AsPolygon() Polygon[P] {
	return Polygon[P]{Multipart: pl.Multipart}
}

// AsPolyline reinterprets a Polygon's ring sequence as a Polyline, dropping
// the ring-closure/orientation invariants.
func (pg Polygon[P]) AsPolyline() Polyline[P] {
	return Polyline[P]{Multipart: pg.Multipart}
}

// NewPolyline builds a Polyline, computing its bbox from points.
func NewPolyline[P Coordinate](points []P, parts []int32) Polyline[P] {
	return Polyline[P]{Multipart: Multipart[P]{
		BBox:   bboxFromCoordinates(points),
		Points: points,
		Parts:  parts,
	}}
}

// NewPolygon builds a Polygon, computing its bbox from points.
func NewPolygon[P Coordinate](points []P, parts []int32) Polygon[P] {
	return Polygon[P]{Multipart: Multipart[P]{
		BBox:   bboxFromCoordinates(points),
		Points: points,
		Parts:  parts,
	}}
}

// MultiPoint is a flat bag of points with no parts array.
type MultiPoint[P Coordinate] struct {
	BBox   BBox
	Points []P
}

// NewMultiPoint builds a MultiPoint, computing its bbox from points.
func NewMultiPoint[P Coordinate](points []P) MultiPoint[P] {
	return MultiPoint[P]{BBox: bboxFromCoordinates(points), Points: points}
}

// zRangeOf computes (min, max) of Z over points. Callers only invoke this for
// point kinds that carry Z.
func zRangeOf(points []PointZ) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi := points[0].Z, points[0].Z
	for _, p := range points[1:] {
		if p.Z < lo {
			lo = p.Z
		}
		if p.Z > hi {
			hi = p.Z
		}
	}
	return lo, hi
}

// mRangeOf computes (min, max) of M over points whose M is not NoData. If
// every M is NoData, the range is (0, 0) — see SPEC_FULL.md §9.
func mRangeOf(ms []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	seen := false
	for _, m := range ms {
		if isNoData(m) {
			continue
		}
		if !seen {
			lo, hi = m, m
			seen = true
			continue
		}
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	return lo, hi
}
