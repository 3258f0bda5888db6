package shapefile

import (
	"github.com/peterstace/simplefeatures/geom"
)

// signedArea computes Esri's ring-orientation discriminant,
// Σ (x_{i+1}-x_i)(y_{i+1}+y_i), over a closed ring (spec.md §4, "Polygon
// ring orientation"). Positive means clockwise under Esri's convention.
func signedArea[P Coordinate](points []P) float64 {
	var sum float64
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := points[i].xy()
		x1, y1 := points[i+1].xy()
		sum += (x1 - x0) * (y1 + y0)
	}
	return sum
}

// isOuterRing reports whether points is oriented as an outer ring: clockwise,
// i.e. non-negative signed area.
func isOuterRing[P Coordinate](points []P) bool {
	return signedArea(points) >= 0
}

func reversedPoints[P Coordinate](points []P) []P {
	out := make([]P, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// makePoint builds a P from planar coordinates. z and m are ignored unless P
// carries them, in which case z defaults to 0 and m to NoData — the boundary
// conversion in this file only round-trips the planar ring geometry.
func makePoint[P Coordinate](x, y float64) P {
	switch coordinateKind[P]() {
	case kindM:
		return any(PointM{X: x, Y: y, M: NoData}).(P)
	case kindZ:
		return any(PointZ{X: x, Y: y, Z: 0, M: NoData}).(P)
	default:
		return any(Point{X: x, Y: y}).(P)
	}
}

func coordsFromRing[P Coordinate](ls geom.LineString) []P {
	seq := ls.Coordinates()
	n := seq.Length()
	points := make([]P, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		points[i] = makePoint[P](xy.X, xy.Y)
	}
	return points
}

func ringToLineString[P Coordinate](points []P) geom.LineString {
	coords := make([]float64, 0, 2*len(points))
	for _, p := range points {
		x, y := p.xy()
		coords = append(coords, x, y)
	}
	seq := geom.NewSequence(coords, geom.DimXY)
	return geom.NewLineString(seq)
}

// orientRing returns points reoriented to match outer (outer=true) or inner
// (outer=false) convention, reversing only if needed.
func orientRing[P Coordinate](points []P, outer bool) []P {
	if isOuterRing(points) == outer {
		return points
	}
	return reversedPoints(points)
}

// PolygonFromSimpleFeature converts a simplefeatures polygon-with-holes into
// the Esri wire representation: exterior ring forced clockwise, each
// interior ring forced counter-clockwise, parts laid out exterior-first
// followed by that polygon's interiors (spec.md §4, "Polygon ring
// orientation").
func PolygonFromSimpleFeature[P Coordinate](poly geom.Polygon) (Polygon[P], error) {
	exterior := poly.ExteriorRing()
	if exterior.Coordinates().Length() == 0 {
		return NewPolygon[P](nil, nil), nil
	}

	allPoints := orientRing(coordsFromRing[P](exterior), true)
	parts := []int32{0}

	numInteriors := poly.NumInteriorRings()
	for i := 0; i < numInteriors; i++ {
		// The source this format was distilled from computes this offset as
		// len(allPoints)-1, overlapping the previous ring by one point; the
		// correct offset, used here, is len(allPoints) (spec.md §9).
		parts = append(parts, int32(len(allPoints)))
		inner := orientRing(coordsFromRing[P](poly.InteriorRingN(i)), false)
		allPoints = append(allPoints, inner...)
	}

	return NewPolygon(allPoints, parts), nil
}

// MultiPolygonFromSimpleFeatures converts a simplefeatures multi-polygon into
// a single Esri Polygon shape: a shapefile Polygon may hold multiple outer
// rings, each one being a distinct member of the multi-polygon, so the
// members' part-groups are concatenated with their point indices rebased.
func MultiPolygonFromSimpleFeatures[P Coordinate](mp geom.MultiPolygon) (Polygon[P], error) {
	var allPoints []P
	var allParts []int32

	n := mp.NumPolygons()
	for i := 0; i < n; i++ {
		member, err := PolygonFromSimpleFeature[P](mp.PolygonN(i))
		if err != nil {
			return Polygon[P]{}, err
		}
		offset := int32(len(allPoints))
		for _, part := range member.Parts {
			allParts = append(allParts, part+offset)
		}
		allPoints = append(allPoints, member.Points...)
	}

	return NewPolygon(allPoints, allParts), nil
}

// ToSimpleFeatures converts pg back into a simplefeatures multi-polygon,
// classifying each ring by its orientation: a clockwise ring starts a new
// polygon, a counter-clockwise ring is appended as a hole of the most recent
// one. A counter-clockwise ring with no preceding outer ring is an
// OrphanInnerRing (spec.md §7).
func (pg Polygon[P]) ToSimpleFeatures() (geom.MultiPolygon, error) {
	runs := pg.PartRuns()
	var polys []geom.Polygon
	var rings []geom.LineString

	flush := func() {
		if len(rings) > 0 {
			polys = append(polys, geom.NewPolygon(rings))
			rings = nil
		}
	}

	for _, run := range runs {
		ring := ringToLineString(run)
		if isOuterRing(run) {
			flush()
			rings = append(rings, ring)
		} else {
			if len(rings) == 0 {
				return geom.MultiPolygon{}, &ErrOrphanInnerRing{}
			}
			rings = append(rings, ring)
		}
	}
	flush()

	return geom.NewMultiPolygon(polys), nil
}
