package shapefile

import (
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/require"
)

func squareRing(coords []float64) geom.LineString {
	seq := geom.NewSequence(coords, geom.DimXY)
	return geom.NewLineString(seq)
}

func TestPolygonFromSimpleFeatureForcesClockwiseExterior(t *testing.T) {
	require := require.New(t)

	// Counter-clockwise exterior square, per spec.md scenario 5.
	ring := squareRing([]float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0})
	poly := geom.NewPolygon([]geom.LineString{ring})

	got, err := PolygonFromSimpleFeature[Point](poly)
	require.NoError(err)
	require.Len(got.Parts, 1)
	require.Equal(int32(0), got.Parts[0])
	require.GreaterOrEqual(signedArea(got.Points), 0.0)
}

func TestPolygonFromSimpleFeatureWithHole(t *testing.T) {
	require := require.New(t)

	exterior := squareRing([]float64{0, 0, 0, 10, 10, 10, 10, 0, 0, 0})
	hole := squareRing([]float64{2, 2, 2, 4, 4, 4, 4, 2, 2, 2})
	poly := geom.NewPolygon([]geom.LineString{exterior, hole})

	got, err := PolygonFromSimpleFeature[Point](poly)
	require.NoError(err)
	require.Len(got.Parts, 2)
	require.Equal(int32(0), got.Parts[0])
	// The exterior ring's point count (5, closed square), not one less —
	// the documented off-by-one fix.
	require.Equal(int32(5), got.Parts[1])

	runs := got.PartRuns()
	require.GreaterOrEqual(signedArea(runs[0]), 0.0)
	require.Less(signedArea(runs[1]), 0.0)
}

func TestPolygonToSimpleFeaturesOrphanInnerRing(t *testing.T) {
	require := require.New(t)

	// A lone counter-clockwise ring with no preceding exterior.
	hole := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	pg := NewPolygon(hole, []int32{0})

	_, err := pg.ToSimpleFeatures()
	require.Error(err)
	var orphan *ErrOrphanInnerRing
	require.ErrorAs(err, &orphan)
}

func TestPolygonRoundTripThroughSimpleFeatures(t *testing.T) {
	require := require.New(t)

	exterior := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	pg := NewPolygon(exterior, []int32{0})
	require.GreaterOrEqual(signedArea(pg.Points), 0.0)

	mp, err := pg.ToSimpleFeatures()
	require.NoError(err)
	require.Equal(1, mp.NumPolygons())

	back, err := PolygonFromSimpleFeature[Point](mp.PolygonN(0))
	require.NoError(err)
	require.GreaterOrEqual(signedArea(back.Points), 0.0)
}
