// Command shpconv reads a GeoJSON feature collection through
// simplefeatures/geom and writes the equivalent shapefile geometry stream.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/spf13/cobra"

	"github.com/akhenakh/shapefile"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shpconv",
	Short: "Convert a GeoJSON feature collection into a shapefile geometry stream",
	Long: `shpconv reads a GeoJSON FeatureCollection through simplefeatures/geom,
converts each feature's geometry to the matching shapefile shape, and
writes a complete .shp byte stream.

All features in the collection must convert to the same shape family
(Point, Polyline, Polygon, or MultiPoint); a feature of a different family
than the first is skipped with a warning.`,
	RunE: runConvert,
}

func init() {
	rootCmd.Flags().StringP("in", "i", "", "Input GeoJSON file (default: stdin)")
	rootCmd.Flags().StringP("out", "o", "", "Output .shp file (default: stdout)")
	rootCmd.Flags().String("dims", "xy", "Coordinate flavor: xy, m, or z")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")
	dims, _ := cmd.Flags().GetString("dims")

	switch dims {
	case "xy", "m", "z":
	default:
		return fmt.Errorf("invalid --dims %q: want xy, m, or z", dims)
	}

	in, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer, ok := in.(io.Closer); ok {
		defer closer.Close()
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var fc geom.GeoJSONFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse geojson: %w", err)
	}

	shapeType, recordsBuf, err := convertFeatures(fc.Features, dims)
	if err != nil {
		return err
	}

	out, err := openOutput(outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closer, ok := out.(io.Closer); ok {
		defer closer.Close()
	}

	header := shapefile.DefaultHeader()
	header.ShapeType = shapeType
	header.FileLength = int32(50 + recordsBuf.Len()/2)
	if err := shapefile.WriteHeader(out, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	_, err = out.Write(recordsBuf.Bytes())
	return err
}

// convertFeatures converts every feature to a shapefile shape of the family
// established by the first convertible feature, buffering the encoded
// records so the header's file length can be computed before anything is
// written to a possibly non-seekable output.
func convertFeatures(features []geom.GeoJSONFeature, dims string) (shapefile.ShapeType, *bytes.Buffer, error) {
	var buf bytes.Buffer
	var shapeType shapefile.ShapeType
	have := false
	recordNumber := int32(1)

	for _, feat := range features {
		if feat.Geometry.IsEmpty() {
			continue
		}
		shape, err := convertGeometry(feat.Geometry, dims)
		if err != nil {
			log.Printf("skipping feature: %v", err)
			continue
		}
		if !have {
			shapeType = shape.ShapeType()
			have = true
		} else if shape.ShapeType() != shapeType {
			log.Printf("skipping feature: shape type %v does not match file type %v", shape.ShapeType(), shapeType)
			continue
		}
		if err := shapefile.WriteRecord(&buf, recordNumber, shape); err != nil {
			return 0, nil, fmt.Errorf("encode record %d: %w", recordNumber, err)
		}
		recordNumber++
	}

	if !have {
		shapeType = shapefile.ShapeTypeNull
	}
	return shapeType, &buf, nil
}

func convertGeometry(g geom.Geometry, dims string) (shapefile.Shape, error) {
	switch dims {
	case "m":
		return convertGeometryM(g)
	case "z":
		return convertGeometryZ(g)
	default:
		return convertGeometryPlain(g)
	}
}

func convertGeometryPlain(g geom.Geometry) (shapefile.Shape, error) {
	switch g.Type() {
	case geom.TypePoint:
		xy, ok := g.MustAsPoint().XY()
		if !ok {
			return nil, fmt.Errorf("empty point")
		}
		return shapefile.Point{X: xy.X, Y: xy.Y}, nil
	case geom.TypeMultiPoint:
		mp := g.MustAsMultiPoint()
		points := make([]shapefile.Point, 0, mp.NumPoints())
		for i := 0; i < mp.NumPoints(); i++ {
			xy, ok := mp.PointN(i).XY()
			if !ok {
				continue
			}
			points = append(points, shapefile.Point{X: xy.X, Y: xy.Y})
		}
		return shapefile.NewMultiPoint(points), nil
	case geom.TypeLineString, geom.TypeMultiLineString:
		return polylineFromGeomPlain(g)
	case geom.TypePolygon:
		return shapefile.PolygonFromSimpleFeature[shapefile.Point](g.MustAsPolygon())
	case geom.TypeMultiPolygon:
		return shapefile.MultiPolygonFromSimpleFeatures[shapefile.Point](g.MustAsMultiPolygon())
	default:
		return nil, fmt.Errorf("unsupported geometry type: %s", g.Type())
	}
}

func polylineFromGeomPlain(g geom.Geometry) (shapefile.Shape, error) {
	var lines []geom.LineString
	if g.IsLineString() {
		lines = []geom.LineString{g.MustAsLineString()}
	} else {
		mls := g.MustAsMultiLineString()
		for i := 0; i < mls.NumLineStrings(); i++ {
			lines = append(lines, mls.LineStringN(i))
		}
	}

	var points []shapefile.Point
	var parts []int32
	for _, ls := range lines {
		parts = append(parts, int32(len(points)))
		seq := ls.Coordinates()
		for i := 0; i < seq.Length(); i++ {
			xy := seq.GetXY(i)
			points = append(points, shapefile.Point{X: xy.X, Y: xy.Y})
		}
	}
	return shapefile.NewPolyline(points, parts), nil
}

// convertGeometryM and convertGeometryZ mirror convertGeometryPlain for the
// M and Z coordinate flavors. simplefeatures' GeoJSON geometries are always
// planar (XY), so the M/Z value of every converted point is NoData/zero —
// only the point count and part structure carry over.
func convertGeometryM(g geom.Geometry) (shapefile.Shape, error) {
	plain, err := convertGeometryPlain(g)
	if err != nil {
		return nil, err
	}
	return liftToM(plain)
}

func convertGeometryZ(g geom.Geometry) (shapefile.Shape, error) {
	plain, err := convertGeometryPlain(g)
	if err != nil {
		return nil, err
	}
	return liftToZ(plain)
}

func liftToM(shape shapefile.Shape) (shapefile.Shape, error) {
	switch s := shape.(type) {
	case shapefile.Point:
		return shapefile.PointM{X: s.X, Y: s.Y, M: shapefile.NoData}, nil
	case shapefile.MultiPoint[shapefile.Point]:
		return shapefile.NewMultiPoint(pointsToM(s.Points)), nil
	case shapefile.Polyline[shapefile.Point]:
		return shapefile.NewPolyline(pointsToM(s.Points), s.Parts), nil
	case shapefile.Polygon[shapefile.Point]:
		return shapefile.NewPolygon(pointsToM(s.Points), s.Parts), nil
	default:
		return nil, fmt.Errorf("unsupported shape for --dims m: %T", shape)
	}
}

func liftToZ(shape shapefile.Shape) (shapefile.Shape, error) {
	switch s := shape.(type) {
	case shapefile.Point:
		return shapefile.PointZ{X: s.X, Y: s.Y, Z: 0, M: shapefile.NoData}, nil
	case shapefile.MultiPoint[shapefile.Point]:
		return shapefile.NewMultiPoint(pointsToZ(s.Points)), nil
	case shapefile.Polyline[shapefile.Point]:
		return shapefile.NewPolyline(pointsToZ(s.Points), s.Parts), nil
	case shapefile.Polygon[shapefile.Point]:
		return shapefile.NewPolygon(pointsToZ(s.Points), s.Parts), nil
	default:
		return nil, fmt.Errorf("unsupported shape for --dims z: %T", shape)
	}
}

func pointsToM(points []shapefile.Point) []shapefile.PointM {
	out := make([]shapefile.PointM, len(points))
	for i, p := range points {
		out[i] = shapefile.PointM{X: p.X, Y: p.Y, M: shapefile.NoData}
	}
	return out
}

func pointsToZ(points []shapefile.Point) []shapefile.PointZ {
	out := make([]shapefile.PointZ, len(points))
	for i, p := range points {
		out[i] = shapefile.PointZ{X: p.X, Y: p.Y, Z: 0, M: shapefile.NoData}
	}
	return out
}

func openInput(path string) (io.Reader, error) {
	if path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
