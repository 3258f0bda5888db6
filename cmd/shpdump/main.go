// Command shpdump decodes a shapefile byte stream and prints a one-line
// summary of the header and of every record it contains.
package main

import (
	"fmt"
	"io"
	"os"

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
	Use:   "shpdump",
	Short: "Dump the header and records of a shapefile geometry stream",
	Long: `shpdump reads a .shp-shaped byte stream, decodes its header and
every record, and prints a one-line summary of each to stdout.

With no --in flag, the stream is read from stdin.`,
	RunE: runDump,
}

func init() {
	rootCmd.Flags().StringP("in", "i", "", "Input .shp file (default: stdin)")
}

func runDump(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")

	src, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	header, err := shapefile.ReadHeader(src)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	fmt.Printf("header: shape_type=%v version=%d file_length_words=%d bbox=(%.3f,%.3f)-(%.3f,%.3f)\n",
		header.ShapeType, header.Version, header.FileLength,
		header.XMin, header.YMin, header.XMax, header.YMax)

	count := 0
	for {
		recordNumber, shape, err := shapefile.ReadRecord(src, header.ShapeType)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read record %d: %w", count+1, err)
		}
		fmt.Println(summarizeRecord(recordNumber, shape))
		count++
	}
	fmt.Printf("%d records\n", count)
	return nil
}

func openInput(path string) (io.Reader, error) {
	if path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// summarizeRecord renders one line: record number and shape type, then the
// coordinates for a single point, or the point count (and part count for
// polylines and polygons) and bounding box for the other shapes.
func summarizeRecord(recordNumber int32, shape shapefile.Shape) string {
	switch s := shape.(type) {
	case shapefile.NullShape:
		return fmt.Sprintf("record %d: Null", recordNumber)
	case shapefile.Point:
		return fmt.Sprintf("record %d: Point (%.3f, %.3f)", recordNumber, s.X, s.Y)
	case shapefile.PointM:
		return fmt.Sprintf("record %d: PointM (%.3f, %.3f) m=%.3f", recordNumber, s.X, s.Y, s.M)
	case shapefile.PointZ:
		return fmt.Sprintf("record %d: PointZ (%.3f, %.3f) z=%.3f m=%.3f", recordNumber, s.X, s.Y, s.Z, s.M)
	case shapefile.MultiPoint[shapefile.Point]:
		return fmt.Sprintf("record %d: MultiPoint %d points bbox=%v", recordNumber, len(s.Points), s.BBox)
	case shapefile.MultiPoint[shapefile.PointM]:
		return fmt.Sprintf("record %d: MultiPointM %d points bbox=%v", recordNumber, len(s.Points), s.BBox)
	case shapefile.MultiPoint[shapefile.PointZ]:
		return fmt.Sprintf("record %d: MultiPointZ %d points bbox=%v", recordNumber, len(s.Points), s.BBox)
	case shapefile.Polyline[shapefile.Point]:
		return fmt.Sprintf("record %d: Polyline %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	case shapefile.Polyline[shapefile.PointM]:
		return fmt.Sprintf("record %d: PolylineM %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	case shapefile.Polyline[shapefile.PointZ]:
		return fmt.Sprintf("record %d: PolylineZ %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	case shapefile.Polygon[shapefile.Point]:
		return fmt.Sprintf("record %d: Polygon %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	case shapefile.Polygon[shapefile.PointM]:
		return fmt.Sprintf("record %d: PolygonM %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	case shapefile.Polygon[shapefile.PointZ]:
		return fmt.Sprintf("record %d: PolygonZ %d points %d parts bbox=%v", recordNumber, len(s.Points), len(s.Parts), s.BBox)
	default:
		return fmt.Sprintf("record %d: %v (%T)", recordNumber, shape.ShapeType(), shape)
	}
}
