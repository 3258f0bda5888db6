package shapefile

import "io"

// sizeOfMultipartBase is the size, in bytes, of the bbox/counts/parts/xy
// portion shared by every Polyline and Polygon variant.
func sizeOfMultipartBase(numPoints, numParts int32) int {
	return 4*8 + 4 + 4 + 4*int(numParts) + 16*int(numPoints)
}

// sizeOfMultipartM is size_of_record(n, parts, m) for the M family: the
// base layout plus an optional M block.
func sizeOfMultipartM(numPoints, numParts int32, withM bool) int {
	size := sizeOfMultipartBase(numPoints, numParts)
	if withM {
		size += 2*8 + 8*int(numPoints)
	}
	return size
}

// sizeOfMultipartZ is size_of_record(n, parts, m) for the Z family: the
// base layout, a mandatory Z block, and an optional M block.
func sizeOfMultipartZ(numPoints, numParts int32, withM bool) int {
	size := sizeOfMultipartBase(numPoints, numParts) + 2*8 + 8*int(numPoints)
	if withM {
		size += 2*8 + 8*int(numPoints)
	}
	return size
}

func readMultipartHeader(r io.Reader) (bbox BBox, numParts, numPoints int32, err error) {
	xmin, err := readF64LE(r)
	if err != nil {
		return
	}
	ymin, err := readF64LE(r)
	if err != nil {
		return
	}
	xmax, err := readF64LE(r)
	if err != nil {
		return
	}
	ymax, err := readF64LE(r)
	if err != nil {
		return
	}
	bbox = BBox{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}

	numParts, err = readI32LE(r)
	if err != nil {
		return
	}
	numPoints, err = readI32LE(r)
	return
}

func writeMultipartHeader(w io.Writer, bbox BBox, numParts, numPoints int32) error {
	for _, v := range []float64{bbox.XMin, bbox.YMin, bbox.XMax, bbox.YMax} {
		if err := writeF64LE(w, v); err != nil {
			return err
		}
	}
	if err := writeI32LE(w, numParts); err != nil {
		return err
	}
	return writeI32LE(w, numPoints)
}

// decodeMultipartPlain decodes the content of a Polyline/Polygon record with
// no Z or M (ShapeTypePolyline / ShapeTypePolygon).
func decodeMultipartPlain(r io.Reader, recordSize int, shapeType ShapeType) (Multipart[Point], error) {
	bbox, numParts, numPoints, err := readMultipartHeader(r)
	if err != nil {
		return Multipart[Point]{}, err
	}

	expected := sizeOfMultipartBase(numPoints, numParts)
	if recordSize != expected {
		return Multipart[Point]{}, &ErrInvalidShapeRecordSize{ShapeType: shapeType, Declared: recordSize, Expected: []int{expected}}
	}

	parts, err := readParts(r, numParts)
	if err != nil {
		return Multipart[Point]{}, err
	}
	xys, err := readXYs(r, numPoints)
	if err != nil {
		return Multipart[Point]{}, err
	}

	points := make([]Point, numPoints)
	for i, xy := range xys {
		points[i] = Point{X: xy[0], Y: xy[1]}
	}

	return Multipart[Point]{BBox: bbox, Points: points, Parts: parts}, nil
}

// decodeMultipartM decodes the content of a PolylineM/PolygonM record,
// inferring whether the trailing M block is present from record size
// arithmetic (spec.md §4.5).
func decodeMultipartM(r io.Reader, recordSize int, shapeType ShapeType) (Multipart[PointM], error) {
	bbox, numParts, numPoints, err := readMultipartHeader(r)
	if err != nil {
		return Multipart[PointM]{}, err
	}

	withM := sizeOfMultipartM(numPoints, numParts, true)
	withoutM := sizeOfMultipartM(numPoints, numParts, false)
	if recordSize != withM && recordSize != withoutM {
		return Multipart[PointM]{}, &ErrInvalidShapeRecordSize{ShapeType: shapeType, Declared: recordSize, Expected: []int{withoutM, withM}}
	}
	hasM := recordSize == withM

	parts, err := readParts(r, numParts)
	if err != nil {
		return Multipart[PointM]{}, err
	}
	xys, err := readXYs(r, numPoints)
	if err != nil {
		return Multipart[PointM]{}, err
	}

	points := make([]PointM, numPoints)
	for i, xy := range xys {
		points[i] = PointM{X: xy[0], Y: xy[1], M: NoData}
	}

	if hasM {
		if _, _, err := readRange(r); err != nil {
			return Multipart[PointM]{}, err
		}
		ms, err := readScalars(r, numPoints)
		if err != nil {
			return Multipart[PointM]{}, err
		}
		for i, m := range ms {
			points[i].M = m
		}
	}

	return Multipart[PointM]{BBox: bbox, Points: points, Parts: parts}, nil
}

// decodeMultipartZ decodes the content of a PolylineZ/PolygonZ record. The Z
// block is always present; the trailing M block is optional, per spec.md §4.5.
func decodeMultipartZ(r io.Reader, recordSize int, shapeType ShapeType) (Multipart[PointZ], error) {
	bbox, numParts, numPoints, err := readMultipartHeader(r)
	if err != nil {
		return Multipart[PointZ]{}, err
	}

	withM := sizeOfMultipartZ(numPoints, numParts, true)
	withoutM := sizeOfMultipartZ(numPoints, numParts, false)
	if recordSize != withM && recordSize != withoutM {
		return Multipart[PointZ]{}, &ErrInvalidShapeRecordSize{ShapeType: shapeType, Declared: recordSize, Expected: []int{withoutM, withM}}
	}
	hasM := recordSize == withM

	parts, err := readParts(r, numParts)
	if err != nil {
		return Multipart[PointZ]{}, err
	}
	xys, err := readXYs(r, numPoints)
	if err != nil {
		return Multipart[PointZ]{}, err
	}

	points := make([]PointZ, numPoints)
	for i, xy := range xys {
		points[i] = PointZ{X: xy[0], Y: xy[1], M: NoData}
	}

	if _, _, err := readRange(r); err != nil {
		return Multipart[PointZ]{}, err
	}
	zs, err := readScalars(r, numPoints)
	if err != nil {
		return Multipart[PointZ]{}, err
	}
	for i, z := range zs {
		points[i].Z = z
	}

	if hasM {
		if _, _, err := readRange(r); err != nil {
			return Multipart[PointZ]{}, err
		}
		ms, err := readScalars(r, numPoints)
		if err != nil {
			return Multipart[PointZ]{}, err
		}
		for i, m := range ms {
			points[i].M = m
		}
	}

	return Multipart[PointZ]{BBox: bbox, Points: points, Parts: parts}, nil
}

func encodeMultipartPlain(w io.Writer, m Multipart[Point]) error {
	if !partsArrayValid(m) {
		return &ErrMalformedShape{Reason: "parts array is not valid"}
	}
	bbox := bboxFromCoordinates(m.Points)
	if err := writeMultipartHeader(w, bbox, int32(len(m.Parts)), int32(len(m.Points))); err != nil {
		return err
	}
	if err := writeParts(w, m.Parts); err != nil {
		return err
	}
	xys := make([][2]float64, len(m.Points))
	for i, p := range m.Points {
		xys[i] = [2]float64{p.X, p.Y}
	}
	return writeXYs(w, xys)
}

func encodeMultipartM(w io.Writer, m Multipart[PointM]) error {
	if !partsArrayValid(m) {
		return &ErrMalformedShape{Reason: "parts array is not valid"}
	}
	bbox := bboxFromCoordinates(m.Points)
	if err := writeMultipartHeader(w, bbox, int32(len(m.Parts)), int32(len(m.Points))); err != nil {
		return err
	}
	if err := writeParts(w, m.Parts); err != nil {
		return err
	}
	xys := make([][2]float64, len(m.Points))
	ms := make([]float64, len(m.Points))
	for i, p := range m.Points {
		xys[i] = [2]float64{p.X, p.Y}
		ms[i] = p.M
	}
	if err := writeXYs(w, xys); err != nil {
		return err
	}
	mLo, mHi := mRangeOf(ms)
	if err := writeRange(w, mLo, mHi); err != nil {
		return err
	}
	return writeScalars(w, ms)
}

func encodeMultipartZ(w io.Writer, m Multipart[PointZ]) error {
	if !partsArrayValid(m) {
		return &ErrMalformedShape{Reason: "parts array is not valid"}
	}
	bbox := bboxFromCoordinates(m.Points)
	if err := writeMultipartHeader(w, bbox, int32(len(m.Parts)), int32(len(m.Points))); err != nil {
		return err
	}
	if err := writeParts(w, m.Parts); err != nil {
		return err
	}
	xys := make([][2]float64, len(m.Points))
	zs := make([]float64, len(m.Points))
	ms := make([]float64, len(m.Points))
	for i, p := range m.Points {
		xys[i] = [2]float64{p.X, p.Y}
		zs[i] = p.Z
		ms[i] = p.M
	}
	if err := writeXYs(w, xys); err != nil {
		return err
	}
	zLo, zHi := zRangeOf(m.Points)
	if err := writeRange(w, zLo, zHi); err != nil {
		return err
	}
	if err := writeScalars(w, zs); err != nil {
		return err
	}
	mLo, mHi := mRangeOf(ms)
	if err := writeRange(w, mLo, mHi); err != nil {
		return err
	}
	return writeScalars(w, ms)
}

// SizeInBytes returns the exact encoded content size of pl, including the
// always-present M block for M/Z variants (encoders never produce the
// "M absent" wire form — spec.md §4.5).
func (pl Polyline[P]) SizeInBytes() int {
	return multipartSizeInBytes(pl.Multipart)
}

// SizeInBytes returns the exact encoded content size of pg.
func (pg Polygon[P]) SizeInBytes() int {
	return multipartSizeInBytes(pg.Multipart)
}

func multipartSizeInBytes[P Coordinate](m Multipart[P]) int {
	n, k := int32(len(m.Points)), int32(len(m.Parts))
	switch coordinateKind[P]() {
	case kindM:
		return sizeOfMultipartM(n, k, true)
	case kindZ:
		return sizeOfMultipartZ(n, k, true)
	default:
		return sizeOfMultipartBase(n, k)
	}
}
