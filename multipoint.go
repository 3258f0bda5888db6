package shapefile

import "io"

// MultiPoint layout: [bbox][num_points][points...][optional z-block][optional m-block]
// (spec.md §4.5), with the same optional-trailing-M arithmetic as the
// Polyline/Polygon families but no parts array.

func sizeOfMultiPointBase(numPoints int32) int {
	return 4*8 + 4 + 16*int(numPoints)
}

func sizeOfMultiPointM(numPoints int32, withM bool) int {
	size := sizeOfMultiPointBase(numPoints)
	if withM {
		size += 2*8 + 8*int(numPoints)
	}
	return size
}

func sizeOfMultiPointZ(numPoints int32, withM bool) int {
	size := sizeOfMultiPointBase(numPoints) + 2*8 + 8*int(numPoints)
	if withM {
		size += 2*8 + 8*int(numPoints)
	}
	return size
}

func readMultiPointHeader(r io.Reader) (bbox BBox, numPoints int32, err error) {
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
	numPoints, err = readI32LE(r)
	return
}

func writeMultiPointHeader(w io.Writer, bbox BBox, numPoints int32) error {
	for _, v := range []float64{bbox.XMin, bbox.YMin, bbox.XMax, bbox.YMax} {
		if err := writeF64LE(w, v); err != nil {
			return err
		}
	}
	return writeI32LE(w, numPoints)
}

func decodeMultiPointPlain(r io.Reader, recordSize int) (MultiPoint[Point], error) {
	bbox, numPoints, err := readMultiPointHeader(r)
	if err != nil {
		return MultiPoint[Point]{}, err
	}
	expected := sizeOfMultiPointBase(numPoints)
	if recordSize != expected {
		return MultiPoint[Point]{}, &ErrInvalidShapeRecordSize{ShapeType: ShapeTypeMultiPoint, Declared: recordSize, Expected: []int{expected}}
	}
	xys, err := readXYs(r, numPoints)
	if err != nil {
		return MultiPoint[Point]{}, err
	}
	points := make([]Point, numPoints)
	for i, xy := range xys {
		points[i] = Point{X: xy[0], Y: xy[1]}
	}
	return MultiPoint[Point]{BBox: bbox, Points: points}, nil
}

func decodeMultiPointM(r io.Reader, recordSize int) (MultiPoint[PointM], error) {
	bbox, numPoints, err := readMultiPointHeader(r)
	if err != nil {
		return MultiPoint[PointM]{}, err
	}
	withM := sizeOfMultiPointM(numPoints, true)
	withoutM := sizeOfMultiPointM(numPoints, false)
	if recordSize != withM && recordSize != withoutM {
		return MultiPoint[PointM]{}, &ErrInvalidShapeRecordSize{ShapeType: ShapeTypeMultiPointM, Declared: recordSize, Expected: []int{withoutM, withM}}
	}
	hasM := recordSize == withM

	xys, err := readXYs(r, numPoints)
	if err != nil {
		return MultiPoint[PointM]{}, err
	}
	points := make([]PointM, numPoints)
	for i, xy := range xys {
		points[i] = PointM{X: xy[0], Y: xy[1], M: NoData}
	}
	if hasM {
		if _, _, err := readRange(r); err != nil {
			return MultiPoint[PointM]{}, err
		}
		ms, err := readScalars(r, numPoints)
		if err != nil {
			return MultiPoint[PointM]{}, err
		}
		for i, m := range ms {
			points[i].M = m
		}
	}
	return MultiPoint[PointM]{BBox: bbox, Points: points}, nil
}

func decodeMultiPointZ(r io.Reader, recordSize int) (MultiPoint[PointZ], error) {
	bbox, numPoints, err := readMultiPointHeader(r)
	if err != nil {
		return MultiPoint[PointZ]{}, err
	}
	withM := sizeOfMultiPointZ(numPoints, true)
	withoutM := sizeOfMultiPointZ(numPoints, false)
	if recordSize != withM && recordSize != withoutM {
		return MultiPoint[PointZ]{}, &ErrInvalidShapeRecordSize{ShapeType: ShapeTypeMultiPointZ, Declared: recordSize, Expected: []int{withoutM, withM}}
	}
	hasM := recordSize == withM

	xys, err := readXYs(r, numPoints)
	if err != nil {
		return MultiPoint[PointZ]{}, err
	}
	points := make([]PointZ, numPoints)
	for i, xy := range xys {
		points[i] = PointZ{X: xy[0], Y: xy[1], M: NoData}
	}
	if _, _, err := readRange(r); err != nil {
		return MultiPoint[PointZ]{}, err
	}
	zs, err := readScalars(r, numPoints)
	if err != nil {
		return MultiPoint[PointZ]{}, err
	}
	for i, z := range zs {
		points[i].Z = z
	}
	if hasM {
		if _, _, err := readRange(r); err != nil {
			return MultiPoint[PointZ]{}, err
		}
		ms, err := readScalars(r, numPoints)
		if err != nil {
			return MultiPoint[PointZ]{}, err
		}
		for i, m := range ms {
			points[i].M = m
		}
	}
	return MultiPoint[PointZ]{BBox: bbox, Points: points}, nil
}

func encodeMultiPointPlain(w io.Writer, mp MultiPoint[Point]) error {
	bbox := bboxFromCoordinates(mp.Points)
	if err := writeMultiPointHeader(w, bbox, int32(len(mp.Points))); err != nil {
		return err
	}
	xys := make([][2]float64, len(mp.Points))
	for i, p := range mp.Points {
		xys[i] = [2]float64{p.X, p.Y}
	}
	return writeXYs(w, xys)
}

func encodeMultiPointM(w io.Writer, mp MultiPoint[PointM]) error {
	bbox := bboxFromCoordinates(mp.Points)
	if err := writeMultiPointHeader(w, bbox, int32(len(mp.Points))); err != nil {
		return err
	}
	xys := make([][2]float64, len(mp.Points))
	ms := make([]float64, len(mp.Points))
	for i, p := range mp.Points {
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

func encodeMultiPointZ(w io.Writer, mp MultiPoint[PointZ]) error {
	bbox := bboxFromCoordinates(mp.Points)
	if err := writeMultiPointHeader(w, bbox, int32(len(mp.Points))); err != nil {
		return err
	}
	xys := make([][2]float64, len(mp.Points))
	zs := make([]float64, len(mp.Points))
	ms := make([]float64, len(mp.Points))
	for i, p := range mp.Points {
		xys[i] = [2]float64{p.X, p.Y}
		zs[i] = p.Z
		ms[i] = p.M
	}
	if err := writeXYs(w, xys); err != nil {
		return err
	}
	zLo, zHi := zRangeOf(mp.Points)
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

// SizeInBytes returns the exact encoded content size of mp, always
// including the M block for M/Z variants.
func (mp MultiPoint[P]) SizeInBytes() int {
	n := int32(len(mp.Points))
	switch coordinateKind[P]() {
	case kindM:
		return sizeOfMultiPointM(n, true)
	case kindZ:
		return sizeOfMultiPointZ(n, true)
	default:
		return sizeOfMultiPointBase(n)
	}
}
