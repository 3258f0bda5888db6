package shapefile

import (
	"encoding/binary"
	"io"
	"math"
)

// readExact fills buf entirely from r, surfacing a short read as an error.
func readExact(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

func readI32BE(r io.Reader) (int32, error) {
	var buf [4]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func writeI32BE(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func readI32LE(r io.Reader) (int32, error) {
	var buf [4]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func writeI32LE(w io.Writer, v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func readF64LE(r io.Reader) (float64, error) {
	var buf [8]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func writeF64LE(w io.Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

// readParts reads n little-endian i32 part-indices.
func readParts(r io.Reader, n int32) ([]int32, error) {
	parts := make([]int32, n)
	for i := range parts {
		v, err := readI32LE(r)
		if err != nil {
			return nil, err
		}
		parts[i] = v
	}
	return parts, nil
}

func writeParts(w io.Writer, parts []int32) error {
	for _, p := range parts {
		if err := writeI32LE(w, p); err != nil {
			return err
		}
	}
	return nil
}

// readRange reads a little-endian (min, max) pair.
func readRange(r io.Reader) (float64, float64, error) {
	lo, err := readF64LE(r)
	if err != nil {
		return 0, 0, err
	}
	hi, err := readF64LE(r)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func writeRange(w io.Writer, lo, hi float64) error {
	if err := writeF64LE(w, lo); err != nil {
		return err
	}
	return writeF64LE(w, hi)
}

// readXYs reads n (x, y) pairs little-endian.
func readXYs(r io.Reader, n int32) ([][2]float64, error) {
	xys := make([][2]float64, n)
	for i := range xys {
		x, err := readF64LE(r)
		if err != nil {
			return nil, err
		}
		y, err := readF64LE(r)
		if err != nil {
			return nil, err
		}
		xys[i] = [2]float64{x, y}
	}
	return xys, nil
}

func writeXYs(w io.Writer, xys [][2]float64) error {
	for _, xy := range xys {
		if err := writeF64LE(w, xy[0]); err != nil {
			return err
		}
		if err := writeF64LE(w, xy[1]); err != nil {
			return err
		}
	}
	return nil
}

// readScalars reads n little-endian f64 scalars (used for Z and M arrays).
func readScalars(r io.Reader, n int32) ([]float64, error) {
	vals := make([]float64, n)
	for i := range vals {
		v, err := readF64LE(r)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func writeScalars(w io.Writer, vals []float64) error {
	for _, v := range vals {
		if err := writeF64LE(w, v); err != nil {
			return err
		}
	}
	return nil
}
