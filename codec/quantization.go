package codec

import (
	"encoding/binary"
	"io"
	"math"
)

// fixed is a signed integer with a wire size binary understands.
type fixed interface {
	~int8 | ~int16 | ~int32
}

// minScale keeps an all-zero group from dividing by zero.
const minScale = 1e-9

// limits returns the symmetric full-scale value and the clamp range of T.
func limits[T fixed]() (full, lo, hi int) {
	bits := binary.Size(T(0)) * 8
	hi = 1<<(bits-1) - 1
	return hi, -hi - 1, hi
}

// quantize maps vs onto the full signed range of T, scaled by the largest
// magnitude, and returns that scale.
func quantize[T fixed](vs []float64, quantized []T) (scale float32) {
	scale64 := minScale
	for _, v := range vs {
		scale64 = math.Max(scale64, math.Abs(v))
	}
	scale = float32(scale64)

	full, lo, hi := limits[T]()
	for i := range quantized {
		q := int(math.Round(vs[i] / scale64 * float64(full)))
		quantized[i] = T(min(max(q, lo), hi))
	}

	return scale
}

func dequantize[T fixed](scale float32, qvs []T, to []float64) {
	if len(to) != len(qvs) {
		panic("to and qvs must have the same length")
	}

	full, _, _ := limits[T]()
	step := float64(scale) / float64(full)
	for i, q := range qvs {
		to[i] = float64(q) * step
	}
}

// writeQuantized writes the scale of vs followed by its quantized values.
func writeQuantized[T fixed](w io.Writer, vs []float64, qvs []T) error {
	if len(vs) != len(qvs) {
		panic("vs and qvs must have the same length")
	}

	scale := quantize(vs, qvs)
	if err := binary.Write(w, binary.LittleEndian, scale); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, qvs)
}

func readQuantized[T fixed](r io.Reader, vs []float64, qvs []T) error {
	if len(vs) != len(qvs) {
		panic("vs and qvs must have the same length")
	}

	var scale float32
	if err := binary.Read(r, binary.LittleEndian, &scale); err != nil {
		return err
	}
	if scale == 0 {
		scale = minScale
	}
	if err := binary.Read(r, binary.LittleEndian, qvs); err != nil {
		return err
	}
	dequantize(scale, qvs, vs)

	return nil
}
