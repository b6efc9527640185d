// Package codec is a frame-based LPC residual codec: each frame carries its
// quantized predictor and a Huffman-coded, log-binned prediction residual.
package codec

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tomr-ninja/lpc"
)

const (
	magicHeader  = "BBRT"
	silentHeader = "BBRS"

	// leadCoefs is the number of leading coefficients quantized as their own
	// scale group; they dominate the others in magnitude.
	leadCoefs = 3
)

// Encoder turns fixed-size float32 frames into packets.
type Encoder struct {
	order           int
	frameSize       int
	silenceDetector SilenceDetector
	analyzer        *lpc.Analyzer[float64]
	history         []float64
	huffman         *flate.Writer
	huffmanBuf      *bytes.Buffer
	bufs            struct {
		x          []float64
		qlpc       []int16
		res        []float64
		qres       []int8
		qresBinned []uint8
	}
}

func NewEncoder(order, frameSize int) *Encoder {
	if order < 0 || frameSize <= order {
		panic("frameSize must be > order >= 0")
	}

	analyzer, err := lpc.New[float64](order,
		lpc.WithAutocorrelation(lpc.Finite),
		lpc.WithRecursion(lpc.Guarded),
		lpc.WithSilentModel(),
	)
	if err != nil {
		panic(err)
	}

	enc := &Encoder{
		order:           order,
		frameSize:       frameSize,
		silenceDetector: newSilenceDetector(),
		analyzer:        analyzer,
		history:         make([]float64, order),
		huffmanBuf:      bytes.NewBuffer(make([]byte, 0, frameSize)),
	}
	enc.bufs.x = make([]float64, frameSize)
	enc.bufs.qlpc = make([]int16, order)
	enc.bufs.res = make([]float64, frameSize)
	enc.bufs.qres = make([]int8, frameSize)
	enc.bufs.qresBinned = make([]uint8, frameSize)

	enc.huffman, err = flate.NewWriter(enc.huffmanBuf, flate.HuffmanOnly)
	if err != nil {
		panic(err)
	}

	return enc
}

// Encode writes the packet for one frame into to's backing array and
// returns its length. A packet that does not fit in cap(to) is an
// ErrShortBuffer and leaves the encoder's history untouched.
func (e *Encoder) Encode(from []float32, to []byte) (int, error) {
	if len(from) != e.frameSize {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFrameSize, len(from), e.frameSize)
	}
	size := cap(to)
	to = to[:0]

	x := e.bufs.x
	for i, v := range from {
		x[i] = float64(v)
	}

	if err := e.analyzer.Calc(x); err != nil {
		return 0, fmt.Errorf("lpc analysis: %w", err)
	}
	if e.silenceDetector.IsSilence(e.analyzer.Autocorrelation()[0], e.frameSize) {
		if size < len(silentHeader) {
			return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, len(silentHeader), size)
		}
		to = append(to, silentHeader...)
		return len(to), nil
	}

	lpcCoeffs := e.analyzer.Coef()[1:]
	residual := e.bufs.res
	if err := lpc.ResidualWithHistory(e.analyzer.Coef(), e.history, x, residual); err != nil {
		return 0, err
	}

	// Quantize residual to int8
	qres := e.bufs.qres
	scaleRes := quantize(residual, qres)
	qresBinned := bin(qres, e.bufs.qresBinned)

	// Compress residual using Huffman coding
	e.huffmanBuf.Reset()
	e.huffman.Reset(e.huffmanBuf)
	if err := binary.Write(e.huffman, binary.LittleEndian, qresBinned); err != nil {
		return 0, err
	}
	if err := e.huffman.Close(); err != nil {
		return 0, err
	}
	qresCompressed := e.huffmanBuf.Bytes()

	buf := bytes.NewBuffer(to)

	// header
	buf.WriteString(magicHeader) // 4 bytes
	buf.WriteByte(byte(e.order)) // 1 byte
	// LPC
	if err := writeCoefs(buf, lpcCoeffs, e.bufs.qlpc); err != nil {
		return 0, err
	}
	// residual scale; 32 bit float is enough
	if err := binary.Write(buf, binary.LittleEndian, scaleRes); err != nil {
		return 0, err
	}
	if err := writeResidual(buf, qresCompressed); err != nil {
		return 0, err
	}
	if buf.Len() > size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, buf.Len(), size)
	}

	// Update history with tail of current frame for next call
	copy(e.history, x[e.frameSize-e.order:])

	return buf.Len(), nil
}

// writeResidual writes the 16-bit length of the compressed residual followed by its bytes.
func writeResidual(buf *bytes.Buffer, compressed []byte) error {
	if len(compressed) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrResidualTooLarge, len(compressed))
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(len(compressed))); err != nil {
		return err
	}
	_, err := buf.Write(compressed)

	return err
}

func writeCoefs(buf *bytes.Buffer, coefs []float64, q []int16) error {
	if len(coefs) <= leadCoefs {
		return writeQuantized(buf, coefs, q)
	}
	if err := writeQuantized(buf, coefs[:leadCoefs], q[:leadCoefs]); err != nil {
		return err
	}

	return writeQuantized(buf, coefs[leadCoefs:], q[leadCoefs:])
}

// bin maps int8 residuals to a compact uint8 symbol set:
//
//	0 -> 0
//	1 <= |v| <= 4: exact (index = |v|, sign in bit7)
//	|v| >= 5: logarithmic bins with mid-point reconstruction (indices 5..9)
//
// Indices (lower 7 bits):
//
//	5: [5,7]
//	6: [8,15]
//	7: [16,31]
//	8: [32,63]
//	9: [64,128]
//
// Sign: bit7 = 1 if negative.
func bin(in []int8, out []uint8) []uint8 {
	for i, v := range in {
		m := int(v)
		neg := m < 0
		if neg {
			m = -m
		}

		var idx uint8
		switch {
		case m <= 4:
			idx = uint8(m)
		case m <= 7:
			idx = 5
		case m <= 15:
			idx = 6
		case m <= 31:
			idx = 7
		case m <= 63:
			idx = 8
		default:
			idx = 9
		}
		if neg {
			idx |= 0x80
		}
		out[i] = idx
	}

	return out
}

// binMid is the reconstruction magnitude of each bin index.
var binMid = [...]int8{0, 1, 2, 3, 4, (5 + 7) / 2, (8 + 15) / 2, (16 + 31) / 2, (32 + 63) / 2, (64 + 127) / 2}

// unbin reverses bin (lossless for |v| <= 4, bin midpoint otherwise).
// Unknown indices decode as zero.
func unbin(in []uint8, to []int8) {
	for i, code := range in {
		idx := int(code & 0x7F)
		if idx >= len(binMid) {
			to[i] = 0
			continue
		}
		mag := binMid[idx]
		if code&0x80 != 0 {
			mag = -mag
		}
		to[i] = mag
	}
}
