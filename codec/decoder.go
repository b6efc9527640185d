package codec

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tomr-ninja/lpc"
)

// Decoder turns packets produced by an Encoder of the same frame size back
// into float32 frames.
type Decoder struct {
	order     int
	frameSize int
	history   []float64
	huffman   interface {
		io.ReadCloser
		flate.Resetter
	}
	bufs struct {
		coef       []float64
		qlpc       []int16
		res        []float64
		qres       []int8
		qresBinned []uint8
		x          []float64
	}
}

func NewDecoder(order, frameSize int) *Decoder {
	if order < 0 || frameSize <= order {
		panic("frameSize must be > order >= 0")
	}

	huffman := flate.NewReader(nil).(interface {
		io.ReadCloser
		flate.Resetter
	})

	d := &Decoder{
		order:     order,
		frameSize: frameSize,
		history:   make([]float64, order),
		huffman:   huffman,
	}
	d.bufs.coef = make([]float64, order+1)
	d.bufs.qlpc = make([]int16, order)
	d.bufs.res = make([]float64, frameSize)
	d.bufs.qres = make([]int8, frameSize)
	d.bufs.qresBinned = make([]uint8, frameSize)
	d.bufs.x = make([]float64, frameSize)

	return d
}

// Decode reconstructs one frame into to, which must hold frameSize samples.
func (d *Decoder) Decode(from []byte, to []float32) error {
	if len(to) != d.frameSize {
		return fmt.Errorf("%w: got %d, want %d", ErrFrameSize, len(to), d.frameSize)
	}
	if len(from) < len(magicHeader) {
		return ErrFrameTooShort
	}
	buf := bytes.NewReader(from)

	// read header
	magic := make([]byte, len(magicHeader))
	if _, err := io.ReadFull(buf, magic); err != nil {
		return err
	}
	switch string(magic) {
	case magicHeader:
	case silentHeader:
		clear(to)
		return nil
	default:
		return ErrInvalidHeader
	}

	orderByte, err := buf.ReadByte()
	if err != nil {
		return err
	}
	order := int(orderByte)
	if order > d.order {
		return fmt.Errorf("%w: %d > %d", ErrInvalidOrder, order, d.order)
	}

	coef := d.bufs.coef[:order+1]
	coef[0] = 1
	if err = readCoefs(buf, coef[1:], d.bufs.qlpc[:order]); err != nil {
		return err
	}

	// read residual scale
	var scaleRes float32
	if err = binary.Read(buf, binary.LittleEndian, &scaleRes); err != nil {
		return err
	}
	if scaleRes == 0 {
		scaleRes = minScale
	}

	// read residual compressed bytes
	var residualSize uint16
	if err = binary.Read(buf, binary.LittleEndian, &residualSize); err != nil {
		return err
	}
	if err = d.huffman.Reset(io.LimitReader(buf, int64(residualSize)), nil); err != nil {
		return err
	}
	qresBinned := d.bufs.qresBinned
	if err = binary.Read(d.huffman, binary.LittleEndian, qresBinned); err != nil {
		return fmt.Errorf("residual: %w", err)
	}

	// Reconstruct residual values back to float64
	qres := d.bufs.qres
	unbin(qresBinned, qres)
	residual := d.bufs.res
	dequantize(scaleRes, qres, residual)

	x := d.bufs.x
	if err = lpc.SynthesizeWithHistory(coef, d.history, residual, x); err != nil {
		return err
	}
	copy(d.history, x[d.frameSize-d.order:])

	for i, v := range x {
		to[i] = float32(v)
	}

	return nil
}

func readCoefs(r io.Reader, coefs []float64, q []int16) error {
	if len(coefs) <= leadCoefs {
		return readQuantized(r, coefs, q)
	}
	if err := readQuantized(r, coefs[:leadCoefs], q[:leadCoefs]); err != nil {
		return err
	}

	return readQuantized(r, coefs[leadCoefs:], q[leadCoefs:])
}
