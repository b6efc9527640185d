package codec

import "errors"

var (
	// ErrFrameSize indicates input whose length differs from the configured frame size.
	ErrFrameSize = errors.New("codec: frame length does not match frame size")

	// ErrShortBuffer indicates an output buffer whose capacity cannot hold the packet.
	ErrShortBuffer = errors.New("codec: output buffer too small")

	// ErrResidualTooLarge indicates a compressed residual longer than its
	// 16-bit length field can describe.
	ErrResidualTooLarge = errors.New("codec: compressed residual exceeds 65535 bytes")

	// ErrFrameTooShort indicates a packet too short to hold a header.
	ErrFrameTooShort = errors.New("codec: frame too short")

	// ErrInvalidHeader indicates a packet with an unknown magic header.
	ErrInvalidHeader = errors.New("codec: invalid magic header")

	// ErrInvalidOrder indicates a packet whose order exceeds the decoder's order.
	ErrInvalidOrder = errors.New("codec: packet order exceeds decoder order")
)
