package pixbuf

import "fmt"

// MaxChannels is the largest per-pixel channel count a buffer can hold.
const MaxChannels = 4

// Buffer is a dense single-precision pixel buffer of shape
// (height, width, channels), row-major and contiguous.
//
// Rows are stored in host order: row 0 is the bottom row of the image.
// Values are not clamped; they may exceed [0, 1].
//
// A Buffer has no aliasing contract with its source image: acquisition is a
// one-shot extraction, not a live view. Operations that mutate a Buffer do
// so in place and are documented as such.
type Buffer struct {
	data     []float32
	width    int
	height   int
	channels int
}

// New creates a blank buffer of the given size, every pixel filled with
// color. The channel count is the length of color. Returns ErrInvalidColor
// if color has zero or more than four components.
func New(width, height int, color []float32) (*Buffer, error) {
	channels := len(color)
	if channels == 0 || channels > MaxChannels {
		return nil, fmt.Errorf("%w, but found %d in %v", ErrInvalidColor, channels, color)
	}
	b := &Buffer{
		data:     make([]float32, width*height*channels),
		width:    width,
		height:   height,
		channels: channels,
	}
	for i := 0; i < len(b.data); i += channels {
		copy(b.data[i:i+channels], color)
	}
	return b, nil
}

// NewRGBA creates a blank 4-channel buffer filled with transparent black.
func NewRGBA(width, height int) *Buffer {
	return &Buffer{
		data:     make([]float32, width*height*4),
		width:    width,
		height:   height,
		channels: 4,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Channels returns the per-pixel channel count.
func (b *Buffer) Channels() int { return b.channels }

// Shape returns the buffer dimensions as (height, width, channels).
func (b *Buffer) Shape() (height, width, channels int) {
	return b.height, b.width, b.channels
}

// Data returns the raw backing slice, row-major in host row order.
// Mutating it mutates the buffer.
func (b *Buffer) Data() []float32 { return b.data }

// Pixel returns the channel slice for the pixel at the given host-order
// row and column. The slice aliases the buffer.
func (b *Buffer) Pixel(row, col int) []float32 {
	i := (row*b.width + col) * b.channels
	return b.data[i : i+b.channels]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return &Buffer{
		data:     data,
		width:    b.width,
		height:   b.height,
		channels: b.channels,
	}
}
