// Package memimage provides a self-contained in-memory host image for
// pixbuf.
//
// It implements the pixbuf.Image and pixbuf.Host interfaces without any
// external host environment, which makes it suitable for tests, tools, and
// standalone pipelines. Scaling uses the Catmull-Rom kernel from
// golang.org/x/image/draw.
package memimage

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixbuf"
)

// Errors for host image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("memimage: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is not 1 to 4.
	ErrInvalidChannels = errors.New("memimage: channel count must be 1 to 4")

	// ErrDeleted is returned when a deleted image handle is used.
	ErrDeleted = errors.New("memimage: image has been deleted")

	// ErrDataLength is returned when raw pixel data has the wrong length.
	ErrDataLength = errors.New("memimage: raw pixel data has wrong length")
)

// Image is an in-memory host image resource.
//
// Pixels are stored as a flat float32 slice in host order: bottom row
// first, row-major, channels interleaved. The declared colorspace is a
// name only; it never affects the stored values.
type Image struct {
	name       string
	width      int
	height     int
	channels   int
	colorSpace string
	pixels     []float32
	deleted    bool
}

// New creates a blank in-memory image filled with zeros. The colorspace
// name defaults to "sRGB"; use SetColorSpaceName to change it.
func New(name string, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	return &Image{
		name:       name,
		width:      width,
		height:     height,
		channels:   channels,
		colorSpace: "sRGB",
		pixels:     make([]float32, width*height*channels),
	}, nil
}

// Name returns the image name.
func (m *Image) Name() string { return m.name }

// Size returns the image dimensions in pixels.
func (m *Image) Size() (width, height int) { return m.width, m.height }

// ChannelCount returns the per-pixel channel count.
func (m *Image) ChannelCount() int { return m.channels }

// ColorSpaceName returns the declared colorspace name.
func (m *Image) ColorSpaceName() string { return m.colorSpace }

// SetColorSpaceName sets the declared colorspace name. The stored pixels
// are not converted.
func (m *Image) SetColorSpaceName(name string) { m.colorSpace = name }

// ReadRawPixels returns a copy of the raw pixel data. The returned slice
// does not alias the image.
func (m *Image) ReadRawPixels() ([]float32, error) {
	if m.deleted {
		return nil, ErrDeleted
	}
	data := make([]float32, len(m.pixels))
	copy(data, m.pixels)
	return data, nil
}

// WriteRawPixels replaces the raw pixel data. The data length must equal
// width*height*channels.
func (m *Image) WriteRawPixels(data []float32) error {
	if m.deleted {
		return ErrDeleted
	}
	if len(data) != len(m.pixels) {
		return fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(data), len(m.pixels))
	}
	copy(m.pixels, data)
	return nil
}

// Copy returns a new independent image with the same pixels, name, and
// colorspace.
func (m *Image) Copy() (pixbuf.Image, error) {
	if m.deleted {
		return nil, ErrDeleted
	}
	pixels := make([]float32, len(m.pixels))
	copy(pixels, m.pixels)
	return &Image{
		name:       m.name,
		width:      m.width,
		height:     m.height,
		channels:   m.channels,
		colorSpace: m.colorSpace,
		pixels:     pixels,
	}, nil
}

// Scale resizes the image in place using the Catmull-Rom kernel.
//
// Each channel is resampled independently through a 16-bit grayscale plane,
// so values are clamped to [0, 1] and quantized to 16 bits by scaling.
func (m *Image) Scale(width, height int) error {
	if m.deleted {
		return ErrDeleted
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == m.width && height == m.height {
		return nil
	}

	scaled := make([]float32, width*height*m.channels)
	src := image.NewGray16(image.Rect(0, 0, m.width, m.height))
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	for c := 0; c < m.channels; c++ {
		for i := 0; i < m.width*m.height; i++ {
			v := clamp01(m.pixels[i*m.channels+c])
			g := uint16(v*65535 + 0.5)
			src.Pix[i*2] = uint8(g >> 8)
			src.Pix[i*2+1] = uint8(g)
		}
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		for i := 0; i < width*height; i++ {
			g := uint16(dst.Pix[i*2])<<8 | uint16(dst.Pix[i*2+1])
			scaled[i*m.channels+c] = float32(g) / 65535
		}
	}
	m.pixels = scaled
	m.width = width
	m.height = height
	return nil
}

// Delete releases the image. Any further use of the handle fails with
// ErrDeleted.
func (m *Image) Delete() error {
	if m.deleted {
		return ErrDeleted
	}
	m.deleted = true
	m.pixels = nil
	return nil
}

// Deleted reports whether the image has been deleted.
func (m *Image) Deleted() bool { return m.deleted }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Host creates in-memory images. It implements pixbuf.Host.
type Host struct{}

// NewImage creates a blank image. hasAlpha selects a 4-channel image;
// otherwise the image has 3 channels.
func (Host) NewImage(name string, width, height int, hasAlpha bool) (pixbuf.Image, error) {
	channels := 3
	if hasAlpha {
		channels = 4
	}
	return New(name, width, height, channels)
}
