package memimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// LoadPNG loads a PNG file as an in-memory host image. The image has four
// channels and a declared colorspace of "sRGB".
func LoadPNG(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("memimage: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("memimage: decode PNG: %w", err)
	}
	return FromStdImage("", src)
}

// FromStdImage converts a standard image.Image to an in-memory host image.
// PNG rows are top-down; host storage is bottom-up, so rows are flipped
// during the conversion. Pixels go through the non-premultiplied NRGBA64
// model: raw pixel data is straight alpha, never premultiplied.
func FromStdImage(name string, src image.Image) (*Image, error) {
	bounds := src.Bounds()
	m, err := New(name, bounds.Dx(), bounds.Dy(), 4)
	if err != nil {
		return nil, err
	}
	width, height := m.width, m.height
	for y := 0; y < height; y++ {
		srcY := bounds.Min.Y + (height - 1 - y)
		for x := 0; x < width; x++ {
			c := color.NRGBA64Model.Convert(src.At(bounds.Min.X+x, srcY)).(color.NRGBA64)
			i := (y*width + x) * 4
			m.pixels[i+0] = float32(c.R) / 65535
			m.pixels[i+1] = float32(c.G) / 65535
			m.pixels[i+2] = float32(c.B) / 65535
			m.pixels[i+3] = float32(c.A) / 65535
		}
	}
	return m, nil
}

// ToStdImage converts the image to a standard image.NRGBA64, clamping
// values to [0, 1]. Missing channels render as zero, except a missing
// alpha which renders opaque.
func (m *Image) ToStdImage() (*image.NRGBA64, error) {
	if m.deleted {
		return nil, ErrDeleted
	}
	dst := image.NewNRGBA64(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		srcRow := m.height - 1 - y
		for x := 0; x < m.width; x++ {
			px := m.pixels[(srcRow*m.width+x)*m.channels:]
			var rgba [4]float32
			rgba[3] = 1
			copy(rgba[:m.channels], px[:m.channels])
			i := dst.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				v := uint16(clamp01(rgba[c])*65535 + 0.5)
				dst.Pix[i+c*2] = uint8(v >> 8)
				dst.Pix[i+c*2+1] = uint8(v)
			}
		}
	}
	return dst, nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (m *Image) EncodePNG(w io.Writer) error {
	img, err := m.ToStdImage()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("memimage: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("memimage: create file: %w", err)
	}

	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
