package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/internal/transfer"
)

// ColorSpace represents a color space.
type ColorSpace uint8

const (
	// ColorSpaceSRGB represents the standard sRGB color space.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceLinear represents the linear RGB color space. It also covers
	// host spaces that carry no transfer function ("Non-Color", "Raw").
	ColorSpaceLinear
)

// String returns a string representation of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// linearNames are the host colorspace names treated as linear-equivalent:
// pixels in these spaces carry no transfer function.
var linearNames = map[string]bool{
	"Linear":    true,
	"Non-Color": true,
	"Raw":       true,
}

// ParseColorSpace maps a host colorspace name to a ColorSpace tag.
// Returns ErrUnsupportedColorspace for any name that is neither sRGB nor a
// linear-equivalent name.
func ParseColorSpace(name string) (ColorSpace, error) {
	if name == "sRGB" {
		return ColorSpaceSRGB, nil
	}
	if linearNames[name] {
		return ColorSpaceLinear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedColorspace, name)
}

// LinearToSRGB converts the buffer's RGB channels from linear to sRGB in
// place. Alpha, if present, is always linear and is never touched. Buffers
// with fewer than three channels have all their channels converted.
//
// The conversion mutates the buffer and is not atomic: a caller observing
// the buffer mid-conversion sees a partial state.
func (b *Buffer) LinearToSRGB() {
	b.convertRGB(transfer.LinearToSRGB)
}

// SRGBToLinear converts the buffer's RGB channels from sRGB to linear in
// place. Alpha, if present, is never touched.
func (b *Buffer) SRGBToLinear() {
	b.convertRGB(transfer.SRGBToLinear)
}

// convertRGB applies f to the first min(3, channels) components of every
// pixel.
func (b *Buffer) convertRGB(f func(float32) float32) {
	rgb := b.channels
	if rgb > 3 {
		rgb = 3
	}
	for i := 0; i < len(b.data); i += b.channels {
		for c := 0; c < rgb; c++ {
			b.data[i+c] = f(b.data[i+c])
		}
	}
}
