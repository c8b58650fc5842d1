package pixbuf

import "fmt"

// FromImage reads the raw pixels of a host image into a new Buffer,
// converted so the pixels appear correct inside an atlas of the given
// colorspace.
//
// Pixels are always read raw: the image's declared colorspace has no effect
// on the values transferred. But combining an X-colorspace image into a
// Y-colorspace atlas such that it looks the same when viewed in Y requires
// pre-converting the pixels from X to Y, so the buffer is converted in
// place when the image and atlas spaces differ. An image already in the
// atlas colorspace is returned bit-identical to the raw read.
//
// atlas must be ColorSpaceSRGB or ColorSpaceLinear; any other value is
// ErrUnsupportedColorspace, reported before the image is inspected. An
// image whose declared colorspace name is unrecognized is likewise
// ErrUnsupportedColorspace.
func FromImage(img Image, atlas ColorSpace) (*Buffer, error) {
	if atlas != ColorSpaceSRGB && atlas != ColorSpaceLinear {
		return nil, fmt.Errorf("%w: atlas colorspace %d", ErrUnsupportedColorspace, atlas)
	}

	width, height := img.Size()
	channels := img.ChannelCount()
	data, err := Accessor().ReadPixels(img)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: read raw pixels: %w", err)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: read %d values for a %dx%dx%d image",
			ErrShapeMismatch, len(data), width, height, channels)
	}
	buf := &Buffer{
		data:     data,
		width:    width,
		height:   height,
		channels: channels,
	}

	imgSpace, err := ParseColorSpace(img.ColorSpaceName())
	if err != nil {
		return nil, err
	}
	if imgSpace == atlas {
		return buf, nil
	}
	if atlas == ColorSpaceSRGB {
		buf.LinearToSRGB()
	} else {
		buf.SRGBToLinear()
	}
	return buf, nil
}

// FromImageResized acquires a buffer for the image scaled to the given size.
//
// The image itself is never resized or reloaded, so unsaved modifications
// to it are preserved: a temporary copy is created, scaled, read, and
// always released before returning, on every exit path including a failed
// colorspace conversion. A release failure is logged at Warn level and
// does not affect the result.
func FromImageResized(img Image, width, height int, atlas ColorSpace) (*Buffer, error) {
	cp, err := img.Copy()
	if err != nil {
		return nil, fmt.Errorf("pixbuf: copy image: %w", err)
	}
	defer func() {
		if err := cp.Delete(); err != nil {
			Logger().Warn("failed to release scaled image copy", "error", err)
		}
	}()

	if err := cp.Scale(width, height); err != nil {
		return nil, fmt.Errorf("pixbuf: scale image copy: %w", err)
	}
	return FromImage(cp, atlas)
}
