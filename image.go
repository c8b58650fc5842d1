package pixbuf

// Image is a host-owned image resource.
//
// Raw pixels are a flat float32 sequence of length width*height*channels in
// host order (bottom row first). Reading and writing through the Image is
// assumed non-reentrant: callers must not invoke operations concurrently
// against the same image.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() (width, height int)

	// ChannelCount returns the per-pixel channel count (1 to 4).
	ChannelCount() int

	// ColorSpaceName returns the host's declared colorspace name for the
	// image, e.g. "sRGB" or "Non-Color".
	ColorSpaceName() string

	// ReadRawPixels returns the image's raw pixel data as a flat sequence.
	// Pixels are read raw: the declared colorspace has no effect on the
	// values returned.
	ReadRawPixels() ([]float32, error)

	// WriteRawPixels replaces the image's raw pixel data. The host rejects
	// data whose length does not equal width*height*channels.
	WriteRawPixels(data []float32) error

	// Copy returns a new independent image handle with the same pixels.
	Copy() (Image, error)

	// Scale resizes the image in place.
	Scale(width, height int) error

	// Delete releases the image resource. The handle must not be used
	// afterwards.
	Delete() error
}

// Host creates new image resources. It is consumed by ToImage; the core
// never creates host images on its own.
type Host interface {
	// NewImage creates a blank image. hasAlpha selects a 4-channel image;
	// otherwise the image has 3 channels.
	NewImage(name string, width, height int, hasAlpha bool) (Image, error)
}
