package pixbuf

import "errors"

// Sentinel errors for buffer operations. All contract violations are fatal
// to the operation that detects them; none are retried or recovered locally.
var (
	// ErrInvalidColor is returned when a fill color has zero or more than
	// four components.
	ErrInvalidColor = errors.New("pixbuf: color must have 1 to 4 components")

	// ErrUnsupportedColorspace is returned when an image or atlas colorspace
	// is neither sRGB nor a recognized linear-equivalent name.
	ErrUnsupportedColorspace = errors.New("pixbuf: unsupported colorspace")

	// ErrShapeMismatch is returned when a buffer's shape does not exactly
	// equal the target image's (height, width, channels).
	ErrShapeMismatch = errors.New("pixbuf: buffer shape does not match image shape")

	// ErrMalformedSource is returned when a paste source is neither a buffer
	// nor a color compatible with the target's channel count.
	ErrMalformedSource = errors.New("pixbuf: paste source could not be parsed")

	// ErrBoxRequired is returned when a color paste is given a corner instead
	// of a box region.
	ErrBoxRequired = errors.New("pixbuf: color paste requires a box region")

	// ErrChannelOverflow is returned when a paste source buffer has more
	// channels than the target.
	ErrChannelOverflow = errors.New("pixbuf: source has more channels than target")
)
