package pixbuf

// PasteOption configures a paste operation.
// Use functional options to customize clipping behavior.
//
// Example:
//
//	// Default strict clipping
//	err := pixbuf.PasteColor(buf, color, box)
//
//	// Inherited lenient clipping
//	err := pixbuf.PasteColor(buf, color, box, pixbuf.WithLenientClip())
type PasteOption func(*pasteOptions)

// pasteOptions holds optional configuration for a paste.
type pasteOptions struct {
	lenientClip bool
}

// resolvePasteOptions applies opts over the defaults.
func resolvePasteOptions(opts []PasteOption) pasteOptions {
	var o pasteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLenientClip switches box clipping to the lenient rule, which bounds
// the right and lower edges at width+1 and height+1 instead of the exact
// width and height. The extra unit never reaches memory: copy loops clamp
// to the true bounds, so the only observable difference is the clipped box
// reported in debug logs.
//
// Strict clipping is the default and the recommended mode; lenient exists
// for compatibility with callers that depend on the historical rule.
func WithLenientClip() PasteOption {
	return func(o *pasteOptions) {
		o.lenientClip = true
	}
}
