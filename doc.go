// Package pixbuf provides an in-memory float pixel-buffer engine.
//
// # Overview
//
// pixbuf works with dense float32 pixel buffers of shape
// (height, width, channels), extracted from and written back to a host-owned
// image resource. It performs colorspace-aware conversion between linear and
// sRGB representations and composites (pastes) one buffer, or a solid color,
// into a region of another.
//
// # Quick Start
//
//	import "github.com/gogpu/pixbuf"
//
//	// Acquire a buffer from a host image, converted into the sRGB atlas space.
//	buf, err := pixbuf.FromImage(img, pixbuf.ColorSpaceSRGB)
//
//	// Stamp a 3-channel red into the top-left 5x5 region.
//	err = pixbuf.PasteColor(buf, []float32{1, 0, 0}, pixbuf.Box{Right: 5, Lower: 5})
//
//	// Write the result back.
//	err = pixbuf.Write(img, buf)
//
// # Coordinate Conventions
//
// Host images are stored bottom-up: row 0 of a buffer is the bottom row of
// the image. Paste regions use cartesian coordinates with the origin at the
// top-left corner; the row flip between the two conventions is applied for
// the duration of a paste only, never to the stored buffer.
//
// # Host Access
//
// The host image resource is reached through the Image interface. Raw pixel
// transfer goes through a process-wide PixelAccessor strategy, resolved once
// at registration time; hosts with faster transfer paths register their own
// accessor via RegisterAccessor. The memimage sub-package provides a
// self-contained in-memory host for tests and standalone use.
package pixbuf
