package pixbuf

import "fmt"

// Box is a rectangular region in cartesian coordinates: the origin is the
// top-left corner of the image, and the pixel at grid position (x, y)
// occupies the unit square [x,x+1) x [y,y+1). A box with corners (0,0) and
// (1,1) contains exactly the top-left pixel.
type Box struct {
	Left, Upper, Right, Lower int
}

// String returns the box as a coordinate tuple.
func (b Box) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b.Left, b.Upper, b.Right, b.Lower)
}

// Empty reports whether the box contains no pixels.
func (b Box) Empty() bool {
	return b.Right <= b.Left || b.Lower <= b.Upper
}

// Corner is the top-left placement point for a sub-image paste; the box is
// sized to the pasted source.
type Corner struct {
	Left, Upper int
}

// String returns the corner as a coordinate tuple.
func (c Corner) String() string {
	return fmt.Sprintf("(%d, %d)", c.Left, c.Upper)
}

// Region is a paste placement: either a Corner or a Box.
type Region interface {
	isRegion()
}

func (Box) isRegion()    {}
func (Corner) isRegion() {}

// fitBox clips a box to the target bounds. In strict mode the right and
// lower edges clip to the exact width and height. Lenient mode keeps the
// inherited rule that allows one extra unit past the true bound; the copy
// loops below clamp to real bounds regardless, so a lenient box never reads
// or writes out of range.
func fitBox(box Box, width, height int, lenient bool) Box {
	slack := 0
	if lenient {
		slack = 1
	}
	fit := box
	fit.Left = max(fit.Left, 0)
	fit.Upper = max(fit.Upper, 0)
	fit.Right = min(fit.Right, width+slack)
	fit.Lower = min(fit.Lower, height+slack)
	return fit
}

// Paste composites source into a region of target, mutating target in place.
//
// source is either a *Buffer (a sub-image to stamp in) or a []float32 solid
// color of 1 to 4 components; anything else is ErrMalformedSource. Region
// is a Corner or a Box; a color source requires a Box.
//
// Box coordinates are cartesian with the origin at the top-left, while
// buffers store rows bottom-up; both target and source are viewed with the
// row axis reversed for the duration of the paste only.
func Paste(target *Buffer, source any, region Region, opts ...PasteOption) error {
	switch s := source.(type) {
	case *Buffer:
		return PasteBuffer(target, s, region, opts...)
	case []float32:
		return PasteColor(target, s, region, opts...)
	default:
		return fmt.Errorf("%w: %T", ErrMalformedSource, source)
	}
}

// PasteColor fills a box region of target with a solid color, mutating
// target in place. The color fills the first len(color) channels of every
// pixel in the region; channels beyond that are left untouched.
//
// The box is clipped to the target bounds, so regions partially or fully
// outside the target are harmless; a fully clipped box is a no-op.
func PasteColor(target *Buffer, color []float32, region Region, opts ...PasteOption) error {
	if len(color) == 0 || len(color) > target.channels {
		return fmt.Errorf("%w: %d-component color into %d-channel target",
			ErrMalformedSource, len(color), target.channels)
	}
	box, ok := region.(Box)
	if !ok {
		return fmt.Errorf("%w, but got: %v", ErrBoxRequired, region)
	}
	o := resolvePasteOptions(opts)

	fit := fitBox(box, target.width, target.height, o.lenientClip)
	if fit != box {
		Logger().Debug("paste box adjusted to fit target", "box", box.String(), "fit", fit.String())
	}
	Logger().Debug("pasting color into box", "box", fit.String(), "color", color)

	right := min(fit.Right, target.width)
	lower := min(fit.Lower, target.height)
	for y := fit.Upper; y < lower; y++ {
		row := target.height - 1 - y
		for x := fit.Left; x < right; x++ {
			copy(target.Pixel(row, x)[:len(color)], color)
		}
	}
	return nil
}

// PasteBuffer copies a rectangular region of source into target, mutating
// target in place. Placement is a Corner (box sized to the source) or an
// explicit Box. Only the first source.Channels() channels of each target
// pixel are overwritten; there is no blending.
//
// The box is clipped to the target bounds, and the source sub-rectangle is
// offset by the amount each edge was clipped, so sources hanging past any
// edge paste their overlapping part only. A fully clipped box is a no-op.
// Returns ErrChannelOverflow, with target unmodified, if source has more
// channels than target.
func PasteBuffer(target, source *Buffer, region Region, opts ...PasteOption) error {
	if source == nil {
		return fmt.Errorf("%w: nil source buffer", ErrMalformedSource)
	}
	if target.channels < source.channels {
		return fmt.Errorf("%w: %d into %d", ErrChannelOverflow, source.channels, target.channels)
	}

	var box Box
	switch r := region.(type) {
	case Corner:
		box = Box{
			Left:  r.Left,
			Upper: r.Upper,
			Right: r.Left + source.width,
			Lower: r.Upper + source.height,
		}
	case Box:
		box = r
	default:
		return fmt.Errorf("%w: region %v", ErrMalformedSource, region)
	}
	o := resolvePasteOptions(opts)

	fit := fitBox(box, target.width, target.height, o.lenientClip)
	if fit != box {
		Logger().Debug("paste box adjusted to fit target", "box", box.String(), "fit", fit.String())
	}

	// The source rectangle mapping onto the clipped target box: each edge
	// advances by the amount the corresponding target edge was clipped.
	srcLeft := fit.Left - box.Left
	srcUpper := fit.Upper - box.Upper
	Logger().Debug("pasting buffer",
		"box", fit.String(),
		"source_offset", Corner{Left: srcLeft, Upper: srcUpper}.String())

	rows := min(fit.Lower, target.height) - fit.Upper
	rows = min(rows, source.height-srcUpper)
	cols := min(fit.Right, target.width) - fit.Left
	cols = min(cols, source.width-srcLeft)
	for dy := 0; dy < rows; dy++ {
		tRow := target.height - 1 - (fit.Upper + dy)
		sRow := source.height - 1 - (srcUpper + dy)
		for dx := 0; dx < cols; dx++ {
			src := source.Pixel(sRow, srcLeft+dx)
			copy(target.Pixel(tRow, fit.Left+dx)[:source.channels], src)
		}
	}
	return nil
}
