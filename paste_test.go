package pixbuf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cartPixel returns the channel slice for the pixel at cartesian (x, y),
// i.e. with the origin at the top-left.
func cartPixel(b *Buffer, x, y int) []float32 {
	return b.Pixel(b.Height()-1-y, x)
}

// TestPasteColor_Clipping pastes a 3-component color through a box hanging
// past the top-left of a 4-channel target: the box clips to (0,0,5,5),
// channels 0-2 fill, channel 3 stays untouched everywhere.
func TestPasteColor_Clipping(t *testing.T) {
	target := NewRGBA(10, 10)
	for i := 3; i < len(target.Data()); i += 4 {
		target.Data()[i] = 0.5 // sentinel alpha
	}

	err := PasteColor(target, []float32{1, 0, 0}, Box{Left: -5, Upper: -5, Right: 5, Lower: 5})
	if err != nil {
		t.Fatalf("PasteColor: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			px := cartPixel(target, x, y)
			inBox := x < 5 && y < 5
			wantR := float32(0)
			if inBox {
				wantR = 1
			}
			if px[0] != wantR || px[1] != 0 || px[2] != 0 {
				t.Fatalf("pixel (%d,%d) = %v, in box %v", x, y, px, inBox)
			}
			if px[3] != 0.5 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want 0.5 (untouched)", x, y, px[3])
			}
		}
	}
}

// TestPasteColor_BoxRequired verifies a corner is rejected for color pastes.
func TestPasteColor_BoxRequired(t *testing.T) {
	target := NewRGBA(4, 4)
	err := PasteColor(target, []float32{1}, Corner{Left: 1, Upper: 1})
	if !errors.Is(err, ErrBoxRequired) {
		t.Errorf("error = %v, want ErrBoxRequired", err)
	}
}

// TestPasteColor_TooManyComponents verifies a color wider than the target's
// channel count is malformed.
func TestPasteColor_TooManyComponents(t *testing.T) {
	target, err := New(4, 4, []float32{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	err = PasteColor(target, []float32{1, 1, 1, 1}, Box{Right: 2, Lower: 2})
	if !errors.Is(err, ErrMalformedSource) {
		t.Errorf("error = %v, want ErrMalformedSource", err)
	}
	err = PasteColor(target, []float32{}, Box{Right: 2, Lower: 2})
	if !errors.Is(err, ErrMalformedSource) {
		t.Errorf("empty color error = %v, want ErrMalformedSource", err)
	}
}

// TestPasteBuffer_PartialOverlap pastes a 4x4 3-channel source at corner
// (8,8) into a 10x10 4-channel target: only the 2x2 overlap copies, sourced
// from the source's own top-left 2x2, and target alpha stays unmodified.
func TestPasteBuffer_PartialOverlap(t *testing.T) {
	target := NewRGBA(10, 10)
	for i := 3; i < len(target.Data()); i += 4 {
		target.Data()[i] = 0.5
	}

	source, err := New(4, 4, []float32{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	// Give every source pixel a unique value so the copied sub-rectangle is
	// identifiable.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := cartPixel(source, x, y)
			px[0] = float32(y)
			px[1] = float32(x)
			px[2] = 1
		}
	}

	if err := PasteBuffer(target, source, Corner{Left: 8, Upper: 8}); err != nil {
		t.Fatalf("PasteBuffer: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			px := cartPixel(target, x, y)
			if x >= 8 && y >= 8 {
				want := []float32{float32(y - 8), float32(x - 8), 1}
				if diff := cmp.Diff(want, px[:3]); diff != "" {
					t.Fatalf("pixel (%d,%d) mismatch (-want +got):\n%s", x, y, diff)
				}
			} else if px[0] != 0 || px[1] != 0 || px[2] != 0 {
				t.Fatalf("pixel (%d,%d) outside overlap modified: %v", x, y, px)
			}
			if px[3] != 0.5 {
				t.Fatalf("pixel (%d,%d) alpha modified: %v", x, y, px[3])
			}
		}
	}
}

// TestPasteBuffer_NegativeCorner verifies clipping on the top-left edges
// offsets the source sub-rectangle by the clipped amount.
func TestPasteBuffer_NegativeCorner(t *testing.T) {
	target, err := New(4, 4, []float32{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	source, err := New(3, 3, []float32{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			px := cartPixel(source, x, y)
			px[0] = float32(y*3 + x)
		}
	}

	if err := PasteBuffer(target, source, Corner{Left: -1, Upper: -2}); err != nil {
		t.Fatalf("PasteBuffer: %v", err)
	}

	// The visible part is the source's bottom-right 2x1 region, landing at
	// the target's top-left corner.
	if got := cartPixel(target, 0, 0)[0]; got != float32(2*3+1) {
		t.Errorf("pixel (0,0) = %v, want %v", got, 2*3+1)
	}
	if got := cartPixel(target, 1, 0)[0]; got != float32(2*3+2) {
		t.Errorf("pixel (1,0) = %v, want %v", got, 2*3+2)
	}
	if got := cartPixel(target, 2, 0)[0]; got != 0 {
		t.Errorf("pixel (2,0) = %v, want 0", got)
	}
	if got := cartPixel(target, 0, 1)[0]; got != 0 {
		t.Errorf("pixel (0,1) = %v, want 0", got)
	}
}

// TestPasteBuffer_ChannelOverflow verifies a 4-channel source cannot paste
// into a 3-channel target, and the target stays unmodified.
func TestPasteBuffer_ChannelOverflow(t *testing.T) {
	target, err := New(4, 4, []float32{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatal(err)
	}
	before := target.Clone()
	source := NewRGBA(2, 2)

	err = PasteBuffer(target, source, Corner{})
	if !errors.Is(err, ErrChannelOverflow) {
		t.Fatalf("error = %v, want ErrChannelOverflow", err)
	}
	if diff := cmp.Diff(before.Data(), target.Data()); diff != "" {
		t.Errorf("target modified by failed paste (-want +got):\n%s", diff)
	}
}

// TestPasteBuffer_FullyOutside verifies boxes entirely outside the target
// clip to empty, harmless no-ops in both modes.
func TestPasteBuffer_FullyOutside(t *testing.T) {
	corners := []Corner{
		{Left: 10, Upper: 10},
		{Left: -10, Upper: -10},
		{Left: 4, Upper: 0},
		{Left: 0, Upper: 4},
	}
	for _, lenient := range []bool{false, true} {
		for _, corner := range corners {
			target := NewRGBA(4, 4)
			source := NewRGBA(2, 2)
			for i := range source.Data() {
				source.Data()[i] = 1
			}
			var opts []PasteOption
			if lenient {
				opts = append(opts, WithLenientClip())
			}
			if err := PasteBuffer(target, source, corner, opts...); err != nil {
				t.Fatalf("corner %v lenient=%v: %v", corner, lenient, err)
			}
			for i, v := range target.Data() {
				if v != 0 {
					t.Fatalf("corner %v lenient=%v modified target at %d", corner, lenient, i)
				}
			}
		}
	}
}

// TestPasteDispatch verifies source-kind resolution in Paste.
func TestPasteDispatch(t *testing.T) {
	target := NewRGBA(4, 4)

	if err := Paste(target, []float32{1, 0, 0, 1}, Box{Right: 2, Lower: 2}); err != nil {
		t.Errorf("color dispatch: %v", err)
	}
	if err := Paste(target, NewRGBA(2, 2), Corner{}); err != nil {
		t.Errorf("buffer dispatch: %v", err)
	}
	if err := Paste(target, "not a source", Box{Right: 2, Lower: 2}); !errors.Is(err, ErrMalformedSource) {
		t.Errorf("string source error = %v, want ErrMalformedSource", err)
	}
	if err := Paste(target, (*Buffer)(nil), Corner{}); !errors.Is(err, ErrMalformedSource) {
		t.Errorf("nil buffer error = %v, want ErrMalformedSource", err)
	}
}

// TestPaste_ZeroAreaBox verifies a degenerate box is a no-op copy.
func TestPaste_ZeroAreaBox(t *testing.T) {
	target := NewRGBA(4, 4)
	err := PasteColor(target, []float32{1, 1, 1, 1}, Box{Left: 2, Upper: 2, Right: 2, Lower: 3})
	if err != nil {
		t.Fatalf("PasteColor: %v", err)
	}
	for i, v := range target.Data() {
		if v != 0 {
			t.Fatalf("zero-area box modified target at %d", i)
		}
	}
}

// TestPaste_LenientClip verifies the inherited clip rule keeps one extra
// unit on the right and lower bounds without reaching out-of-range memory:
// the copy clamps to the true bounds either way.
func TestPaste_LenientClip(t *testing.T) {
	strict := NewRGBA(4, 4)
	lenient := NewRGBA(4, 4)
	box := Box{Left: 2, Upper: 2, Right: 9, Lower: 9}
	color := []float32{1, 0, 0, 1}

	if err := PasteColor(strict, color, box); err != nil {
		t.Fatalf("strict: %v", err)
	}
	if err := PasteColor(lenient, color, box, WithLenientClip()); err != nil {
		t.Fatalf("lenient: %v", err)
	}
	if diff := cmp.Diff(strict.Data(), lenient.Data()); diff != "" {
		t.Errorf("lenient clip changed written pixels (-strict +lenient):\n%s", diff)
	}
	if got := cartPixel(strict, 3, 3)[0]; got != 1 {
		t.Errorf("pixel (3,3) = %v, want 1", got)
	}
	if got := cartPixel(strict, 1, 1)[0]; got != 0 {
		t.Errorf("pixel (1,1) = %v, want 0", got)
	}
}

// TestFitBox covers the clip arithmetic for both modes.
func TestFitBox(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		lenient bool
		want    Box
	}{
		{"inside", Box{1, 1, 3, 3}, false, Box{1, 1, 3, 3}},
		{"negative corners", Box{-5, -5, 5, 5}, false, Box{0, 0, 5, 5}},
		{"strict right bound", Box{0, 0, 20, 20}, false, Box{0, 0, 10, 10}},
		{"lenient right bound", Box{0, 0, 20, 20}, true, Box{0, 0, 11, 11}},
		{"fully outside", Box{12, 12, 20, 20}, false, Box{12, 12, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitBox(tt.box, 10, 10, tt.lenient)
			if got != tt.want {
				t.Errorf("fitBox(%v) = %v, want %v", tt.box, got, tt.want)
			}
			if tt.name == "fully outside" && !got.Empty() {
				t.Error("fully outside box should clip to empty")
			}
		})
	}
}
