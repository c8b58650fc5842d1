package memimage

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestPNGRoundTrip verifies encode/decode recovers pixels within 16-bit
// quantization tolerance.
func TestPNGRoundTrip(t *testing.T) {
	img, err := New("rt", 4, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range img.pixels {
		img.pixels[i] = float32(i) / float32(len(img.pixels))
	}

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}

	w, h := decoded.Size()
	if w != 4 || h != 3 || decoded.ChannelCount() != 4 {
		t.Fatalf("decoded as %dx%dx%d, want 4x3x4", w, h, decoded.ChannelCount())
	}
	if diff := cmp.Diff(img.pixels, decoded.pixels, cmpopts.EquateApprox(0, 1.0/65535+1e-6)); diff != "" {
		t.Errorf("PNG round trip (-want +got):\n%s", diff)
	}
}

// TestFromStdImage_RowFlip verifies the top-left PNG pixel lands in the
// last stored row (host storage is bottom-up).
func TestFromStdImage_RowFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top-left: red
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255}) // bottom-right: blue

	img, err := FromStdImage("flip", src)
	if err != nil {
		t.Fatal(err)
	}

	topLeft := img.pixels[(1*2+0)*4:]
	if topLeft[0] < 0.99 || topLeft[2] > 0.01 {
		t.Errorf("host row 1 col 0 = %v, want red", topLeft[:4])
	}
	bottomRight := img.pixels[(0*2+1)*4:]
	if bottomRight[2] < 0.99 || bottomRight[0] > 0.01 {
		t.Errorf("host row 0 col 1 = %v, want blue", bottomRight[:4])
	}
}

// TestToStdImage_MissingAlpha verifies 3-channel images render opaque.
func TestToStdImage_MissingAlpha(t *testing.T) {
	img, err := New("rgb", 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	std, err := img.ToStdImage()
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, a := std.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("alpha = %#x, want 0xffff", a)
	}
}

// TestEncodePNG_Deleted verifies deleted images cannot be encoded.
func TestEncodePNG_Deleted(t *testing.T) {
	img, err := New("gone", 2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	_ = img.Delete()
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err == nil {
		t.Fatal("expected error encoding deleted image")
	}
}
