package pixbuf

import (
	"errors"
	"sync"
)

// PixelAccessor is a raw pixel transfer strategy.
//
// The default accessor goes through the Image's own ReadRawPixels and
// WriteRawPixels methods. Hosts with faster transfer paths (direct buffer
// handoff, GPU-texture readback) register their own accessor once at
// startup via RegisterAccessor; selection never happens per call.
type PixelAccessor interface {
	// Name returns the accessor name (e.g., "direct", "gl-readback").
	Name() string

	// Init prepares the accessor. Called once during registration.
	Init() error

	// ReadPixels returns the image's raw pixel data.
	ReadPixels(img Image) ([]float32, error)

	// WritePixels replaces the image's raw pixel data.
	WritePixels(img Image, data []float32) error
}

// directAccessor transfers pixels through the Image interface itself.
type directAccessor struct{}

func (directAccessor) Name() string { return "direct" }
func (directAccessor) Init() error  { return nil }

func (directAccessor) ReadPixels(img Image) ([]float32, error) {
	return img.ReadRawPixels()
}

func (directAccessor) WritePixels(img Image, data []float32) error {
	return img.WriteRawPixels(data)
}

var (
	accessorMu sync.RWMutex
	accessor   PixelAccessor = directAccessor{}
)

// RegisterAccessor registers a pixel transfer strategy for all subsequent
// acquisition and write-back operations.
//
// Only one accessor is active. Subsequent calls replace the previous one.
// The accessor's Init() method is called during registration; if Init()
// fails, the accessor is not registered and the error is returned.
//
// Typical usage via blank import in host integration packages:
//
//	func init() {
//	    pixbuf.RegisterAccessor(newReadbackAccessor())
//	}
func RegisterAccessor(a PixelAccessor) error {
	if a == nil {
		return errors.New("pixbuf: accessor must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accessorMu.Lock()
	accessor = a
	accessorMu.Unlock()
	return nil
}

// Accessor returns the currently active pixel accessor.
func Accessor() PixelAccessor {
	accessorMu.RLock()
	a := accessor
	accessorMu.RUnlock()
	return a
}
