package pixbuf

import "fmt"

// Write writes the buffer's contents back as the image's raw pixel data.
//
// The buffer shape must exactly equal the image's (height, width, channels);
// there is no broadcasting and no partial write. Returns ErrShapeMismatch
// otherwise, with the image untouched.
func Write(img Image, buf *Buffer) error {
	width, height := img.Size()
	channels := img.ChannelCount()
	if buf.height != height || buf.width != width || buf.channels != channels {
		return fmt.Errorf("%w: buffer (%d, %d, %d), image (%d, %d, %d)",
			ErrShapeMismatch, buf.height, buf.width, buf.channels, height, width, channels)
	}
	if err := Accessor().WritePixels(img, buf.data); err != nil {
		return fmt.Errorf("pixbuf: write raw pixels: %w", err)
	}
	return nil
}

// ToImage creates a new host image sized to the buffer and writes the
// buffer into it. The image has an alpha channel iff the buffer has four
// channels.
func ToImage(host Host, buf *Buffer, name string) (Image, error) {
	img, err := host.NewImage(name, buf.width, buf.height, buf.channels == 4)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: create image: %w", err)
	}
	if err := Write(img, buf); err != nil {
		return nil, err
	}
	return img, nil
}
