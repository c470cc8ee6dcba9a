package console

import (
	"math"

	"github.com/StephanvanSchaik/crossterm"
)

// Size returns the visible window size as one-based (columns, rows). The
// native coordinate system is zero-based; reporting max index + 1 keeps the
// convention identical to what the ANSI surface reports on other platforms.
func Size() (int, int, error) {
	c, err := current()
	if err != nil {
		return 0, 0, err
	}
	return size(c)
}

// ScrollUp moves the visible window up by count rows. If the window is
// already too close to the top of the buffer, nothing happens.
func ScrollUp(count int) error {
	c, err := current()
	if err != nil {
		return err
	}
	return scrollUp(c, count)
}

// ScrollDown moves the visible window down by count rows. If the window is
// already too close to the bottom of the buffer, nothing happens.
func ScrollDown(count int) error {
	c, err := current()
	if err != nil {
		return err
	}
	return scrollDown(c, count)
}

// SetSize resizes the visible window to width columns and height rows,
// preserving the window's top-left origin. The buffer is grown first when
// it is too small for the new window and shrunk back afterwards; a growth
// that cannot be followed by the window change is unwound before the error
// is returned.
func SetSize(width, height int) error {
	c, err := current()
	if err != nil {
		return err
	}
	return setSize(c, width, height)
}

func size(c API) (int, int, error) {
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return 0, 0, err
	}
	window := info.Window
	return int(window.Right-window.Left) + 1, int(window.Bottom-window.Top) + 1, nil
}

func scrollUp(c API, count int) error {
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return err
	}

	window := info.Window
	n := int16(count)
	if window.Top < n {
		return nil
	}

	window.Top -= n
	window.Bottom -= n
	return c.SetWindowInfo(window)
}

func scrollDown(c API, count int) error {
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return err
	}

	window := info.Window
	n := int16(count)
	if window.Bottom >= info.Size.Y-n {
		return nil
	}

	window.Top += n
	window.Bottom += n
	return c.SetWindowInfo(window)
}

func setSize(c API, width, height int) error {
	if width <= 1 {
		return crossterm.ErrWidthTooSmall
	}
	if height <= 1 {
		return crossterm.ErrHeightTooSmall
	}
	if width > math.MaxInt16 {
		return crossterm.ErrWidthTooLarge
	}
	if height > math.MaxInt16 {
		return crossterm.ErrHeightTooLarge
	}

	info, err := c.ScreenBufferInfo()
	if err != nil {
		return err
	}

	bufferSize := info.Size
	window := info.Window

	w := int16(width)
	h := int16(height)

	// Grow the buffer when it cannot hold the requested window at its
	// current origin.
	newSize := bufferSize
	grown := false
	if bufferSize.X < window.Left+w {
		if window.Left >= math.MaxInt16-w {
			return crossterm.ErrWidthTooLarge
		}
		newSize.X = window.Left + w
		grown = true
	}
	if bufferSize.Y < window.Top+h {
		if window.Top >= math.MaxInt16-h {
			return crossterm.ErrHeightTooLarge
		}
		newSize.Y = window.Top + h
		grown = true
	}

	if grown {
		if err := c.SetBufferSize(newSize); err != nil {
			return err
		}
	}

	// Keep the origin, change the extent.
	resized := window
	resized.Right = window.Left + w - 1
	resized.Bottom = window.Top + h - 1
	if err := c.SetWindowInfo(resized); err != nil {
		if grown {
			// The window change never happened; give the buffer its
			// old size back so the failed call leaves no trace.
			_ = c.SetBufferSize(bufferSize)
		}
		return err
	}

	// The buffer was only grown to make the window change legal.
	if grown {
		if err := c.SetBufferSize(bufferSize); err != nil {
			return err
		}
	}

	bounds, err := c.LargestWindowSize()
	if err != nil {
		return err
	}
	if w > bounds.X {
		return crossterm.ErrWidthTooLarge
	}
	if h > bounds.Y {
		return crossterm.ErrHeightTooLarge
	}
	return nil
}
