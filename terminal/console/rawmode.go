package console

import "sync"

// The cooked-mode bits that were set when raw mode was enabled, so
// DisableRawMode can restore exactly those bits. Without a prior
// EnableRawMode in this process, disabling sets all cooked-mode bits.
var rawModePrior struct {
	mu   sync.Mutex
	bits *uint32
}

// IsRawModeEnabled reports whether the console input is in raw mode, i.e.
// none of the cooked-mode bits is set.
func IsRawModeEnabled() (bool, error) {
	c, err := current()
	if err != nil {
		return false, err
	}
	return isRawModeEnabled(c)
}

// EnableRawMode clears exactly the cooked-mode bits from the console input
// mode. Every other mode bit (mouse capture, window input, ...) is left
// untouched.
func EnableRawMode() error {
	c, err := current()
	if err != nil {
		return err
	}
	return enableRawMode(c)
}

// DisableRawMode sets the cooked-mode bits that were set before
// EnableRawMode, restoring line buffering, echo and signal keys.
func DisableRawMode() error {
	c, err := current()
	if err != nil {
		return err
	}
	return disableRawMode(c)
}

func isRawModeEnabled(c API) (bool, error) {
	mode, err := c.InputMode()
	if err != nil {
		return false, err
	}
	return mode&cookedModeMask == 0, nil
}

func enableRawMode(c API) error {
	mode, err := c.InputMode()
	if err != nil {
		return err
	}
	if err := c.SetInputMode(mode &^ cookedModeMask); err != nil {
		return err
	}

	rawModePrior.mu.Lock()
	defer rawModePrior.mu.Unlock()
	prior := mode & cookedModeMask
	rawModePrior.bits = &prior
	return nil
}

func disableRawMode(c API) error {
	mode, err := c.InputMode()
	if err != nil {
		return err
	}

	rawModePrior.mu.Lock()
	defer rawModePrior.mu.Unlock()
	restore := cookedModeMask
	if rawModePrior.bits != nil {
		restore = *rawModePrior.bits
	}
	if err := c.SetInputMode(mode | restore); err != nil {
		return err
	}
	rawModePrior.bits = nil
	return nil
}

// EnableLineWrap turns the wrap-at-end-of-line behavior of the console
// output back on.
func EnableLineWrap() error {
	c, err := current()
	if err != nil {
		return err
	}
	return setLineWrap(c, true)
}

// DisableLineWrap stops the console output from wrapping at the end of a
// line.
func DisableLineWrap() error {
	c, err := current()
	if err != nil {
		return err
	}
	return setLineWrap(c, false)
}

func setLineWrap(c API, enabled bool) error {
	mode, err := c.OutputMode()
	if err != nil {
		return err
	}
	if enabled {
		mode |= enableWrapAtEOLOutput
	} else {
		mode &^= enableWrapAtEOLOutput
	}
	return c.SetOutputMode(mode)
}
