package console

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StephanvanSchaik/crossterm"
)

type fillCall struct {
	start     Coord
	count     uint32
	char      rune
	attribute uint16
	kind      string // "char" or "attr"
}

// fakeConsole implements API in memory and records every mutating call.
type fakeConsole struct {
	inputMode  uint32
	outputMode uint32
	info       ScreenBufferInfo
	largest    Coord
	title      []uint16
	fills      []fillCall
	calls      []string

	windowErr error
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{
		info: ScreenBufferInfo{
			Size:       Coord{X: 100, Y: 40},
			Attributes: 0x0007,
			Window:     Rect{Left: 0, Top: 0, Right: 99, Bottom: 39},
		},
		largest: Coord{X: 200, Y: 100},
	}
}

func (f *fakeConsole) InputMode() (uint32, error) { return f.inputMode, nil }

func (f *fakeConsole) SetInputMode(mode uint32) error {
	f.calls = append(f.calls, fmt.Sprintf("SetInputMode(%#x)", mode))
	f.inputMode = mode
	return nil
}

func (f *fakeConsole) OutputMode() (uint32, error) { return f.outputMode, nil }

func (f *fakeConsole) SetOutputMode(mode uint32) error {
	f.calls = append(f.calls, fmt.Sprintf("SetOutputMode(%#x)", mode))
	f.outputMode = mode
	return nil
}

func (f *fakeConsole) ScreenBufferInfo() (ScreenBufferInfo, error) { return f.info, nil }

func (f *fakeConsole) SetBufferSize(size Coord) error {
	f.calls = append(f.calls, fmt.Sprintf("SetBufferSize(%d,%d)", size.X, size.Y))
	f.info.Size = size
	return nil
}

func (f *fakeConsole) SetWindowInfo(window Rect) error {
	f.calls = append(f.calls, fmt.Sprintf("SetWindowInfo(%d,%d,%d,%d)", window.Left, window.Top, window.Right, window.Bottom))
	if f.windowErr != nil {
		return f.windowErr
	}
	f.info.Window = window
	return nil
}

func (f *fakeConsole) SetCursorPosition(pos Coord) error {
	f.calls = append(f.calls, fmt.Sprintf("SetCursorPosition(%d,%d)", pos.X, pos.Y))
	f.info.CursorPosition = pos
	return nil
}

func (f *fakeConsole) CursorInfo() (uint32, bool, error) { return 25, true, nil }

func (f *fakeConsole) SetCursorInfo(size uint32, visible bool) error {
	f.calls = append(f.calls, fmt.Sprintf("SetCursorInfo(%d,%t)", size, visible))
	return nil
}

func (f *fakeConsole) LargestWindowSize() (Coord, error) { return f.largest, nil }

func (f *fakeConsole) FillCharacter(start Coord, count uint32, char rune) error {
	f.fills = append(f.fills, fillCall{start: start, count: count, char: char, kind: "char"})
	return nil
}

func (f *fakeConsole) FillAttribute(start Coord, count uint32, attribute uint16) error {
	f.fills = append(f.fills, fillCall{start: start, count: count, attribute: attribute, kind: "attr"})
	return nil
}

func (f *fakeConsole) SetTitle(title []uint16) error {
	f.title = title
	return nil
}

func resetRawModePrior() {
	rawModePrior.mu.Lock()
	rawModePrior.bits = nil
	rawModePrior.mu.Unlock()
}

func TestRawModeRoundTrip(t *testing.T) {
	// Bits outside the cooked-mode mask must survive the round trip
	// untouched.
	const extraBits = uint32(0x0018) // window + mouse input

	for initial := uint32(0); initial <= cookedModeMask; initial++ {
		t.Run(fmt.Sprintf("cooked_bits_%03b", initial), func(t *testing.T) {
			resetRawModePrior()
			c := newFakeConsole()
			c.inputMode = initial | extraBits

			require.NoError(t, enableRawMode(c))
			assert.Equal(t, extraBits, c.inputMode, "raw mode must clear exactly the cooked bits")

			enabled, err := isRawModeEnabled(c)
			require.NoError(t, err)
			assert.True(t, enabled)

			require.NoError(t, disableRawMode(c))
			assert.Equal(t, initial|extraBits, c.inputMode, "disable must restore the original bitmask")
		})
	}
}

func TestDisableRawModeWithoutPriorEnable(t *testing.T) {
	resetRawModePrior()
	c := newFakeConsole()
	c.inputMode = 0x0018

	// Nothing to restore, so all cooked bits come back on.
	require.NoError(t, disableRawMode(c))
	assert.Equal(t, uint32(0x0018)|cookedModeMask, c.inputMode)
}

func TestIsRawModeEnabled(t *testing.T) {
	c := newFakeConsole()

	c.inputMode = enableLineInput
	enabled, err := isRawModeEnabled(c)
	require.NoError(t, err)
	assert.False(t, enabled)

	c.inputMode = 0x0018
	enabled, err = isRawModeEnabled(c)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestLineWrapTogglesOnlyTheWrapBit(t *testing.T) {
	c := newFakeConsole()
	c.outputMode = 0x0001 | enableWrapAtEOLOutput

	require.NoError(t, setLineWrap(c, false))
	assert.Equal(t, uint32(0x0001), c.outputMode)

	require.NoError(t, setLineWrap(c, true))
	assert.Equal(t, uint32(0x0001)|enableWrapAtEOLOutput, c.outputMode)
}

// clearGeometry pins the snapshot all clear-range tests run against:
// a 10x5 buffer with the cursor at (3, 2) and attribute 0x0007.
func clearGeometry() *fakeConsole {
	c := newFakeConsole()
	c.info.Size = Coord{X: 10, Y: 5}
	c.info.CursorPosition = Coord{X: 3, Y: 2}
	return c
}

func assertBlanked(t *testing.T, c *fakeConsole, start Coord, count uint32) {
	t.Helper()
	require.Len(t, c.fills, 2, "exactly one char fill and one attribute fill")

	assert.Equal(t, fillCall{start: start, count: count, char: ' ', kind: "char"}, c.fills[0])
	assert.Equal(t, fillCall{start: start, count: count, attribute: 0x0007, kind: "attr"}, c.fills[1])
}

func TestClearFromCursorDown(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearFromCursorDown))
	assertBlanked(t, c, Coord{X: 3, Y: 2}, 50)
	assert.Equal(t, Coord{X: 3, Y: 2}, c.info.CursorPosition, "cursor stays put")
}

func TestClearFromCursorDownPastRightEdge(t *testing.T) {
	c := clearGeometry()
	c.info.CursorPosition = Coord{X: 11, Y: 2}

	require.NoError(t, clear(c, ClearFromCursorDown))
	// A cursor beyond the right edge belongs to the next row.
	assertBlanked(t, c, Coord{X: 0, Y: 3}, 50)
}

func TestClearFromCursorUp(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearFromCursorUp))
	// Two full rows plus the partial row through the cursor cell.
	assertBlanked(t, c, Coord{X: 0, Y: 0}, 10*2+3+1)
}

func TestClearAll(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearAll))
	assertBlanked(t, c, Coord{X: 0, Y: 0}, 50)
	assert.Equal(t, Coord{X: 0, Y: 0}, c.info.CursorPosition, "clearing the screen homes the cursor")
}

func TestClearPurgeBehavesLikeClearAll(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearPurge))
	assertBlanked(t, c, Coord{X: 0, Y: 0}, 50)
}

func TestClearCurrentLine(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearCurrentLine))
	assertBlanked(t, c, Coord{X: 0, Y: 2}, 10)
	assert.Equal(t, Coord{X: 0, Y: 2}, c.info.CursorPosition, "cursor moves to the start of the row")
}

func TestClearUntilNewLine(t *testing.T) {
	c := clearGeometry()
	require.NoError(t, clear(c, ClearUntilNewLine))
	assertBlanked(t, c, Coord{X: 3, Y: 2}, 10-3)
	assert.Equal(t, Coord{X: 3, Y: 2}, c.info.CursorPosition, "cursor is restored after the fill")
}

func TestScrollUp(t *testing.T) {
	c := newFakeConsole()
	c.info.Window = Rect{Left: 0, Top: 10, Right: 99, Bottom: 29}

	require.NoError(t, scrollUp(c, 4))
	assert.Equal(t, Rect{Left: 0, Top: 6, Right: 99, Bottom: 25}, c.info.Window)
}

func TestScrollUpAtTopIsANoOp(t *testing.T) {
	c := newFakeConsole()
	c.info.Window = Rect{Left: 0, Top: 2, Right: 99, Bottom: 21}

	require.NoError(t, scrollUp(c, 4))
	assert.Empty(t, c.calls, "a scroll outside the buffer performs no native calls")
}

func TestScrollDown(t *testing.T) {
	c := newFakeConsole()
	c.info.Window = Rect{Left: 0, Top: 0, Right: 99, Bottom: 19}

	require.NoError(t, scrollDown(c, 5))
	assert.Equal(t, Rect{Left: 0, Top: 5, Right: 99, Bottom: 24}, c.info.Window)
}

func TestScrollDownAtBottomIsANoOp(t *testing.T) {
	c := newFakeConsole()
	c.info.Window = Rect{Left: 0, Top: 20, Right: 99, Bottom: 39}

	require.NoError(t, scrollDown(c, 5))
	assert.Empty(t, c.calls)
}

func TestSetSizeRoundTrip(t *testing.T) {
	c := newFakeConsole()

	width, height, err := size(c)
	require.NoError(t, err)
	require.Equal(t, 100, width)
	require.Equal(t, 40, height)

	require.NoError(t, setSize(c, 30, 30))
	w, h, err := size(c)
	require.NoError(t, err)
	assert.Equal(t, 30, w)
	assert.Equal(t, 30, h)

	require.NoError(t, setSize(c, width, height))
	w, h, err = size(c)
	require.NoError(t, err)
	assert.Equal(t, width, w)
	assert.Equal(t, height, h)
}

func TestSetSizeGrowsAndShrinksTheBuffer(t *testing.T) {
	c := newFakeConsole()
	c.info.Size = Coord{X: 80, Y: 24}
	c.info.Window = Rect{Left: 0, Top: 0, Right: 79, Bottom: 23}

	require.NoError(t, setSize(c, 120, 30))
	assert.Equal(t, []string{
		"SetBufferSize(120,30)",
		"SetWindowInfo(0,0,119,29)",
		"SetBufferSize(80,24)",
	}, c.calls)
}

func TestSetSizeTooSmall(t *testing.T) {
	for _, tc := range []struct {
		width, height int
		want          error
	}{
		{0, 24, crossterm.ErrWidthTooSmall},
		{1, 24, crossterm.ErrWidthTooSmall},
		{80, 0, crossterm.ErrHeightTooSmall},
		{80, 1, crossterm.ErrHeightTooSmall},
	} {
		c := newFakeConsole()
		err := setSize(c, tc.width, tc.height)
		assert.ErrorIs(t, err, tc.want)
		assert.Empty(t, c.calls, "a rejected size performs no native calls")
	}
}

func TestSetSizeTooLarge(t *testing.T) {
	c := newFakeConsole()
	c.largest = Coord{X: 50, Y: 50}

	assert.ErrorIs(t, setSize(c, 60, 10), crossterm.ErrWidthTooLarge)
	assert.ErrorIs(t, setSize(c, 10, 60), crossterm.ErrHeightTooLarge)
}

func TestSetSizeUnwindsGrownBuffer(t *testing.T) {
	c := newFakeConsole()
	c.info.Size = Coord{X: 80, Y: 24}
	c.info.Window = Rect{Left: 0, Top: 0, Right: 79, Bottom: 23}
	windowErr := errors.New("window change rejected")
	c.windowErr = windowErr

	err := setSize(c, 120, 30)
	assert.ErrorIs(t, err, windowErr)

	// The buffer growth is rolled back before the error surfaces.
	assert.Equal(t, "SetBufferSize(80,24)", c.calls[len(c.calls)-1])
	assert.Equal(t, Coord{X: 80, Y: 24}, c.info.Size)
}

func TestSizeIsOneBased(t *testing.T) {
	c := newFakeConsole()
	c.info.Window = Rect{Left: 0, Top: 0, Right: 79, Bottom: 23}

	w, h, err := size(c)
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}

func TestMoveTo(t *testing.T) {
	c := newFakeConsole()
	require.NoError(t, moveTo(c, 5, 7))
	assert.Equal(t, Coord{X: 5, Y: 7}, c.info.CursorPosition)
}

func TestMoveToOutOfRange(t *testing.T) {
	c := newFakeConsole()

	var xErr crossterm.CursorXOutOfRangeError
	require.ErrorAs(t, moveTo(c, 1<<16, 0), &xErr)
	assert.Equal(t, 1<<16, xErr.X)

	var yErr crossterm.CursorYOutOfRangeError
	require.ErrorAs(t, moveTo(c, 0, -1), &yErr)
	assert.Equal(t, -1, yErr.Y)

	assert.Empty(t, c.calls)
}

func TestSetTitleEncodesUTF16(t *testing.T) {
	for _, title := range []string{
		"a console test title",
		"héllo wörld",
		"标题 🚀",
	} {
		c := newFakeConsole()
		require.NoError(t, setTitle(c, title))

		require.NotEmpty(t, c.title)
		assert.Equal(t, uint16(0), c.title[len(c.title)-1], "title must be null-terminated")
		assert.Equal(t, title, decodeTitle(t, c.title[:len(c.title)-1]))
	}
}

// decodeTitle round-trips the UTF-16 code units back through the same
// encoding the subsystem uses.
func decodeTitle(t *testing.T, units []uint16) string {
	t.Helper()
	raw := make([]byte, 0, len(units)*2)
	for _, u := range units {
		raw = append(raw, byte(u), byte(u>>8))
	}
	decoded, err := utf16Encoding.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	return string(decoded)
}
