//go:build windows

package console

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Console calls that golang.org/x/sys/windows does not wrap.
var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleScreenBufferSize  = kernel32.NewProc("SetConsoleScreenBufferSize")
	procSetConsoleWindowInfo        = kernel32.NewProc("SetConsoleWindowInfo")
	procGetLargestConsoleWindowSize = kernel32.NewProc("GetLargestConsoleWindowSize")
	procGetConsoleCursorInfo        = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo        = kernel32.NewProc("SetConsoleCursorInfo")
	procSetConsoleTitleW            = kernel32.NewProc("SetConsoleTitleW")
)

// windowsConsole implements API against the live console. Each method opens
// a fresh CONIN$/CONOUT$ handle: the active console can change between
// calls (e.g. handle redirection) and must never be cached.
type windowsConsole struct{}

func current() (API, error) {
	return windowsConsole{}, nil
}

func openConsole(name string) (windows.Handle, error) {
	return windows.CreateFile(
		windows.StringToUTF16Ptr(name),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

func conin() (windows.Handle, error)  { return openConsole("CONIN$") }
func conout() (windows.Handle, error) { return openConsole("CONOUT$") }

func (windowsConsole) InputMode() (uint32, error) {
	h, err := conin()
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(h)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (windowsConsole) SetInputMode(mode uint32) error {
	h, err := conin()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	return windows.SetConsoleMode(h, mode)
}

func (windowsConsole) OutputMode() (uint32, error) {
	h, err := conout()
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(h)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (windowsConsole) SetOutputMode(mode uint32) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	return windows.SetConsoleMode(h, mode)
}

func (windowsConsole) ScreenBufferInfo() (ScreenBufferInfo, error) {
	h, err := conout()
	if err != nil {
		return ScreenBufferInfo{}, err
	}
	defer windows.CloseHandle(h)

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return ScreenBufferInfo{}, err
	}
	return ScreenBufferInfo{
		Size:           Coord{X: info.Size.X, Y: info.Size.Y},
		CursorPosition: Coord{X: info.CursorPosition.X, Y: info.CursorPosition.Y},
		Attributes:     uint16(info.Attributes),
		Window: Rect{
			Left:   info.Window.Left,
			Top:    info.Window.Top,
			Right:  info.Window.Right,
			Bottom: info.Window.Bottom,
		},
		MaximumWindowSize: Coord{X: info.MaximumWindowSize.X, Y: info.MaximumWindowSize.Y},
	}, nil
}

func (windowsConsole) SetBufferSize(size Coord) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	r1, _, e1 := procSetConsoleScreenBufferSize.Call(uintptr(h), packCoord(size))
	if r1 == 0 {
		return e1
	}
	return nil
}

func (windowsConsole) SetWindowInfo(window Rect) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	rect := windows.SmallRect{
		Left:   window.Left,
		Top:    window.Top,
		Right:  window.Right,
		Bottom: window.Bottom,
	}
	// The rectangle is passed in absolute coordinates.
	r1, _, e1 := procSetConsoleWindowInfo.Call(uintptr(h), 1, uintptr(unsafe.Pointer(&rect)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func (windowsConsole) SetCursorPosition(pos Coord) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	return windows.SetConsoleCursorPosition(h, windows.Coord{X: pos.X, Y: pos.Y})
}

type consoleCursorInfo struct {
	size    uint32
	visible int32
}

func (windowsConsole) CursorInfo() (uint32, bool, error) {
	h, err := conout()
	if err != nil {
		return 0, false, err
	}
	defer windows.CloseHandle(h)

	var info consoleCursorInfo
	r1, _, e1 := procGetConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return 0, false, e1
	}
	return info.size, info.visible != 0, nil
}

func (windowsConsole) SetCursorInfo(size uint32, visible bool) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	info := consoleCursorInfo{size: size}
	if visible {
		info.visible = 1
	}
	r1, _, e1 := procSetConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func (windowsConsole) LargestWindowSize() (Coord, error) {
	h, err := conout()
	if err != nil {
		return Coord{}, err
	}
	defer windows.CloseHandle(h)

	// Returns a COORD in the return value; a zero coordinate signals
	// failure.
	r1, _, e1 := procGetLargestConsoleWindowSize.Call(uintptr(h))
	if r1 == 0 {
		return Coord{}, e1
	}
	return Coord{X: int16(r1 & 0xffff), Y: int16(r1 >> 16)}, nil
}

func (windowsConsole) FillCharacter(start Coord, count uint32, char rune) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	var written uint32
	r1, _, e1 := procFillConsoleOutputCharacterW.Call(
		uintptr(h),
		uintptr(uint16(char)),
		uintptr(count),
		packCoord(start),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return e1
	}
	return nil
}

func (windowsConsole) FillAttribute(start Coord, count uint32, attribute uint16) error {
	h, err := conout()
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	var written uint32
	r1, _, e1 := procFillConsoleOutputAttribute.Call(
		uintptr(h),
		uintptr(attribute),
		uintptr(count),
		packCoord(start),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return e1
	}
	return nil
}

func (windowsConsole) SetTitle(title []uint16) error {
	if len(title) == 0 || title[len(title)-1] != 0 {
		title = append(title, 0)
	}
	r1, _, e1 := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(&title[0])))
	if r1 == 0 {
		return e1
	}
	return nil
}

// packCoord packs a COORD into the single machine word the calling
// convention expects for by-value COORD arguments.
func packCoord(c Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}
