//go:build windows

package ansisupport

import (
	"golang.org/x/sys/windows"

	"github.com/StephanvanSchaik/crossterm/logger"
)

// probe tries to turn on virtual terminal processing for the console
// output. Consoles that accept the mode bit (Windows 10 and later) render
// ANSI sequences; older consoles reject it and the caller falls back to
// direct console calls.
func probe() bool {
	handle, err := windows.CreateFile(
		windows.StringToUTF16Ptr("CONOUT$"),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(handle)

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		logger.DefaultLogger.Debug("console rejected virtual terminal processing, using native calls", "error", err)
		return false
	}
	return true
}
