// Package ansisupport answers a single question: does the active terminal
// honor ANSI escape sequences for commands that also have a native console
// alternative?
//
// The answer is computed at most once per process and cached, also across
// output-stream redirection: probing is expensive and the console class a
// process talks to does not change mid-run.
package ansisupport

import "sync"

var (
	once      sync.Once
	supported bool
)

// Supported reports whether the ANSI control surface is usable. On
// platforms whose only control surface is the ANSI byte protocol this is
// constant true.
func Supported() bool {
	once.Do(func() {
		supported = probe()
	})
	return supported
}
