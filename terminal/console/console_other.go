//go:build !windows

package console

import "errors"

// current reports the native console as unavailable. Commands never take
// the native path on these platforms because the ANSI surface is always
// viable, so this is only reachable by calling the console package
// directly.
func current() (API, error) {
	return nil, errors.New("the native console API is only available on windows")
}
