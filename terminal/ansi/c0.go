package ansi

// C0 (7-bit) control characters used when building escape sequences.
//
// This is not complete, control characters are only added here as the
// command layer emits them. See chapter 3 of the VT100 user guide for the
// full set: https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
type c0 struct {
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
}

var C0 = c0{
	BEL: 0x07,
	ESC: 0x1b,
}
