package console

import (
	"golang.org/x/text/encoding/unicode"
)

// SetTitle sets the console window title. The title is handed to the
// platform as null-terminated UTF-16 text.
func SetTitle(title string) error {
	c, err := current()
	if err != nil {
		return err
	}
	return setTitle(c, title)
}

func setTitle(c API, title string) error {
	encoded, err := encodeTitle(title)
	if err != nil {
		return err
	}
	return c.SetTitle(encoded)
}

var utf16Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeTitle converts title to UTF-16 code units with a terminating NUL.
func encodeTitle(title string) ([]uint16, error) {
	encoded, err := utf16Encoding.NewEncoder().Bytes([]byte(title))
	if err != nil {
		return nil, err
	}

	units := make([]uint16, 0, len(encoded)/2+1)
	for i := 0; i+1 < len(encoded); i += 2 {
		units = append(units, uint16(encoded[i])|uint16(encoded[i+1])<<8)
	}
	return append(units, 0), nil
}
