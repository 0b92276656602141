// Package bankocr reads account numbers drawn with pipes and underscores
package bankocr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AccountDigits is the length of an account number
const AccountDigits = 9

const (
	glyphWidth  = 3
	glyphHeight = 3
)

// ErrMalformedScan is returned when the scan is not three lines of 3-column glyphs
var ErrMalformedScan = errors.New("scan must be 3 lines with a width that is a multiple of 3")

// ErrAccountLength is returned when the scan does not hold exactly nine digits
var ErrAccountLength = fmt.Errorf("an account number has %d digits", AccountDigits)

// GlyphError is returned when a glyph does not match any digit
type GlyphError struct {
	// Position is the zero-based index of the glyph
	Position int
	Glyph    string
}

func (g GlyphError) Error() string {
	return fmt.Sprintf("unrecognized glyph at position %d: %q", g.Position+1, g.Glyph)
}

var glyphs = map[string]byte{
	" _ " +
		"| |" +
		"|_|": '0',
	"   " +
		"  |" +
		"  |": '1',
	" _ " +
		" _|" +
		"|_ ": '2',
	" _ " +
		" _|" +
		" _|": '3',
	"   " +
		"|_|" +
		"  |": '4',
	" _ " +
		"|_ " +
		" _|": '5',
	" _ " +
		"|_ " +
		"|_|": '6',
	" _ " +
		"  |" +
		"  |": '7',
	" _ " +
		"|_|" +
		"|_|": '8',
	" _ " +
		"|_|" +
		" _|": '9',
}

// ParseDigits decodes every glyph of the scan and returns the digits as written,
// leading zeros included
func ParseDigits(scan string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(scan, "\r\n", "\n"), "\n")
	if len(lines) == glyphHeight+1 && strings.TrimSpace(lines[glyphHeight]) == "" {
		lines = lines[:glyphHeight]
	}

	if len(lines) != glyphHeight {
		return "", ErrMalformedScan
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	if width == 0 || width%glyphWidth != 0 {
		return "", ErrMalformedScan
	}

	for i, line := range lines {
		lines[i] = line + strings.Repeat(" ", width-len(line))
	}

	digits := make([]byte, 0, width/glyphWidth)
	for col := 0; col < width; col += glyphWidth {
		var glyph strings.Builder
		for _, line := range lines {
			glyph.WriteString(line[col : col+glyphWidth])
		}

		digit, ok := glyphs[glyph.String()]
		if !ok {
			return "", GlyphError{Position: col / glyphWidth, Glyph: glyph.String()}
		}

		digits = append(digits, digit)
	}

	return string(digits), nil
}

// ParseAccount returns the nine-digit account number in the scan
func ParseAccount(scan string) (int, error) {
	digits, err := ParseDigits(scan)
	if err != nil {
		return 0, err
	}

	if len(digits) != AccountDigits {
		return 0, fmt.Errorf("%w, got %d", ErrAccountLength, len(digits))
	}

	return strconv.Atoi(digits)
}
