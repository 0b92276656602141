// Package wraptext breaks text into lines at word boundaries
package wraptext

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidColumns is returned when the column limit is not positive
var ErrInvalidColumns = errors.New("columns must be greater than zero")

// Wrap greedily fills each line with as many words as fit within columns.
// A word longer than columns is placed on a line of its own
func Wrap(text string, columns int) ([]string, error) {
	if columns <= 0 {
		return nil, ErrInvalidColumns
	}

	lines := make([]string, 0)
	var line strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		if lineLen > 0 && lineLen+1+wordLen > columns {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}

		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}

		line.WriteString(word)
		lineLen += wordLen
	}

	if lineLen > 0 {
		lines = append(lines, line.String())
	}

	return lines, nil
}
