// Package rectangles splits an ASCII figure into the rectangles it is made of
package rectangles

import (
	"strings"
)

const (
	corner     = '+'
	horizontal = '-'
	vertical   = '|'
	blank      = ' '
)

// figure is a ragged grid; cells past the end of a line read as blank
type figure [][]byte

func parseFigure(s string) figure {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	f := make(figure, len(lines))
	for i, line := range lines {
		f[i] = []byte(line)
	}

	return f
}

func (f figure) at(row, col int) byte {
	if row < 0 || row >= len(f) || col < 0 || col >= len(f[row]) {
		return blank
	}

	return f[row][col]
}

// rect is a rectangle by its corner coordinates
type rect struct {
	top, left, bottom, right int
}

// Decompose returns every basic rectangle of the figure, rendered on its own.
// A basic rectangle has a closed border and nothing but blanks inside.
// Rectangles are ordered by their top-left corner, then by size
func Decompose(s string) []string {
	f := parseFigure(s)

	rendered := make([]string, 0)
	for _, r := range f.rectangles() {
		rendered = append(rendered, r.render())
	}

	return rendered
}

func (f figure) rectangles() []rect {
	var found []rect

	for top := range f {
		for left := range f[top] {
			if f.at(top, left) != corner {
				continue
			}

			for right := left + 1; right < len(f[top]); right++ {
				c := f.at(top, right)
				if c != corner && c != horizontal {
					break
				}
				if c != corner {
					continue
				}

				for bottom := top + 1; bottom < len(f); bottom++ {
					l := f.at(bottom, left)
					if l != corner && l != vertical {
						break
					}
					if l != corner {
						continue
					}

					r := rect{top: top, left: left, bottom: bottom, right: right}
					if f.closed(r) && f.blankInside(r) {
						found = append(found, r)
					}
				}
			}
		}
	}

	return found
}

// closed reports whether the right and bottom edges are intact;
// the top and left edges were walked while searching
func (f figure) closed(r rect) bool {
	if f.at(r.bottom, r.right) != corner {
		return false
	}

	for row := r.top + 1; row < r.bottom; row++ {
		if c := f.at(row, r.right); c != corner && c != vertical {
			return false
		}
	}

	for col := r.left + 1; col < r.right; col++ {
		if c := f.at(r.bottom, col); c != corner && c != horizontal {
			return false
		}
	}

	return true
}

func (f figure) blankInside(r rect) bool {
	for row := r.top + 1; row < r.bottom; row++ {
		for col := r.left + 1; col < r.right; col++ {
			if f.at(row, col) != blank {
				return false
			}
		}
	}

	return true
}

func (r rect) render() string {
	width := r.right - r.left - 1
	edge := string(corner) + strings.Repeat(string(horizontal), width) + string(corner) + "\n"
	side := string(vertical) + strings.Repeat(string(blank), width) + string(vertical) + "\n"

	return edge + strings.Repeat(side, r.bottom-r.top-1) + edge
}
