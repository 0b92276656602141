// Package zigzag builds the square matrices used by JPEG entropy coding
package zigzag

import "errors"

// ErrNegativeSize is returned for a matrix dimension below zero
var ErrNegativeSize = errors.New("matrix size cannot be negative")

// Matrix returns an n×n matrix whose cells hold their position along the zigzag path,
// i.e., for n=3: [[0 1 5] [2 4 6] [3 7 8]]
func Matrix(n int) ([][]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	row, col := 0, 0
	for k := 0; k < n*n; k++ {
		m[row][col] = k

		if (row+col)%2 == 0 {
			// moving up and to the right
			switch {
			case col == n-1:
				row++
			case row == 0:
				col++
			default:
				row--
				col++
			}
		} else {
			// moving down and to the left
			switch {
			case row == n-1:
				col++
			case col == 0:
				row++
			default:
				row++
				col--
			}
		}
	}

	return m, nil
}
