package zigzag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	tests := map[int][][]int{
		0: {},
		1: {{0}},
		2: {
			{0, 1},
			{2, 3},
		},
		3: {
			{0, 1, 5},
			{2, 4, 6},
			{3, 7, 8},
		},
		4: {
			{0, 1, 5, 6},
			{2, 4, 7, 12},
			{3, 8, 11, 13},
			{9, 10, 14, 15},
		},
		5: {
			{0, 1, 5, 6, 14},
			{2, 4, 7, 13, 15},
			{3, 8, 12, 16, 21},
			{9, 11, 17, 20, 22},
			{10, 18, 19, 23, 24},
		},
	}

	for n, expected := range tests {
		m, err := Matrix(n)
		if assert.NoError(t, err) {
			assert.Equal(t, expected, m, "n=%d", n)
		}
	}
}

func TestMatrix_visitsEveryCell(t *testing.T) {
	m, err := Matrix(12)
	assert.NoError(t, err)

	seen := make(map[int]bool)
	for _, row := range m {
		for _, v := range row {
			seen[v] = true
		}
	}

	assert.Len(t, seen, 144)
	assert.Equal(t, 143, m[11][11])
}

func TestMatrix_negative(t *testing.T) {
	m, err := Matrix(-1)
	assert.Equal(t, ErrNegativeSize, err)
	assert.Nil(t, m)
}
