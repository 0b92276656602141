// Package dominoes decides whether a set of domino tiles can be laid in one row
package dominoes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTile is returned when a tile cannot be parsed
var ErrInvalidTile = errors.New("invalid tile")

// Tile is a domino; either end may face left
type Tile [2]int

// CanMakeRow returns true if every tile can be placed in a single row where touching
// ends show the same value. The tiles form such a row exactly when they are connected
// and at most two values appear an odd number of times
func CanMakeRow(tiles []Tile) bool {
	if len(tiles) == 0 {
		return true
	}

	degree := make(map[int]int)
	parent := make(map[int]int)

	var find func(v int) int
	find = func(v int) int {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}

	for _, tile := range tiles {
		for _, v := range tile {
			if _, ok := parent[v]; !ok {
				parent[v] = v
			}
		}

		degree[tile[0]]++
		degree[tile[1]]++
		parent[find(tile[0])] = find(tile[1])
	}

	odd := 0
	root := find(tiles[0][0])
	for v, d := range degree {
		if d%2 == 1 {
			odd++
		}

		if find(v) != root {
			return false
		}
	}

	return odd == 0 || odd == 2
}

// ParseTiles parses tiles in the form "0-1,1-1"
func ParseTiles(s string) ([]Tile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Tile{}, nil
	}

	parts := strings.Split(s, ",")
	tiles := make([]Tile, len(parts))
	for i, part := range parts {
		ends := strings.Split(strings.TrimSpace(part), "-")
		if len(ends) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTile, part)
		}

		for j, end := range ends {
			v, err := strconv.Atoi(end)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidTile, part)
			}

			tiles[i][j] = v
		}
	}

	return tiles, nil
}
