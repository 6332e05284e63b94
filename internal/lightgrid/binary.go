// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

// BinaryGrid tracks which cells are lit. Absence from the set means unlit.
type BinaryGrid struct {
	lit map[Coord]struct{}
}

// NewBinaryGrid returns a grid with every cell unlit.
func NewBinaryGrid() *BinaryGrid {
	return &BinaryGrid{lit: make(map[Coord]struct{})}
}

// Apply implements Backend.
func (g *BinaryGrid) Apply(c Coord, action Action) {
	switch action {
	case On:
		g.lit[c] = struct{}{}
	case Off:
		delete(g.lit, c)
	case Toggle:
		if _, ok := g.lit[c]; ok {
			delete(g.lit, c)
		} else {
			g.lit[c] = struct{}{}
		}
	}
}

// Magnitude implements Backend and returns the number of lit cells.
func (g *BinaryGrid) Magnitude() int {
	return len(g.lit)
}

// Lit reports whether c is currently lit.
func (g *BinaryGrid) Lit(c Coord) bool {
	_, ok := g.lit[c]
	return ok
}

// Len returns the number of stored entries.
func (g *BinaryGrid) Len() int {
	return len(g.lit)
}
