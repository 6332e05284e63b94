// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

// BrightnessGrid tracks a brightness level per cell.
//
// Only cells with a level above zero are stored. A cell dimmed from 1 is
// removed rather than kept at 0, so Len always equals the number of bright
// cells.
type BrightnessGrid struct {
	levels map[Coord]int
}

// NewBrightnessGrid returns a grid with every cell at level 0.
func NewBrightnessGrid() *BrightnessGrid {
	return &BrightnessGrid{levels: make(map[Coord]int)}
}

// Apply implements Backend. On adds 1, Toggle adds 2 and Off subtracts 1
// down to a floor of 0.
func (g *BrightnessGrid) Apply(c Coord, action Action) {
	switch action {
	case On:
		g.levels[c]++
	case Toggle:
		g.levels[c] += 2
	case Off:
		g.dim(c)
	}
}

func (g *BrightnessGrid) dim(c Coord) {
	lvl, ok := g.levels[c]
	if !ok {
		return
	}
	if lvl <= 1 {
		delete(g.levels, c)
		return
	}
	g.levels[c] = lvl - 1
}

// Magnitude implements Backend and returns the total brightness.
func (g *BrightnessGrid) Magnitude() int {
	total := 0
	for _, lvl := range g.levels {
		total += lvl
	}
	return total
}

// Level returns the brightness of c. Unstored cells are at level 0.
func (g *BrightnessGrid) Level(c Coord) int {
	return g.levels[c]
}

// Len returns the number of stored entries.
func (g *BrightnessGrid) Len() int {
	return len(g.levels)
}
