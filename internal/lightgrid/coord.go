// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

import "fmt"

// Coord identifies a single grid cell. It is a comparable value and is used
// directly as a map key by the backends.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate in the "row,col" form used by instruction text.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Rect is an axis-aligned range of cells. Both corners are inclusive.
//
// A Rect whose From exceeds To on either axis is inverted and contains no
// cells.
type Rect struct {
	From Coord
	To   Coord
}

// R builds a Rect from its two corner cells.
func R(from, to Coord) Rect {
	return Rect{From: from, To: to}
}

// String returns the rectangle in the "r1,c1 through r2,c2" form.
func (r Rect) String() string {
	return fmt.Sprintf("%s through %s", r.From, r.To)
}

// Empty reports whether the rectangle is inverted on some axis.
func (r Rect) Empty() bool {
	return r.From.Row > r.To.Row || r.From.Col > r.To.Col
}

// Rows returns the number of rows covered, or 0 for an empty rectangle.
func (r Rect) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.To.Row - r.From.Row + 1
}

// Cols returns the number of columns covered, or 0 for an empty rectangle.
func (r Rect) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.To.Col - r.From.Col + 1
}

// Cells returns the number of cells the rectangle enumerates.
func (r Rect) Cells() int {
	return r.Rows() * r.Cols()
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.Row >= r.From.Row && c.Row <= r.To.Row &&
		c.Col >= r.From.Col && c.Col <= r.To.Col
}

// Intersect returns the overlap of r and o. The boolean is false when the
// two rectangles share no cell, in which case the returned Rect is empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		From: Coord{Row: max(r.From.Row, o.From.Row), Col: max(r.From.Col, o.From.Col)},
		To:   Coord{Row: min(r.To.Row, o.To.Row), Col: min(r.To.Col, o.To.Col)},
	}
	if r.Empty() || o.Empty() || out.Empty() {
		return out, false
	}
	return out, true
}

// Union returns the smallest rectangle covering both r and o. Empty inputs
// are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	return Rect{
		From: Coord{Row: min(r.From.Row, o.From.Row), Col: min(r.From.Col, o.From.Col)},
		To:   Coord{Row: max(r.To.Row, o.To.Row), Col: max(r.To.Col, o.To.Col)},
	}
}

// Each calls fn for every cell in the rectangle, row by row.
func (r Rect) Each(fn func(Coord)) {
	for row := r.From.Row; row <= r.To.Row; row++ {
		for col := r.From.Col; col <= r.To.Col; col++ {
			fn(Coord{Row: row, Col: col})
		}
	}
}
