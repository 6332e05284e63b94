package shard

import "github.com/specialistvlad/lightgrid/internal/lightgrid"

// Bounds returns the smallest rectangle covering every non-empty
// instruction in seq. The boolean is false when nothing would be touched.
func Bounds(seq []lightgrid.Instruction) (lightgrid.Rect, bool) {
	var bounds lightgrid.Rect
	found := false
	for _, in := range seq {
		if in.Rect.Empty() {
			continue
		}
		if !found {
			bounds = in.Rect
			found = true
			continue
		}
		bounds = bounds.Union(in.Rect)
	}
	return bounds, found
}

// Bands splits the rows of bounds into at most n contiguous, disjoint bands
// spanning the full column range. Fewer bands are returned when bounds has
// fewer rows than n. An empty bounds yields no bands.
func Bands(bounds lightgrid.Rect, n int) []lightgrid.Rect {
	rows := bounds.Rows()
	if rows == 0 {
		return nil
	}
	n = max(1, min(n, rows))
	height := (rows + n - 1) / n

	bands := make([]lightgrid.Rect, 0, n)
	for top := bounds.From.Row; top <= bounds.To.Row; top += height {
		bottom := min(top+height-1, bounds.To.Row)
		bands = append(bands, lightgrid.R(
			lightgrid.C(top, bounds.From.Col),
			lightgrid.C(bottom, bounds.To.Col),
		))
	}
	return bands
}
