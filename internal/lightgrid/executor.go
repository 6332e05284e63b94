// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

// ApplyInstruction applies in to every cell of its rectangle. An inverted
// rectangle enumerates no cells and leaves the backend untouched.
func ApplyInstruction(b Backend, in Instruction) {
	in.Rect.Each(func(c Coord) {
		b.Apply(c, in.Action)
	})
}

// ApplyInstructions applies seq to b in the order given.
func ApplyInstructions(b Backend, seq []Instruction) {
	for _, in := range seq {
		ApplyInstruction(b, in)
	}
}

// Magnitude reads the current aggregate of b. It may be called between
// instructions to observe intermediate state.
func Magnitude(b Backend) int {
	return b.Magnitude()
}

// Run builds a fresh backend of the given kind, applies seq and returns the
// resulting magnitude.
func Run(kind Kind, seq []Instruction) (int, error) {
	b, err := NewBackend(kind)
	if err != nil {
		return 0, err
	}
	ApplyInstructions(b, seq)
	return Magnitude(b), nil
}
