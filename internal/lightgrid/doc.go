// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package lightgrid is the simulation core. It applies ordered area
// instructions (turn on, turn off, toggle) to a sparse two-dimensional grid
// and reports an aggregate magnitude.
//
// # Backends
//
// Two backends implement the Backend capability:
//
//   - BinaryGrid: a cell is either lit or unlit. Magnitude is the number of
//     lit cells.
//   - BrightnessGrid: a cell holds a non-negative brightness level. Magnitude
//     is the sum of all levels.
//
// Both store only the cells that currently contribute to the magnitude, so
// memory grows with the lit area and not with the addressable area.
//
// # Execution
//
// ApplyInstruction enumerates every cell of an instruction's inclusive
// rectangle and hands it to the backend. ApplyInstructions does so for a
// sequence, strictly in order. Per-cell updates on distinct cells commute, so
// enumeration order inside a rectangle never changes the result; updates on
// the same cell do not, so sequence order always matters.
//
// The package performs no I/O and holds no global state. A backend must not
// be shared between goroutines without external synchronisation.
package lightgrid
