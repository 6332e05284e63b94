// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a backend kind name is not recognised.
var ErrUnknownKind = errors.New("unknown backend kind")

// Backend is the per-cell state machine driven by the executor.
//
// Implementations must treat distinct coordinates independently: the effect
// of Apply on one cell never depends on, or changes, another cell.
type Backend interface {
	// Apply performs action on the single cell c.
	Apply(c Coord, action Action)
	// Magnitude summarises the whole grid as a single scalar.
	Magnitude() int
}

// Kind names a backend implementation.
type Kind string

const (
	KindBinary     Kind = "binary"
	KindBrightness Kind = "brightness"
)

// Kinds lists every supported backend kind in reporting order.
var Kinds = []Kind{KindBinary, KindBrightness}

// ParseKind validates a backend name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case KindBinary, KindBrightness:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// NewBackend returns an empty backend of the given kind.
func NewBackend(kind Kind) (Backend, error) {
	switch kind {
	case KindBinary:
		return NewBinaryGrid(), nil
	case KindBrightness:
		return NewBrightnessGrid(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}
