// internal/instruction/errors.go
package instruction

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lightgrid/internal/lightgrid"
)

var (
	// ErrSyntax is matched by every *ParseError.
	ErrSyntax = errors.New("invalid instruction syntax")
	// ErrInvertedRange is matched by every *RangeError.
	ErrInvertedRange = errors.New("inverted instruction range")
)

// ParseError describes a line that does not follow the instruction grammar.
type ParseError struct {
	Line   int // 1-based; 0 when parsing a standalone string
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

// Is lets errors.Is(err, ErrSyntax) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

// RangeError reports a rectangle whose From exceeds To on some axis.
type RangeError struct {
	Line int
	Rect lightgrid.Rect
}

func (e *RangeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, ErrInvertedRange, e.Rect)
	}
	return fmt.Sprintf("%s: %s", ErrInvertedRange, e.Rect)
}

// Is lets errors.Is(err, ErrInvertedRange) match any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvertedRange
}
