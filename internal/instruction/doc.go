// internal/instruction/doc.go

/*
Package instruction reads light-grid instructions from their textual form.

The format is one instruction per line:

	turn on 887,9 through 959,629
	turn off 539,243 through 559,965
	toggle 720,196 through 897,994

Coordinates are non-negative decimal "row,col" pairs and both corners are
inclusive. Blank lines and lines starting with '#' are ignored.

Malformed lines fail with a *ParseError. Rectangles whose first corner lies
past the second on either axis fail with a *RangeError; the simulation core
itself would treat such a rectangle as empty, so rejecting it here surfaces
what is almost always a typo in the input.
*/
package instruction
