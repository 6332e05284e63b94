// internal/instruction/parser.go
package instruction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/lightgrid/internal/lightgrid"
)

// coordRegex matches a single "row,col" token.
var coordRegex = regexp.MustCompile(`^(\d+),(\d+)$`)

// ParseLine parses a single instruction. Surrounding whitespace is ignored
// and any run of spaces between tokens is accepted.
func ParseLine(line string) (lightgrid.Instruction, error) {
	in, err := parseTokens(strings.Fields(line))
	if err != nil {
		return lightgrid.Instruction{}, &ParseError{Text: strings.TrimSpace(line), Reason: err.Error()}
	}
	if in.Rect.Empty() {
		return lightgrid.Instruction{}, &RangeError{Rect: in.Rect}
	}
	return in, nil
}

func parseTokens(tokens []string) (lightgrid.Instruction, error) {
	if len(tokens) == 0 {
		return lightgrid.Instruction{}, errors.New("empty instruction")
	}

	var action lightgrid.Action
	switch tokens[0] {
	case "turn":
		if len(tokens) < 2 {
			return lightgrid.Instruction{}, errors.New("missing direction after 'turn'")
		}
		switch tokens[1] {
		case "on":
			action = lightgrid.On
		case "off":
			action = lightgrid.Off
		default:
			return lightgrid.Instruction{}, fmt.Errorf("cannot turn %q", tokens[1])
		}
		tokens = tokens[2:]
	case "toggle":
		action = lightgrid.Toggle
		tokens = tokens[1:]
	default:
		return lightgrid.Instruction{}, fmt.Errorf("unknown verb %q", tokens[0])
	}

	if len(tokens) != 3 {
		return lightgrid.Instruction{}, errors.New("expected 'R1,C1 through R2,C2'")
	}
	if tokens[1] != "through" {
		return lightgrid.Instruction{}, fmt.Errorf("expected 'through', got %q", tokens[1])
	}

	from, err := parseCoord(tokens[0])
	if err != nil {
		return lightgrid.Instruction{}, err
	}
	to, err := parseCoord(tokens[2])
	if err != nil {
		return lightgrid.Instruction{}, err
	}

	return lightgrid.NewInstruction(action, from, to), nil
}

func parseCoord(token string) (lightgrid.Coord, error) {
	matches := coordRegex.FindStringSubmatch(token)
	if matches == nil {
		return lightgrid.Coord{}, fmt.Errorf("invalid coordinate %q", token)
	}
	row, err := strconv.Atoi(matches[1])
	if err != nil {
		return lightgrid.Coord{}, fmt.Errorf("coordinate %q out of range: %w", token, err)
	}
	col, err := strconv.Atoi(matches[2])
	if err != nil {
		return lightgrid.Coord{}, fmt.Errorf("coordinate %q out of range: %w", token, err)
	}
	return lightgrid.C(row, col), nil
}

// Parse reads every instruction from r, preserving input order.
func Parse(r io.Reader) ([]lightgrid.Instruction, error) {
	var seq []lightgrid.Instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		in, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			var re *RangeError
			switch {
			case errors.As(err, &pe):
				pe.Line = lineNo
			case errors.As(err, &re):
				re.Line = lineNo
			}
			return nil, err
		}
		seq = append(seq, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instructions: %w", err)
	}
	return seq, nil
}

// ParseFile opens path and parses its contents with Parse.
func ParseFile(path string) ([]lightgrid.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open instruction file: %w", err)
	}
	defer f.Close()

	seq, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Format renders seq back into instruction text, one line per instruction.
func Format(seq []lightgrid.Instruction) string {
	var b strings.Builder
	for _, in := range seq {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}
