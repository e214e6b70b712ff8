package machine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformedManual = errors.New("machine: malformed manual")

// Parse reads one manual per non-blank line.
func Parse(r io.Reader) ([]Manual, error) {
	var manuals []Manual
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		manuals = append(manuals, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("machine: read: %w", err)
	}
	return manuals, nil
}

// ParseLine parses a manual such as
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
func ParseLine(line string) (Manual, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return Manual{}, fmt.Errorf("%w: missing light diagram", ErrMalformedManual)
	}
	lights, rest, ok := strings.Cut(line[1:], "]")
	if !ok {
		return Manual{}, fmt.Errorf("%w: unterminated light diagram", ErrMalformedManual)
	}
	buttons, joltages, ok := strings.Cut(rest, "{")
	if !ok || !strings.HasSuffix(joltages, "}") {
		return Manual{}, fmt.Errorf("%w: missing joltage requirements", ErrMalformedManual)
	}
	joltages = strings.TrimSuffix(joltages, "}")

	var m Manual
	for _, c := range lights {
		switch c {
		case '#':
			m.Lights = append(m.Lights, true)
		case '.':
			m.Lights = append(m.Lights, false)
		default:
			return Manual{}, fmt.Errorf("%w: light %q", ErrMalformedManual, c)
		}
	}

	for _, field := range strings.Fields(buttons) {
		if !strings.HasPrefix(field, "(") || !strings.HasSuffix(field, ")") {
			return Manual{}, fmt.Errorf("%w: button %q", ErrMalformedManual, field)
		}
		var b Button
		for _, p := range strings.Split(field[1:len(field)-1], ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Manual{}, fmt.Errorf("%w: button %q: %w", ErrMalformedManual, field, err)
			}
			b = append(b, idx)
		}
		m.Buttons = append(m.Buttons, b)
	}

	var err error
	if m.Joltages, err = parseJoltages(joltages); err != nil {
		return Manual{}, fmt.Errorf("%w: joltages: %w", ErrMalformedManual, err)
	}

	if err := m.validate(); err != nil {
		return Manual{}, err
	}
	return m, nil
}

func parseJoltages(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m Manual) validate() error {
	if len(m.Lights) != len(m.Joltages) {
		return fmt.Errorf("%w: %d lights but %d joltage requirements", ErrMalformedManual, len(m.Lights), len(m.Joltages))
	}
	return m.checkWiring()
}

// checkWiring reports a button wired outside [0, len(m.Lights)).
func (m Manual) checkWiring() error {
	for _, b := range m.Buttons {
		for _, idx := range b {
			if idx < 0 || idx >= len(m.Lights) {
				return fmt.Errorf("%w: button %v wired to index %d of %d", ErrMalformedManual, b, idx, len(m.Lights))
			}
		}
	}
	return nil
}
