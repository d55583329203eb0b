package message

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnbalanced = errors.New("unbalanced brace")
	errSpecifier  = errors.New("unsupported placeholder")
)

// Segment is either a piece of literal text or a reference to a positional argument.
type Segment struct {
	Text string
	Slot int
}

// IsSlot reports whether the segment references an argument.
func (s Segment) IsSlot() bool {
	return s.Slot >= 0
}

// Parse splits a positional format like "bad {0} at {1}" into text and slot segments.
// Doubled braces are literal braces. Placeholders with alignment or format
// specifiers are not supported.
func Parse(format string) ([]Segment, error) {
	var (
		segs []Segment
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, Segment{Text: text.String(), Slot: -1})
			text.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				text.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("offset %d: %w", i, errUnbalanced)
			}
			body := format[i+1 : i+1+end]
			slot, ok := slotIndex(body)
			if !ok {
				return nil, fmt.Errorf("offset %d: %w {%s}", i, errSpecifier, body)
			}

			flush()
			segs = append(segs, Segment{Slot: slot})
			i += end + 1

		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				text.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("offset %d: %w", i, errUnbalanced)

		default:
			text.WriteByte(c)
		}
	}
	flush()

	return segs, nil
}

func slotIndex(body string) (int, bool) {
	if body == "" || len(body) > 6 {
		return 0, false
	}

	var n int
	for _, c := range body {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}

// Render substitutes slots with fmt.Sprint renditions of values. It is the reference
// semantics of positional formats that converted messages reproduce.
func Render(segs []Segment, values ...any) string {
	var buf strings.Builder
	for _, s := range segs {
		if !s.IsSlot() {
			buf.WriteString(s.Text)
			continue
		}
		buf.WriteString(fmt.Sprint(values[s.Slot]))
	}

	return buf.String()
}
