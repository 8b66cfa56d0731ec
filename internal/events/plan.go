package events

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kamilmatejuk/ascfmt/internal/edit"
)

// PlanEdits returns the edits that put each event on its own line as
//
//	[<padded integer>.<6 digits>, <type padded to width>, <payload>]
//
// Edits never touch text before floor, which is where the header ends.
func PlanEdits(text string, descs []Descriptor, w Widths, floor int) []edit.Operation {
	var ops []edit.Operation
	lower := floor
	for _, d := range descs {
		ops = append(ops, planEvent(text, d, w, floor, lower)...)
		lower = d.end()
	}
	return ops
}

// end is the first offset after the text owned by the event.
func (d Descriptor) end() int {
	if d.Close >= 0 {
		return d.Close + 1
	}
	return d.Payload.End
}

// planEvent plans the edits for one event. Everything it touches lies in
// [lower, d.end()), where lower is the end of the previous event.
func planEvent(text string, d Descriptor, w Widths, floor, lower int) []edit.Operation {
	var p plan

	// one event per line
	lineStart := strings.LastIndexByte(text[:d.Open], '\n') + 1
	switch start := max(lineStart, lower); {
	case lineStart == d.Open:
	case start >= d.Open:
		// previous event ends right at '['
		if lower > floor {
			p.insert(d.Open, "\n")
		}
	case strings.LastIndexByte(text[start:d.Open], ']') >= 0:
		p.replace(text, start+strings.LastIndexByte(text[start:d.Open], ']')+1, d.Open, "\n")
	case lower > lineStart && lower > floor:
		// previous event ends on this line
		p.replace(text, lower, d.Open, "\n")
	default:
		p.replace(text, start, d.Open, "")
	}

	// timestamp: right-align the integer part, six decimals
	pad := max(w.IntegerDigits-integerDigits(d.Number.Text), 0)
	p.replace(text, d.Open+1, d.Number.Start, strings.Repeat(" ", pad))
	number := fractionSuffix(d.Number.Text)
	if d.Number.Synthetic {
		number = d.Number.Text + number
	}
	p.insert(d.Number.End, number)

	// type column
	p.replace(text, d.Number.End, d.Type.Start, ", ")
	if d.Type.Synthetic {
		p.insert(d.Type.Start, d.Type.Text)
	}
	typePad := max(w.TypeWidth-runewidth.StringWidth(d.Type.Text), 0)
	p.replace(text, d.Type.End, d.Payload.Start, strings.Repeat(" ", typePad)+", ")
	if d.Payload.Synthetic {
		p.insert(d.Payload.Start, d.Payload.Text)
	}

	// nothing between the payload and ']'
	if d.Close >= 0 {
		p.replace(text, d.Payload.End, d.Close, "")
	}
	return p.ops
}

// plan accumulates the edits of one event.
type plan struct {
	ops []edit.Operation
}

// replace makes text[start:end] read want. The replacement is inserted at
// end so it never shares an offset with an insertion at start.
func (p *plan) replace(text string, start, end int, want string) {
	if start > end || text[start:end] == want {
		return
	}
	if end > start {
		p.ops = append(p.ops, edit.NewDelete(start, end))
	}
	if want != "" {
		p.ops = append(p.ops, edit.NewInsert(end, want))
	}
}

func (p *plan) insert(at int, s string) {
	if s != "" {
		p.ops = append(p.ops, edit.NewInsert(at, s))
	}
}
