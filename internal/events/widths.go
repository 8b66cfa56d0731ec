package events

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FractionDigits is the number of digits every timestamp has after the
// decimal point once formatted.
const FractionDigits = 6

// Widths are the column widths shared by every event of a document.
type Widths struct {
	// IntegerDigits is the widest integer part of any timestamp.
	IntegerDigits int
	// TypeWidth is the widest type token, quotes included.
	TypeWidth int
}

// ComputeWidths returns the column widths for descs. An empty list yields
// zero widths.
func ComputeWidths(descs []Descriptor) Widths {
	var w Widths
	for _, d := range descs {
		w.IntegerDigits = max(w.IntegerDigits, integerDigits(d.Number.Text))
		w.TypeWidth = max(w.TypeWidth, runewidth.StringWidth(d.Type.Text))
	}
	return w
}

// integerDigits is the length of the part of a timestamp before its
// decimal point. A timestamp without a decimal point is all integer part.
func integerDigits(number string) int {
	if i := strings.IndexByte(number, '.'); i >= 0 {
		return i
	}
	return len(number)
}

// fractionSuffix returns what has to follow number so that it ends with
// exactly FractionDigits decimals. Longer fractions are left alone.
func fractionSuffix(number string) string {
	i := strings.IndexByte(number, '.')
	if i < 0 {
		return "." + strings.Repeat("0", FractionDigits)
	}
	have := len(number) - i - 1
	if have >= FractionDigits {
		return ""
	}
	return strings.Repeat("0", FractionDigits-have)
}
