package text

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// Default measures ambiguous width runes according to the running system locale.
var Default = NewCondition(runewidth.EastAsianWidth)

// Condition measures text in cells as defined by unicode east asian width,
// see http://unicode.org/reports/tr11/.
type Condition struct {
	// EastAsian makes ambiguous width runes, like '☆', two cells wide.
	EastAsian bool
}

func NewCondition(eastAsian bool) *Condition {
	return &Condition{EastAsian: eastAsian}
}

// RuneWidth returns 0, 1 or 2 cells.
func (c Condition) RuneWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if c.EastAsian {
			return 2
		}
		return 1
	default:
		return 1
	}
}

// StringWidth returns the sum of RuneWidth over s.
// An invalid UTF-8 byte counts as one cell.
func (c Condition) StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += c.RuneWidth(r)
	}
	return w
}

func RuneWidth(r rune) int     { return Default.RuneWidth(r) }
func StringWidth(s string) int { return Default.StringWidth(s) }
