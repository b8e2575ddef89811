package layout

import (
	"fmt"
	"strconv"
	"strings"

	"scribe/common"
)

// SectionBreak is a resolved numbering break: the 1-based physical page the
// section starts on, the first displayed number and its format. Breaks are
// kept in source order which is also non-decreasing start-page order.
type SectionBreak struct {
	StartPage   int
	StartNumber int
	Format      common.NumberFormat
}

// DisplayedNumber renders the page number shown on the 0-based physical
// page. The last break starting at or before the page wins, with an
// implicit arabic section from page 1 when none precedes it.
func DisplayedNumber(breaks []SectionBreak, page int) string {
	target := page + 1
	active := SectionBreak{StartPage: 1, StartNumber: 1, Format: common.NumberFormatArabic}
	for _, b := range breaks {
		if b.StartPage <= target {
			active = b
		}
	}

	n := active.StartNumber + (target - active.StartPage)
	if n <= 0 {
		// enforced at break creation, render nothing if it happens anyway
		return ""
	}
	switch active.Format {
	case common.NumberFormatRomanUpper:
		return Roman(n)
	case common.NumberFormatRomanLower:
		return strings.ToLower(Roman(n))
	default:
		return strconv.Itoa(n)
	}
}

var romanTable = []struct {
	value int
	sym   string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts n to a subtractive-notation roman numeral. Valid for
// 1 through 3999, anything else renders empty.
func Roman(n int) string {
	if n <= 0 || n > 3999 {
		return ""
	}
	var sb strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			sb.WriteString(e.sym)
			n -= e.value
		}
	}
	return sb.String()
}

// ParseRoman converts an upper-case roman numeral back to an integer.
func ParseRoman(s string) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty roman numeral")
	}
	n := 0
	rest := s
	for _, e := range romanTable {
		for strings.HasPrefix(rest, e.sym) {
			n += e.value
			rest = rest[len(e.sym):]
		}
	}
	if len(rest) != 0 || Roman(n) != s {
		return 0, fmt.Errorf("not a canonical roman numeral: %s", s)
	}
	return n, nil
}
