package repair

import (
	"math"
	"regexp"
	"strings"

	"scribe/document"
)

// WidthMeasurer resolves rendered text width for leader computation. The
// batch pipeline plugs in the estimating variant below, an editor host
// would plug in its text engine.
type WidthMeasurer interface {
	TextWidth(text string, format document.RunFormat) float64
}

// EstimatingWidths approximates glyph width as half the font size.
type EstimatingWidths struct {
	DefaultSize float64
}

func (w EstimatingWidths) TextWidth(text string, format document.RunFormat) float64 {
	size := format.FontSize
	if size == 0 {
		size = w.DefaultSize
	}
	if size == 0 {
		size = 12
	}
	return float64(len([]rune(text))) * size * 0.5
}

// structure of a TOC/Index looking line:
// title, optional trailing dot leader, tab or run of spaces, page list
var lineShape = regexp.MustCompile(`^(.*?)[ ]*(\.{3,})?(\t+| {2,})(\d+(?:\s*,\s*\d+)*)[ ]*$`)

// parsedLine is a TOC/Index line split into its segments.
type parsedLine struct {
	title     string
	leader    string // existing trailing dots, empty if none
	separator string
	pages     string
}

// parseLine splits the paragraph text. ok is false when the line does not
// match the TOC/Index shape at all.
func parseLine(text string) (parsedLine, bool) {
	m := lineShape.FindStringSubmatch(text)
	if m == nil {
		return parsedLine{}, false
	}
	p := parsedLine{title: m[1], leader: m[2], separator: m[3], pages: m[4]}
	if len(strings.TrimSpace(p.title)) == 0 {
		// a bare page number is not an entry
		return parsedLine{}, false
	}
	return p, true
}

// cleanlySeparable reports whether the line can be rewritten wholesale: an
// existing leader of three or more dots isolates the title from the page
// segment. Without it only the minimal whitespace-to-tab substitution is
// safe.
func (p parsedLine) cleanlySeparable() bool {
	return len(p.leader) >= 3
}

// multiplePages reports a comma-separated page list.
func (p parsedLine) multiplePages() bool {
	return strings.Contains(p.pages, ",")
}

// idealLeaderUnits computes the leader unit count for the available run
// between title and page list at the right tab location.
func idealLeaderUnits(available, dotUnitWidth float64) int {
	n := int(math.Floor(available / dotUnitWidth))
	if n < 3 {
		n = 3
	}
	return n
}

// rebuild renders the canonical line text: title, leader units, a single
// tab, the page list. Index entries get a space before the dots so the
// leader reads as a space-dot rail.
func (p parsedLine) rebuild(units int, index bool) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(p.title, " "))
	if index {
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.Repeat(".", units))
	sb.WriteByte('\t')
	sb.WriteString(p.pages)
	return sb.String()
}

// substituteTab is the minimal repair: the first run of two or more spaces
// before the page list becomes a single tab. Nothing else moves.
func (p parsedLine) substituteTab() string {
	var sb strings.Builder
	sb.WriteString(p.title)
	sb.WriteString(p.leader)
	if strings.Contains(p.separator, "\t") {
		sb.WriteString(p.separator)
	} else {
		sb.WriteByte('\t')
	}
	sb.WriteString(p.pages)
	return sb.String()
}
