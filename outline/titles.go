package outline

import (
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"

	"scribe/document"
)

// titleRuneLimit bounds synthesized titles, cut on a word boundary.
const titleRuneLimit = 60

// titler fabricates titles for heading paragraphs that carry no text of
// their own, taking the first sentence of the following body paragraph.
type titler struct {
	tok   *sentences.DefaultSentenceTokenizer
	limit int
	log   *zap.Logger
}

func newTitler(log *zap.Logger) *titler {
	t := &titler{limit: titleRuneLimit, log: log.Named("titles")}

	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		// degrade to whole-line titles
		log.Warn("Unable to load sentence tokenizer", zap.Error(err))
		return t
	}
	t.tok = tok
	return t
}

func (t *titler) synthesize(paragraphs []*document.Paragraph, from int) string {
	for i := from + 1; i < len(paragraphs); i++ {
		p := paragraphs[i]
		if p.IsEmpty() {
			continue
		}
		text := strings.TrimSpace(p.Text())
		return truncateAtWord(t.firstSentence(text), t.limit)
	}
	return ""
}

func (t *titler) firstSentence(text string) string {
	if t.tok == nil {
		return text
	}
	for _, s := range t.tok.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); len(trimmed) > 0 {
			return trimmed
		}
	}
	return text
}

// truncateAtWord cuts text to at most limit runes, stepping back to the
// last word boundary, with an ellipsis when anything was dropped.
func truncateAtWord(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := limit
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimRight(string(runes[:cut]), " \t") + "…"
}
