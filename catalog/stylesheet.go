package catalog

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"scribe/common"
)

// ApplyStylesheet overrides catalog definitions from a user stylesheet. Only
// a small CSS subset is honored: class selectors name styles (lowercased,
// spaces become hyphens, ".chapter-title" matches "Chapter Title") and
// declarations map onto definition fields. Everything else is logged and
// skipped, a user stylesheet can never make the catalog unusable.
func (c *Catalog) ApplyStylesheet(data []byte, log *zap.Logger) {
	if len(data) == 0 {
		return
	}

	byClass := make(map[string]*Definition, len(c.defs))
	for _, d := range c.defs {
		byClass[classKey(d.Name)] = d
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				log.Debug("Stylesheet parse error", zap.Error(parser.Err()))
			}
			return

		case css.BeginAtRuleGrammar:
			log.Debug("Skipping @-rule in stylesheet", zap.String("rule", string(data)))
			skipBlock(parser)

		case css.BeginRulesetGrammar:
			targets := c.selectTargets(data, parser.Values(), byClass, log)
			applyDeclarations(parser, targets, log)
		}
	}
}

func classKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func (c *Catalog) selectTargets(data []byte, values []css.Token, byClass map[string]*Definition, log *zap.Logger) []*Definition {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var targets []*Definition
	for sel := range strings.SplitSeq(sb.String(), ",") {
		sel = strings.TrimSpace(sel)
		if !strings.HasPrefix(sel, ".") || strings.ContainsFunc(sel, unicode.IsSpace) {
			log.Debug("Skipping unsupported selector", zap.String("selector", sel))
			continue
		}
		if d, ok := byClass[strings.ToLower(sel[1:])]; ok {
			targets = append(targets, d)
		} else {
			log.Debug("Stylesheet selector matches no style", zap.String("selector", sel))
		}
	}
	return targets
}

func applyDeclarations(parser *css.Parser, targets []*Definition, log *zap.Logger) {
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return
		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			value := tokenValue(parser.Values())
			for _, d := range targets {
				applyProperty(d, prop, value, log)
			}
		}
	}
}

// tokenValue joins value tokens into a single trimmed string.
func tokenValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func applyProperty(d *Definition, prop, value string, log *zap.Logger) {
	switch prop {
	case "font-size":
		if v, ok := points(value); ok {
			d.FontSize = v
		}
	case "font-family":
		d.FontName = unquote(firstFamily(value))
	case "font-weight":
		d.Bold = value == "bold" || value == "bolder" || numericWeight(value) >= 600
	case "font-style":
		d.Italic = value == "italic" || value == "oblique"
	case "font-variant":
		d.SmallCaps = value == "small-caps"
	case "text-align":
		if a, err := common.ParseAlignment(normalizeAlign(value)); err == nil {
			d.Alignment = a
		} else {
			log.Debug("Unknown text-align in stylesheet", zap.String("value", value))
		}
	case "text-indent":
		if v, ok := points(value); ok {
			d.FirstLineIndent = v
		}
	case "margin-left":
		if v, ok := points(value); ok {
			d.HeadIndent = v
		}
	case "margin-right":
		if v, ok := points(value); ok {
			d.TailIndent = v
		}
	case "margin-top":
		if v, ok := points(value); ok {
			d.SpacingBefore = v
		}
	case "margin-bottom":
		if v, ok := points(value); ok {
			d.SpacingAfter = v
		}
	case "line-height":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			d.LineHeightMultiple = v
		}
	case "color":
		d.Color = value
	case "background-color":
		d.Background = value
	default:
		log.Debug("Skipping unsupported stylesheet property", zap.String("property", prop))
	}
}

// points converts a CSS length to points. Unitless values and pt pass
// through, px assumes 96 dpi. Anything else is rejected.
func points(value string) (float64, bool) {
	switch {
	case strings.HasSuffix(value, "pt"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "pt"), 64)
		return v, err == nil
	case strings.HasSuffix(value, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
		return v * 72 / 96, err == nil
	default:
		v, err := strconv.ParseFloat(value, 64)
		return v, err == nil
	}
}

func numericWeight(value string) int {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return v
}

func normalizeAlign(value string) string {
	if value == "justify" {
		return "justified"
	}
	return value
}

func firstFamily(value string) string {
	head, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(head)
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
