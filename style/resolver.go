// Package style merges catalog definitions into live paragraph formatting
// and infers style tags for untagged paragraphs.
package style

import (
	"errors"

	"go.uber.org/zap"

	"scribe/catalog"
	"scribe/document"
)

var ErrStyleNotFound = errors.New("style not found in catalog")

// Resolver applies and infers catalog styles. It carries no document state,
// one resolver serves any number of documents using the same template.
type Resolver struct {
	cat *catalog.Catalog
	log *zap.Logger
}

func NewResolver(cat *catalog.Catalog, log *zap.Logger) *Resolver {
	return &Resolver{cat: cat, log: log.Named("style")}
}

// Apply merges the named definition into the paragraph's live formatting.
// Values the author changed away from the definition are intentional
// overrides and survive, everything else follows the catalog. Tab stops and
// structural block references are never replaced by a style apply.
// An unknown name is a no-op returning ErrStyleNotFound, never fatal.
func (r *Resolver) Apply(p *document.Paragraph, styleName string) error {
	def, ok := r.cat.Lookup(styleName)
	if !ok {
		r.log.Debug("Style not in catalog, leaving paragraph alone", zap.String("style", styleName))
		return ErrStyleNotFound
	}

	mergeParagraphFormat(&p.Format, def)
	for _, run := range p.Runs {
		if run.Marker != nil {
			// zero-width anchors have no visible formatting to reconcile
			continue
		}
		mergeRunFormat(&run.Format, def)
	}
	p.StyleTag = def.Name
	return nil
}

func mergeParagraphFormat(f *document.ParagraphFormat, def *catalog.Definition) {
	// alignment and indents: existing wins when it differs from the
	// definition, a difference signals a manual override (hand-built TOC
	// and outline indentation in particular must survive). Alignment is
	// always explicit so there is nothing to adopt when they agree.
	f.HeadIndent = mergeIndent(f.HeadIndent, def.HeadIndent)
	f.FirstLineIndent = mergeIndent(f.FirstLineIndent, def.FirstLineIndent)
	f.TailIndent = mergeIndent(f.TailIndent, def.TailIndent)

	// spacing and line height are not override-guarded, the catalog wins
	f.SpacingBefore = def.SpacingBefore
	f.SpacingAfter = def.SpacingAfter
	f.LineHeightMultiple = def.LineHeightMultiple

	// f.TabStops and f.Block stay untouched
}

// mergeIndent keeps a non-zero existing value that differs from the
// definition. Zero means inherited and adopts the definition value.
func mergeIndent(existing, styled float64) float64 {
	if existing != 0 && existing != styled {
		return existing
	}
	return styled
}

func mergeRunFormat(f *document.RunFormat, def *catalog.Definition) {
	family := f.FontName
	if len(family) == 0 {
		family = def.FontName
	}
	size := f.FontSize
	if size == 0 {
		size = def.FontSize
	}

	overridden := family != def.FontName ||
		size != def.FontSize ||
		f.Bold != def.Bold ||
		f.Italic != def.Italic

	if overridden {
		// intentional inline change, keep the font. Layout-sensitive
		// templates still force the family, size and trait overrides
		// survive even there.
		if def.ForceFamily {
			f.FontName = def.FontName
		}
	} else {
		// adopt the definition to pick up catalog-level updates
		f.FontName = def.FontName
		f.FontSize = def.FontSize
		f.Bold = def.Bold
		f.Italic = def.Italic
		f.SmallCaps = def.SmallCaps
	}

	// colors apply only where no run-level override exists
	if len(f.Color) == 0 {
		f.Color = def.Color
	}
	if len(f.Background) == 0 {
		f.Background = def.Background
	}
}

// Normalize tags and applies styles across the whole document: explicit
// tags are re-applied, untagged paragraphs are inferred first. Unknown tags
// are left in place untouched.
func (r *Resolver) Normalize(d *document.Document) {
	inferred := 0
	for _, p := range d.Paragraphs {
		name := p.StyleTag
		if len(name) == 0 {
			name = r.Infer(p)
			inferred++
		}
		if err := r.Apply(p, name); err != nil && !errors.Is(err, ErrStyleNotFound) {
			r.log.Warn("Unable to apply style", zap.String("style", name), zap.Error(err))
		}
	}
	if inferred > 0 {
		r.log.Debug("Inferred styles for untagged paragraphs", zap.Int("count", inferred))
	}
}
