// Enums shared between configuration and the engine packages. Keeping them
// out of config avoids pulling the whole configuration machinery into the
// low-level document and layout packages.
package common

// Manuscript template selecting the active style vocabulary.
// ENUM(prose, screenplay, poetry)
type TemplateKind int

// IsLayoutSensitive reports whether the template forces the catalog font
// family on every run regardless of inline overrides. Screenplay layout
// depends on fixed-pitch metrics, so family drift cannot be tolerated there.
func (t TemplateKind) IsLayoutSensitive() bool {
	return t == TemplateKindScreenplay
}

// Paragraph alignment.
// ENUM(left, center, right, justified)
type Alignment int

// Tab stop alignment.
// ENUM(left, center, right, decimal)
type TabAlignment int

// Page number rendering format for a numbering section.
// ENUM(arabic, romanUpper, romanLower)
type NumberFormat int

// Structural block a paragraph belongs to. Edits inside table or column
// blocks repaginate on the longer debounce delay.
// ENUM(none, table, column)
type BlockKind int

// Kind of a structural marker anchored to a zero-width run.
// ENUM(sectionBreak, pageBreak, bookmark, crossReference, noteReference)
type MarkerKind int

// Layout of the formatted output: bare .msx file or a zipped .msz bundle
// with the outline report next to the document.
// ENUM(plain, bundle)
type OutputLayout int

func (o OutputLayout) Ext() string {
	switch o {
	case OutputLayoutPlain:
		return ".msx"
	case OutputLayoutBundle:
		return ".msz"
	default:
		// this should never happen
		panic("unsupported output layout requested")
	}
}
