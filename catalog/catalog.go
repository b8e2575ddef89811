// Package catalog holds named style definitions per manuscript template.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"scribe/common"
	"scribe/document"
)

//go:embed templates/*.yaml
var templatesFS embed.FS

type (
	tabStopDef struct {
		Position  float64             `yaml:"pos"`
		Alignment common.TabAlignment `yaml:"align"`
		Leader    string              `yaml:"leader"`
	}

	// Definition is a named style. Outline is nil for styles that do not
	// produce outline entries, otherwise the entry level.
	Definition struct {
		Name               string           `yaml:"name"`
		Outline            *int             `yaml:"outline"`
		Alignment          common.Alignment `yaml:"align"`
		HeadIndent         float64          `yaml:"head"`
		FirstLineIndent    float64          `yaml:"first"`
		TailIndent         float64          `yaml:"tail"`
		SpacingBefore      float64          `yaml:"before"`
		SpacingAfter       float64          `yaml:"after"`
		LineHeightMultiple float64          `yaml:"lineheight"`
		FontName           string           `yaml:"font"`
		FontSize           float64          `yaml:"size"`
		Bold               bool             `yaml:"bold"`
		Italic             bool             `yaml:"italic"`
		SmallCaps          bool             `yaml:"smallcaps"`
		Color              string           `yaml:"color"`
		Background         string           `yaml:"background"`
		// ForceFamily styles push the font family onto every run even over
		// explicit overrides. Screenplay layout depends on fixed-pitch
		// metrics.
		ForceFamily bool         `yaml:"force_family"`
		TabStops    []tabStopDef `yaml:"tabs"`
	}

	templateFile struct {
		Template common.TemplateKind `yaml:"template"`
		Base     string              `yaml:"base"`
		Styles   []*Definition       `yaml:"styles"`
	}

	// Catalog is an ordered set of style definitions for one template.
	// Definition order follows the template file, scoring ties in style
	// inference resolve to the earliest definition.
	Catalog struct {
		Template common.TemplateKind
		defs     []*Definition
		byName   map[string]*Definition
		base     string
	}
)

// Tabs converts the definition tab stops to document tab stops.
func (d *Definition) Tabs() []document.TabStop {
	if len(d.TabStops) == 0 {
		return nil
	}
	out := make([]document.TabStop, 0, len(d.TabStops))
	for _, ts := range d.TabStops {
		stop := document.TabStop{Position: ts.Position, Alignment: ts.Alignment}
		if len(ts.Leader) > 0 {
			stop.Leader = []rune(ts.Leader)[0]
		}
		out = append(out, stop)
	}
	return out
}

// Load builds the catalog for the template from the embedded definitions.
func Load(kind common.TemplateKind) (*Catalog, error) {
	data, err := templatesFS.ReadFile(fmt.Sprintf("templates/%s.yaml", kind))
	if err != nil {
		return nil, fmt.Errorf("no style template for %s: %w", kind, err)
	}

	var tf templateFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("unable to decode style template %s: %w", kind, err)
	}
	if tf.Template != kind {
		return nil, fmt.Errorf("style template mismatch: want %s, file says %s", kind, tf.Template)
	}

	c := &Catalog{
		Template: kind,
		defs:     tf.Styles,
		byName:   make(map[string]*Definition, len(tf.Styles)),
		base:     tf.Base,
	}
	for _, d := range tf.Styles {
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate style %q in %s template", d.Name, kind)
		}
		c.byName[d.Name] = d
	}
	if _, ok := c.byName[c.base]; !ok {
		return nil, fmt.Errorf("base style %q missing from %s template", c.base, kind)
	}
	return c, nil
}

// Lookup returns the definition for the name.
func (c *Catalog) Lookup(name string) (*Definition, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Base returns the template's base body style.
func (c *Catalog) Base() *Definition {
	return c.byName[c.base]
}

// Definitions returns styles in catalog order.
func (c *Catalog) Definitions() []*Definition {
	return c.defs
}

// Names returns style names in natural order for listings.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for _, d := range c.defs {
		names = append(names, d.Name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// OutlineLevels returns the style name to outline level table.
func (c *Catalog) OutlineLevels() map[string]int {
	levels := make(map[string]int)
	for _, d := range c.defs {
		if d.Outline != nil {
			levels[d.Name] = *d.Outline
		}
	}
	return levels
}
