package catalog

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"scribe/common"
)

func TestLoadAllTemplates(t *testing.T) {
	for _, kind := range []common.TemplateKind{
		common.TemplateKindProse,
		common.TemplateKindScreenplay,
		common.TemplateKindPoetry,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			c, err := Load(kind)
			if err != nil {
				t.Fatalf("unable to load catalog: %v", err)
			}
			if c.Base() == nil {
				t.Fatal("catalog has no base style")
			}
			if len(c.Definitions()) == 0 {
				t.Fatal("catalog has no styles")
			}
			if len(c.OutlineLevels()) == 0 {
				t.Error("catalog produces no outline entries")
			}
		})
	}
}

func TestProseCatalog(t *testing.T) {
	c, err := Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	if c.Base().Name != "Body Text" {
		t.Errorf("wrong base style: %s", c.Base().Name)
	}

	d, ok := c.Lookup("TOC Entry")
	if !ok {
		t.Fatal("no TOC Entry style")
	}
	tabs := d.Tabs()
	if len(tabs) != 1 || tabs[0].Alignment != common.TabAlignmentRight || tabs[0].Leader != '.' {
		t.Errorf("TOC Entry tab stop wrong: %+v", tabs)
	}

	levels := c.OutlineLevels()
	if levels["Part Title"] != 0 || levels["Chapter Title"] != 1 || levels["Section Heading"] != 2 {
		t.Errorf("prose outline levels wrong: %v", levels)
	}
}

func TestScreenplayForcesFamily(t *testing.T) {
	c, err := Load(common.TemplateKindScreenplay)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	for _, d := range c.Definitions() {
		if !d.ForceFamily {
			t.Errorf("screenplay style %q does not force family", d.Name)
		}
	}
}

func TestNamesNaturalOrder(t *testing.T) {
	c, err := Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	names := c.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] && names[i-1][0] != names[i][0] {
			t.Errorf("names not ordered: %q before %q", names[i-1], names[i])
		}
	}
}

func TestApplyStylesheet(t *testing.T) {
	log := zaptest.NewLogger(t)

	c, err := Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}

	sheet := `
.chapter-title { font-size: 20pt; text-align: left; color: #333333; }
.body-text { text-indent: 24pt; line-height: 1.5; font-family: "Palatino", serif; }
.no-such-style { font-size: 99pt; }
.chapter-title h2 { font-size: 99pt; }
.body-text { rotation: 45deg; }
`
	c.ApplyStylesheet([]byte(sheet), log)

	ct, _ := c.Lookup("Chapter Title")
	if ct.FontSize != 20 || ct.Alignment != common.AlignmentLeft || ct.Color != "#333333" {
		t.Errorf("chapter title override lost: %+v", ct)
	}
	bt, _ := c.Lookup("Body Text")
	if bt.FirstLineIndent != 24 || bt.LineHeightMultiple != 1.5 || bt.FontName != "Palatino" {
		t.Errorf("body text override lost: %+v", bt)
	}
	if bt.FontSize == 99 || ct.FontSize == 99 {
		t.Error("unsupported selector leaked into definitions")
	}
}
