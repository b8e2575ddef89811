package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"scribe/config"
	"scribe/document"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context  string
	Name     string
	Template string
	Language string
	DocID    string
	Pages    int
}

func expandTemplate(d *document.Document, name config.TemplateFieldName, field, src string, pages int) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:  string(name),
		Name:     strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Template: d.Template.String(),
		Language: d.Lang.String(),
		DocID:    d.ID.String(),
		Pages:    pages,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
