package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"yttc/config"
	"yttc/srv3"
)

// Values is a struct that holds variables we make available for template
// expansion. Timed-text documents carry no document metadata (no title or
// author), so everything here comes from the source file name and counts.
type Values struct {
	Context         string
	SourceFile      string
	Format          string
	Events          int
	Pens            int
	WindowPositions int
}

func expandTemplate(doc *srv3.Document, name config.TemplateFieldName, field, srcName string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:         string(name),
		SourceFile:      strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName)),
		Format:          "ass",
		Events:          len(doc.Events),
		Pens:            len(doc.Pens),
		WindowPositions: len(doc.WindowPositions),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
