// Package render renders decoded modules as tracker style text sheets
// through embedded templates.
package render

import (
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"

	xm "github.com/TheBrightSide/symphonia-xm-ext"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the embedded sheet templates against modules. The
// templates are parsed once in New and a Renderer is safe for
// concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Module writes the whole sheet: a header summary, the order list, the
// instrument list and every pattern grid.
func (r *Renderer) Module(w io.Writer, m *xm.Module) error {
	return r.tmpl.ExecuteTemplate(w, "module.tmpl", m)
}

// Pattern writes the grid of a single pattern.
func (r *Renderer) Pattern(w io.Writer, m *xm.Module, index int) error {
	if index < 0 || index >= len(m.Patterns) {
		return fmt.Errorf("pattern %d out of range, module has %d patterns", index, len(m.Patterns))
	}
	data := struct {
		Index   int
		Pattern xm.Pattern
	}{index, m.Patterns[index]}
	return r.tmpl.ExecuteTemplate(w, "pattern.tmpl", data)
}
