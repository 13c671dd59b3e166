// Package view renders the server-side pages from the embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Имена представлений
const (
	Root          = "index"
	Categories    = "categories"
	CatProducts   = "catproducts"
	Products      = "products"
	Customers     = "customers"
	Orders        = "customerorders"
	OrderDetails  = "orderdetails"
	ZoneSelector  = "zonetimes"
	ClockFace     = "zonetime"
	Error         = "error"
	templateGlobs = "templates/*.html"
)

//go:embed templates/*.html
var files embed.FS

// Renderer непрозрачный рендерер: контекст -> разметка
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Templates набор html/template, собранный из встроенных файлов
type Templates struct {
	set *template.Template
}

var _ Renderer = (*Templates)(nil)

// Funcs helpers available to every template
var Funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
	"optdate": func(t *time.Time) string {
		if t == nil {
			return "not shipped"
		}
		return t.Format("2006-01-02")
	},
}

// New parses the embedded templates. A page that reads a context field
// the handler did not set fails to render instead of printing a blank.
func New() (*Templates, error) {
	set, err := template.New("").Funcs(Funcs).Option("missingkey=error").ParseFS(files, templateGlobs)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// Render executes the page named name, e.g. "categories" for categories.html.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	return t.set.ExecuteTemplate(w, name+".html", data)
}
