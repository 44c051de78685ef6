package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// Renderer renders HTML pages from a parsed template set.
type Renderer struct {
	tmpl *template.Template
}

func New(fsys fs.FS, patterns ...string) (*Renderer, error) {
	tmpl, err := template.ParseFS(fsys, patterns...)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// HTML executes the named template into a buffer first, so a template
// error produces a clean 500 instead of a half-written page.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, code int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
	return nil
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	fmt.Fprintf(w, "<!doctype html>\n<title>%d</title>\n<h1>%s</h1>\n", code, template.HTMLEscapeString(message))
}
