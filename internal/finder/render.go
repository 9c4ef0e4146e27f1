package finder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ziadkadry99/kitchen-finder/internal/kitchen"
)

var funcs = template.FuncMap{
	"display":    display,
	"pathEscape": url.PathEscape,
}

var (
	indexTmpl   = template.Must(template.New("index").Funcs(funcs).Parse(layoutTemplate + resultsTemplate + indexTemplate))
	detailTmpl  = template.Must(template.New("detail").Funcs(funcs).Parse(layoutTemplate + detailTemplate))
	resultsTmpl = template.Must(template.New("fragment").Funcs(funcs).Parse(resultsTemplate))
)

// pageData feeds the layout and whichever "main" block the page defines.
type pageData struct {
	Title    string
	Location string
	View     View
	Kitchen  *kitchen.Kitchen
	Error    string
}

// display renders an opaque API value as the API sent it. Missing values
// render as nothing.
func display(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (f *Finder) renderHTML(w http.ResponseWriter, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		f.logger.Error("rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
