package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates
var files embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format("02/01/2006 15:04")
		},
		"yesno": func(b bool) string {
			if b {
				return "Sim"
			}
			return "Não"
		},
	}
}

// Templates parses the embedded page templates. Pages are addressed by their
// define name, e.g. "produto/index".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files,
		"templates/*.tmpl",
		"templates/produto/*.tmpl",
	))
}
