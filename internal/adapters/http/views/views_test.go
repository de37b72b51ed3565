package views

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTemplates_DefinesPages(t *testing.T) {
	tmpl := Templates()

	for _, name := range []string{"erro", "produto/index", "produto/detalhes", "produto/form", "produto/excluir"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("expected template %q to be defined", name)
		}
	}
}

func TestTemplates_EscapesUserInput(t *testing.T) {
	var out bytes.Buffer
	err := Templates().ExecuteTemplate(&out, "erro", map[string]any{
		"Status":  400,
		"Title":   "Bad Request",
		"Message": `<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(out.String(), "<script>") {
		t.Fatal("expected message to be escaped")
	}
}

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	yesno := funcs["yesno"].(func(bool) string)
	if yesno(true) != "Sim" || yesno(false) != "Não" {
		t.Fatal("unexpected yesno output")
	}

	date := funcs["date"].(func(time.Time) string)
	if date(time.Time{}) != "" {
		t.Fatal("expected empty string for zero time")
	}
	if got := date(time.Date(2024, 3, 9, 14, 30, 0, 0, time.Local)); got != "09/03/2024 14:30" {
		t.Fatalf("unexpected date %q", got)
	}
}
