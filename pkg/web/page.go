package web

import (
	"html/template"
	"net/http"
	"regexp"
	"strings"
)

func NewPage(title, subTitle, path string, templates []string, data interface{}) *Page {
	return &Page{
		Title:     title,
		SubTitle:  subTitle,
		MenuItems: menuItems,
		Templates: templates,
		Path:      path,
		Slug:      slugify(title),
		Data:      data,
	}
}

type Page struct {
	Title     string
	SubTitle  string
	MenuItems []MenuItem
	Templates []string
	Path      string
	Slug      string
	Data      interface{}
}

// Render writes the full layout, or only the "Content" template when the request comes
// from htmx.
func (p *Page) Render(w http.ResponseWriter, r *http.Request) {
	p.RenderStatus(w, r, http.StatusOK)
}

func (p *Page) RenderStatus(w http.ResponseWriter, r *http.Request, status int) {
	templates := p.Templates
	name := "Content"
	if r.Header.Get("HX-Request") != "true" {
		templates = append(append([]string{}, LayoutTemplates...), p.Templates...)
		name = "Layout"
	}

	tmpl, err := template.New(p.Title).Funcs(TemplateFuncs()).ParseFS(TemplatesFS, templates...)
	if err != nil {
		log.Errorf("Failed to parse template: %s", err)
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return
	}

	// render to a buffer first so a template failure does not leave a half written page
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, p); err != nil {
		log.Errorf("Failed to execute template: %s", err)
		http.Error(w, "Failed to execute template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(sb.String()))
}

// slugify converts a string to an alpha-only lowercase string
func slugify(s string) string {
	reg := regexp.MustCompile("[^a-zA-Z]+")
	return strings.ToLower(reg.ReplaceAllString(s, ""))
}
