// Package web renders the operator pages: upload forms and flow reports.
package web

import (
	"embed"

	"github.com/getzep/annotext/internal"
)

var log = internal.GetLogger()

//go:embed templates/*
var TemplatesFS embed.FS

var LayoutTemplates = []string{
	"templates/layout.html",
	"templates/components/nav.html",
}

type MenuItem struct {
	Name string
	URL  string
}

var menuItems = []MenuItem{
	{Name: "Annotate", URL: "/annotate"},
	{Name: "Vectorize", URL: "/vectorize"},
}
