// Package web embeds the gadget's server-rendered templates.
// Templates are compiled into the binary; the aggregated CSS and JS are read from
// the static root at runtime.
package web

import (
	"embed"

	pkgweb "github.com/JaimeStill/wikilabels-gadget/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/pages/*
var pageFS embed.FS

// Layout is the outer template every page renders through.
const Layout = "gadget.html"

// FormPage is the gadget form builder served at the mount root.
var FormPage = pkgweb.PageDef{
	Route:    "/{$}",
	Template: "form.html",
	Title:    "Wiki labels form builder",
}

var pages = []pkgweb.PageDef{FormPage}

// NewTemplateSet parses the embedded templates for pages mounted at basePath.
func NewTemplateSet(basePath string) (*pkgweb.TemplateSet, error) {
	return pkgweb.NewTemplateSet(
		layoutFS,
		pageFS,
		"server/layouts/*.html",
		"server/pages",
		basePath,
		pages,
	)
}
