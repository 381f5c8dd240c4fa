// Package web provides infrastructure for serving web pages with Go templates.
// Templates are parsed once at startup and rendered into a buffer so a failed
// render never reaches the client as a partial page.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageDef defines a page with its route, template file, and title.
type PageDef struct {
	Route    string
	Template string
	Title    string
}

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates matching layoutGlob and clones them
// for each page found under pageSubdir. Parse errors are returned immediately so
// a broken template fails startup rather than the first request.
func NewTemplateSet(layoutFS, pageFS fs.FS, layoutGlob, pageSubdir, basePath string, pages []PageDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	pageSub, err := fs.Sub(pageFS, pageSubdir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		if _, err := t.ParseFS(pageSub, p.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p.Template, err)
		}
		pageTemplates[p.Template] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path passed to every page.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler returns an HTTP handler that renders the given page.
// Render failures produce a generic 500 and are reported through onError when non-nil.
func (ts *TemplateSet) PageHandler(layout string, page PageDef, onError func(*http.Request, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Title:    page.Title,
			BasePath: ts.basePath,
		}
		if err := ts.Render(w, layout, page.Template, data); err != nil {
			if onError != nil {
				onError(r, err)
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given page data.
// Output is written with a text/html Content-Type only after execution succeeds.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute template %s: %w", pagePath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
