package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/wikilabels-gadget/pkg/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": {Data: []byte(
			`{{ define "base.html" }}<!DOCTYPE html><title>{{ .Title }}</title>{{ block "content" . }}{{ end }}{{ end }}`,
		)},
		"pages/form.html": {Data: []byte(
			`{{ define "content" }}<link href="{{ .BasePath }}/style.css">{{ end }}`,
		)},
		"pages/broken.html": {Data: []byte(
			`{{ define "content" }}{{ .Missing.Field }}{{ end }}`,
		)},
	}
}

var testPages = []web.PageDef{
	{Route: "/", Template: "form.html", Title: "Form"},
	{Template: "broken.html", Title: "Broken"},
}

func TestNewTemplateSet(t *testing.T) {
	fsys := testFS()
	ts, err := web.NewTemplateSet(fsys, fsys, "layouts/*.html", "pages", "/gadget", testPages)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	if ts.BasePath() != "/gadget" {
		t.Errorf("BasePath() = %q, want %q", ts.BasePath(), "/gadget")
	}
}

func TestNewTemplateSet_MissingPage(t *testing.T) {
	fsys := testFS()
	pages := []web.PageDef{{Template: "nope.html"}}

	if _, err := web.NewTemplateSet(fsys, fsys, "layouts/*.html", "pages", "", pages); err == nil {
		t.Error("NewTemplateSet() error = nil for missing page")
	}
}

func TestPageHandler(t *testing.T) {
	fsys := testFS()
	ts, err := web.NewTemplateSet(fsys, fsys, "layouts/*.html", "pages", "/gadget", testPages)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}

	w := httptest.NewRecorder()
	ts.PageHandler("base.html", testPages[0], nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/html; charset=utf-8")
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `href="/gadget/style.css"`) {
		t.Errorf("body = %q, want base path in asset link", body)
	}
}

func TestPageHandler_RenderError(t *testing.T) {
	fsys := testFS()
	ts, err := web.NewTemplateSet(fsys, fsys, "layouts/*.html", "pages", "", testPages)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}

	var reported error
	handler := ts.PageHandler("base.html", testPages[1], func(r *http.Request, err error) {
		reported = err
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "<!DOCTYPE html>") {
		t.Error("partial page written on render failure")
	}
	if reported == nil {
		t.Error("onError was not called")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	fsys := testFS()
	ts, _ := web.NewTemplateSet(fsys, fsys, "layouts/*.html", "pages", "", testPages)

	err := ts.Render(httptest.NewRecorder(), "base.html", "missing.html", web.PageData{})
	if err == nil || !strings.Contains(err.Error(), "template not found") {
		t.Errorf("Render() error = %v, want template not found", err)
	}
}
