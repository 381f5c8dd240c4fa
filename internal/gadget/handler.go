// Package gadget serves the embeddable labeling gadget: the form builder page,
// the aggregated stylesheet, and the aggregated application and loader scripts.
package gadget

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/wikilabels-gadget/internal/assets"
	"github.com/JaimeStill/wikilabels-gadget/pkg/handlers"
	"github.com/JaimeStill/wikilabels-gadget/pkg/routes"
	pkgweb "github.com/JaimeStill/wikilabels-gadget/pkg/web"
)

// Asset route paths relative to the mount prefix.
const (
	StylesheetPath  = "/style.css"
	ApplicationPath = "/application.js"
	LoaderPath      = "/loader.js"
)

// Handler binds the gadget endpoints to the asset system and page templates.
type Handler struct {
	assets    assets.System
	templates *pkgweb.TemplateSet
	layout    string
	page      pkgweb.PageDef
	basePath  string
	logger    *slog.Logger
}

// NewHandler creates a gadget handler mounted at basePath. The form page is
// rendered from templates through layout.
func NewHandler(
	sys assets.System,
	templates *pkgweb.TemplateSet,
	layout string,
	page pkgweb.PageDef,
	basePath string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		assets:    sys,
		templates: templates,
		layout:    layout,
		page:      page,
		basePath:  basePath,
		logger:    logger.With("handler", "gadget"),
	}
}

// Routes returns the gadget route group.
func (h *Handler) Routes() routes.Group {
	group := routes.Group{
		Prefix:      h.basePath,
		Description: "Gadget form builder page and aggregated assets",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.templates.PageHandler(h.layout, h.page, h.renderFailed)},
			{Method: "GET", Pattern: StylesheetPath, Handler: h.serve(assets.Stylesheet)},
			{Method: "GET", Pattern: ApplicationPath, Handler: h.serve(assets.Application)},
			{Method: "GET", Pattern: LoaderPath, Handler: h.serve(assets.Loader)},
		},
	}

	// The bare prefix redirects to the index; there is none when mounted at the root.
	if h.basePath != "" {
		group.Routes = append(group.Routes, routes.Route{
			Method:  "GET",
			Pattern: "",
			Handler: h.redirectIndex,
		})
	}

	return group
}

func (h *Handler) redirectIndex(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func (h *Handler) serve(category assets.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := h.assets.Aggregate(r.Context(), category)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusInternalServerError, err, "category", category)
			return
		}

		handlers.RespondText(w, http.StatusOK, category.MediaType(), output)
	}
}

func (h *Handler) renderFailed(r *http.Request, err error) {
	h.logger.Error("page render failed", "template", h.page.Template, "error", err)
}
