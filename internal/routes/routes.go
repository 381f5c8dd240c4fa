// Package routes provides HTTP route registration and handler building.
package routes

import (
	"log/slog"
	"net/http"

	pkgroutes "github.com/JaimeStill/wikilabels-gadget/pkg/routes"
)

type routes struct {
	routes   []pkgroutes.Route
	groups   []pkgroutes.Group
	handlers map[string]http.Handler
	logger   *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger:   logger.With("system", "routes"),
		groups:   []pkgroutes.Group{},
		routes:   []pkgroutes.Route{},
		handlers: map[string]http.Handler{},
	}
}

func (r *routes) Groups() []pkgroutes.Group {
	return r.groups
}

func (r *routes) Routes() []pkgroutes.Route {
	return r.routes
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Handle registers a plain http.Handler under a full ServeMux pattern.
func (r *routes) Handle(pattern string, handler http.Handler) {
	r.handlers[pattern] = handler
}

// Build constructs an http.Handler from all registered routes and groups.
func (r *routes) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range r.routes {
		r.register(mux, route.Method+" "+route.Pattern, route.Handler)
	}

	for _, group := range r.groups {
		r.registerGroup(mux, "", group)
	}

	for pattern, handler := range r.handlers {
		r.logger.Debug("route registered", "pattern", pattern)
		mux.Handle(pattern, handler)
	}

	return mux
}

func (r *routes) registerGroup(mux *http.ServeMux, parentPrefix string, group pkgroutes.Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		r.register(mux, route.Method+" "+fullPrefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		r.registerGroup(mux, fullPrefix, child)
	}
}

func (r *routes) register(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	r.logger.Debug("route registered", "pattern", pattern)
	mux.HandleFunc(pattern, handler)
}
