package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ChiRegistrar adapts a chi router to the Registrar interface. Declared
// paths use :param placeholders and may be unrooted; the adapter rewrites
// them to chi's rooted {param} patterns at registration time.
type ChiRegistrar struct {
	router chi.Router
}

// NewChiRegistrar wraps a chi router for route registration.
func NewChiRegistrar(r chi.Router) ChiRegistrar {
	return ChiRegistrar{router: r}
}

func (c ChiRegistrar) Get(pattern string, h http.HandlerFunc) {
	c.router.Get(chiPattern(pattern), h)
}

func (c ChiRegistrar) Head(pattern string, h http.HandlerFunc) {
	c.router.Head(chiPattern(pattern), h)
}

func (c ChiRegistrar) Post(pattern string, h http.HandlerFunc) {
	c.router.Post(chiPattern(pattern), h)
}

func (c ChiRegistrar) Put(pattern string, h http.HandlerFunc) {
	c.router.Put(chiPattern(pattern), h)
}

func (c ChiRegistrar) Patch(pattern string, h http.HandlerFunc) {
	c.router.Patch(chiPattern(pattern), h)
}

func (c ChiRegistrar) Delete(pattern string, h http.HandlerFunc) {
	c.router.Delete(chiPattern(pattern), h)
}

// chiPattern roots the path and converts :param segments to {param}.
func chiPattern(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if name, ok := paramName(segment); ok {
			segments[i] = "{" + name + "}"
		}
	}

	pattern := strings.Join(segments, "/")
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	return pattern
}
