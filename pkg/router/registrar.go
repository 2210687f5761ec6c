package router

import (
	"log/slog"
	"net/http"

	"github.com/localshred/flauta/pkg/routes"
)

// Registrar is the framework boundary: one registration operation per HTTP
// verb, each accepting a path pattern and a handler function. chi routers
// satisfy this shape through ChiRegistrar.
type Registrar interface {
	Get(pattern string, h http.HandlerFunc)
	Head(pattern string, h http.HandlerFunc)
	Post(pattern string, h http.HandlerFunc)
	Put(pattern string, h http.HandlerFunc)
	Patch(pattern string, h http.HandlerFunc)
	Delete(pattern string, h http.HandlerFunc)
}

// RegisterRoute registers one resolved route with the framework and
// returns the tuple unchanged. When the module no longer resolves the
// declared handler the route is skipped with a warning; other routes are
// unaffected.
func RegisterRoute(reg Registrar, rm RouteModule, logger *slog.Logger) RouteModule {
	handler, ok := rm.Module.Resolve(rm.Route.Handler)
	if !ok {
		logger.Warn("handler not found, skipping route",
			"path", rm.Route.Path,
			"handler", rm.Route.Handler,
			"controller", rm.Route.Controller,
		)
		return rm
	}

	switch rm.Route.Method {
	case routes.MethodGet:
		reg.Get(rm.Route.Path, handler)
	case routes.MethodHead:
		reg.Head(rm.Route.Path, handler)
	case routes.MethodPost:
		reg.Post(rm.Route.Path, handler)
	case routes.MethodPut:
		reg.Put(rm.Route.Path, handler)
	case routes.MethodPatch:
		reg.Patch(rm.Route.Path, handler)
	case routes.MethodDelete:
		reg.Delete(rm.Route.Path, handler)
	default:
		logger.Warn("unsupported method, skipping route",
			"method", string(rm.Route.Method),
			"path", rm.Route.Path,
		)
	}
	return rm
}

// Register registers every valid route with the framework and returns the
// resolved router unchanged.
func Register(reg Registrar, resolved Resolved, logger *slog.Logger) Resolved {
	for _, rm := range resolved.Routes {
		RegisterRoute(reg, rm, logger)
	}
	return resolved
}
