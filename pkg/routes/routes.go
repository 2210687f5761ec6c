// Package routes provides the declarative route table primitives: typed
// route constructors for each HTTP verb, CRUD resource expansion, and
// namespace composition over nested route trees.
//
// A route table is declared as a Tree whose leaves are Route values.
// Namespaces prefix whole subtrees, and pkg/router resolves the finished
// tree into registered framework routes and path helper functions.
package routes

import "strings"

// Method identifies the HTTP method of a route.
type Method string

// Supported HTTP methods.
const (
	MethodGet    Method = "GET"
	MethodHead   Method = "HEAD"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Route declares one HTTP endpoint: a method and URL path backed by a
// named handler function exported by a controller module.
//
// Controller identifies the module that backs the route; it is resolved
// through a controllers.Loader at resolution time. Handler names the
// function the module must export. Alias, when non-empty, is the key under
// which the route's path helper is published; it is a flat hyphenated
// identifier with no leading or trailing hyphen.
type Route struct {
	Method     Method
	Path       string
	Controller string
	Handler    string
	Alias      string
}

// Option configures the optional fields of a route under construction.
type Option func(*Route)

// WithAlias assigns the alias used to look up the route's path helper.
func WithAlias(alias string) Option {
	return func(r *Route) {
		r.Alias = alias
	}
}

// RouteOf constructs a route for the given method. The method is
// normalized to upper case; options that are not supplied leave their
// fields at the zero value rather than a placeholder.
func RouteOf(method Method, path, controller, handler string, opts ...Option) Route {
	route := Route{
		Method:     Method(strings.ToUpper(string(method))),
		Path:       path,
		Controller: controller,
		Handler:    handler,
	}
	for _, opt := range opts {
		opt(&route)
	}
	return route
}

// Get declares a GET route.
func Get(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodGet, path, controller, handler, opts...)
}

// Head declares a HEAD route.
func Head(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodHead, path, controller, handler, opts...)
}

// Post declares a POST route.
func Post(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodPost, path, controller, handler, opts...)
}

// Put declares a PUT route.
func Put(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodPut, path, controller, handler, opts...)
}

// Patch declares a PATCH route.
func Patch(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodPatch, path, controller, handler, opts...)
}

// Delete declares a DELETE route.
func Delete(path, controller, handler string, opts ...Option) Route {
	return RouteOf(MethodDelete, path, controller, handler, opts...)
}
