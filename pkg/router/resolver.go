// Package router resolves a declared route tree into registered framework
// routes and reusable path helper functions.
//
// Resolution flattens the tree, loads each route's controller module
// through an injected controllers.Loader, partitions the results into
// valid and invalid routes, and builds one path generator per aliased
// route. Failures local to a single route are captured as data on that
// route's tuple and never abort resolution of its siblings.
package router

import (
	"errors"
	"fmt"

	"github.com/localshred/flauta/pkg/controllers"
	"github.com/localshred/flauta/pkg/routes"
)

// ErrMissingHandler reports a controller module that loaded but does not
// export the route's declared handler function.
var ErrMissingHandler = errors.New("controller module missing handler function")

// RouteModule pairs a route with the outcome of loading its controller
// module. It is created once per route during resolution and never
// mutated afterward.
type RouteModule struct {
	Route  routes.Route
	Module controllers.Module
	Err    error
}

// Valid reports whether the controller module loaded and exports the
// declared handler.
func (rm RouteModule) Valid() bool {
	return rm.Err == nil
}

// SafeLoad resolves the route's controller module, capturing any failure
// as data on the returned tuple. Loader errors and panics are converted at
// this single chokepoint; nothing escapes to the caller.
func SafeLoad(route routes.Route, loader controllers.Loader) (rm RouteModule) {
	rm = RouteModule{Route: route}
	defer func() {
		if r := recover(); r != nil {
			rm = RouteModule{
				Route: route,
				Err:   fmt.Errorf("load %s: %v", route.Controller, r),
			}
		}
	}()

	m, err := loader(route.Controller)
	if err != nil {
		rm.Err = err
		return rm
	}

	rm.Module = m
	if _, ok := m.Resolve(route.Handler); !ok {
		rm.Err = fmt.Errorf("%w: %s", ErrMissingHandler, route.Handler)
	}
	return rm
}

// Loaded is the partition of a flattened route tree into routes whose
// controller modules resolved and routes whose load failed.
type Loaded struct {
	Routes  []RouteModule
	Invalid []RouteModule
}

// LoadRoutes flattens the tree, loads each route's controller module
// exactly once, and partitions the results. Relative order from the
// flattened tree is preserved within each partition.
func LoadRoutes(tree routes.Tree, loader controllers.Loader) Loaded {
	var loaded Loaded
	for _, route := range routes.Flatten(tree) {
		rm := SafeLoad(route, loader)
		if rm.Valid() {
			loaded.Routes = append(loaded.Routes, rm)
		} else {
			loaded.Invalid = append(loaded.Invalid, rm)
		}
	}
	return loaded
}

// Resolved is the outcome of resolving a route tree: the valid and invalid
// route partitions plus one path generator per aliased valid route.
type Resolved struct {
	Routes  []RouteModule
	Invalid []RouteModule
	Paths   map[string]PathGenerator
}

// Resolve loads the route tree and builds its path helpers. Every call
// recomputes from scratch; nothing is cached or shared between calls.
func Resolve(tree routes.Tree, loader controllers.Loader) Resolved {
	loaded := LoadRoutes(tree, loader)
	return Resolved{
		Routes:  loaded.Routes,
		Invalid: loaded.Invalid,
		Paths:   BuildPathHelpers(loaded.Routes),
	}
}
