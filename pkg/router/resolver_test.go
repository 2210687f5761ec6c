package router_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/localshred/flauta/pkg/controllers"
	"github.com/localshred/flauta/pkg/router"
	"github.com/localshred/flauta/pkg/routes"
)

func noopHandler(w http.ResponseWriter, r *http.Request) {}

// universalLoader resolves every identifier to a module exporting the
// given handler names.
func universalLoader(names ...string) controllers.Loader {
	handlers := controllers.Handlers{}
	for _, name := range names {
		handlers[name] = noopHandler
	}
	return func(controller string) (controllers.Module, error) {
		return controllers.Module{Handlers: handlers}, nil
	}
}

func TestSafeLoad_Valid(t *testing.T) {
	route := routes.Get("users", "users", "index")

	rm := router.SafeLoad(route, universalLoader("index"))

	if !rm.Valid() {
		t.Fatalf("Valid() = false, err = %v", rm.Err)
	}
	if rm.Route != route {
		t.Errorf("Route = %+v, want %+v", rm.Route, route)
	}
}

func TestSafeLoad_LoaderError(t *testing.T) {
	loaderErr := errors.New("no such module")
	loader := func(controller string) (controllers.Module, error) {
		return controllers.Module{}, loaderErr
	}

	rm := router.SafeLoad(routes.Get("users", "users", "index"), loader)

	if rm.Valid() {
		t.Fatal("Valid() = true, want false")
	}
	if !errors.Is(rm.Err, loaderErr) {
		t.Errorf("Err = %v, want %v", rm.Err, loaderErr)
	}
}

func TestSafeLoad_MissingHandler(t *testing.T) {
	rm := router.SafeLoad(routes.Get("users", "users", "index"), universalLoader("show"))

	if rm.Valid() {
		t.Fatal("Valid() = true, want false")
	}
	if !errors.Is(rm.Err, router.ErrMissingHandler) {
		t.Errorf("Err = %v, want ErrMissingHandler", rm.Err)
	}
}

func TestSafeLoad_RecoversPanic(t *testing.T) {
	loader := func(controller string) (controllers.Module, error) {
		panic(fmt.Sprintf("corrupt module: %s", controller))
	}

	rm := router.SafeLoad(routes.Get("users", "users", "index"), loader)

	if rm.Valid() {
		t.Fatal("Valid() = true, want false")
	}
	if rm.Err == nil {
		t.Fatal("Err = nil, want panic captured as error")
	}
}

func TestLoadRoutes_PartitionsPreservingOrder(t *testing.T) {
	loader := func(controller string) (controllers.Module, error) {
		if controller == "broken" {
			return controllers.Module{}, errors.New("load failed")
		}
		return controllers.Module{
			Handlers: controllers.Handlers{"index": noopHandler},
		}, nil
	}

	tree := routes.Tree{
		routes.Get("a", "ok", "index"),
		routes.Tree{
			routes.Get("b", "broken", "index"),
			routes.Get("c", "ok", "index"),
		},
		routes.Get("d", "broken", "index"),
	}

	loaded := router.LoadRoutes(tree, loader)

	if len(loaded.Routes) != 2 {
		t.Fatalf("len(Routes) = %d, want 2", len(loaded.Routes))
	}
	if loaded.Routes[0].Route.Path != "a" || loaded.Routes[1].Route.Path != "c" {
		t.Errorf("Routes order = %q, %q, want a, c",
			loaded.Routes[0].Route.Path, loaded.Routes[1].Route.Path)
	}

	if len(loaded.Invalid) != 2 {
		t.Fatalf("len(Invalid) = %d, want 2", len(loaded.Invalid))
	}
	if loaded.Invalid[0].Route.Path != "b" || loaded.Invalid[1].Route.Path != "d" {
		t.Errorf("Invalid order = %q, %q, want b, d",
			loaded.Invalid[0].Route.Path, loaded.Invalid[1].Route.Path)
	}
}

func TestResolve_EndToEnd(t *testing.T) {
	tree := routes.Tree{
		routes.Namespace(routes.Definition{Path: "api/v1", Controller: "/ctrl"}, routes.Tree{
			routes.Get("/", "home", "root"),
			routes.Resources("users", routes.Only(routes.ResourceIndex, routes.ResourceShow)),
		}),
	}

	resolved := router.Resolve(tree, universalLoader("root", "index", "show"))

	if len(resolved.Invalid) != 0 {
		t.Fatalf("len(Invalid) = %d, want 0", len(resolved.Invalid))
	}
	if len(resolved.Routes) != 3 {
		t.Fatalf("len(Routes) = %d, want 3", len(resolved.Routes))
	}

	usersPath, ok := resolved.Paths["api-v1-users"]
	if !ok {
		t.Fatal("missing path helper api-v1-users")
	}
	if got := usersPath(nil); got != "api/v1/users" {
		t.Errorf("api-v1-users path = %q, want %q", got, "api/v1/users")
	}

	userPath, ok := resolved.Paths["api-v1-user"]
	if !ok {
		t.Fatal("missing path helper api-v1-user")
	}
	if got := userPath(map[string]string{"id": "5"}); got != "api/v1/users/5" {
		t.Errorf("api-v1-user path = %q, want %q", got, "api/v1/users/5")
	}
}

func TestResolve_InvalidRoutesExcludedFromPaths(t *testing.T) {
	loader := func(controller string) (controllers.Module, error) {
		return controllers.Module{}, errors.New("load failed")
	}

	resolved := router.Resolve(routes.Tree{
		routes.Get("users", "users", "index", routes.WithAlias("users")),
	}, loader)

	if len(resolved.Paths) != 0 {
		t.Errorf("len(Paths) = %d, want 0", len(resolved.Paths))
	}
}

func TestResolve_FreshResultPerCall(t *testing.T) {
	tree := routes.Tree{
		routes.Get("users", "users", "index", routes.WithAlias("users")),
	}
	loader := universalLoader("index")

	first := router.Resolve(tree, loader)
	second := router.Resolve(tree, loader)

	first.Routes[0].Route.Path = "mutated"
	if second.Routes[0].Route.Path != "users" {
		t.Error("resolve results share state across calls")
	}
}
