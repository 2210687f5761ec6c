package routes_test

import (
	"testing"

	"github.com/localshred/flauta/pkg/routes"
)

func TestResources_CanonicalSet(t *testing.T) {
	flat := routes.Flatten(routes.Resources("users"))

	if len(flat) != 5 {
		t.Fatalf("len(routes) = %d, want 5", len(flat))
	}

	byHandler := map[string]routes.Route{}
	for _, route := range flat {
		byHandler[route.Handler] = route
	}

	tests := []struct {
		handler string
		method  routes.Method
		path    string
		alias   string
	}{
		{"create", routes.MethodPost, "users", ""},
		{"destroy", routes.MethodDelete, "users/:id", ""},
		{"index", routes.MethodGet, "users", "users"},
		{"show", routes.MethodGet, "users/:id", "user"},
		{"update", routes.MethodPatch, "users/:id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.handler, func(t *testing.T) {
			route, ok := byHandler[tt.handler]
			if !ok {
				t.Fatalf("missing %s route", tt.handler)
			}
			if route.Method != tt.method {
				t.Errorf("Method = %q, want %q", route.Method, tt.method)
			}
			if route.Path != tt.path {
				t.Errorf("Path = %q, want %q", route.Path, tt.path)
			}
			if route.Alias != tt.alias {
				t.Errorf("Alias = %q, want %q", route.Alias, tt.alias)
			}
			if route.Controller != "users" {
				t.Errorf("Controller = %q, want %q", route.Controller, "users")
			}
		})
	}
}

func TestResources_OnlyAndExcept(t *testing.T) {
	tests := []struct {
		name string
		opts []routes.ResourceOption
		want []string
	}{
		{
			name: "only",
			opts: []routes.ResourceOption{routes.Only(routes.ResourceIndex, routes.ResourceShow)},
			want: []string{"index", "show"},
		},
		{
			name: "except",
			opts: []routes.ResourceOption{routes.Except(routes.ResourceDestroy)},
			want: []string{"create", "index", "show", "update"},
		},
		{
			name: "except removes from only",
			opts: []routes.ResourceOption{
				routes.Only(routes.ResourceShow, routes.ResourceDestroy),
				routes.Except(routes.ResourceDestroy),
			},
			want: []string{"show"},
		},
		{
			name: "only and except cancel out",
			opts: []routes.ResourceOption{
				routes.Only(routes.ResourceDestroy),
				routes.Except(routes.ResourceDestroy),
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := routes.Flatten(routes.Resources("users", tt.opts...))

			handlers := make([]string, 0, len(flat))
			for _, route := range flat {
				handlers = append(handlers, route.Handler)
			}

			if len(handlers) != len(tt.want) {
				t.Fatalf("handlers = %v, want %v", handlers, tt.want)
			}
			for i, handler := range handlers {
				if handler != tt.want[i] {
					t.Errorf("handlers[%d] = %q, want %q", i, handler, tt.want[i])
				}
			}
		})
	}
}

func TestResources_AsOverride(t *testing.T) {
	flat := routes.Flatten(routes.Resources("users", routes.As("people")))

	for _, route := range flat {
		switch route.Handler {
		case "index":
			if route.Path != "people" {
				t.Errorf("index Path = %q, want %q", route.Path, "people")
			}
			if route.Alias != "people" {
				t.Errorf("index Alias = %q, want %q", route.Alias, "people")
			}
		case "show":
			if route.Path != "people/:id" {
				t.Errorf("show Path = %q, want %q", route.Path, "people/:id")
			}
			if route.Alias != "person" {
				t.Errorf("show Alias = %q, want %q", route.Alias, "person")
			}
		case "create":
			if route.Path != "people" {
				t.Errorf("create Path = %q, want %q", route.Path, "people")
			}
			if route.Alias != "" {
				t.Errorf("create Alias = %q, want empty", route.Alias)
			}
		case "destroy", "update":
			if route.Path != "people/:id" {
				t.Errorf("%s Path = %q, want %q", route.Handler, route.Path, "people/:id")
			}
			if route.Alias != "" {
				t.Errorf("%s Alias = %q, want empty", route.Handler, route.Alias)
			}
		}
	}
}

type staticInflector struct{}

func (staticInflector) Singular(name string) string { return name + "-one" }
func (staticInflector) Plural(name string) string   { return name + "-many" }

func TestResources_WithInflector(t *testing.T) {
	flat := routes.Flatten(routes.Resources("data",
		routes.Only(routes.ResourceIndex, routes.ResourceShow),
		routes.WithInflector(staticInflector{}),
	))

	for _, route := range flat {
		switch route.Handler {
		case "index":
			if route.Alias != "data-many" {
				t.Errorf("index Alias = %q, want %q", route.Alias, "data-many")
			}
		case "show":
			if route.Alias != "data-one" {
				t.Errorf("show Alias = %q, want %q", route.Alias, "data-one")
			}
		}
	}
}
