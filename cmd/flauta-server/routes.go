package main

import "github.com/localshred/flauta/pkg/routes"

// routePlan declares the server's full route table. Controllers are
// identified by the composed controller path each route resolves to at
// registration time.
func routePlan() routes.Tree {
	return routes.Tree{
		routes.Get("/", "home", "index", routes.WithAlias("home")),
		routes.Get("/status", "status", "show", routes.WithAlias("status")),
		routes.Namespace(routes.Definition{Path: "api/v1", Controller: "api/v1"}, routes.Tree{
			routes.Resources("users"),
		}),
	}
}
