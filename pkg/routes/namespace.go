package routes

import "strings"

// Definition prefixes a group of routes with a shared URL path, controller
// location, and alias root. It is consumed during composition and not
// retained afterward.
type Definition struct {
	Controller string
	Path       string
	Alias      string
}

// Namespace applies the definition to every route in the tree, recursing
// through nested trees. Nested namespaces compose by repeated prefixing,
// so application order between levels does not matter.
func Namespace(def Definition, tree Tree) Tree {
	composed := make(Tree, 0, len(tree))
	for _, n := range tree {
		switch v := n.(type) {
		case Route:
			composed = append(composed, ApplyNamespace(def, v))
		case Tree:
			composed = append(composed, Namespace(def, v))
		}
	}
	return composed
}

// ApplyNamespace prefixes a single route with the namespace definition.
// The route's controller and path are joined under the definition's; when
// the route carries an alias it is rewritten as the slugified join of the
// definition's alias (or path, when no alias is set) and the route's own.
// Routes without an alias never gain one. No path validation is performed.
func ApplyNamespace(def Definition, route Route) Route {
	route.Controller = joinSegments(def.Controller, route.Controller)
	route.Path = joinSegments(def.Path, route.Path)

	if route.Alias != "" {
		base := def.Alias
		if base == "" {
			base = def.Path
		}
		route.Alias = slugify(joinSegments(base, route.Alias))
	}
	return route
}

// joinSegments joins two slash-delimited fragments into one, eliding empty
// segments so no doubled slashes appear. An absolute first fragment keeps
// the result absolute.
func joinSegments(a, b string) string {
	var segments []string
	for _, fragment := range [2]string{a, b} {
		for _, segment := range strings.Split(fragment, "/") {
			if segment != "" {
				segments = append(segments, segment)
			}
		}
	}

	joined := strings.Join(segments, "/")
	lead := a
	if lead == "" {
		lead = b
	}
	if strings.HasPrefix(lead, "/") {
		return "/" + joined
	}
	return joined
}

// slugify flattens a joined alias into a key: slashes become hyphens, and
// one leading and trailing hyphen are stripped.
func slugify(alias string) string {
	slug := strings.ReplaceAll(alias, "/", "-")
	slug = strings.TrimPrefix(slug, "-")
	slug = strings.TrimSuffix(slug, "-")
	return slug
}
