package router

import (
	"strings"

	"github.com/localshred/flauta/pkg/routes"
)

// PathGenerator produces a concrete URL path for one aliased route,
// substituting named :param segments with the supplied values. Params that
// do not appear in the path are ignored; placeholders with no supplied
// value remain literal.
type PathGenerator func(params map[string]string) string

// BuildPathHelpers indexes path generators by route alias. Routes without
// an alias are skipped; when two routes share an alias the later one wins.
func BuildPathHelpers(tuples []RouteModule) map[string]PathGenerator {
	paths := make(map[string]PathGenerator)
	for _, rm := range tuples {
		if rm.Route.Alias == "" {
			continue
		}
		paths[rm.Route.Alias] = PathBuilder(rm.Route)
	}
	return paths
}

// PathBuilder returns the path generator for a single route. With no
// params the generator returns the route's path verbatim, placeholders
// included. Substitution is anchored to whole path segments, so a
// placeholder never matches a longer name sharing its prefix.
func PathBuilder(route routes.Route) PathGenerator {
	return func(params map[string]string) string {
		if len(params) == 0 {
			return route.Path
		}

		segments := strings.Split(route.Path, "/")
		for i, segment := range segments {
			name, ok := paramName(segment)
			if !ok {
				continue
			}
			if value, ok := params[name]; ok {
				segments[i] = value
			}
		}
		return strings.Join(segments, "/")
	}
}

// paramName extracts the placeholder name from a :name path segment. The
// identifier charset is letters, digits, hyphen, and underscore; anything
// else makes the segment literal.
func paramName(segment string) (string, bool) {
	if len(segment) < 2 || segment[0] != ':' {
		return "", false
	}
	name := segment[1:]
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return "", false
		}
	}
	return name, true
}
