package routes

// ResourceType identifies one of the canonical CRUD routes emitted by
// Resources.
type ResourceType string

// Canonical resource route types.
const (
	ResourceCreate  ResourceType = "create"
	ResourceDestroy ResourceType = "destroy"
	ResourceIndex   ResourceType = "index"
	ResourceShow    ResourceType = "show"
	ResourceUpdate  ResourceType = "update"
)

var resourceTypes = []ResourceType{
	ResourceCreate,
	ResourceDestroy,
	ResourceIndex,
	ResourceShow,
	ResourceUpdate,
}

type resourceOptions struct {
	only      []ResourceType
	except    []ResourceType
	alias     string
	inflector Inflector
}

// ResourceOption configures Resources.
type ResourceOption func(*resourceOptions)

// Only restricts the emitted routes to the given resource types.
func Only(types ...ResourceType) ResourceOption {
	return func(o *resourceOptions) {
		o.only = types
	}
}

// Except removes the given resource types from the emitted routes. Except
// applies after Only, so a type named by both is removed.
func Except(types ...ResourceType) ResourceOption {
	return func(o *resourceOptions) {
		o.except = types
	}
}

// As overrides the URL path segment for the resource. The override also
// becomes the base of the derived index and show aliases.
func As(alias string) ResourceOption {
	return func(o *resourceOptions) {
		o.alias = alias
	}
}

// WithInflector replaces the standard English inflector used to derive the
// index and show aliases.
func WithInflector(inflector Inflector) ResourceOption {
	return func(o *resourceOptions) {
		o.inflector = inflector
	}
}

// Resources expands a named resource into its canonical CRUD routes:
//
//	create:  POST   name
//	destroy: DELETE name/:id
//	index:   GET    name        (alias: plural form)
//	show:    GET    name/:id    (alias: singular form)
//	update:  PATCH  name/:id
//
// Only index and show carry an alias; create, update, and destroy never
// do, even when As overrides their path segment. The controller identifier
// for every emitted route is the resource name.
func Resources(name string, opts ...ResourceOption) Tree {
	options := resourceOptions{inflector: standardInflector{}}
	for _, opt := range opts {
		opt(&options)
	}

	segment := resourcePath(name, options)
	member := segment + "/:id"

	var tree Tree
	for _, t := range selectResourceTypes(options) {
		switch t {
		case ResourceCreate:
			tree = append(tree, Post(segment, name, "create"))
		case ResourceDestroy:
			tree = append(tree, Delete(member, name, "destroy"))
		case ResourceIndex:
			tree = append(tree, Get(segment, name, "index", WithAlias(options.inflector.Plural(segment))))
		case ResourceShow:
			tree = append(tree, Get(member, name, "show", WithAlias(options.inflector.Singular(segment))))
		case ResourceUpdate:
			tree = append(tree, Patch(member, name, "update"))
		}
	}
	return tree
}

// resourcePath returns the literal URL path segment for the resource: the
// As override when present, the resource name otherwise.
func resourcePath(name string, options resourceOptions) string {
	if options.alias != "" {
		return options.alias
	}
	return name
}

// selectResourceTypes applies the only/except selection in canonical
// order: restrict to the only set when given, then always remove the
// except set.
func selectResourceTypes(options resourceOptions) []ResourceType {
	selected := make([]ResourceType, 0, len(resourceTypes))
	for _, t := range resourceTypes {
		if len(options.only) > 0 && !containsType(options.only, t) {
			continue
		}
		if containsType(options.except, t) {
			continue
		}
		selected = append(selected, t)
	}
	return selected
}

func containsType(types []ResourceType, t ResourceType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
