package routes

import "github.com/jinzhu/inflection"

// Inflector converts resource names between their singular and plural
// forms. Resources uses it to derive the index and show aliases.
type Inflector interface {
	Singular(name string) string
	Plural(name string) string
}

// standardInflector applies standard English inflection rules.
type standardInflector struct{}

func (standardInflector) Singular(name string) string {
	return inflection.Singular(name)
}

func (standardInflector) Plural(name string) string {
	return inflection.Plural(name)
}
