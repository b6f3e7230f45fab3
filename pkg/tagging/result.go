package tagging

// Result is one validated classification: all three fields are non-empty and
// vocabulary-valid by the time a Result leaves this package.
type Result struct {
	Tags      []string
	Traits    []string
	AgeRating string
}
