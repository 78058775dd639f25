package main

import (
	slug "github.com/goliatone/go-slug"
)

// slugger turns a tag name into a URL path segment. It is a tiny interface
// so tests can pin slugs without depending on the normalizer's rules.
type slugger interface {
	Normalize(value string) (string, error)
}

func defaultSlugger() slugger {
	return slug.Default()
}
