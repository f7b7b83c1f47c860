// Package assemble orchestrates puzzle generation: it validates caller
// input, runs the kind-specific placer, applies the retry policy when too
// few words fit, and freezes the outcome into a model.Puzzle.
//
// The package also provides the Registry, the explicit
// name-to-builder mapping through which callers select puzzle kinds. The
// registry is a plain value constructed and injected at startup — there is
// no package-level mutable registration, so two callers can hold registries
// with different contents without affecting each other.
package assemble
