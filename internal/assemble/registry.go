package assemble

import (
	"fmt"
	"sort"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// Builder constructs an Assembler for one puzzle kind from shared options.
// Registered builders may pin or adjust option fields before delegating to
// New.
type Builder func(opts Options) *Assembler

// Registry maps puzzle kind names to builders. It replaces implicit global
// registration: callers construct a Registry at startup (usually via
// Default), optionally extend it, and inject it into whatever dispatches
// on kind names. No shared mutable state exists outside the value itself.
type Registry struct {
	builders map[model.Kind]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[model.Kind]Builder)}
}

// Register adds a builder for a kind. Registering the same kind twice is
// rejected — silent replacement would hide wiring mistakes at startup.
func (r *Registry) Register(kind model.Kind, b Builder) error {
	if !kind.IsValid() {
		return fmt.Errorf("cannot register unknown puzzle kind %q", string(kind))
	}
	if _, exists := r.builders[kind]; exists {
		return fmt.Errorf("puzzle kind %q already registered", kind)
	}
	r.builders[kind] = b
	return nil
}

// Lookup returns the builder for a kind, or an error naming the kinds the
// registry does hold.
func (r *Registry) Lookup(kind model.Kind) (Builder, error) {
	b, ok := r.builders[kind]
	if !ok {
		return nil, model.InvalidInputf("no generator registered for puzzle kind %q (registered: %v)",
			string(kind), r.Kinds())
	}
	return b, nil
}

// Kinds returns the registered kind names in sorted order.
func (r *Registry) Kinds() []model.Kind {
	kinds := make([]model.Kind, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Default builds a fresh registry with both built-in puzzle kinds. Each
// call returns a new value; callers own what they get.
func Default() *Registry {
	r := NewRegistry()
	// The built-in kinds are valid and distinct, so registration cannot fail.
	_ = r.Register(model.KindWordSearch, New)
	_ = r.Register(model.KindCrossword, New)
	return r
}
