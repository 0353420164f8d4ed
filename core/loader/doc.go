// Package loader provides the feature loading system of the HTTP surface.
//
// Each sync engine is exposed as a Feature that registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry. Register adds a feature; LoadAll loads every
// enabled one in registration order and fails fast on the first error.
package loader
