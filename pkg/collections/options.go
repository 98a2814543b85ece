package collections

import "go.llib.dev/bcl/pkg/system"

type Option[K any] func(*config[K])

type config[K any] struct {
	Comparer system.EqualityComparer[K]
}

// WithComparer replaces the key equality of a Dictionary or Hashtable.
// Both take their storage slot from the comparer's HashCode as well,
// so keys the comparer finds equal always meet in the same slot.
func WithComparer[K any](c system.EqualityComparer[K]) Option[K] {
	return func(cfg *config[K]) { cfg.Comparer = c }
}

// toConfig leaves Comparer nil when no option set it.
func toConfig[K system.Object[K]](opts []Option[K]) config[K] {
	var c config[K]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
