package collections_test

import (
	"strings"

	"go.llib.dev/bcl/pkg/system"
)

// caseless keys are distinct values that share their String form when they differ only in case.
type caseless string

func (c caseless) Equals(o caseless) bool { return c == o }

func (c caseless) HashCode() int { return system.StringHashCode(c.String()) }

func (c caseless) String() string { return strings.ToLower(string(c)) }

// handle is a reference key; a nil *handle is an absent key.
type handle struct {
	system.Ref
	Name string
}

func (h *handle) Equals(o *handle) bool { return h == o }

func (h *handle) String() string {
	if h == nil {
		return "<nil>"
	}
	return h.Name
}

// box dereferences its receiver in Equals, so calling it on a nil *box panics.
type box struct{ N int }

func (b *box) Equals(o *box) bool { return b.N == o.N }
