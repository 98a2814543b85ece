package system

import "go.uber.org/atomic"

// Ref gives reference identity to the type that embeds it.
// Its hash code is assigned on first use and never changes afterwards.
//
//	type Session struct {
//		system.Ref
//		Name string
//	}
//
//	func (s *Session) Equals(o *Session) bool { return s == o }
//
// Ref must not be copied after first use.
type Ref struct {
	hashCode atomic.Int64
}

func (r *Ref) HashCode() int {
	if hc := r.hashCode.Load(); hc != 0 {
		return int(hc)
	}
	r.hashCode.CompareAndSwap(0, int64(UniqueHashCode()))
	return int(r.hashCode.Load())
}
