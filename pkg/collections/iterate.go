package collections

import "iter"

// ForEach calls fn with each item of src in enumeration order,
// and stops at the first call that reports a present result.
// It returns that result, or the zero value and false when no call produced one.
func ForEach[T, R any](src Enumerable[T], fn func(T) (R, bool)) (R, bool, error) {
	var zero R
	e := src.GetEnumerator()
	defer e.Dispose()
	for e.MoveNext() {
		if r, ok := fn(e.Current()); ok {
			return r, true, nil
		}
	}
	return zero, false, e.Err()
}

// Collect drains a new enumerator of src into a slice.
func Collect[T any](src Enumerable[T]) ([]T, error) {
	e := src.GetEnumerator()
	defer e.Dispose()
	var vs []T
	for e.MoveNext() {
		vs = append(vs, e.Current())
	}
	return vs, e.Err()
}

// Iter adapts src to a range-over-func sequence.
// When the enumeration fails, the error is yielded once, as the last element.
//
//	for v, err := range collections.Iter[system.String](list.Keys()) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(v)
//	}
func Iter[T any](src Enumerable[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		e := src.GetEnumerator()
		defer e.Dispose()
		for e.MoveNext() {
			if !yield(e.Current(), nil) {
				return
			}
		}
		if err := e.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
