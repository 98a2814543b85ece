package collections

import "go.llib.dev/bcl/pkg/errorkit"

const (
	// ErrNullArgument is returned when a required argument is nil.
	ErrNullArgument errorkit.Error = "argument is nil"

	// ErrOutOfRange is returned when a numeric argument is outside of its valid domain.
	ErrOutOfRange errorkit.Error = "argument is out of range"

	// ErrArgument is returned when an argument is present and in range but still unusable,
	// such as a copy destination too short to hold the collection.
	ErrArgument errorkit.Error = "invalid argument"

	ErrNotSupported errorkit.Error = "operation is not supported"
	ErrDuplicateKey errorkit.Error = "an item with the same key has already been added"
	ErrKeyNotFound  errorkit.Error = "the given key was not present"
	ErrInvalidState errorkit.Error = "collection was modified; enumeration operation may not execute"
	ErrKeyCollision errorkit.Error = "an unequal key with the same projection is already present"
)

func checkCopyTo[T any](dst []T, index, count int) error {
	if dst == nil {
		return ErrNullArgument.F("destination is nil")
	}
	if index < 0 {
		return ErrOutOfRange.F("index %d is negative", index)
	}
	if len(dst)-index < count {
		return ErrArgument.F("destination has room for %d items from index %d, but %d are needed",
			max(len(dst)-index, 0), index, count)
	}
	return nil
}
