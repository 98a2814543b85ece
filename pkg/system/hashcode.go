package system

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/atomic"
)

// StringHashCode is the hash code of a text.
// It is stable for the lifetime of the process, but not across versions of this package.
func StringHashCode(s string) int {
	return int(xxhash.Sum64String(s))
}

var uniqueHashCodes atomic.Int64

// UniqueHashCode returns a hash code that no earlier call returned in this process.
func UniqueHashCode() int {
	return int(uniqueHashCodes.Inc())
}
