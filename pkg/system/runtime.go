package system

import (
	"context"

	"go.llib.dev/bcl/pkg/logger"
	"go.llib.dev/bcl/pkg/synckit"
	"go.llib.dev/testcase/clock"
)

// Using runs fn with obj and disposes obj afterwards, even when fn panics.
func Using[T Disposable](obj T, fn func(T) error) error {
	defer obj.Dispose()
	return fn(obj)
}

var identityLocks synckit.KeyedLocks[int]

// Lock runs fn while holding the exclusive lock of obj's hash code.
// Callbacks locked on the same hash code never run at the same time;
// different hash codes don't block each other.
func Lock(obj Hashable, fn func()) {
	defer acquire(obj.HashCode(), identityLocks.Lock)()
	fn()
}

// RLock runs fn while holding the shared lock of obj's hash code.
// RLock callbacks may overlap with each other, but not with Lock callbacks of the same hash code.
func RLock(obj Hashable, fn func()) {
	defer acquire(obj.HashCode(), identityLocks.RLock)()
	fn()
}

func acquire(hashCode int, lock func(int) func()) (unlock func()) {
	start := clock.Now()
	unlock = lock(hashCode)
	if logger.Default.IsEnabled(logger.LevelDebug) {
		logger.Debug(context.Background(), "identity lock acquired",
			logger.Field("hash_code", hashCode),
			logger.Field("wait", clock.Now().Sub(start).String()))
	}
	return unlock
}
