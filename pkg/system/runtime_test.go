package system_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.llib.dev/bcl/pkg/logger"
	"go.llib.dev/bcl/pkg/system"
)

type disposable struct{ disposed int }

func (d *disposable) Dispose() { d.disposed++ }

func TestUsing(t *testing.T) {
	t.Run("disposes after the callback", func(t *testing.T) {
		d := &disposable{}
		err := system.Using(d, func(d *disposable) error {
			require.Equal(t, 0, d.disposed)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, d.disposed)
	})
	t.Run("returns the callback error and still disposes", func(t *testing.T) {
		d := &disposable{}
		expErr := errors.New("boom")
		err := system.Using(d, func(*disposable) error { return expErr })
		require.ErrorIs(t, err, expErr)
		require.Equal(t, 1, d.disposed)
	})
	t.Run("disposes when the callback panics", func(t *testing.T) {
		d := &disposable{}
		require.Panics(t, func() {
			_ = system.Using(d, func(*disposable) error { panic("boom") })
		})
		require.Equal(t, 1, d.disposed)
	})
}

func TestLock(t *testing.T) {
	var (
		obj     = system.String("shared")
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		overlap bool
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			system.Lock(obj, func() {
				mu.Lock()
				active++
				overlap = overlap || 1 < active
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				active--
				mu.Unlock()
			})
		}()
	}
	wg.Wait()
	require.False(t, overlap)
}

func TestRLock_logsAcquisitionOnDebug(t *testing.T) {
	out := logger.Stub(t)
	var called bool
	system.RLock(system.Int32(42), func() { called = true })
	require.True(t, called)
	require.Contains(t, out.String(), `"message":"identity lock acquired"`)
	require.Contains(t, out.String(), `"hash_code":42`)
}
