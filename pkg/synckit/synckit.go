// Package synckit holds per-key locking primitives.
package synckit

import (
	"sync"
	"sync/atomic"
)

// KeyedLocks hands out a read-write lock per key.
// Entries live only while someone holds or waits on them,
// so the key space can be unbounded, such as object hash codes.
//
// The zero value is ready to use.
type KeyedLocks[K comparable] struct {
	m     sync.Mutex
	locks map[K]*keyedLock
}

type keyedLock struct {
	sync.RWMutex
	users int64
}

// Lock acquires the write lock of the key and returns its release function.
func (kl *KeyedLocks[K]) Lock(key K) (unlock func()) {
	l := kl.acquire(key)
	l.Lock()
	return func() {
		l.Unlock()
		kl.release(key, l)
	}
}

// RLock acquires the read lock of the key and returns its release function.
func (kl *KeyedLocks[K]) RLock(key K) (runlock func()) {
	l := kl.acquire(key)
	l.RLock()
	return func() {
		l.RUnlock()
		kl.release(key, l)
	}
}

// Locker returns a sync.Locker bound to the key's write lock.
func (kl *KeyedLocks[K]) Locker(key K) sync.Locker {
	return &locker[K]{locks: kl, key: key}
}

// Len tells how many keys have an active lock entry.
func (kl *KeyedLocks[K]) Len() int {
	kl.m.Lock()
	defer kl.m.Unlock()
	return len(kl.locks)
}

func (kl *KeyedLocks[K]) acquire(key K) *keyedLock {
	kl.m.Lock()
	defer kl.m.Unlock()
	if kl.locks == nil {
		kl.locks = make(map[K]*keyedLock)
	}
	l, ok := kl.locks[key]
	if !ok {
		l = &keyedLock{}
		kl.locks[key] = l
	}
	atomic.AddInt64(&l.users, 1)
	return l
}

func (kl *KeyedLocks[K]) release(key K, l *keyedLock) {
	kl.m.Lock()
	defer kl.m.Unlock()
	if atomic.AddInt64(&l.users, -1) != 0 {
		return
	}
	if kl.locks[key] == l {
		delete(kl.locks, key)
	}
}

type locker[K comparable] struct {
	locks  *KeyedLocks[K]
	key    K
	unlock func()
}

func (l *locker[K]) Lock() {
	l.unlock = l.locks.Lock(l.key)
}

func (l *locker[K]) Unlock() {
	if l.unlock == nil {
		panic("synckit: unlock of unlocked mutex")
	}
	unlock := l.unlock
	l.unlock = nil
	unlock()
}
