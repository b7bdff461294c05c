package utils

import (
	"sync"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// KeyedLock memberi mutual exclusion per key (dipakai untuk serialisasi
// transisi per-order). Entry dilepas lagi saat tidak ada yang menunggu.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[uint]*lockEntry
}

func NewKeyedLock() *KeyedLock {
	return &KeyedLock{
		locks: make(map[uint]*lockEntry),
	}
}

func (kl *KeyedLock) Lock(key uint) {
	kl.mu.Lock()
	entry, ok := kl.locks[key]
	if !ok {
		entry = &lockEntry{}
		kl.locks[key] = entry
	}
	entry.refs++
	kl.mu.Unlock()

	entry.mu.Lock()
}

func (kl *KeyedLock) Unlock(key uint) {
	kl.mu.Lock()
	entry, ok := kl.locks[key]
	if !ok {
		kl.mu.Unlock()
		panic("utils: unlock of unlocked key")
	}
	entry.refs--
	if entry.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()

	entry.mu.Unlock()
}
