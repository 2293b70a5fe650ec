package concurrency

import (
	"path/filepath"
	"sync"
)

// LockManager hands out one read/write lock per storage directory so every store
// opened on the same directory in this process shares it.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// Directories is the process-wide manager used by storage
var Directories = NewLockManager()

// GetLock returns the lock for dir. Paths are cleaned and made absolute when possible
// so "data/" and "./data" resolve to the same lock.
func (lm *LockManager) GetLock(dir string) *sync.RWMutex {
	key := filepath.Clean(dir)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	lock, _ := lm.locks.LoadOrStore(key, &sync.RWMutex{})
	return lock.(*sync.RWMutex)
}
