package main

import (
	"fmt"

	"github.com/gofrs/flock"
)

// acquireLock makes sure only one instance publishes on this host. An empty
// path disables the lock.
func acquireLock(path string) (*flock.Flock, error) {
	if len(path) == 0 {
		return nil, nil
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed acquiring lock %s: %w", path, err)
	} else if !locked {
		return nil, fmt.Errorf("another instance is already running (lock %s is held)", path)
	}

	return lock, nil
}

func releaseLock(lock *flock.Flock) error {
	if lock == nil {
		return nil
	}

	return lock.Unlock()
}
