// Package flock provides cross-platform advisory file locks.
//
// Key generation takes a lock on the key directory so two concurrent
// 'rcli text genkey' runs cannot interleave a key pair.
//
//	release, err := flock.Acquire(filepath.Join(dir, ".rcli.lock"))
//	if err != nil {
//	    // another writer holds the directory
//	}
//	defer release()
package flock
