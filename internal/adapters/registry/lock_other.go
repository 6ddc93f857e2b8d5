//go:build !unix && !windows

package registry

import "os"

// tryLockFile always succeeds on platforms without advisory locks
func tryLockFile(file *os.File) (bool, error) {
	return true, nil
}

func unlockFile(file *os.File) error {
	return nil
}
