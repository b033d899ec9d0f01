//go:build !unix

package wordlist

import "os"

// Advisory locks are only taken on unix platforms.
func lockFile(*os.File) error {
	return nil
}

func unlockFile(*os.File) error {
	return nil
}

func isLockHeld(error) bool {
	return false
}
