package main

import (
	"os"
	"path/filepath"
)

// RuntimeDir returns the directory where runtime files such as the instance
// lock live. root uses /run, other users $XDG_RUNTIME_DIR when it is set as
// specified by https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html.
func RuntimeDir() string {
	if os.Geteuid() == 0 {
		return "/run"
	}

	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}

	return os.TempDir()
}

func defaultLockFile() string {
	return filepath.Join(RuntimeDir(), "docker-mdns.lock")
}
