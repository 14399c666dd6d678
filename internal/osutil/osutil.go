// Package osutil holds operating system constants shared across plus
package osutil

const Windows = "windows"

// ExitCode is the status plus exits with.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)
