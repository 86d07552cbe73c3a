//go:build !windows

package cli

// EnableANSI is a no-op outside Windows; ANSI is on by default.
func EnableANSI() {}
