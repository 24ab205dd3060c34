// Package constants provides shared constants used across the permly codebase.
// This package has no dependencies to avoid circular imports.
package constants

// Persisted-state targets. These are fixed and deliberately not configurable.
const (
	// FstabPath receives mount entries
	FstabPath = "/etc/fstab"

	// ProfilePath receives exported variables; "~" is expanded at execution time
	ProfilePath = "~/.profile"

	// SysctlConfPath receives kernel parameter assignments
	SysctlConfPath = "/etc/sysctl.d/99-permly.conf"
)

// External programs invoked for --now
const (
	MountBinary  = "mount"
	SysctlBinary = "sysctl"
)

// PreviewPrefix starts every dry-run line
const PreviewPrefix = "sayperm"
