// Package paths provides centralized path handling for permly.
//
// It covers three concerns:
//   - expanding "~/" in persisted-state targets
//   - canonicalizing user supplied paths (absolute, symlinks resolved), as
//     the mount subcommand requires for fstab entries
//   - locating permly's own files (settings, log) under the XDG base
//     directories, via github.com/adrg/xdg
package paths
