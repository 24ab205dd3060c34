// Package mount parses the mount subcommand into an fstab entry and,
// with --now, an immediate mount(8) invocation.
//
// Grammar, read left to right with one token of lookahead:
//
//	-o, --options VALUE   append VALUE to the option list (repeatable)
//	-t, --types VALUE     filesystem type (at most once)
//	-B, --bind            type "none" plus option "bind"
//	-r, --readonly        option "ro"
//	DEVICE MOUNTPOINT     positionals, in that order
//
// Device and mountpoint are canonicalized (absolute, symlinks resolved)
// before they are written, so both must exist.
package mount
