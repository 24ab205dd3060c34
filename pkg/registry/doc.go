// Package registry provides a generic, type-safe registry for named items.
// permly uses it as the subcommand dispatch table.
package registry
