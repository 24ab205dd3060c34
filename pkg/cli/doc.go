// Package cli scans the process arguments that precede the subcommand.
//
// Global options are only recognized before the subcommand. The first token
// that is not one of them (or the token right after "--") names the
// subcommand, and every token after it belongs to the subcommand verbatim,
// dashes included.
package cli
