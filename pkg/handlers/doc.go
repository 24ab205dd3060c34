// Package handlers holds the subcommand parsers and the table that maps a
// subcommand name to its parser. Each parser lives in its own subpackage and
// turns the subcommand's raw tokens into an ordered list of behaviors.
package handlers
