// Package types defines the core types and interfaces used throughout permly.
// This includes the invocation Config, the Behavior variants a subcommand
// parser produces, and the FS and Runner capabilities behaviors execute against.
package types
