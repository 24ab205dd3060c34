// Package export persists environment variables as export lines in the
// user's shell profile.
package export
