// Package output writes permly's user-facing lines: dry-run previews and
// error messages. Styling comes from pkg/output/styles and is only applied
// when the configured color mode and the terminal allow it; the visible text
// is identical either way.
package output
