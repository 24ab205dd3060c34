package types

import "strings"

// shellSpecial are the characters that force an argument into single quotes
const shellSpecial = `'"*\?`

// ShellQuote renders a single argument the way it is shown in previews
func ShellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, shellSpecial) {
		return arg
	}
	escaped := strings.ReplaceAll(arg, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `'\''`)
	return "'" + escaped + "'"
}

// FormatCommand renders an argv list as a shell-like command line.
// The result is for display only and is never handed to a shell.
func FormatCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = ShellQuote(arg)
	}
	return strings.Join(quoted, " ")
}
