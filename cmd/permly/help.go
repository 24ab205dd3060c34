package main

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed help.md
var helpMarkdown string

// renderMarkdown renders markdown for a terminal, falling back to the raw
// text when styling is off or glamour fails
func renderMarkdown(content string, styled bool) string {
	if !styled {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// helpFunc prints the long help followed by the flag usage
func helpFunc(styled func(io.Writer) bool) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, renderMarkdown(cmd.Long, styled(out)))
		fmt.Fprintln(out)
		fmt.Fprint(out, cmd.UsageString())
	}
}
