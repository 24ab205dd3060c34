package main

import (
	"os"

	"github.com/arthur-debert/permly/pkg/errors"
)

func main() {
	rootCmd := NewRootCmd(Deps{})
	rootCmd.SetArgs(os.Args[1:])
	os.Exit(errors.ExitCode(rootCmd.Execute()))
}
