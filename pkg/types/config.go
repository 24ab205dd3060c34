package types

// Config is the invocation state handed to a subcommand parser. It is built
// once from the process arguments and not modified afterwards.
type Config struct {
	// DryRun renders behaviors instead of executing them
	DryRun bool

	// Now asks for the immediate system action in addition to the persisted line
	Now bool

	// Cmd is the subcommand name; HasCmd distinguishes "" from absent
	Cmd    string
	HasCmd bool

	// Args are the raw tokens following the subcommand, passed verbatim
	Args []string
}

// WithCommand returns a copy of the config with the subcommand set
func (c Config) WithCommand(name string, args ...string) Config {
	c.Cmd = name
	c.HasCmd = true
	c.Args = append([]string(nil), args...)
	return c
}
