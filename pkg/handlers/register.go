package handlers

import (
	"github.com/arthur-debert/permly/pkg/handlers/export"
	"github.com/arthur-debert/permly/pkg/handlers/mount"
	"github.com/arthur-debert/permly/pkg/handlers/sysctl"
	"github.com/arthur-debert/permly/pkg/registry"
	"github.com/arthur-debert/permly/pkg/types"
)

// NewRegistry returns the dispatch table of every supported subcommand
func NewRegistry() registry.Registry[types.Parser] {
	reg := registry.New[types.Parser]()
	registry.MustRegister[types.Parser](reg, mount.Name, mount.Parse)
	registry.MustRegister[types.Parser](reg, export.Name, export.Parse)
	registry.MustRegister[types.Parser](reg, sysctl.Name, sysctl.Parse)
	return reg
}
