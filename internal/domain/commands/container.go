package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the command-layer providers with the DIG
// container. Settings and the workspace come from the CLI layer.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewPreflight); err != nil {
		return err
	}
	if err := container.Provide(func(p *Preflight) Validator { return p }); err != nil {
		return err
	}
	if err := container.Provide(NewBootstrapCommand); err != nil {
		return err
	}
	return container.Provide(func(c *BootstrapCommand) Bootstrap { return c })
}
