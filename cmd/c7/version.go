package main

import "github.com/fwojciec/context7"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	deps.Stdout.Highlight("Context7 CLI version:", context7.Version)
	return nil
}
