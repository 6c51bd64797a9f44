// Package cmd implements the CLI application to run a store session.
package cmd

import (
	"github.com/google/subcommands"
)

// Register registers the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&sessionCmd{}, "store")
	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "")
}
