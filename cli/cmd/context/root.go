package context

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "context",
	Short:   "Manage harness server contexts",
	Long:    `Manage harness server contexts`,
	Aliases: []string{"ctx"},
}

// GetRoot returns the root subcommand.
func GetRoot() *cobra.Command {
	return rootCmd
}
