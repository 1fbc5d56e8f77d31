package cmd

import (
	"os"

	"github.com/appspec/harness/cli/cmd/context"
	"github.com/appspec/harness/cli/cmd/run"
	"github.com/appspec/harness/cli/cmd/scenario"
	"github.com/appspec/harness/cli/cmd/server"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "harnessctl",
	Short: "CLI for interacting with the app-spec harness server",
	Long:  `CLI for interacting with the app-spec harness server`,
}

// GetRoot returns the root of all subcommands
func GetRoot() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(context.GetRoot())
	rootCmd.AddCommand(scenario.GetRoot())
	rootCmd.AddCommand(run.GetRoot())
	rootCmd.AddCommand(server.GetRoot())
}
