package run

import (
	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var players []string

var runCreateCmd = &cobra.Command{
	Use:   "create [SCENARIO]",
	Args:  cobra.ExactArgs(1),
	Short: "Launch a run of a scenario",
	Long:  `Launch a run of a scenario`,
	Run: func(cmd *cobra.Command, args []string) {
		functions.PrettyPrint(functions.CreateRun(&functions.CreateRunPayload{
			Scenario: args[0],
			Players:  players,
		}))
	},
}

func init() {
	runCreateCmd.Flags().StringSliceVar(&players, "players", nil, "Player names taking part in the run")
	rootCmd.AddCommand(runCreateCmd)
}
