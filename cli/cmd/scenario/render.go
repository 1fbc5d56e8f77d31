package scenario

import (
	"fmt"

	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var asJSON bool

var scenarioRenderCmd = &cobra.Command{
	Use:   "render [NAME] [PLAYER]",
	Args:  cobra.ExactArgs(2),
	Short: "Render a player's conductor config for a scenario",
	Long:  `Render a player's conductor config for a scenario`,
	Run: func(cmd *cobra.Command, args []string) {
		if asJSON {
			fmt.Println(string(functions.RenderPlayerConfigJSON(args[0], args[1])))
		} else {
			fmt.Println(string(functions.RenderPlayerConfig(args[0], args[1])))
		}
	},
}

func init() {
	scenarioRenderCmd.Flags().BoolVar(&asJSON, "json", false, "Render as JSON instead of TOML")
	rootCmd.AddCommand(scenarioRenderCmd)
}
