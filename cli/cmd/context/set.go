package context

import (
	"log"

	"github.com/appspec/harness/cli/config"
	"github.com/spf13/cobra"
)

var (
	endpoint  string
	masterKey string
)

var contextSetCmd = &cobra.Command{
	Use:   "set [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "Create a context or update an existing one",
	Long:  `Create a context or update an existing one`,
	Run: func(cmd *cobra.Command, args []string) {
		if endpoint == "" {
			cmd.Usage()
			log.Fatal("Endpoint is required")
		}
		config.SetContext(args[0], config.Context{
			Endpoint:  endpoint,
			MasterKey: masterKey,
		})
	},
}

func init() {
	contextSetCmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint of the harness API server")
	contextSetCmd.Flags().StringVar(&masterKey, "master_key", "", "Master Key")
	rootCmd.AddCommand(contextSetCmd)
}
