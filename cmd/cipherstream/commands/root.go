package commands

import (
	"github.com/spf13/cobra"

	"cipherstream/internal/app"
)

var (
	configPath   string
	gatewayURL   string
	apiKey       string
	conversation string
	verbose      bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cipherstream",
		Short: "End-to-end encrypted chat streaming client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if gatewayURL != "" {
				cfg.GatewayURL = gatewayURL
			}
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if verbose {
				cfg.Verbose = true
			}
			appCtx = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "streaming endpoint URL")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "credential sent in the x-api-key header")
	root.PersistentFlags().StringVar(&conversation, "conversation", "", "conversation id (default: a fresh UUID)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(chatCmd(), fingerprintCmd())
	return root.Execute()
}
