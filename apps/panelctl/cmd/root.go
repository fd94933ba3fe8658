package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/psdk"
)

type contextKey string

const configContextKey contextKey = "panelconfig"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "panelctl",
		Short: "CLI for the hostpanel admin API (auth, catalog, site content)",
		Long: `panelctl is a command-line tool for a running hostpanel admin API.
It authenticates with email and password, keeps the token pair in local
credential storage, and refreshes expired access tokens transparently.
Resource subcommands manage the product catalog (categories, products)
and the public site's content (news, services, contact-info, home-text,
posts).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := psdk.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*psdk.Config, error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configContextKey).(*psdk.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Searches: panel.yaml, .panel/config.yaml")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL for the admin API (overrides config)")
}
