package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paneld",
	Short: "hostpanel admin API server",
	Long:  `paneld serves the hostpanel admin console API: authentication, the product catalog, and the public site's content blocks.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
