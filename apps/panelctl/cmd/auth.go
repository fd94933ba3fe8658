package cmd

import (
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the admin API (login, logout, status)",
	Long: `Manage authentication against a running hostpanel admin API.

Login stores the access and refresh token pair in local credential
storage; subsequent commands attach the access token automatically and
refresh it when the API rejects it.

Examples:
  panelctl auth login --email admin@example.com
  panelctl auth status
  panelctl auth logout`,
}

func init() {
	rootCmd.AddCommand(authCmd)
}
