package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		c.Logout()
		fmt.Println("Logged out")
	},
}

func init() {
	authCmd.AddCommand(logoutCmd)
}
