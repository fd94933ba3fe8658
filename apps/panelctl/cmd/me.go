package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show information about the current authenticated user",
	Long: `Ask the API who the stored access token belongs to. Unlike
'panelctl auth status', this verifies the token server-side and will
refresh it if the API rejects it.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		me, err := c.Me(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Logged in: %s <%s>\n", me.Name, me.Email)
		if me.Role != "" {
			fmt.Printf("Role: %s\n", me.Role)
		}
		fmt.Printf("ID: %s\n", me.ID)
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
