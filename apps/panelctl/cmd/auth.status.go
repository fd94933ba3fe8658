package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication status",
	Long: `Show who is logged in, based on the locally stored access token.
The token's claims are decoded without contacting the API.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		session := c.Session()
		if !session.IsAuthenticated() {
			fmt.Println("Not logged in. Run 'panelctl auth login'.")
			return
		}

		uc := session.Current()
		fmt.Printf("Logged in: %s <%s>\n", uc.Name, uc.Email)
		if uc.Role != "" {
			fmt.Printf("Role: %s\n", uc.Role)
		}
		if uc.Exp > 0 {
			fmt.Printf("Token expires: %s\n", time.Unix(uc.Exp, 0).Format(time.RFC3339))
		}
	},
}

func init() {
	authCmd.AddCommand(statusCmd)
}
