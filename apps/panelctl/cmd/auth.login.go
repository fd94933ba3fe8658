package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate to the admin API with email and password",
	Long: `Log in to the hostpanel admin API.

Examples:
	# prompt for the password
	panelctl auth login --email admin@example.com

	# non-interactive (password on the flag, e.g. from a secret manager)
	panelctl auth login --email admin@example.com --password "$PANEL_PASSWORD"

The token pair is stored in local credential storage for subsequent
commands.`,
	Run: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	email := loginEmail
	password := loginPassword

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("failed to read email: %v", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("failed to read password: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	c, err := newClient(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	user, err := c.Login(cmd.Context(), email, password)
	if err != nil {
		exitIfSdkError(err)
	}

	if user != nil {
		fmt.Printf("Logged in as: %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Println("Logged in")
	}

	if uc := c.Session().Current(); uc != nil && uc.Exp > 0 {
		fmt.Printf("Token expires: %s\n", time.Unix(uc.Exp, 0).Format(time.RFC3339))
	}
	fmt.Println("Credentials saved")
}

func init() {
	authCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
