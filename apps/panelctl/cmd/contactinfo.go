package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var contactInfoCmd = &cobra.Command{
	Use:   "contact-info",
	Short: "Manage the site's contact block",
}

var contactInfoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact blocks",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		blocks, err := c.ListContactInfo(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(blocks)
	},
}

var contactInfoCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a contact block from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpsertContactInfoRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		block, err := c.CreateContactInfo(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(block)
	},
}

var contactInfoUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a contact block from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpsertContactInfoRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		block, err := c.UpdateContactInfo(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(block)
	},
}

var contactInfoDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteContactInfo(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(contactInfoCmd)
	contactInfoCmd.AddCommand(contactInfoListCmd, contactInfoCreateCmd, contactInfoUpdateCmd, contactInfoDeleteCmd)
	addFileFlag(contactInfoCreateCmd, contactInfoUpdateCmd)
}
