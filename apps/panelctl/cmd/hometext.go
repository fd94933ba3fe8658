package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var homeTextCmd = &cobra.Command{
	Use:   "home-text",
	Short: "Manage landing page text blocks",
}

var homeTextListCmd = &cobra.Command{
	Use:   "list",
	Short: "List text blocks",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		blocks, err := c.ListHomeTexts(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(blocks)
	},
}

var homeTextGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a text block by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		block, err := c.GetHomeText(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(block)
	},
}

var homeTextCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a text block from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreateHomeTextRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		block, err := c.CreateHomeText(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(block)
	},
}

var homeTextUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a text block from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdateHomeTextRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		block, err := c.UpdateHomeText(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(block)
	},
}

var homeTextDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a text block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteHomeText(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(homeTextCmd)
	homeTextCmd.AddCommand(homeTextListCmd, homeTextGetCmd, homeTextCreateCmd, homeTextUpdateCmd, homeTextDeleteCmd)
	addFileFlag(homeTextCreateCmd, homeTextUpdateCmd)
}
