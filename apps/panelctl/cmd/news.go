package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Manage news articles",
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List news articles",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		articles, err := c.ListNews(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(articles)
	},
}

var newsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a news article by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		article, err := c.GetNews(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(article)
	},
}

var newsCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a news article from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreateNewsRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		article, err := c.CreateNews(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(article)
	},
}

var newsUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a news article from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdateNewsRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		article, err := c.UpdateNews(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(article)
	},
}

var newsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a news article",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteNews(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
	newsCmd.AddCommand(newsListCmd, newsGetCmd, newsCreateCmd, newsUpdateCmd, newsDeleteCmd)
	addFileFlag(newsCreateCmd, newsUpdateCmd)
}
