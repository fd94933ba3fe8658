package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		categories, err := c.ListCategories(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(categories)
	},
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a category by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		category, err := c.GetCategory(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(category)
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a category from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreateCategoryRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		category, err := c.CreateCategory(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(category)
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a category from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdateCategoryRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		category, err := c.UpdateCategory(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(category)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteCategory(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesGetCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)
	addFileFlag(categoriesCreateCmd, categoriesUpdateCmd)
}
