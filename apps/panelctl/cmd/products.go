package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage VPS products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		products, err := c.ListProducts(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(products)
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a product by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		product, err := c.GetProduct(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(product)
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a product from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreateProductRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		product, err := c.CreateProduct(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(product)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a product from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdateProductRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		product, err := c.UpdateProduct(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(product)
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteProduct(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)
	addFileFlag(productsCreateCmd, productsUpdateCmd)
}
