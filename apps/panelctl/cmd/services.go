package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage service offerings",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List services",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		offerings, err := c.ListServices(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(offerings)
	},
}

var servicesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a service by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		offering, err := c.GetService(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(offering)
	},
}

var servicesCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a service from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreateServiceRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		offering, err := c.CreateService(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(offering)
	},
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a service from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdateServiceRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		offering, err := c.UpdateService(cmd.Context(), args[0], req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(offering)
	},
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a service",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeleteService(cmd.Context(), args[0]); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesListCmd, servicesGetCmd, servicesCreateCmd, servicesUpdateCmd, servicesDeleteCmd)
	addFileFlag(servicesCreateCmd, servicesUpdateCmd)
}
