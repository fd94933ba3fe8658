package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/papi"
	"github.com/minhtan/hostpanel/pkg/papi/config"
	"github.com/minhtan/hostpanel/pkg/papi/routes"
	"github.com/minhtan/hostpanel/pkg/papi/services"
)

var openapiCmd = &cobra.Command{
	Use:     "openapi",
	Aliases: []string{"spec"},
	Short:   "Generate the OpenAPI specification",
	Long:    `Outputs the OpenAPI specification for the admin API without binding a port or touching storage.`,
	Run:     generateOpenAPI,
}

var (
	openapiOutput    string
	openapiDowngrade bool
)

func init() {
	rootCmd.AddCommand(openapiCmd)
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "", "Write output to file (default stdout)")
	openapiCmd.Flags().BoolVar(&openapiDowngrade, "downgrade", true, "Downgrade OpenAPI to 3.0 when generating the spec")
}

func generateOpenAPI(cmd *cobra.Command, args []string) {
	// Throwaway services over an in-memory store: routes only need them to
	// register, handlers never run here.
	svcs, err := services.New(&config.EnvConfig{
		AuthSecret:      "openapi-generation-only-not-a-real-secret",
		Issuer:          "hostpanel",
		AccessTokenTTL:  3600,
		RefreshTokenTTL: 2592000,
		AdminEmail:      "admin@localhost",
		AdminPassword:   "openapi",
		AdminName:       "Administrator",
	}, kv.NewMemoryStore())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build API: %v\n", err)
		os.Exit(1)
	}

	api := papi.NewApi()
	routes.RegisterAll(api.Api, svcs)

	var spec []byte
	if openapiDowngrade {
		spec, err = api.Api.OpenAPI().Downgrade()
	} else {
		spec, err = json.Marshal(api.Api.OpenAPI())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate OpenAPI spec: %v\n", err)
		os.Exit(1)
	}

	if openapiOutput == "" {
		fmt.Println(string(spec))
		return
	}

	if err := os.WriteFile(openapiOutput, spec, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write OpenAPI spec to %s: %v\n", openapiOutput, err)
		os.Exit(1)
	}
}
