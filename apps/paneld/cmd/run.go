package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/papi"
	"github.com/minhtan/hostpanel/pkg/papi/config"
	"github.com/minhtan/hostpanel/pkg/papi/routes"
	"github.com/minhtan/hostpanel/pkg/papi/services"
	"github.com/minhtan/hostpanel/pkg/plog"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the API server",
	Run:   run,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) {
	logger := plog.NewDefault()

	cfg, err := config.ValidateEnv()
	if err != nil {
		logger.Fatalf("%v", err)
	}

	cfg.Print(logger.Printf)

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	svcs, err := services.New(cfg, store)
	if err != nil {
		logger.Fatalf("failed to initialize services: %v", err)
	}

	api := papi.NewApi()
	routes.RegisterAll(api.Api, svcs)

	addr := fmt.Sprintf(":%s", cfg.Port)

	logger.Info("paneld starting", "addr", addr, "storage", cfg.Storage)
	logger.Info("openapi docs", "url", fmt.Sprintf("http://localhost%s/docs", addr))

	if err := http.ListenAndServe(addr, api.Router); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

func openStore(cfg *config.EnvConfig) (kv.Store, error) {
	switch cfg.Storage {
	case "redis":
		return kv.NewRedisStore(kv.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return kv.NewMemoryStore(), nil
	}
}
