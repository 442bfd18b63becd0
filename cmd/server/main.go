package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pcforge/backend/config"
	httpDelivery "github.com/pcforge/backend/internal/delivery/http"
	"github.com/pcforge/backend/internal/infrastructure/cache"
	"github.com/pcforge/backend/internal/infrastructure/catalog"
	"github.com/pcforge/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PCForge Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog store: %s", cfg.Catalog.BaseURL)

	debug := cfg.Server.Environment == "development"

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)
	if debug {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		catalogClient,
		memoryCache,
		usecase.CatalogServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)
	compareService := usecase.NewCompareService(catalogService, debug)
	buildService := usecase.NewBuildService(catalogService, usecase.BuildServiceConfig{
		EnableDebugLogging: debug,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, compareService, buildService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
