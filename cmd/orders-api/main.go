package main

import (
	"log"

	"go-flatfile-orders/internal/api"
	"go-flatfile-orders/internal/api/handler"
	"go-flatfile-orders/internal/config"
	"go-flatfile-orders/internal/store"
	"go-flatfile-orders/pkg/router"

	_ "go-flatfile-orders/docs"
)

// @title Flat File Orders API
// @version 1.0
// @description Ingests fixed-width purchase-order files and answers filtered queries over the aggregated result.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	handler.MaxUploadBytes = cfg.MaxUploadBytes

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	if err := r.Start(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
