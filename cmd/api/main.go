package main

import (
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/shazam37/ai-underwriting/internal/config"
	"github.com/shazam37/ai-underwriting/internal/db"
	"github.com/shazam37/ai-underwriting/internal/pkg/llm"
	"github.com/shazam37/ai-underwriting/internal/routes"
	"github.com/shazam37/ai-underwriting/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Run(dbConn); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	analyzer := llm.NewAnalyzer(cfg.OpenAIAPIKey)

	router, err := routes.SetupRouter(dbConn, cfg, analyzer)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	serverAddr := fmt.Sprintf(":%s", "8080")
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
