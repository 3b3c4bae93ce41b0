package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"careerpro_backend/internal/app"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	if err := app.Run(configPath); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
