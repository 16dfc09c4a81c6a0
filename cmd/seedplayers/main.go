package main

import (
	"log"
	"os"

	"ecocycle/config"
	"ecocycle/db"
	"ecocycle/utils"
)

// Seeds the players collection with demo data for local development.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.prod.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	utils.PopulateTestPlayers()
	log.Println("Demo players seeded")
}
