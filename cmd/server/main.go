package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vznlabdev/cr-dashboard-broker/internal/api"
	"github.com/vznlabdev/cr-dashboard-broker/internal/book"
	"github.com/vznlabdev/cr-dashboard-broker/internal/dataset"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	data, err := dataset.Load()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	srv := api.NewServer(book.NewStore(data))
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
