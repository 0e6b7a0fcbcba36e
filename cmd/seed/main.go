package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/meur/bisforge/internal/models"
	"github.com/meur/bisforge/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./bisforge.db", "SQLite database path")
	seedFile := flag.String("seeds", "./seeds/guides.json", "Guide seed file")
	flag.Parse()

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	seeds, err := readSeeds(*seedFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *seedFile, err)
	}

	if err := store.BulkCreateGuides(seeds); err != nil {
		log.Fatalf("Failed to seed guides: %v", err)
	}

	log.Printf("Seeded %d guides from %s", len(seeds), *seedFile)
}

func readSeeds(path string) ([]models.GuideSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []models.GuideSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}
