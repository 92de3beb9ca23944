// Command main runs the database seeder for TuteGram.
package main

import (
	"flag"
	"log"

	"tutegram/internal/config"
	"tutegram/internal/database"
	"tutegram/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numConnections := flag.Int("connections", 150, "Number of connection records to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	personaFile := flag.String("personas", "", "Optional YAML file of seed personas")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d connections, clean=%v\n", *numUsers, *numConnections, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:       *numUsers,
		NumConnections: *numConnections,
		ShouldClean:    *shouldClean,
		PersonaFile:    *personaFile,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All seed users have the password: password123")
}
