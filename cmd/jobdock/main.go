package main

import (
	"log"
	"os"

	"github.com/jobdock-dev/jobdock/db"
	"github.com/jobdock-dev/jobdock/internal/auth"
	"github.com/jobdock-dev/jobdock/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	auth.InitJWTSecret()

	database, err := db.Connect(os.Getenv("DATABASE_DSN"))

	if err != nil {
		log.Fatalf("Database Error: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Database Error: %v", err)
	}

	r := router.NewRouter(database)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "4000"
		log.Println("PORT not set, defaulting to 4000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
