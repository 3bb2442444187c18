package main

import (
	"log"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/logger"
	"nagorik_desk/internal/routes"
	"nagorik_desk/internal/storage"
	"nagorik_desk/internal/summarizer"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database, migrate and seed
	config.InitDB()

	// External collaborators
	summarizer.Setup()
	if err := storage.Setup(config.GetEnv("UPLOAD_DIR", "./uploads")); err != nil {
		log.Fatalf("upload store init failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter()

	// Serve stored report images
	if local, ok := storage.Default.(*storage.LocalStore); ok {
		r.Static("/uploads", local.Dir())
	}

	port := config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at :%s", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
