package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/assistant"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/events"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/routes"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/session"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/store"
)

func main() {
	log.Println("✅ Starting storefront client...")

	// Load environment variables
	_ = godotenv.Load()

	// Local key-value store (guest carts, identity markers, signals)
	local := openLocalStore()

	// Session manager resolves identity from the local store
	manager := session.NewManager(local)

	// Remote backend client; the token is re-read on every request
	backendURL := getEnv("BACKEND_API_URL", "http://localhost:9000/api")
	client := remote.NewClient(backendURL, manager.Token)

	// Cart/wishlist state container
	container := store.New(client, local, manager.CurrentIdentity)
	container.Load(context.Background())

	// Order status broadcast hub
	hub := events.NewHub(local)

	// Conversational assistant
	engine := assistant.New(client, manager.CurrentIdentity, hub)

	// Watch for login/logout and drive the container's clear/reload cycle
	watcher := session.NewWatcher(manager, envDuration("SESSION_POLL_INTERVAL", time.Second))
	session.Bind(watcher, container, envDuration("SESSION_SETTLE_DELAY", 500*time.Millisecond))
	watcher.Start(local.Path())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Container: container,
		Local:     local,
		Remote:    client,
		Manager:   manager,
		Engine:    engine,
		Hub:       hub,
	})

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("🚀 Storefront client running on port %s (backend: %s)...", port, backendURL)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func openLocalStore() *localstore.Store {
	path := getEnv("LOCAL_STORE_PATH", "data/storefront.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("❌ Failed to create local store directory: %v", err)
	}
	local, err := localstore.Open(path)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	log.Printf("💾 Local store ready at %s", path)
	return local
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
