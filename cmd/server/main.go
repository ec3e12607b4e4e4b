package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/portfolio-backend/internal/config"
	"github.com/AnshRaj112/portfolio-backend/internal/database"
	"github.com/AnshRaj112/portfolio-backend/internal/handlers"
	"github.com/AnshRaj112/portfolio-backend/internal/middleware"
	"github.com/AnshRaj112/portfolio-backend/internal/routes"
	"github.com/AnshRaj112/portfolio-backend/internal/services"
	"github.com/AnshRaj112/portfolio-backend/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	// Warn if admin password not set (verify endpoint will 500 until it is)
	if cfg.AdminPassword == "" {
		log.Println("⚠️  WARNING: ADMIN_PW not set. Admin login will not work.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(client)

	// Connect to Redis (optional - only backs the comment listing cache)
	var cache *services.CommentCache
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		redisClient, err := database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			log.Printf("⚠️  WARNING: failed to connect to Redis: %v", err)
			log.Println("   Running without the comment listing cache")
		} else {
			defer redisClient.Close()
			cache = services.NewCommentCache(redisClient)
		}
	}

	// Build stores and handlers
	commentStore := store.NewMongoCommentStore(db)
	blobStore, err := store.NewGridFSBlobStore(db)
	if err != nil {
		log.Fatal("Failed to create GridFS bucket:", err)
	}

	commentHandler := handlers.NewCommentHandler(commentStore, cache)
	apkHandler := handlers.NewAPKHandler(blobStore, cfg.APKPath)
	adminHandler := handlers.NewAdminHandler(cfg.AdminPassword)
	statsHandler := handlers.NewStatsHandler(commentStore)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, commentHandler, apkHandler, adminHandler, statsHandler)

	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  GET    /api/comments")
	log.Println("  POST   /api/comments")
	log.Println("  DELETE /api/comments")
	log.Println("  GET    /api/apk")
	log.Println("  POST   /api/apk")
	log.Println("  POST   /api/admin/verify")
	log.Println("  GET    /api/admin/stats")

	log.Printf("🚀 Portfolio backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
