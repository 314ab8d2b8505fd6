package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kecinforstore/storefront-backend/internal/config"
	"github.com/kecinforstore/storefront-backend/internal/modules/browse"
	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
	"github.com/kecinforstore/storefront-backend/internal/modules/contact"
	"github.com/kecinforstore/storefront-backend/internal/modules/profile"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("ping database", zap.Error(err))
	}
	logger.Info("connected to database")

	settings, err := config.Load(envOr("STORE_CONFIG_DIR", "."))
	if err != nil {
		logger.Fatal("load store settings", zap.Error(err))
	}

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	profileRepo := profile.NewPostgresRepository(db)
	profileService := profile.NewService(profileRepo, jwtKey)
	router.Use(profile.Viewer(profileService, logger))
	profile.NewHandler(profileService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Contact & store settings ────────────────────────────
	dispatcher := contact.NewDispatcher(settings)
	contact.NewHandler(dispatcher, catalogService).RegisterRoutes(router)

	// ── Browse sessions ─────────────────────────────────────
	sessionStore := browse.NewStore(catalogService)
	browse.NewHandler(sessionStore, catalogService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := envOr("APP_PORT", "8080")
	logger.Info("storefront API starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
