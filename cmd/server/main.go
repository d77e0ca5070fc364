package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/entradas/seatmap/internal/cache"
	"github.com/entradas/seatmap/internal/config"
	"github.com/entradas/seatmap/internal/database"
	"github.com/entradas/seatmap/internal/handler"
	"github.com/entradas/seatmap/internal/middleware"
	"github.com/entradas/seatmap/internal/queue"
	"github.com/entradas/seatmap/internal/repository"
	"github.com/entradas/seatmap/internal/router"
)

func main() {
	_ = godotenv.Load() // Load .env if present, ignore error

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional. Without it the occupancy cache and the rate
	// limiter both degrade to pass-through behavior.
	rdb := config.NewRedisClient()
	occ := cache.New(rdb, config.LoadCacheConfig())

	venues := repository.NewVenueRepo(db)
	events := repository.NewEventRepo(db)
	occupancy := repository.NewOccupancyRepo(db)
	blocks := repository.NewBlockRepo(db)

	seatMaps := handler.NewSeatMapHandler(venues, events, occupancy, blocks, occ, cfg.MaxSeats)
	admin := handler.NewAdminHandler(events, venues, blocks)
	auth := &handler.AuthHandler{
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
		JWTSecret:     cfg.JWTSecret,
		AccessTTLMin:  cfg.AccessTTLMin,
	}

	// Invalidate cached occupancy snapshots as sales complete elsewhere.
	go func() {
		if err := queue.StartOccupancyConsumer(occ); err != nil {
			log.Printf("occupancy consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterPublic(e, seatMaps, limit)
	router.RegisterAuth(e, auth)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
