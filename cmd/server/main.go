package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"vacation-planner-service/internal/adapters/cache"
	"vacation-planner-service/internal/adapters/geo"
	"vacation-planner-service/internal/adapters/ratelimit"
	"vacation-planner-service/internal/adapters/repositories"
	"vacation-planner-service/internal/adapters/transit"
	"vacation-planner-service/internal/api"
	"vacation-planner-service/internal/config"
	"vacation-planner-service/internal/jobs"
	"vacation-planner-service/internal/platform/token"
	"vacation-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, mock geo, haversine transit) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	refreshAt := config.Get("STATUS_REFRESH_AT", "03:00")

	jwtSecret := os.Getenv("JWT_SECRET")
	if strings.TrimSpace(jwtSecret) == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens, err := token.NewManager([]byte(jwtSecret), config.GetDuration("TOKEN_TTL", 24*time.Hour))
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the location catalog on startup for local runs.
	if err := initAndSeed(db); err != nil {
		log.Fatal(err)
	}

	// Haversine transit estimates are cached in SQLite so repeated schedule
	// refreshes skip recomputation.
	transitDelay := config.GetDuration("TRANSIT_DELAY", 0)
	estimator := transit.NewCachedTransitProvider(
		transit.NewHaversineTransitProvider(transitDelay),
		cache.NewSqliteTransitCache(db),
	)

	limiter, err := newLimiter()
	if err != nil {
		log.Fatal(err)
	}

	planRepo := repositories.NewSqlitePlanRepository(db)

	refresher := jobs.NewStatusRefresher(planRepo, limiter)
	if err := refresher.Start(refreshAt); err != nil {
		log.Fatal(err)
	}
	defer refresher.Stop()

	router := api.NewRouter(api.RouterDeps{
		Users:          repositories.NewSqliteUserRepository(db),
		Plans:          planRepo,
		Activities:     repositories.NewSqliteActivityRepository(db),
		Locations:      repositories.NewSqliteLocationRepository(db),
		Searcher:       geo.NewMockPlacesProvider(config.GetDuration("PLACES_DELAY", 0)),
		Transit:        estimator,
		Limiter:        limiter,
		Tokens:         tokens,
		AllowedOrigins: splitOrigins(config.Get("ALLOWED_ORIGINS", "")),
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedLocations(db, geo.Catalog()); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newLimiter picks the Redis sliding-window limiter when REDIS_ADDR is set,
// otherwise the in-process one.
func newLimiter() (ports.RateLimiter, error) {
	maxRequests := config.GetInt("RATE_LIMIT_MAX", 100)
	window := config.GetDuration("RATE_LIMIT_WINDOW", time.Minute)

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return ratelimit.NewMemoryRateLimiter(maxRequests, window)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       config.GetInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %q: %w", addr, err)
	}

	return ratelimit.NewRedisRateLimiter(client, maxRequests, window)
}

func splitOrigins(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
