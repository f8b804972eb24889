package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"driver-route-service/internal/adapters/cache"
	"driver-route-service/internal/adapters/geocode"
	"driver-route-service/internal/adapters/repositories"
	"driver-route-service/internal/api"
	"driver-route-service/internal/config"
	pgdb "driver-route-service/internal/platform/db"
	"driver-route-service/internal/ports"
	"driver-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, ORS) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/stops.json")
	port := config.Get("PORT", "8080")
	country := config.Get("GEOCODE_COUNTRY", "CI")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// Geocoding is optional: without an API key, stops submitted without
	// coordinates are filtered at the boundary instead of backfilled.
	var geocoder ports.Geocoder
	if orsKey := strings.TrimSpace(os.Getenv("ORS_API_KEY")); orsKey != "" {
		geocodeCache, closeCache, err := openGeocodeCache(db)
		if err != nil {
			log.Fatal(err)
		}
		defer closeCache()

		g, err := geocode.NewORSGeocoder(orsKey, country, geocodeCache)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = g
	} else {
		log.Println("ORS_API_KEY not set: geocoding disabled")
	}

	notifier := services.NewRouteNotifier()
	defer notifier.Close()

	events, cancel := notifier.Subscribe(16)
	defer cancel()
	go func() {
		for ev := range events {
			log.Printf("route planned driver=%s stops=%d distance_km=%.2f savings_pct=%d",
				ev.DriverID, ev.StopCount, ev.TotalDistanceKm, ev.SavingsPercent)
		}
	}()

	repo := repositories.NewSqliteStopRepository(db)
	router := api.NewRouter(repo, geocoder, notifier)

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
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

// openGeocodeCache selects the geocode cache backend. With DATABASE_URL set
// the shared Postgres cache is used, so every instance reuses lookups paid
// for by the others; otherwise the local SQLite database doubles as the
// cache. The Postgres schema is provisioned by cmd/dbtool.
func openGeocodeCache(sqliteDB *sql.DB) (geocode.GeocodeCache, func(), error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return cache.NewSqliteGeocodeCache(sqliteDB), func() {}, nil
	}

	pg, err := pgdb.Open(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}

	log.Println("geocode cache backend=postgres")
	return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath, repositories.DialectSQLite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
