package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Load .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/wanderlust/wanderlust-api/internal/config"     // Internal config loader
	"github.com/wanderlust/wanderlust-api/internal/database"   // MySQL connection pool
	"github.com/wanderlust/wanderlust-api/internal/geo"        // Forward geocoding
	"github.com/wanderlust/wanderlust-api/internal/handler"    // HTTP handlers
	"github.com/wanderlust/wanderlust-api/internal/media"      // GridFS image store
	"github.com/wanderlust/wanderlust-api/internal/middleware" // Session, rate limit and cache middleware
	"github.com/wanderlust/wanderlust-api/internal/queue"      // Booking event consumer
	"github.com/wanderlust/wanderlust-api/internal/repository" // Data access layer
	"github.com/wanderlust/wanderlust-api/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Missing .env is fine in production

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Optional infrastructure.  Redis and Mongo degrade to nil when
	// unreachable; the middleware and image endpoints handle that.
	rdb := config.NewRedisClient()
	store := media.NewStore(cfg.MongoURL, cfg.MongoDB)
	geocoder := geo.New(cfg.MapToken)

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	listings := repository.NewListingRepo(db)
	reviews := repository.NewReviewRepo(db)
	bookings := repository.NewBookingRepo(db)

	// Handlers.  The hard-delete cascade is an explicit hook list.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	listingH := handler.NewListingHandler(listings, reviews, store, geocoder,
		handler.ReviewCascadeHook(reviews),
		handler.ImageCleanupHook(store),
	)
	reviewH := handler.NewReviewHandler(listings, reviews)
	bookingH := handler.NewBookingHandler(bookings, listings)

	e := echo.New()
	e.HideBanner = true

	// Global rate limiting; fails open when Redis is down.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	sessionAuth := middleware.SessionAuth(cfg.JWTSecret, tokens)
	listCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterListingRoutes(e, listingH, reviewH, sessionAuth, listCache)
	router.RegisterBookingRoutes(e, bookingH, sessionAuth)

	// Consume booking.confirmed events in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
