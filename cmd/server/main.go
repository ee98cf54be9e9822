package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/wedding-venue-booking/internal/booking"
	"github.com/iliyamo/wedding-venue-booking/internal/config"
	"github.com/iliyamo/wedding-venue-booking/internal/database"
	"github.com/iliyamo/wedding-venue-booking/internal/handler"
	"github.com/iliyamo/wedding-venue-booking/internal/middleware"
	"github.com/iliyamo/wedding-venue-booking/internal/queue"
	"github.com/iliyamo/wedding-venue-booking/internal/repository"
	"github.com/iliyamo/wedding-venue-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories.
	halls := repository.NewHallRepo(db)
	menu := repository.NewMenuRepo(db)
	customers := repository.NewCustomerRepo(db)
	bookings := repository.NewBookingRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Booking engine over the SQL store.
	store := repository.NewEngineStore(halls, menu, bookings)
	ledger := booking.NewLedger(store)
	admission := booking.NewAdmission(store, ledger, booking.SystemClock{}, booking.Policy{MinTables: cfg.MinTables})
	catalog := booking.NewCatalog(store)
	pricer := booking.NewPricer(catalog)

	// Redis is optional; cache and rate limiting degrade to no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer appends committed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterHealth(e, handler.NewHealthHandler(db))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterCatalog(e,
		handler.NewHallHandler(halls),
		handler.NewMenuHandler(menu, catalog),
		cfg.JWTSecret, cacheMW)
	router.RegisterBookings(e,
		handler.NewCustomerHandler(customers),
		handler.NewBookingHandler(cfg, halls, customers, menu, bookings, admission, pricer),
		cfg.JWTSecret, cacheMW, limitMW)

	log.Printf("listening on :%s (env=%s, min tables=%d)", cfg.Port, cfg.Env, cfg.MinTables)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
