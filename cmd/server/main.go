package main // entry point

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/okalan/surprise-trip-booking/internal/config"
	"github.com/okalan/surprise-trip-booking/internal/database"
	"github.com/okalan/surprise-trip-booking/internal/handler"
	"github.com/okalan/surprise-trip-booking/internal/middleware"
	"github.com/okalan/surprise-trip-booking/internal/model"
	"github.com/okalan/surprise-trip-booking/internal/queue"
	"github.com/okalan/surprise-trip-booking/internal/repository"
	"github.com/okalan/surprise-trip-booking/internal/router"
	queue_publisher "github.com/okalan/surprise-trip-booking/internal/service"
	"github.com/okalan/surprise-trip-booking/internal/trip"
	"github.com/okalan/surprise-trip-booking/internal/wizard"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs rate limiting, response caching and wizard sessions. A
	// nil client degrades to in-memory sessions with no limiter or cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; using in-memory sessions, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	profiles := repository.NewProfileRepo(db)
	bookings := repository.NewBookingRepo(db)

	var sessions wizard.SessionStore
	if rdb != nil {
		sessions = wizard.NewRedisSessionStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
	} else {
		sessions = wizard.NewMemorySessionStore()
	}

	gen := trip.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	machine := wizard.NewMachine(profiles, bookings, sessions, gen)
	machine.Publish = func(ctx context.Context, b model.Booking) {
		ev := queue.BookingCreatedEvent{
			BookingID:   b.ID,
			UserID:      b.UserID,
			BookingType: b.BookingType,
			Price:       b.Price,
			CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
		}
		if b.FromLocation != nil {
			ev.FromLocation = *b.FromLocation
		}
		if b.ToLocation != nil {
			ev.ToLocation = *b.ToLocation
		}
		if b.DepartureDate != nil {
			ev.DepartureDate = *b.DepartureDate
		}
		if b.MovieTitle != nil {
			ev.MovieTitle = *b.MovieTitle
		}
		if b.MovieDate != nil {
			ev.MovieDate = *b.MovieDate
		}
		// Best effort; a broker outage must not fail the booking.
		_ = queue_publisher.PublishBookingCreated(ctx, ev)
	}

	// Background consumer writes booking.created events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterBookingFlow(e,
		handler.NewProfileHandler(profiles, machine),
		handler.NewWizardHandler(machine),
		handler.NewBookingHandler(bookings),
		cfg.JWTSecret,
		config.LoadCacheConfig(),
		rdb,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
