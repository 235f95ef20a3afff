package main // HTTP server entry point

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/contactanuptop/movie-booking/internal/booking"
	"github.com/contactanuptop/movie-booking/internal/config"
	"github.com/contactanuptop/movie-booking/internal/handler"
	"github.com/contactanuptop/movie-booking/internal/queue"
	"github.com/contactanuptop/movie-booking/internal/router"
	queue_publisher "github.com/contactanuptop/movie-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly
	cfg := config.Load()

	svc := booking.NewService()
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg))
	router.RegisterPublic(e, handler.NewPublicHandler(svc), config.LoadCacheConfig(), rdb)
	router.RegisterOwner(e, handler.NewOwnerHandler(svc), cfg.JWTSecret)
	router.RegisterCustomer(e,
		handler.NewCustomerHandler(svc, queue_publisher.PublishSeatsBooked),
		cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	// The consumer keeps its own reconnect loop; it is opt-in so the
	// API can run without a broker.
	if os.Getenv("BOOKING_CONSUMER_ENABLED") == "true" {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
