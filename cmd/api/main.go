package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/promarket/promarket-server/internal/config"
	"github.com/promarket/promarket-server/internal/handlers"
	"github.com/promarket/promarket-server/internal/middleware"
	"github.com/promarket/promarket-server/internal/realtime"
	"github.com/promarket/promarket-server/internal/services/notify"
	"github.com/promarket/promarket-server/internal/services/orders"
	"github.com/promarket/promarket-server/internal/services/reviews"
	"github.com/promarket/promarket-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}

	hub := realtime.NewHub()
	go hub.Run()

	rdb := realtime.NewRedis()

	fanout := notify.NewFanout(st, hub, rdb)
	orderSvc := orders.NewService(st, fanout)
	reviewSvc := reviews.NewService(st, fanout)

	authH := &handlers.AuthHandler{
		Store:     st,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		Store:           st,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	proH := handlers.NewProHandler(st)
	orderH := handlers.NewOrderHandler(orderSvc)
	notifH := handlers.NewNotificationHandler(fanout, hub, cfg.JWTSecret)
	reviewH := handlers.NewReviewHandler(reviewSvc)
	portfolioH := handlers.NewPortfolioHandler(st, cfg.UploadDir)
	favoriteH := handlers.NewFavoriteHandler(st)
	promoH := &handlers.PromoHandler{}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/", "./public")
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// public
	api.Post("/login", authH.Login)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/pros", proH.List)
	api.Get("/portfolio/:proId", portfolioH.ListForPro)
	api.Get("/reviews/:proId", reviewH.ListForPro)

	// protected (JWT)
	protected := api.Group("/",
		middleware.JWTFromHeader(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Post("/orders", orderH.Create)
	protected.Post("/orders/:id/complete", orderH.Complete)
	protected.Get("/my-orders", orderH.MyOrders)

	protected.Get("/notifications", notifH.List)
	protected.Post("/notifications/:id/read", notifH.MarkRead)

	protected.Post("/reviews", reviewH.Submit)
	protected.Post("/reviews/:id/reply", reviewH.Reply)

	protected.Post("/favorites/:proId", favoriteH.Toggle)

	protected.Post("/portfolio",
		middleware.RequireRoles("pro"),
		portfolioH.Create,
	)
	protected.Delete("/portfolio/:id", portfolioH.Delete)

	protected.Post("/apply-promo", promoH.Apply)

	// WebSocket push, token via query param
	app.Get("/ws/notifications", websocket.New(notifH.WebSocketHandler))

	log.Info().Str("port", cfg.AppPort).Msg("promarket server listening")
	log.Fatal().Err(app.Listen(":" + cfg.AppPort)).Msg("server stopped")
}
