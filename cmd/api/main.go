package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/mariekamara/boutique-backend/internal/modules/auth"
	"github.com/mariekamara/boutique-backend/internal/modules/boutique"
	"github.com/mariekamara/boutique-backend/internal/modules/client"
	"github.com/mariekamara/boutique-backend/internal/modules/notification"
	"github.com/mariekamara/boutique-backend/internal/modules/reservation"
	"github.com/mariekamara/boutique-backend/internal/modules/stock"
	"github.com/mariekamara/boutique-backend/internal/modules/user"
	"github.com/mariekamara/boutique-backend/pkg/logging"
)

func main() {
	log := logging.New()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	log.Info("connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Boutiques & Clients ─────────────────────────────────
	boutiqueRepo := boutique.NewPostgresRepository(db)
	boutiqueService := boutique.NewService(boutiqueRepo)
	boutique.NewHandler(boutiqueService).RegisterRoutes(router)

	clientRepo := client.NewPostgresRepository(db)
	clientService := client.NewService(clientRepo)
	client.NewHandler(clientService).RegisterRoutes(router)

	// ── Stock ───────────────────────────────────────────────
	stockRepo := stock.NewPostgresRepository(db)
	stockService := stock.NewService(stockRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	// ── Deficit Alerts ──────────────────────────────────────
	alertGateways := notification.GatewayRegistry{
		notification.ChannelEmail: notification.NewEmailGateway(
			os.Getenv("SMTP_HOST"),
			os.Getenv("SMTP_PORT"),
			os.Getenv("ALERT_FROM_ADDRESS"),
		),
		notification.ChannelPush: notification.NewPushGateway(
			os.Getenv("PUSH_API_KEY"),
			os.Getenv("PUSH_BASE_URL"),
		),
	}
	notifier := notification.NewService(alertGateways, log)

	// ── Reservation Workflow ────────────────────────────────
	reservationRepo := reservation.NewPostgresRepository(db)
	reservationService := reservation.NewService(
		reservationRepo, stockService, boutiqueService, clientService, notifier, log)
	reservation.NewHandler(reservationService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("boutique API server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
