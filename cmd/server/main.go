package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bankist/backend/docs"
	"github.com/bankist/backend/internal/audit"
	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/config"
	"github.com/bankist/backend/internal/database"
	"github.com/bankist/backend/internal/handlers"
	mW "github.com/bankist/backend/internal/middleware"
	"github.com/bankist/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Bankist Dashboard API
// @version 1.0
// @description Account dashboard for the Bankist demo bank: balances, transfers, loans and account closure
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load(os.Getenv("BANKIST_CONFIG"))
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	seedPath := cfg.SeedPath()
	accounts, err := bank.LoadAccounts(seedPath)
	if err != nil {
		log.Fatalf("[BANK] Failed to load accounts: %v", err)
	}
	store, err := bank.NewStore(accounts)
	if err != nil {
		log.Fatalf("[BANK] Failed to build account store: %v", err)
	}
	if seedPath == "" {
		seedPath = "built-in seed"
	}
	log.Printf("[BANK] Loaded %d accounts from %s", store.Len(), seedPath)

	teller := bank.NewTeller(store, time.Now)
	teller.Timeout = cfg.SessionTimeout
	teller.ResetSortOnLogout = cfg.ResetSortOnLogout

	// Initialize services
	redisClient := database.InitRedis(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	iso20022Service := services.NewISO20022Service(cfg.BankBIC, cfg.BankName)
	dashboardService := services.NewDashboardService(teller, iso20022Service, audit.NewLogger())
	authService := services.NewAuthService(dashboardService, redisClient, cfg.JWTSecret, cfg.JWTExpiry)
	qrService := services.NewQRService(redisClient, cfg.QRCodeTTL)
	qrHandler := handlers.NewQRHandler(qrService, dashboardService)

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient, cfg.JWTSecret, dashboardService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Message-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/static/*", http.StripPrefix("/static/", mW.StaticFileServer("./static")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authService.Login)

		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Post("/auth/logout", authService.Logout)

			r.Get("/dashboard", dashboardService.GetDashboard)
			r.Post("/movements/sort", dashboardService.ToggleSort)
			r.Get("/movements/recent", dashboardService.GetRecentMovements)

			r.Post("/transfers", dashboardService.Transfer)
			r.Get("/transfers/{messageId}/pacs008", iso20022Service.GetPacs008)
			r.Get("/transfers/{messageId}/status", iso20022Service.GetStatusReport)

			r.Post("/loans", dashboardService.RequestLoan)
			r.Post("/account/close", dashboardService.CloseAccount)

			r.Get("/accounts", dashboardService.SearchRecipients)
			r.Get("/accounts/name-enquiry", dashboardService.NameEnquiry)

			r.Post("/qr/generate", qrHandler.GenerateQR)
			r.Post("/qr/process", qrHandler.ProcessQR)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
