package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/catalog"
	"github.com/jkarlost/calculadora/internal/config"
	"github.com/jkarlost/calculadora/internal/handler"
	"github.com/jkarlost/calculadora/internal/integrations/planner"
	"github.com/jkarlost/calculadora/internal/jobs"
	"github.com/jkarlost/calculadora/internal/middleware"
	"github.com/jkarlost/calculadora/internal/repository"
	"github.com/jkarlost/calculadora/internal/service"
	"github.com/jkarlost/calculadora/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Load line-item catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("Failed to load catalog: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	gen := planner.NewGenerator(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, cat, gen, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Schedule the follow-up job when email is configured
	if mailer.Enabled() {
		followUp := jobs.NewFollowUp(repo, mailer, logger)
		if err := followUp.Start(cfg.FollowupCron); err != nil {
			logger.Fatalf("Failed to start follow-up job: %v", err)
		}
		defer followUp.Stop()
	} else {
		logger.Warn("SMTP not configured, email features disabled")
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/catalog", h.Catalog).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/analyze", h.Analyze).Methods("POST")
	authRouter.HandleFunc("/retirement", h.Retirement).Methods("POST")
	authRouter.HandleFunc("/plan", h.Plan).Methods("POST")
	authRouter.HandleFunc("/report", h.Report).Methods("POST")
	authRouter.HandleFunc("/report/email", h.EmailReport).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // report generation may wait on the plan service
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
