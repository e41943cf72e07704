package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pipetrack/pipetrack/internal/infra/database"
	"github.com/pipetrack/pipetrack/internal/infra/http/handlers"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/infra/mail"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
	"github.com/pipetrack/pipetrack/internal/infra/session"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// RabbitMQ and SMTP are optional: without them the server still runs,
	// just without record events and welcome mail.
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.EventProducer
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			"no-reply@pipetrack.dev",
		)
	}

	sessions := session.NewStore()

	// Repositories
	userRepo := database.NewUserRepository(db)
	pipelineRepo := database.NewPipelineRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	jobRepo := database.NewJobRepository(db)

	// UseCases
	seeder := usecase.NewSeeder(pipelineRepo, customerRepo, jobRepo)
	loginUC := usecase.NewLoginUseCase(userRepo, seeder, mailSender)
	dashboardUC := usecase.NewDashboardUseCase(jobRepo, customerRepo, pipelineRepo)
	listJobsUC := usecase.NewListJobsUseCase(jobRepo, customerRepo, pipelineRepo)
	createJobUC := usecase.NewCreateJobUseCase(jobRepo, customerRepo, pipelineRepo, producer)
	listCustomersUC := usecase.NewListCustomersUseCase(customerRepo, jobRepo)
	createCustomerUC := usecase.NewCreateCustomerUseCase(customerRepo, producer)
	listPipelinesUC := usecase.NewListPipelinesUseCase(pipelineRepo, jobRepo)
	createPipelineUC := usecase.NewCreatePipelineUseCase(pipelineRepo, producer)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginUC, sessions)
	userHandler := handlers.NewUserHandler(userRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	jobHandler := handlers.NewJobHandler(listJobsUC, createJobUC)
	customerHandler := handlers.NewCustomerHandler(listCustomersUC, createCustomerUC)
	pipelineHandler := handlers.NewPipelineHandler(listPipelinesUC, createPipelineUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/github", authHandler.HandleGitHubLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))

		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/api/user", userHandler.HandleGetUser)
		r.Get("/api/dashboard/stats", dashboardHandler.HandleGetStats)
		r.Get("/api/jobs", jobHandler.HandleList)
		r.Post("/api/jobs", jobHandler.HandleCreate)
		r.Get("/api/customers", customerHandler.HandleList)
		r.Post("/api/customers", customerHandler.HandleCreate)
		r.Get("/api/pipelines", pipelineHandler.HandleList)
		r.Post("/api/pipelines", pipelineHandler.HandleCreate)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("pipetrack API listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
