package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/supercells/supercells-api/internal/infra/database"
	"github.com/supercells/supercells-api/internal/infra/http/handlers"
	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/infra/integration/jigsawstack"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
	"github.com/supercells/supercells-api/internal/infra/mail"
	"github.com/supercells/supercells-api/internal/infra/queue"
	"github.com/supercells/supercells-api/internal/infra/scraper"
	"github.com/supercells/supercells-api/internal/usecase"
)

// discoveryRunner lets the queue worker drive the same find-leads
// workflow the synchronous endpoint uses.
type discoveryRunner struct {
	findUC *usecase.FindLeadsUseCase
}

func (r *discoveryRunner) Run(ctx context.Context, job queue.DiscoveryJob) (int, error) {
	output, err := r.findUC.Execute(ctx, usecase.FindLeadsInput{
		UserID:   job.UserID,
		Industry: job.Industry,
		Location: job.Location,
		Persona:  job.Persona,
		Count:    job.Count,
	})
	if err != nil {
		return 0, err
	}
	return output.Inserted, nil
}

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// RabbitMQ is optional: without it async discovery returns 503 and
	// everything else keeps working.
	var rabbitMQ *queue.RabbitMQ
	var rabbitConn *amqp.Connection
	if os.Getenv("RABBITMQ_HOST") != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
	} else {
		log.Println("⚠️ RABBITMQ_HOST not set, async discovery disabled")
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)
	msgRepo := database.NewSentMessageRepository(db)
	settingsRepo := database.NewSettingsRepository(db)

	// 2. Gateways and adapters
	aiClient := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_URL"))
	searchClient := jigsawstack.NewClient(os.Getenv("JIGSAWSTACK_API_KEY"))
	webScraper := scraper.NewScraper()

	mailPort := 587
	if raw := os.Getenv("MAIL_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			mailPort = p
		}
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
	)

	// 3. UseCases
	qualifyUC := usecase.NewQualifyLeadUseCase(leadRepo, userRepo, aiClient, webScraper)
	listUC := usecase.NewListLeadsUseCase(leadRepo, msgRepo)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo)
	updateStatusUC := usecase.NewUpdateStatusUseCase(leadRepo)
	findUC := usecase.NewFindLeadsUseCase(leadRepo, userRepo, aiClient)
	highPotentialUC := usecase.NewFindHighPotentialUseCase(leadRepo, userRepo, aiClient)
	generateUC := usecase.NewGenerateMessageUseCase(leadRepo, userRepo, aiClient)
	sendUC := usecase.NewSendMessageUseCase(leadRepo, msgRepo, mailSender)
	messagesUC := usecase.NewListMessagesUseCase(msgRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, userRepo)

	// 4. Worker (consumes the queue and runs discovery)
	var producer usecase.QueueProducerInterface
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		worker := queue.NewWorker(rabbitMQ.Ch, &discoveryRunner{findUC: findUC})
		go worker.Start(queue.QueueName)
	}

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(qualifyUC, listUC, deleteUC, updateStatusUC)
	discoveryHandler := handlers.NewDiscoveryHandler(findUC, highPotentialUC, producer)
	outreachHandler := handlers.NewOutreachHandler(generateUC, sendUC, messagesUC)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)
	companyHandler := handlers.NewCompanyHandler(searchClient)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/company/search", companyHandler.HandleSearch)

	// Authenticated surface
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(os.Getenv("AUTH_JWT_SECRET")))
		r.Use(middleware.ProfileSync(userRepo))

		r.Get("/api/leads", leadHandler.HandleList)
		r.Post("/api/leads", leadHandler.HandleCreate)
		r.Delete("/api/leads/{id}", leadHandler.HandleDelete)
		r.Patch("/api/leads/{id}/status", leadHandler.HandleUpdateStatus)
		r.Post("/api/leads/{id}/analyze", leadHandler.HandleAnalyze)

		r.Post("/api/leads/find", discoveryHandler.HandleFind)
		r.Post("/api/leads/find/async", discoveryHandler.HandleFindAsync)
		r.Post("/api/leads/high-potential", discoveryHandler.HandleHighPotential)

		r.Post("/api/outreach/generate", outreachHandler.HandleGenerate)
		r.Post("/api/outreach/send", outreachHandler.HandleSend)
		r.Get("/api/messages", outreachHandler.HandleMessages)

		r.Get("/api/settings/crm", settingsHandler.HandleGetCRM)
		r.Put("/api/settings/crm", settingsHandler.HandleSaveCRM)
		r.Put("/api/settings/avatar", settingsHandler.HandleUpdateAvatar)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Supercells API running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
