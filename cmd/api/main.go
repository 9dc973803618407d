package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/config"
	"github.com/fieldforce/sales-agent-api/internal/core/agent"
	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
	"github.com/fieldforce/sales-agent-api/internal/core/chart"
	"github.com/fieldforce/sales-agent-api/internal/core/session"
	"github.com/fieldforce/sales-agent-api/internal/database"
	"github.com/fieldforce/sales-agent-api/internal/handlers"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
	"github.com/fieldforce/sales-agent-api/internal/scheduler"
	"github.com/fieldforce/sales-agent-api/internal/services"
	"github.com/fieldforce/sales-agent-api/internal/utils"

	_ "github.com/fieldforce/sales-agent-api/cmd/api/docs"
)

// @title Sales Agent API
// @version 1.0
// @description API documentation for the sales operations backend (chat agents, analytics, CRM)
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@fieldforce.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	utils.InitLogger()

	// Load config
	cfg := config.LoadConfig()
	log.Printf("🚀 Starting sales-agent-api on port %s", cfg.Port)

	// Init database. A connection failure is not fatal: the API keeps
	// serving chat and analytics from built-in data until the database
	// comes back.
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Printf("⚠️  Database unavailable, running in degraded mode: %v", err)
		db = nil
	} else {
		defer db.Close()
	}

	// Init repositories (use GORM instance). All of them stay nil when
	// the database is down; the services report unavailability instead.
	var (
		gormDB           *gorm.DB
		salespersonRepo  repositories.SalespersonRepo
		dealerRepo       repositories.DealerRepo
		meetingRepo      repositories.MeetingRepo
		leadRepo         repositories.LeadRepo
		loginSessionRepo repositories.LoginSessionRepo
		salesRecordRepo  repositories.SalesRecordRepo
		conversationRepo repositories.ConversationRepo
		revenueReader    analytics.RevenueReader
	)
	if db != nil {
		gormDB = db.GORM
		salespersonRepo = repositories.NewSalespersonRepo(db.GORM)
		dealerRepo = repositories.NewDealerRepo(db.GORM)
		meetingRepo = repositories.NewMeetingRepo(db.GORM)
		leadRepo = repositories.NewLeadRepo(db.GORM)
		loginSessionRepo = repositories.NewLoginSessionRepo(db.GORM)
		salesRecordRepo = repositories.NewSalesRecordRepo(db.GORM)
		conversationRepo = repositories.NewConversationRepo(db.GORM)
		revenueReader = repositories.NewRevenueReader(db.GORM)
	}

	// Init chart renderer and the advanced analytics agent
	renderer := chart.NewRenderer()
	advancedAgent := analytics.NewAgent(renderer, revenueReader, cfg.OpenAIKey)
	if cfg.OpenAIKey != "" {
		log.Printf("🤖 LLM narration enabled")
	} else {
		log.Printf("⚠️  LLM narration disabled (no API key), using template responses")
	}

	// Init agent registry and in-memory chat session store
	registry := agent.NewRegistry(advancedAgent)
	sessions := session.NewStore()

	// Init services
	chatService := services.NewChatService(registry, sessions, conversationRepo, gormDB)
	salespersonService := services.NewSalespersonService(salespersonRepo)
	salesRecordService := services.NewSalesRecordService(salesRecordRepo, salespersonRepo)
	loginSessionService := services.NewLoginSessionService(loginSessionRepo, salespersonRepo)

	// Init handlers
	chatHandler := handlers.NewChatHandler(chatService)
	analyticsHandler := handlers.NewAnalyticsHandler(advancedAgent, renderer)
	salespersonHandler := handlers.NewSalespersonHandler(salespersonService)
	dealerHandler := handlers.NewDealerHandler(dealerRepo)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo, salespersonRepo)
	leadHandler := handlers.NewLeadHandler(leadRepo, salespersonRepo)
	loginSessionHandler := handlers.NewLoginSessionHandler(loginSessionService)
	salesRecordHandler := handlers.NewSalesRecordHandler(salesRecordService)
	healthHandler := handlers.NewHealthHandler(db)

	// Init maintenance scheduler
	maintenance := scheduler.New(loginSessionService, conversationRepo)
	if err := maintenance.Start(); err != nil {
		log.Printf("⚠️  Scheduler failed to start: %v", err)
	}
	defer maintenance.Stop()

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Sales Agent API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Chat routes
	app.Post("/api/chat", chatHandler.Chat)

	// Analytics routes
	app.Post("/api/analytics/advanced", analyticsHandler.Advanced)
	app.Get("/api/dashboard/charts", analyticsHandler.DashboardCharts)

	// Salesperson routes
	app.Get("/api/salespersons", salespersonHandler.List)
	app.Post("/api/salespersons", salespersonHandler.Create)
	app.Get("/api/salespersons/:id", salespersonHandler.Get)
	app.Put("/api/salespersons/:id", salespersonHandler.Update)
	app.Get("/api/salespersons/:id/qr", salespersonHandler.ContactQR)

	// Dealer routes
	app.Get("/api/dealers", dealerHandler.List)
	app.Post("/api/dealers", dealerHandler.Create)

	// Meeting routes
	app.Get("/api/meetings", meetingHandler.List)
	app.Post("/api/meetings", meetingHandler.Create)

	// Lead routes
	app.Get("/api/leads", leadHandler.List)
	app.Post("/api/leads", leadHandler.Create)

	// Login session routes
	app.Get("/api/login-sessions", loginSessionHandler.List)
	app.Post("/api/login-sessions", loginSessionHandler.Create)
	app.Put("/api/login-sessions/:id/logout", loginSessionHandler.Logout)

	// Sales record routes
	app.Get("/api/sales-records", salesRecordHandler.List)
	app.Post("/api/sales-records", salesRecordHandler.Create)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ sales-agent-api running at :%s", port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", port)
	log.Fatal(app.Listen(":" + port))
}
