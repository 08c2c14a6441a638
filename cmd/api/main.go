package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/arohalabs/pocket-cfo-be/internal/core/assistant"
	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/core/monitor"
	"github.com/arohalabs/pocket-cfo-be/internal/core/reports"
	"github.com/arohalabs/pocket-cfo-be/internal/handlers"
	"github.com/arohalabs/pocket-cfo-be/internal/models"
	"github.com/arohalabs/pocket-cfo-be/internal/repositories"
	"github.com/arohalabs/pocket-cfo-be/internal/services"
	"github.com/arohalabs/pocket-cfo-be/internal/shared/config"
	"github.com/arohalabs/pocket-cfo-be/internal/shared/database"
	"github.com/arohalabs/pocket-cfo-be/internal/shared/utils"
	"github.com/arohalabs/pocket-cfo-be/internal/state"

	_ "github.com/arohalabs/pocket-cfo-be/cmd/api/docs"
)

// @title Pocket CFO API
// @version 1.0
// @description Virtual CFO dashboard backend for small NZ businesses
// @contact.name API Support
// @contact.email support@arohalabs.nz
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting pocket-cfo-api on port %s", cfg.Port)

	if err := industry.Validate(); err != nil {
		log.Fatalf("❌ Industry configuration invalid: %v", err)
	}

	// Init snapshot storage
	var store repositories.SnapshotStore
	var convRepo repositories.ConversationRepo

	switch cfg.StorageDriver {
	case "postgres":
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.StateSnapshot{}, &models.ConversationLog{}); err != nil {
			log.Fatalf("❌ Failed to migrate schema: %v", err)
		}
		store = repositories.NewPostgresStore(db)
		convRepo = repositories.NewConversationRepo(db)
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}()
	default:
		sqliteStore, err := repositories.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("❌ Failed to open sqlite store: %v", err)
		}
		store = sqliteStore
		log.Printf("✅ Using SQLite store: %s", cfg.SQLitePath)
	}
	defer store.Close()

	// Load or seed the state snapshot
	initial := state.DefaultSnapshot()
	if data, found, err := store.Load(state.StoreKey); err != nil {
		log.Fatalf("❌ Failed to load state snapshot: %v", err)
	} else if found {
		snap, err := state.DecodeSnapshot(data)
		if err != nil {
			log.Fatalf("❌ Failed to decode state snapshot: %v", err)
		}
		initial = snap
		log.Println("✅ Restored state snapshot")
	} else {
		log.Println("✅ Seeded fresh state snapshot")
	}

	container := state.NewContainer(initial, func(snap state.Snapshot) {
		data, err := snap.Encode()
		if err != nil {
			utils.LogError("Failed to encode state snapshot", err, nil)
			return
		}
		if err := store.Save(state.StoreKey, data); err != nil {
			utils.LogError("Failed to persist state snapshot", err, nil)
		}
	})

	// Init assistant
	responder, err := assistant.NewResponder("template")
	if err != nil {
		log.Fatalf("❌ Failed to initialize assistant: %v", err)
	}
	scheduler := assistant.NewScheduler(cfg.AssistantDelay)
	defer scheduler.Shutdown()
	log.Printf("🤖 Assistant thinking delay: %s", cfg.AssistantDelay)

	// Init services
	dashboardService := services.NewDashboardService(container)
	alertService := services.NewAlertService(container)
	scenarioService := services.NewScenarioService(container)
	conversationService := services.NewConversationService(container, responder, scheduler, convRepo)
	widgetService := services.NewWidgetService(container)
	collectionService := services.NewCollectionService(container)
	onboardingService := services.NewOnboardingService(container)
	reportService := services.NewReportService(container, reports.NewBuilder(cfg.Locale))

	// Init alert monitor
	alertMonitor := monitor.New(container, cfg.MonitorSchedule, cfg.RunwayFloor)
	if err := alertMonitor.Start(); err != nil {
		log.Fatalf("❌ Failed to start alert monitor: %v", err)
	}
	defer alertMonitor.Stop()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(cfg.StorageDriver)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	alertHandler := handlers.NewAlertHandler(alertService)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)
	chatHandler := handlers.NewChatHandler(conversationService, cfg.BaseURL)
	widgetHandler := handlers.NewWidgetHandler(widgetService)
	cashHandler := handlers.NewCashHandler(collectionService)
	taxHandler := handlers.NewTaxHandler()
	reportHandler := handlers.NewReportHandler(reportService)
	industryHandler := handlers.NewIndustryHandler()
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Pocket CFO API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Dashboard routes
	app.Get("/dashboard", dashboardHandler.GetDashboard)

	// Alert routes
	app.Get("/alerts", alertHandler.ListAlerts)
	app.Get("/alerts/stats", alertHandler.GetAlertStats)
	app.Patch("/alerts/:id/dismiss", alertHandler.DismissAlert)

	// Scenario routes
	app.Get("/scenarios", scenarioHandler.ListScenarios)
	app.Post("/scenarios", scenarioHandler.CreateScenario)
	app.Get("/scenarios/:id", scenarioHandler.GetScenario)
	app.Put("/scenarios/:id", scenarioHandler.UpdateScenario)
	app.Delete("/scenarios/:id", scenarioHandler.DeleteScenario)
	app.Post("/scenarios/:id/duplicate", scenarioHandler.DuplicateScenario)
	app.Patch("/scenarios/:id/activate", scenarioHandler.ActivateScenario)

	// Conversation routes
	app.Get("/conversations", chatHandler.ListConversations)
	app.Post("/conversations", chatHandler.CreateConversation)
	app.Get("/conversations/:id", chatHandler.GetConversation)
	app.Delete("/conversations/:id", chatHandler.DeleteConversation)
	app.Patch("/conversations/:id/activate", chatHandler.ActivateConversation)
	app.Post("/conversations/:id/messages", chatHandler.SendMessage)
	app.Get("/ask/qr", chatHandler.GetAskQR)

	// Industry routes
	app.Get("/industries", industryHandler.ListIndustries)
	app.Get("/industries/:id", industryHandler.GetIndustryConfig)
	app.Get("/industries/:id/widgets/catalog", industryHandler.GetWidgetCatalog)

	// Widget layout routes
	app.Get("/industries/:industry/widgets/layout", widgetHandler.GetLayout)
	app.Get("/industries/:industry/widgets/pool", widgetHandler.GetPool)
	app.Post("/industries/:industry/widgets", widgetHandler.AddWidget)
	app.Post("/industries/:industry/widgets/reset", widgetHandler.ResetLayout)
	app.Delete("/industries/:industry/widgets/:id", widgetHandler.RemoveWidget)
	app.Patch("/industries/:industry/widgets/:id/toggle", widgetHandler.ToggleWidget)
	app.Patch("/industries/:industry/widgets/:id/move", widgetHandler.MoveWidget)

	// Cash routes
	app.Get("/cash/ar-aging", cashHandler.GetARAging)
	app.Get("/cash/collections", cashHandler.GetCollectionsQueue)
	app.Get("/cash/collections/tasks", cashHandler.ListCollectionTasks)
	app.Post("/cash/collections/tasks", cashHandler.CreateCollectionTask)
	app.Patch("/cash/collections/tasks/:id", cashHandler.UpdateCollectionTask)

	// Tax routes
	app.Get("/tax/gst", taxHandler.GetGSTPosition)
	app.Get("/tax/payroll", taxHandler.GetPayrollObligations)

	// Report routes
	app.Get("/reports/:type", reportHandler.DownloadReport)

	// Onboarding routes
	app.Get("/profile", onboardingHandler.GetProfile)
	app.Put("/profile", onboardingHandler.SaveProfile)

	log.Printf("✅ pocket-cfo-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
