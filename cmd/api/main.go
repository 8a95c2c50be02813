package main

import (
	"log"
	"os"
	"time"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
	"github.com/StuivertjeP/tolhuis-app/internal/daypart"
	"github.com/StuivertjeP/tolhuis-app/internal/db"
	"github.com/StuivertjeP/tolhuis-app/internal/llm"
	"github.com/StuivertjeP/tolhuis-app/internal/menuapi"
	"github.com/StuivertjeP/tolhuis-app/internal/middleware"
	"github.com/StuivertjeP/tolhuis-app/internal/optin"
	"github.com/StuivertjeP/tolhuis-app/internal/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"SHEETS_SPREADSHEET_ID",
		"JWT_SECRET",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	if pgDB != nil {
		defer pgDB.Close()
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalog.NewSheetsClient())
	weatherClient := weather.NewClient()
	openaiClient := llm.NewOpenAIClient()

	var copyClient llm.Client
	if openaiClient.HasKey() {
		copyClient = openaiClient
	} else {
		log.Println("no OpenAI key configured, serving template copy")
	}

	var optinRepo optin.Repository
	if pgDB != nil {
		optinRepo = optin.NewPostgresRepository(pgDB)
	} else {
		optinRepo = optin.NewInMemoryRepository()
	}
	optinService := optin.NewService(optinRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	apiHandler := menuapi.NewHandler(
		catalogService,
		weatherClient,
		copyClient,
		daypart.ConfigFromEnv(),
	)
	llmHandler := llm.NewHandler(openaiClient)
	optinHandler := optin.NewHandler(optinService)

	// ───────────────────────── GUEST ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/menu", apiHandler.Menu())
		api.GET("/weekmenu", apiHandler.Weekmenu())
		api.GET("/period", apiHandler.Period())
		api.GET("/recommendations", apiHandler.Recommendations())
		api.GET("/dishes/:id/pairings", apiHandler.Pairings())
		api.GET("/context", apiHandler.Context())

		api.POST("/chat", llmHandler.Chat())
		api.POST("/openai", llmHandler.Describe())

		api.POST("/optin", optinHandler.Register())
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/cache/invalidate", apiHandler.InvalidateCache())
		admin.GET("/optins", optinHandler.List())
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
