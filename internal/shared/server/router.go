package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptea-backend/internal/analyze"
	"promptea-backend/internal/engine"
	"promptea-backend/internal/feedback"
	"promptea-backend/internal/shared/config"
	"promptea-backend/internal/shared/metrics"
	"promptea-backend/internal/shared/server/middleware"
	"promptea-backend/internal/shared/server/respond"
	"promptea-backend/internal/shared/storage/db"
	"promptea-backend/internal/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE": {Rate: 1, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/analyze" {
					return "ANALYZE"
				}
				return ""
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var telemetryRepo telemetry.Repo
	if sqlDB != nil {
		telemetryRepo = &telemetry.PGRepo{DB: sqlDB, TTLDays: cfg.TelemetryTTLDays}
	} else {
		telemetryRepo = telemetry.NewMemoryRepo()
	}
	var feedbackRepo feedback.Repo
	if sqlDB != nil {
		feedbackRepo = &feedback.PGRepo{DB: sqlDB}
	} else {
		feedbackRepo = feedback.NewMemoryRepo()
	}

	eng := engine.New(cfg.EngineVersion)
	analyzeHandler := analyze.NewHandler(eng, telemetryRepo, cfg.DebugAnalyze)
	telemetryHandler := telemetry.NewHandler(telemetryRepo)
	feedbackHandler := feedback.NewHandler(telemetryRepo, feedbackRepo)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "engineVersion": eng.Version()})
	})
	analyzeHandler.RegisterRoutes(api)
	telemetryHandler.RegisterRoutes(api)
	feedbackHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
