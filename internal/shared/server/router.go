package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-review/internal/llm"
	openai "resume-review/internal/llm/openai"
	"resume-review/internal/reviews"
	"resume-review/internal/sessions"
	"resume-review/internal/shared/config"
	"resume-review/internal/shared/server/middleware"
	"resume-review/internal/shared/server/respond"
	"resume-review/internal/shared/storage/db"
	"resume-review/internal/shared/telemetry"
	"resume-review/internal/uploads"
	"resume-review/internal/users"
	"resume-review/web"
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
		middleware.Auth(),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
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

	var reviewRepo reviews.Repo
	var userRepo users.Repo
	if sqlDB != nil {
		reviewRepo = &reviews.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		reviewRepo = reviews.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var llmClient llm.Client
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("failed to build llm client, falling back to heuristic reviews: %v", err)
		} else {
			llmClient = client
		}
	}

	reviewSvc := &reviews.Service{Repo: reviewRepo, LLM: llmClient}
	reviewHandler := reviews.NewHandler(reviewSvc)

	sessionSvc := sessions.NewService(userRepo)
	sessionSvc.Observe(func(state sessions.State) {
		telemetry.Info("auth.state", map[string]any{
			"authenticated": state.Authenticated,
			"userId":        state.User.ID,
		})
	})
	sessionHandler := sessions.NewHandler(sessionSvc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	sessionHandler.RegisterRoutes(api)
	uploads.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)

	web.RegisterRoutes(r)

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
