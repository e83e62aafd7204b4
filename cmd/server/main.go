package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vgs-buy-tracker/internal/advisor"
	"vgs-buy-tracker/internal/bot"
	"vgs-buy-tracker/internal/cache"
	"vgs-buy-tracker/internal/config"
	"vgs-buy-tracker/internal/db"
	"vgs-buy-tracker/internal/handler"
	"vgs-buy-tracker/internal/job"
	"vgs-buy-tracker/internal/provider"
	"vgs-buy-tracker/internal/repository"
	"vgs-buy-tracker/internal/service"
	"vgs-buy-tracker/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "vgs-buy-tracker/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	initPostgresFunc     = db.InitPostgres
	initRedisFunc        = cache.InitRedis
	initTracerFunc       = tracing.InitTracer
	newBarRepoFunc       = repository.NewBarRepository
	newYahooProviderFunc = func(tracer trace.Tracer) service.BarProvider {
		return provider.NewYahooProvider(tracer)
	}
	newHistoryServiceFunc   = service.NewHistoryService
	newDashboardServiceFunc = service.NewDashboardService
	newBarPollerFunc        = job.NewBarPoller
	startPollerFunc         = func(p *job.BarPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc    = bot.StartTelegramBot
	newHandlerFunc          = handler.New
	newRouterFunc           = gin.Default
	setupSignalNotify       = signal.Notify
	waitForSignalFunc       = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc     = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc  = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           VGS Buy Tracker API
// @version         1.0
// @description     Buy-the-dip signals and DCA simulation for a single ETF.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Bar repository and migrations, only with a database
	var barStore service.BarStore
	if db.Pool != nil {
		barRepo := newBarRepoFunc(db.Pool, tracer)
		if err := barRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		barStore = barRepo
	}

	var redisClient service.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}

	// History pipeline: live feed, stale bars, synthetic fallback
	yahoo := newYahooProviderFunc(tracer)
	historyService := newHistoryServiceFunc(
		tracer, yahoo, barStore, redisClient,
		provider.SyntheticBars, cfg.Symbol, cfg.LookbackDays,
	)
	dashboardService := newDashboardServiceFunc(tracer, historyService)

	// Background bar refresh keeps the stale-data fallback fresh
	poller := newBarPollerFunc(tracer, historyService, cfg.BarPollSecs)
	startPollerFunc(poller, ctx)

	// Telegram bot with optional advisor
	var explainer bot.Explainer
	if cfg.OpenAIAPIKey != "" {
		llmClient := advisor.NewOpenAIClient(cfg.OpenAIAPIKey)
		explainer = advisor.NewAdvisorService(tracer, llmClient, cfg.OpenAIModel)
		log.Println("advisor enabled")
	}
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(dashboardService, cfg.Params(), explainer)

	// Create handlers and routes
	h := newHandlerFunc(tracer, dashboardService, historyService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("vgs-buy-tracker"))

	h.RegisterRoutes(r, cfg.APIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
