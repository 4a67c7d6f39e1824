package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-coin-purchase/docs"
	"github.com/sbilibin2017/gw-coin-purchase/internal/facades"
	"github.com/sbilibin2017/gw-coin-purchase/internal/handlers"
	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/metrics"
	"github.com/sbilibin2017/gw-coin-purchase/internal/middlewares"
	"github.com/sbilibin2017/gw-coin-purchase/internal/repositories"
	"github.com/sbilibin2017/gw-coin-purchase/internal/services"
	"github.com/sbilibin2017/gw-coin-purchase/internal/theme"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parsed from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	SanityProjectID  string
	SanityBaseURL    string
	SanityDataset    string
	SanityAPIVersion string
	SanityUseCDN     bool

	OpenExchangeAppID string
	OpenExchangeURL   string

	UpstreamTimeout time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration
}

// @title gw-coin-purchase API
// @version 1.0.0
// @description Cryptocurrency purchase form with live coin and exchange-rate conversion
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, upstream, Redis and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Sanity config
	cfg.SanityProjectID = getEnv("SANITY_PROJECT_ID", "")
	cfg.SanityBaseURL = getEnv("SANITY_BASE_URL", "")
	cfg.SanityDataset = getEnv("SANITY_DATASET", facades.DefaultSanityDataset)
	cfg.SanityAPIVersion = getEnv("SANITY_API_VERSION", facades.DefaultSanityAPIVersion)
	if cfg.SanityUseCDN, err = strconv.ParseBool(getEnv("SANITY_USE_CDN", "false")); err != nil {
		return
	}

	// Open Exchange Rates config
	cfg.OpenExchangeAppID = getEnv("OPENEXCHANGE_APP_ID", "")
	cfg.OpenExchangeURL = getEnv("OPENEXCHANGE_URL", facades.DefaultOpenExchangeRatesURL)

	timeoutSecond, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECOND", "10"))
	if err != nil {
		return
	}
	cfg.UpstreamTimeout = time.Duration(timeoutSecond) * time.Second

	// Redis config, the cache is disabled when REDIS_HOST is empty
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	expSecond, err := strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60"))
	if err != nil {
		return
	}
	cfg.RedisExp = time.Duration(expSecond) * time.Second

	return
}

// run initializes the logger, the optional Redis cache, the upstream clients and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.SanityProjectID == "" {
		logger.Log.Warn("SANITY_PROJECT_ID is not set, the coin list will be empty")
	}
	if cfg.OpenExchangeAppID == "" {
		logger.Log.Warn("OPENEXCHANGE_APP_ID is not set, every rate will count as 1")
	}

	// Connect to Redis
	var cache services.SnapshotCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewSnapshotCacheRepository(rdb, cfg.RedisExp)
		logger.Log.Infof("Snapshot cache enabled, ttl %s", cfg.RedisExp)
	}

	// Initialize upstream clients
	coinsFacade := facades.NewSanityCoinsFacade(facades.SanityConfig{
		ProjectID:  cfg.SanityProjectID,
		BaseURL:    cfg.SanityBaseURL,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		UseCDN:     cfg.SanityUseCDN,
		Timeout:    cfg.UpstreamTimeout,
	}, nil)
	ratesFacade := facades.NewOpenExchangeRatesFacade(cfg.OpenExchangeAppID, cfg.OpenExchangeURL, cfg.UpstreamTimeout, nil)

	// Initialize services
	purchaseMetrics := metrics.NewPurchaseMetrics(prometheus.DefaultRegisterer)
	pageService := services.NewPageService(coinsFacade, ratesFacade, cache, purchaseMetrics)
	formService := services.NewFormService(purchaseMetrics)

	// Initialize handlers
	renderer, err := handlers.NewRenderer(theme.Default)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	pageHandler := handlers.NewPageHandler(pageService, formService, renderer)
	coinsHandler := handlers.NewGetCoinsHandler(pageService)
	ratesHandler := handlers.NewGetRatesHandler(pageService)
	convertHandler := handlers.NewConvertHandler(pageService, formService)
	purchaseHandler := handlers.NewPurchaseHandler(pageService, formService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", pageHandler)
	r.Post("/", pageHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/coins", coinsHandler)
		r.Get("/rates", ratesHandler)
		r.Post("/convert", convertHandler)
		r.Post("/purchase", purchaseHandler)
	})

	r.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
