package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cinemahub/cinemahub-api/internal/facades"
	"github.com/cinemahub/cinemahub-api/internal/handlers"
	"github.com/cinemahub/cinemahub-api/internal/jwt"
	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/middlewares"
	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/notifier"
	"github.com/cinemahub/cinemahub-api/internal/password"
	"github.com/cinemahub/cinemahub-api/internal/repositories"
	"github.com/cinemahub/cinemahub-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// devJWTSecret is used when JWT_SECRET is not set. Only acceptable in
// development; startup refuses it in any other environment.
const devJWTSecret = "cinemahub-dev-secret-key-2024-change-in-production"

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	appEnv   string
	logLevel string

	jwtSecret    string
	resetBaseURL string

	postgresDSN string

	redisAddr     string
	redisPassword string
	redisDB       int

	kafkaBroker string
	kafkaTopic  string

	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
	from     string

	youtubeAPIKey string
	traktClientID string
}

// @title CinemaHub API
// @version 1.0.0
// @description Movie catalog backend: auth with email verification, watchlist, reviews, and YouTube/Trakt proxies
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		fmt.Println("failed to parse config:", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		fmt.Println("application stopped with error:", err)
		os.Exit(1)
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

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		appHost:  getEnv("APP_HOST", "localhost"),
		appPort:  getEnv("APP_PORT", "8080"),
		appEnv:   getEnv("APP_ENV", "development"),
		logLevel: getEnv("APP_LOG_LEVEL", "info"),

		jwtSecret:    getEnv("JWT_SECRET", ""),
		resetBaseURL: getEnv("RESET_BASE_URL", "http://localhost:3000"),

		postgresDSN: getEnv("POSTGRES_DSN", ""),

		redisAddr:     getEnv("REDIS_ADDR", ""),
		redisPassword: getEnv("REDIS_PASSWORD", ""),

		kafkaBroker: getEnv("KAFKA_BROKER", ""),
		kafkaTopic:  getEnv("KAFKA_TOPIC", "notification-events"),

		smtpHost: getEnv("SMTP_HOST", ""),
		smtpPort: getEnv("SMTP_PORT", "587"),
		smtpUser: getEnv("SMTP_USER", ""),
		smtpPass: getEnv("SMTP_PASS", ""),
		from:     getEnv("EMAIL_FROM", "CinemaHub <noreply@cinemahub.com>"),

		youtubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		traktClientID: getEnv("TRAKT_CLIENT_ID", ""),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.redisDB = redisDB

	if cfg.jwtSecret == "" {
		if cfg.appEnv != "development" {
			return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.appEnv)
		}
		cfg.jwtSecret = devJWTSecret
	}

	return cfg, nil
}

// run initializes the logger, storage, notifier, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	if cfg.jwtSecret == devJWTSecret {
		log.Warn("JWT_SECRET is not set, using the built-in development secret. Do not run this in production.")
	}

	// Credential store: PostgreSQL when configured, in-memory otherwise.
	var users services.UserRepository
	if cfg.postgresDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.postgresDSN)
		if err != nil {
			return fmt.Errorf("postgres connection: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping: %w", err)
		}
		users = repositories.NewUserPostgresRepository(db)
		log.Info("Using PostgreSQL credential store")
	} else {
		users = repositories.NewUserMemoryRepository()
		log.Info("POSTGRES_DSN not set, using in-memory credential store")
	}
	if err := seedAdmin(ctx, users); err != nil {
		log.Warnw("admin seed failed", "err", err)
	}

	// Redis cache for proxied upstream responses. Optional: a nil cache
	// disables caching without touching the facades.
	var cache *facades.Cache
	if cfg.redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.redisAddr,
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("Redis unreachable, proxy caching disabled", "addr", cfg.redisAddr, "err", err)
		} else {
			defer rdb.Close()
			cache = facades.NewCache(rdb)
			log.Infof("Proxy response cache enabled via Redis at %s", cfg.redisAddr)
		}
	}

	// Notifier selection: SMTP when configured, then Kafka, then the
	// log-only fallback.
	var sender services.Notifier
	switch {
	case cfg.smtpHost != "":
		sender = notifier.NewSMTPNotifier(cfg.smtpHost, cfg.smtpPort, cfg.smtpUser, cfg.smtpPass, cfg.from)
		log.Infof("Email delivery via SMTP at %s:%s", cfg.smtpHost, cfg.smtpPort)
	case cfg.kafkaBroker != "":
		kn := notifier.NewKafkaNotifier(cfg.kafkaBroker, cfg.kafkaTopic)
		defer kn.Close()
		sender = kn
		log.Infof("Email delivery via Kafka events on %s/%s", cfg.kafkaBroker, cfg.kafkaTopic)
	default:
		sender = notifier.NewLogNotifier()
		log.Warn("No mail transport configured, verification codes will be written to the server log")
	}

	// Services
	tokens := jwt.New(cfg.jwtSecret)
	authService := services.NewAuthService(users, tokens, sender, cfg.resetBaseURL)
	watchlistRepo := repositories.NewWatchlistMemoryRepository()
	watchlistService := services.NewWatchlistService(watchlistRepo)
	reviewService := services.NewReviewService(repositories.NewReviewMemoryRepository(), users)
	profileService := services.NewProfileService(users, watchlistRepo)
	youtube := facades.NewYouTubeFacade(cfg.youtubeAPIKey, cache)
	trakt := facades.NewTraktFacade(cfg.traktClientID, cache)

	if cfg.youtubeAPIKey == "" {
		log.Warn("YOUTUBE_API_KEY not set, serving mock video results")
	}
	if cfg.traktClientID == "" {
		log.Warn("TRAKT_CLIENT_ID not set, serving the mock movie catalog")
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	authMiddleware := middlewares.AuthMiddleware(tokens)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/verify-otp", handlers.NewVerifyOTPHandler(authService))
			r.Post("/resend-otp", handlers.NewResendOTPHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))
			r.Post("/google", handlers.NewGoogleAuthHandler(authService))
		})

		r.Get("/health", handlers.NewHealthHandler())
		r.Get("/youtube/search", handlers.NewYouTubeSearchHandler(youtube))
		r.Get("/movies/trailer", handlers.NewMovieTrailerHandler(youtube))
		r.Get("/trakt/trending", handlers.NewTraktTrendingHandler(trakt))
		r.Get("/trakt/search", handlers.NewTraktSearchHandler(trakt))

		r.Get("/reviews/movie/{movieId}", handlers.NewGetMovieReviewsHandler(reviewService))
		r.Get("/reviews/user/{userId}", handlers.NewGetUserReviewsHandler(reviewService))
		r.Get("/reviews/recent", handlers.NewGetRecentReviewsHandler(reviewService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/watchlist", func(r chi.Router) {
				r.Get("/", handlers.NewGetWatchlistHandler(watchlistService))
				r.Post("/", handlers.NewAddToWatchlistHandler(watchlistService))
				r.Delete("/", handlers.NewClearWatchlistHandler(watchlistService))
				r.Get("/stats", handlers.NewWatchlistStatsHandler(watchlistService))
				r.Get("/search", handlers.NewSearchWatchlistHandler(watchlistService))
				r.Put("/{movieId}", handlers.NewUpdateWatchlistHandler(watchlistService))
				r.Delete("/{movieId}", handlers.NewRemoveFromWatchlistHandler(watchlistService))
			})

			r.Post("/reviews", handlers.NewCreateReviewHandler(reviewService))
			r.Put("/reviews/{reviewId}", handlers.NewUpdateReviewHandler(reviewService))
			r.Delete("/reviews/{reviewId}", handlers.NewDeleteReviewHandler(reviewService))
			r.Post("/reviews/{reviewId}/like", handlers.NewLikeReviewHandler(reviewService))

			r.Get("/users/profile", handlers.NewGetProfileHandler(profileService))
			r.Put("/users/profile", handlers.NewUpdateProfileHandler(profileService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// seedAdmin makes sure the default admin account exists, mirroring the
// account the frontend ships with.
func seedAdmin(ctx context.Context, users services.UserRepository) error {
	existing, err := users.FindByEmail(ctx, "admin@cinemahub.com")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := password.Hash("admin123")
	if err != nil {
		return err
	}
	return users.Save(ctx, &models.User{
		Email:        "admin@cinemahub.com",
		Username:     "admin",
		PasswordHash: hash,
		IsVerified:   true,
		AuthProvider: "local",
	})
}
