package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-game-roster/docs"
	"github.com/sbilibin2017/gw-game-roster/internal/handlers"
	"github.com/sbilibin2017/gw-game-roster/internal/jwt"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/middlewares"
	"github.com/sbilibin2017/gw-game-roster/internal/migrations"
	"github.com/sbilibin2017/gw-game-roster/internal/password"
	"github.com/sbilibin2017/gw-game-roster/internal/repositories"
	"github.com/sbilibin2017/gw-game-roster/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config holds the service configuration read from the environment.
type Config struct {
	AppHost     string `env:"APP_HOST" envDefault:"localhost"`
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"APP_LOG_LEVEL" envDefault:"info"`
	SwaggerHost string `env:"SWAGGER_HOST"`

	PGHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PGPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PGUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PGPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PGDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PGMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PGMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	JWTSecret        string        `env:"JWT_SECRET,required"`
	JWTAccessExpire  time.Duration `env:"JWT_ACCESS_EXPIRE" envDefault:"15m"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET,required"`
	JWTRefreshExpire time.Duration `env:"JWT_REFRESH_EXPIRE" envDefault:"720h"`

	BcryptCost          int           `env:"BCRYPT_COST" envDefault:"10"`
	CookieAccessMaxAge  time.Duration `env:"COOKIE_ACCESS_MAX_AGE" envDefault:"168h"`
	CookieRefreshMaxAge time.Duration `env:"COOKIE_REFRESH_MAX_AGE" envDefault:"720h"`
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// PostgresDSN returns the connection url of the database.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PGUser, c.PGPassword),
		Host:     fmt.Sprintf("%s:%d", c.PGHost, c.PGPort),
		Path:     c.PGDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// @title gw-game-roster API
// @version 1.0.0
// @description Service for scheduling games and managing their player rosters
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath, nil)
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

// parseConfig loads environment variables from a file and parses them into a Config.
// A nil environment means the process environment.
func parseConfig(path string, environment map[string]string) (*Config, error) {
	_ = godotenv.Load(path)

	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// routes bundles the HTTP handlers mounted by newRouter.
type routes struct {
	auth func(http.Handler) http.Handler

	health       http.HandlerFunc
	register     http.HandlerFunc
	login        http.HandlerFunc
	logout       http.HandlerFunc
	refresh      http.HandlerFunc
	getMe        http.HandlerFunc
	updateMe     http.HandlerFunc
	createGame   http.HandlerFunc
	listGames    http.HandlerFunc
	getGame      http.HandlerFunc
	updateGame   http.HandlerFunc
	deleteGame   http.HandlerFunc
	addPlayer    http.HandlerFunc
	addPlayers   http.HandlerFunc
	updateStatus http.HandlerFunc
	swagger      http.HandlerFunc
}

// newRouter mounts every endpoint. Everything except health, register, login
// and refresh requires an access token.
func newRouter(h routes) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logout)
			r.Get("/me", h.getMe)
			r.Patch("/me", h.updateMe)
		})
	})

	r.Route("/games", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createGame)
		r.Get("/", h.listGames)
		r.Get("/{id}", h.getGame)
		r.Patch("/{id}", h.updateGame)
		r.Delete("/{id}", h.deleteGame)
		r.Post("/{id}/players", h.addPlayer)
		r.Post("/{id}/players/multiple", h.addPlayers)
		r.Patch("/{id}/players/{playerId}", h.updateStatus)
	})

	if h.swagger != nil {
		r.Get("/swagger/*", h.swagger)
	}
	return r
}

// run initializes the logger, database, Redis and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, !cfg.Production()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.Log
	defer log.Sync()
	log.Infow("logger initialized", "level", cfg.LogLevel, "env", cfg.AppEnv)

	// Connect to PostgreSQL
	dsn := cfg.PostgresDSN()
	log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.MigrateOnStart {
		if err := migrations.Run(dsn); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Initialize JWT and password hashing
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(cfg.JWTAccessExpire),
		jwt.WithRefreshSecretKey(cfg.JWTRefreshSecret),
		jwt.WithRefreshExpiration(cfg.JWTRefreshExpire),
	)
	hasher := password.NewHasher(cfg.BcryptCost)

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	playerReadRepo := repositories.NewPlayerReadRepository(db)
	playerWriteRepo := repositories.NewPlayerWriteRepository(db)
	gameReadRepo := repositories.NewGameReadRepository(db)
	gameWriteRepo := repositories.NewGameWriteRepository(db)
	membershipReadRepo := repositories.NewMembershipReadRepository(db)
	membershipWriteRepo := repositories.NewMembershipWriteRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(tx, playerReadRepo, playerWriteRepo, hasher, tokens, refreshTokenRepo, cfg.JWTRefreshExpire)
	membershipService := services.NewMembershipService(tx, gameReadRepo, playerReadRepo, playerWriteRepo, hasher, membershipReadRepo, membershipWriteRepo)
	gameService := services.NewGameService(tx, gameReadRepo, gameWriteRepo, membershipService)

	// Initialize handlers
	cookies := handlers.CookieConfig{
		AccessMaxAge:  cfg.CookieAccessMaxAge,
		RefreshMaxAge: cfg.CookieRefreshMaxAge,
		Secure:        cfg.Production(),
	}

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	}
	docs.SwaggerInfo.Host = swaggerHost

	r := newRouter(routes{
		auth:         middlewares.AuthMiddleware(tokens),
		health:       handlers.NewHealthHandler(),
		register:     handlers.NewRegisterHandler(authService, membershipService, cookies),
		login:        handlers.NewLoginHandler(authService, cookies),
		logout:       handlers.NewLogoutHandler(authService, tokens, cookies),
		refresh:      handlers.NewRefreshHandler(authService, tokens, cookies),
		getMe:        handlers.NewGetMeHandler(authService),
		updateMe:     handlers.NewUpdateMeHandler(authService),
		createGame:   handlers.NewCreateGameHandler(gameService),
		listGames:    handlers.NewListGamesHandler(gameService),
		getGame:      handlers.NewGetGameHandler(gameService),
		updateGame:   handlers.NewUpdateGameHandler(gameService),
		deleteGame:   handlers.NewDeleteGameHandler(gameService),
		addPlayer:    handlers.NewAddPlayerHandler(membershipService),
		addPlayers:   handlers.NewAddMultiplePlayersHandler(membershipService),
		updateStatus: handlers.NewUpdatePlayerStatusHandler(membershipService),
		swagger: httpSwagger.Handler(
			httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", swaggerHost)),
		),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
