// FilePath: server/telemetry/internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/itsatony/w4b_v3/server/telemetry/api"
	"github.com/itsatony/w4b_v3/server/telemetry/api/middleware"
	"github.com/itsatony/w4b_v3/server/telemetry/api/resources"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/config"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/database"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository/timescale"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/service"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	redis      *redis.Client
	telemetry  *service.Service
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config: cfg,
		srv:    srv,
	}
}

// Start wires all dependencies, begins listening and blocks until shutdown
func (s *Server) Start() error {
	if err := s.initialize(); err != nil {
		s.close()
		return err
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

func (s *Server) initialize() error {
	loc, err := s.config.Telemetry.Location()
	if err != nil {
		return fmt.Errorf("invalid telemetry timezone: %w", err)
	}

	db, err := initTimescaleDB(s.config.Database.TimescaleDB)
	if err != nil {
		return err
	}
	s.db = db

	s.monitoring = monitoring.NewService(monitoring.Config{
		MetricsPath: s.config.Monitoring.MetricsPath,
		Namespace:   s.config.Monitoring.Namespace,
	})

	s.telemetry = service.New(timescale.NewStore(db), loc, s.monitoring, time.Now)
	if err := s.telemetry.Validate(); err != nil {
		return err
	}

	validator, err := s.initValidator()
	if err != nil {
		return err
	}

	res := resources.NewResources(s.telemetry, s.config.Server.MaxBodyBytes)
	res.SetHealthCheck(s.handleHealth())
	res.SetMetrics(s.monitoring.Handler())

	router := api.NewRouter(res, middleware.NewAuthMiddleware(validator, s.config.Auth.TestBypass))
	s.srv.Handler = wrapHandler(s.config.Server, router)

	nuts.L.Infof("[Server] Telemetry service ready (timezone %s, auth %s)", loc, s.config.Auth.Provider)
	return nil
}

// wrapHandler adds CORS, recovery and access logging around the API router
func wrapHandler(cfg config.ServerConfig, h http.Handler) http.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.TestAuthHeader}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))
	return handlers.LoggingHandler(os.Stdout, recovery(cors(h)))
}

// initValidator builds the configured token backend, fronted by redis when a host is set
func (s *Server) initValidator() (middleware.TokenValidator, error) {
	var validator middleware.TokenValidator
	switch s.config.Auth.Provider {
	case config.AuthProviderKeycloak:
		validator = middleware.NewKeycloakValidator(middleware.KeycloakConfig{
			URL:          s.config.Keycloak.URL,
			Realm:        s.config.Keycloak.Realm,
			ClientID:     s.config.Keycloak.ClientID,
			ClientSecret: s.config.Keycloak.ClientSecret,
		})
	case config.AuthProviderUserCycle:
		validator = middleware.NewUserCycleValidator(s.config.Auth.UserCycleURL, s.config.Auth.Timeout)
	default:
		return nil, fmt.Errorf("unknown auth provider %q", s.config.Auth.Provider)
	}

	if s.config.Redis.Host == "" {
		return validator, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", s.config.Redis.Host, s.config.Redis.Port),
		Password: s.config.Redis.Password,
		DB:       s.config.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		nuts.L.Warnf("[Server] Redis at %s unreachable, token cache disabled: %v", client.Options().Addr, err)
		client.Close()
		return validator, nil
	}

	s.redis = client
	nuts.L.Infof("[Server] Caching validated tokens in redis for %s", s.config.Redis.TokenCacheTTL)
	return middleware.NewCachedValidator(validator, client, s.config.Redis.TokenCacheTTL), nil
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	s.close()

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing redis: %v", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing database: %v", err)
		}
	}
}

// handleHealth reports ok when the database answers a ping
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := s.db.Ping(ctx); err != nil {
			nuts.L.Warnf("[Server] Health check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable","version":"` + nuts.GetVersion() + `"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
	}
}

func initTimescaleDB(cfg config.PostgresConfig) (*database.TimescaleDB, error) {
	if cfg.Migrate {
		if err := database.Migrate(database.URL(cfg), "up"); err != nil {
			return nil, fmt.Errorf("error migrating TimescaleDB: %w", err)
		}
	}

	db, err := database.NewTimescaleDB(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.VerifyExtension(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
