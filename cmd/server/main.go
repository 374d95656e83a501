package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/travelbuddy/internal/auth"
	"github.com/mmynk/travelbuddy/internal/config"
	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/service"
	"github.com/mmynk/travelbuddy/internal/storage"
	"github.com/mmynk/travelbuddy/internal/storage/blob"
	"github.com/mmynk/travelbuddy/internal/storage/sqlite"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api/apiconnect"
	"github.com/mmynk/travelbuddy/pkg/logging"
)

// publicProcedures are reachable without a session token.
var publicProcedures = []string{
	apiconnect.AuthServiceRegisterProcedure,
	apiconnect.AuthServiceLoginProcedure,
	apiconnect.AuthServiceFederatedSignInProcedure,
	apiconnect.TripServiceListInterestsProcedure,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfg.UsingDevSecret() {
		logger.Warn("JWT_SECRET is not set, using the development secret")
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	blobs, err := blob.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize uploads", "error", err)
		os.Exit(1)
	}

	handler := newHandler(cfg, store, blobs, prometheus.DefaultRegisterer, logger)

	srv := &http.Server{
		Addr: cfg.Addr(),
		// h2c for HTTP/2 without TLS (required for Connect gRPC clients)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", "error", err)
		}
	}()

	logger.Info("Connect server starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// newHandler assembles the Connect services, metrics, uploads and CORS.
func newHandler(cfg *config.Config, store storage.Store, blobs *blob.DiskStore, reg prometheus.Registerer, logger *slog.Logger) http.Handler {
	metrics := middleware.NewMetrics(reg)

	core := travel.NewService(store,
		travel.WithBlobStore(blobs),
		travel.WithTransitionObserver(metrics),
		travel.WithLogger(logger),
	)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	interceptors := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(jwtManager, publicProcedures...),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(
		auth.NewPasswordAuthenticator(store),
		auth.NewFederatedAuthenticator(store),
		cfg.FederationKey,
		jwtManager,
		core,
		logger,
	), interceptors))
	mux.Handle(apiconnect.NewUserServiceHandler(service.NewUserService(core, logger), interceptors))
	mux.Handle(apiconnect.NewTripServiceHandler(service.NewTripService(core, logger), interceptors))
	mux.Handle(apiconnect.NewMembershipServiceHandler(service.NewMembershipService(core, logger), interceptors))
	mux.Handle(apiconnect.NewPostServiceHandler(service.NewPostService(core, logger), interceptors))
	mux.Handle(apiconnect.NewReviewServiceHandler(service.NewReviewService(core, logger), interceptors))
	mux.Handle(apiconnect.NewNotificationServiceHandler(service.NewNotificationService(core, logger), interceptors))

	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			requestIDHeader,
		},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms", requestIDHeader},
	})

	return c.Handler(requestLogger(logger, mux))
}

// requestIDHeader carries the request correlation id. A client-supplied
// value is kept; otherwise one is generated.
const requestIDHeader = "X-Request-ID"

// requestLogger tags every HTTP request with an id and logs it.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
		logger.Debug("Request completed",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
