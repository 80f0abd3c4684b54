package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cerebro-kb/cerebro/internal/config"
	"github.com/cerebro-kb/cerebro/internal/db"
	dbRedis "github.com/cerebro-kb/cerebro/internal/db/redis"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	logpkg "github.com/cerebro-kb/cerebro/internal/logger"
	"github.com/cerebro-kb/cerebro/internal/metrics"
	documentrepo "github.com/cerebro-kb/cerebro/internal/repository/document"
	querylogrepo "github.com/cerebro-kb/cerebro/internal/repository/querylog"
	"github.com/cerebro-kb/cerebro/internal/seed"
	calendarAPI "github.com/cerebro-kb/cerebro/internal/transport/calendarapi"
	chiTransport "github.com/cerebro-kb/cerebro/internal/transport/chi"
	openaiGen "github.com/cerebro-kb/cerebro/internal/transport/openai"
	calendaruc "github.com/cerebro-kb/cerebro/internal/usecase/calendar"
	healthuc "github.com/cerebro-kb/cerebro/internal/usecase/health"
	logsuc "github.com/cerebro-kb/cerebro/internal/usecase/logs"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
	searchuc "github.com/cerebro-kb/cerebro/internal/usecase/search"
	statsuc "github.com/cerebro-kb/cerebro/internal/usecase/stats"
	"github.com/cerebro-kb/cerebro/internal/vectorstore"
	"github.com/cerebro-kb/cerebro/internal/version"
)

const vectorStorePath = "./data/vector_db"

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cerebro API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create database store based on driver. Valkey speaks the same
	// protocol, so both drivers share the rueidis-backed store.
	var store db.Store
	switch cfg.Database.Driver {
	case "valkey", "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register search/LLM metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create repositories
	docRepo := documentrepo.New(store)
	logRepo := querylogrepo.New(store)

	// Hybrid ranker — composition root
	embedder := rank.NewEmbedder(cfg.Search.EmbeddingDim)
	ranker := rank.NewRanker(embedder).WithLimits(cfg.Search.MinScore, cfg.Search.TopK)

	// Use case services
	searchSvc := searchuc.New(docRepo, ranker).WithSamples(seed.Documents())

	// Optional LLM answer generator
	var generator queryuc.Generator
	var llmChecker healthuc.LLMChecker
	if cfg.LLM.APIKey != "" {
		gen := openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Logger:      logger,
		})
		generator = gen
		llmChecker = gen
		logger.Info("LLM answer generator enabled", zap.String("model", cfg.LLM.Model))
	} else {
		logger.Info("LLM answer generator disabled, using extraction fallback")
	}

	querySvc := queryuc.New(searchSvc, generator, logRepo)
	logsSvc := logsuc.New(logRepo)

	// Standalone vector index — seeded with the stored documents
	vecStore, err := vectorstore.New(vectorStorePath)
	if err != nil {
		logger.Warn("Vector store unavailable", zap.Error(err))
	} else {
		seedVectorStore(ctx, searchSvc, vecStore, logger)
	}

	var statsVecs statsuc.VectorStore
	if vecStore != nil {
		statsVecs = vecStore
	}
	statsSvc := statsuc.New(docRepo, logRepo, statsVecs)

	// Optional calendar provider
	var provider calendaruc.Provider
	if cfg.Calendar.BaseURL != "" {
		provider = calendarAPI.New(calendarAPI.Config{
			BaseURL: cfg.Calendar.BaseURL,
			APIKey:  cfg.Calendar.APIKey,
			Timeout: time.Duration(cfg.Calendar.TimeoutSec) * time.Second,
		})
	}
	calendarSvc := calendaruc.New(provider, cfg.Calendar.LookaheadDays)

	healthSvc := healthuc.New(store, llmChecker)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, querySvc, logsSvc, statsSvc, healthSvc, calendarSvc, logger,
	).WithLogLimit(cfg.Search.MaxLogs)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// seedVectorStore indexes the stored documents (seeding samples into an
// empty knowledge base first).
func seedVectorStore(
	ctx context.Context,
	search *searchuc.Service,
	vecs *vectorstore.Store,
	logger *zap.Logger,
) {
	docs, err := search.Documents(ctx)
	if err != nil {
		logger.Warn("Failed to load documents for vector store", zap.Error(err))
		return
	}
	for _, doc := range docs {
		if err := vecs.Add(doc.ID(), doc.Content(), map[string]string{
			"title":   doc.Title(),
			"section": doc.Section(),
		}); err != nil {
			logger.Warn("Failed to index document", zap.String("id", doc.ID()), zap.Error(err))
		}
	}
	logger.Info("Vector store seeded", zap.Int("documents", vecs.Len()))
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.WithContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
