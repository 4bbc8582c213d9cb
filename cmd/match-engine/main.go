// cmd/match-engine/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"innovator-match/internal/common/config"
	"innovator-match/internal/common/database"
	apperrors "innovator-match/internal/common/errors"
	"innovator-match/internal/common/logger"
	"innovator-match/internal/common/observability"
	"innovator-match/internal/common/validation"
	"innovator-match/internal/ledger"
	"innovator-match/internal/matching"
	"innovator-match/internal/models"
	"innovator-match/internal/recommender"
	"innovator-match/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting match engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Rebuild the logger with the configured level/format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// Postgres
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return pg.Ping(ctx)
	}, 5, time.Second, zapLog, "postgres connection")
	if err != nil {
		zapLog.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pg.Close()

	// Redis
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return rdb.Ping(ctx)
	}, 5, time.Second, zapLog, "redis connection")
	if err != nil {
		zapLog.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	profiles := store.NewProfileStore(store.Options{
		DB:        pg.DB,
		Cache:     rdb.Client,
		CacheTTL:  config.GetDuration(cfg.Matching.CacheTTL),
		PoolLimit: cfg.Matching.PoolLimit,
		Logger:    log,
	})
	prefs := ledger.NewRedisLedger(rdb.Client, log)
	ranker := matching.NewRanker(cfg.Matching.MaxResults, log)

	service := recommender.NewService(recommender.Dependencies{
		Store:         profiles,
		Preferences:   prefs,
		Ranker:        ranker,
		Logger:        log,
		Observability: obs,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pg.Ping(ctx); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}
		if err := rdb.Ping(ctx); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("/v1/recommendations", handleRecommendations(service))
	mux.HandleFunc("/v1/dispositions", handleDispositions(service))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: mux,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLog.Error("Shutdown error", zap.Error(err))
	}
	zapLog.Info("Match engine stopped")
}

// handleRecommendations serves GET /v1/recommendations?viewer=<id>.
func handleRecommendations(service *recommender.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		viewerID := r.URL.Query().Get("viewer")
		if viewerID == "" {
			http.Error(w, "viewer query parameter is required", http.StatusBadRequest)
			return
		}

		results, err := service.Recommend(r.Context(), viewerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"matches": results})
	}
}

// handleDispositions serves POST (record) and GET (list) on /v1/dispositions.
func handleDispositions(service *recommender.Service) http.HandlerFunc {
	type dispositionRequest struct {
		ViewerID    string `json:"viewerId"`
		TargetID    string `json:"targetId"`
		Disposition string `json:"disposition"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
			if err != nil {
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}
			if err := validation.ValidateDispositionRequest(body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			var req dispositionRequest
			if err := json.Unmarshal(body, &req); err != nil {
				http.Error(w, "invalid JSON payload", http.StatusBadRequest)
				return
			}

			err = service.RecordDisposition(r.Context(), req.ViewerID, req.TargetID, models.Disposition(req.Disposition))
			if err != nil {
				writeError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)

		case http.MethodGet:
			viewerID := r.URL.Query().Get("viewer")
			if viewerID == "" {
				http.Error(w, "viewer query parameter is required", http.StatusBadRequest)
				return
			}
			dispositions, err := service.GetDispositions(r.Context(), viewerID)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"dispositions": dispositions})

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// writeError maps StandardError codes onto HTTP statuses. Retryable failures
// surface as 503 so callers know a retry is safe.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.CodeOf(err) == apperrors.ErrCodeInvalidDisposition,
		apperrors.CodeOf(err) == apperrors.ErrCodeSelfDisposition:
		status = http.StatusBadRequest
	case apperrors.IsRetryable(err):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]interface{}{
		"error":     err.Error(),
		"code":      apperrors.CodeOf(err),
		"retryable": apperrors.IsRetryable(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
