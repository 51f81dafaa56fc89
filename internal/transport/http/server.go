package httptransport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"orderflow/internal/logger"
	"orderflow/internal/metrics"
)

// Server serves the stage API.
type Server struct {
	http.Server
	Port int
}

// NewServer builds the router and server around the handler.
func NewServer(port int, h *Handler) *Server {
	s := &Server{
		Server: http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 3 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Port: port,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/search", h.HandleSearch).Methods(http.MethodGet)
	router.HandleFunc("/api/order", h.HandleOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/payment", h.HandlePayment).Methods(http.MethodPost)
	router.HandleFunc("/api/delivery", h.HandleDelivery).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	router.Use(loggingMiddleware)
	s.Handler = router
	return s
}

// Start runs the server until Stop is called.
func (s *Server) Start() error {
	logger.Info("starting http server", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.New().String()
		start := time.Now()

		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
