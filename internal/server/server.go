// Package server exposes the design engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gocivil/internal/batch"
	"github.com/alexiusacademia/gocivil/internal/config"
	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/report"
)

// maxUpload bounds request bodies, including batch workbooks.
const maxUpload = 10 << 20

type Server struct {
	cfg     config.ServerConfig
	workers int
	eng     *engine.Engine
	log     *zap.Logger
	limiter *IPRateLimiter
}

func New(cfg *config.Config, eng *engine.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if eng == nil {
		eng = engine.New(log)
	}
	return &Server{
		cfg:     cfg.Server,
		workers: cfg.Batch.Workers,
		eng:     eng,
		log:     log,
		limiter: NewIPRateLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.limit)
	api.HandleFunc("/tables", s.tables).Methods("GET")
	api.HandleFunc("/design", s.design).Methods("POST")
	api.HandleFunc("/report/{format:md|html|pdf}", s.report).Methods("POST")
	api.HandleFunc("/batch", s.batch).Methods("POST")
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.Sweep(ctx, limiterSweep, limiterIdle)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("client", clientIP(r)))
	})
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// encodeFailed is sent when a response value cannot be marshalled.
const encodeFailed = `{"error":"response could not be encoded","kind":"internal"}` + "\n"

// writeJSON marshals v before writing the header; a value that cannot be
// encoded is answered with 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response failed", zap.Int("status", status), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, encodeFailed)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.log.Warn("write response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg, Kind: kind})
}

// writeDesignError maps engine errors to HTTP statuses.
func (s *Server) writeDesignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrConfigLookup):
		s.writeError(w, http.StatusUnprocessableEntity, "config_lookup", err.Error())
	case errors.Is(err, engine.ErrInvalidInput):
		s.writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decodeAndDesign(w http.ResponseWriter, r *http.Request) (*engine.Result, bool) {
	var req engine.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpload)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_json", "invalid request payload")
		return nil, false
	}
	res, err := s.eng.Design(req)
	if err != nil {
		s.writeDesignError(w, err)
		return nil, false
	}
	return res, true
}

func (s *Server) design(w http.ResponseWriter, r *http.Request) {
	res, ok := s.decodeAndDesign(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

var contentTypes = map[string]string{
	"md":   "text/markdown; charset=utf-8",
	"html": "text/html; charset=utf-8",
	"pdf":  "application/pdf",
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	res, ok := s.decodeAndDesign(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	if format == "pdf" {
		w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	}
	if err := report.Build(res).Write(w, format); err != nil {
		s.log.Error("report failed", zap.String("format", format), zap.Error(err))
	}
}

// batch accepts a workbook in the "file" form field and returns the results
// workbook.
func (s *Server) batch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_upload", "file required")
		return
	}
	defer file.Close()

	items, err := batch.ReadXLSX(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_upload", err.Error())
		return
	}

	runner := &batch.Runner{Engine: s.eng, Workers: s.workers, Log: s.log}
	out, err := runner.Run(r.Context(), items)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "cancelled", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	if err := batch.WriteXLSX(w, out); err != nil {
		s.log.Error("write results failed", zap.Error(err))
	}
}
