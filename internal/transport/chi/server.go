package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cerebro-kb/cerebro/internal/domain"
	calendaruc "github.com/cerebro-kb/cerebro/internal/usecase/calendar"
	healthuc "github.com/cerebro-kb/cerebro/internal/usecase/health"
	logsuc "github.com/cerebro-kb/cerebro/internal/usecase/logs"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
	searchuc "github.com/cerebro-kb/cerebro/internal/usecase/search"
	statsuc "github.com/cerebro-kb/cerebro/internal/usecase/stats"
)

// errorCode identifies an API error class in responses.
type errorCode string

const (
	codeBadRequest          errorCode = "bad_request"
	codeValidationFailed    errorCode = "validation_failed"
	codeEmptyQuery          errorCode = "empty_query"
	codeNotFound            errorCode = "not_found"
	codeDocumentNotFound    errorCode = "document_not_found"
	codeUnsupportedFormat   errorCode = "unsupported_format"
	codeLLMUnavailable      errorCode = "llm_unavailable"
	codeLLMProviderError    errorCode = "llm_provider_error"
	codeCalendarUnavailable errorCode = "calendar_unavailable"
	codeInternalError       errorCode = "internal_error"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API for the knowledge base.
type Server struct {
	search        *searchuc.Service
	query         *queryuc.Service
	logs          *logsuc.Service
	stats         *statsuc.Service
	health        *healthuc.Service
	calendar      *calendaruc.Service
	logger        *zap.Logger
	logLimit      int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	query *queryuc.Service,
	logs *logsuc.Service,
	stats *statsuc.Service,
	health *healthuc.Service,
	calendar *calendaruc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		query:    query,
		logs:     logs,
		stats:    stats,
		health:   health,
		calendar: calendar,
		logger:   logger,
		logLimit: 100,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeEmptyQuery),
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, codeDocumentNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrUnsupportedFormat, http.StatusBadRequest, codeUnsupportedFormat),
		sentinelHandler(domain.ErrLLMUnavailable, http.StatusServiceUnavailable, codeLLMUnavailable),
		sentinelHandler(domain.ErrLLMProviderError, http.StatusBadGateway, codeLLMProviderError),
		sentinelHandler(domain.ErrCalendarUnavailable, http.StatusServiceUnavailable, codeCalendarUnavailable),
	}
	return s
}

// WithLogLimit sets the default page size for GET /api/logs.
func (s *Server) WithLogLimit(n int) *Server {
	if n > 0 {
		s.logLimit = n
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/api/health", s.HealthCheck)
	r.Get("/api/documents", s.ListDocuments)
	r.Get("/api/documents/{id}", s.GetDocument)
	r.Post("/api/search", s.Search)
	r.Post("/api/query", s.Query)
	r.Get("/api/logs", s.ListLogs)
	r.Get("/api/logs/export", s.ExportLogs)
	r.Post("/api/clear-logs", s.ClearLogs)
	r.Post("/api/seed", s.Seed)
	r.Get("/api/stats", s.Stats)
	r.Get("/api/events", s.Events)
	r.Get("/api/holidays", s.Holidays)
	r.Get("/metrics", s.Metrics)
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToDTO(report))
}

// ListDocuments handles GET /api/documents. An empty store is seeded with
// the sample documents first. ?section= filters case-insensitively.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.search.Documents(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if section := r.URL.Query().Get("section"); section != "" {
		docs = searchuc.FilterBySection(docs, section)
	}

	items := make([]documentDTO, len(docs))
	for i, d := range docs {
		items[i] = documentToDTO(d)
	}

	writeJSON(w, http.StatusOK, documentListDTO{Documents: items, Total: len(items)})
}

// GetDocument handles GET /api/documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := s.search.GetByID(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, documentToDTO(doc))
}

// Search handles POST /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results, err := s.search.Search(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]scoredDocumentDTO, len(results))
	for i := range results {
		items[i] = scoredDocumentToDTO(results[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   req.Query,
		Results: items,
		Total:   len(items),
	})
}

// Query handles POST /api/query.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	useLLM := true
	if req.UseLLM != nil {
		useLLM = *req.UseLLM
	}

	resp, err := s.query.Ask(r.Context(), req.Query, useLLM)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queryToDTO(resp))
}

// ListLogs handles GET /api/logs. ?limit= overrides the default page size.
func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := s.logLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.logs.List(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]logEntryDTO, len(entries))
	for i, e := range entries {
		items[i] = logEntryToDTO(e)
	}

	writeJSON(w, http.StatusOK, logListDTO{Logs: items, Total: len(items)})
}

// ExportLogs handles GET /api/logs/export?format=json|csv (default json).
func (s *Server) ExportLogs(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = logsuc.FormatJSON
	}

	data, err := s.logs.Export(r.Context(), format)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	switch format {
	case logsuc.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="query_logs.csv"`)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="query_logs.json"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ClearLogs handles POST /api/clear-logs.
func (s *Server) ClearLogs(w http.ResponseWriter, r *http.Request) {
	if err := s.logs.Clear(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "query logs cleared"})
}

// Seed handles POST /api/seed.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := s.search.Seed(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "seeded": n})
}

// Stats handles GET /api/stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	report, err := s.stats.Report(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsToDTO(report))
}

// Events handles GET /api/events.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	events, err := s.calendar.UpcomingEvents(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events, "total": len(events)})
}

// Holidays handles GET /api/holidays?year=.
func (s *Server) Holidays(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "year must be an integer")
			return
		}
		year = n
	}

	year, holidays := s.calendar.Holidays(year)
	writeJSON(w, http.StatusOK, map[string]any{"year": year, "holidays": holidays})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrDocumentNotFound,
		domain.ErrNotFound,
		domain.ErrUnsupportedFormat,
		domain.ErrLLMUnavailable,
		domain.ErrLLMProviderError,
		domain.ErrCalendarUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
