package httpserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appreview "github.com/bryanwahyu/code-quality-ai/internal/application/review"
	domain "github.com/bryanwahyu/code-quality-ai/internal/domain/review"
	"github.com/bryanwahyu/code-quality-ai/internal/middleware"
)

const serviceName = "Code Quality Assistant API"

type Router struct {
	reviewSvc *appreview.Service
}

func NewRouter(reviewSvc *appreview.Service) http.Handler {
	r := &Router{reviewSvc: reviewSvc}
	mux := chi.NewRouter()

	// any caller may invoke the API
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/", r.wrap(r.handleRoot))
	mux.Get("/health", middleware.HealthHandler(reviewSvc.Enabled(), agentNames()))
	mux.Get("/livez", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Post("/analyze", r.wrap(r.handleAnalyze))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if domain.IsValidation(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func agentNames() []string {
	roles := domain.Roles()
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return names
}

// GET /
func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) error {
	resp := map[string]any{
		"service": serviceName,
		"version": "1.0.0",
		"agents":  agentNames(),
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}

// POST /analyze
// Body: {"code": "...", "language": "python", "description": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body domain.CodeSubmission
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrCodeRequired)
	}

	body.Language = middleware.NormalizeLanguage(body.Language)
	body.Description = middleware.SanitizeString(body.Description)

	middleware.IncrementAnalyses()
	result, err := r.reviewSvc.Analyze(req.Context(), body)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		log.Printf("request_id=%s analyze error: %v", middleware.GetRequestID(req.Context()), err)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}
