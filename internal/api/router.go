package api

import (
	"net/http"

	"github.com/rs/cors"

	"vacation-planner-service/internal/api/handlers"
	"vacation-planner-service/internal/platform/token"
	"vacation-planner-service/internal/ports"
)

// RouterDeps carries every collaborator the HTTP layer needs. Handlers stay
// unaware of concrete adapters.
type RouterDeps struct {
	Users      ports.UserRepository
	Plans      ports.PlanRepository
	Activities ports.ActivityRepository
	Locations  ports.LocationRepository
	Searcher   ports.LocationSearcher
	Transit    ports.TransitEstimator
	Limiter    ports.RateLimiter
	Tokens     *token.Manager

	// AllowedOrigins configures CORS; empty means same-origin only.
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authHandler := &handlers.AuthHandler{Users: deps.Users, Tokens: deps.Tokens}
	planHandler := &handlers.PlanHandler{Plans: deps.Plans, Activities: deps.Activities}
	activityHandler := &handlers.ActivityHandler{
		Plans:      deps.Plans,
		Activities: deps.Activities,
		Locations:  deps.Locations,
		Transit:    deps.Transit,
	}
	scheduleHandler := &handlers.ScheduleHandler{Plans: deps.Plans, Activities: deps.Activities}
	locationHandler := &handlers.LocationHandler{Searcher: deps.Searcher}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	mux.HandleFunc("POST /plans", planHandler.Create)
	mux.HandleFunc("GET /plans", planHandler.List)
	mux.HandleFunc("GET /plans/{id}", planHandler.Get)
	mux.HandleFunc("PATCH /plans/{id}", planHandler.Update)
	mux.HandleFunc("DELETE /plans/{id}", planHandler.Delete)
	mux.HandleFunc("POST /plans/{id}/clone", planHandler.Clone)

	mux.HandleFunc("POST /plans/{id}/activities", activityHandler.Create)
	mux.HandleFunc("POST /plans/{id}/activities/reorder", activityHandler.Reorder)
	mux.HandleFunc("PATCH /activities/{id}", activityHandler.Update)
	mux.HandleFunc("DELETE /activities/{id}", activityHandler.Delete)

	mux.HandleFunc("GET /plans/{id}/schedule", scheduleHandler.Schedule)
	mux.HandleFunc("GET /plans/{id}/validation", scheduleHandler.Validation)
	mux.HandleFunc("POST /plans/{id}/optimize", scheduleHandler.Optimize)

	mux.HandleFunc("GET /locations/search", locationHandler.Search)

	var handler http.Handler = mux
	handler = authMiddleware(handler, deps.Tokens)
	if deps.Limiter != nil {
		handler = rateLimitMiddleware(handler, deps.Limiter)
	}
	if len(deps.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins:   deps.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", requestIDHeader},
			AllowCredentials: true,
		}).Handler(handler)
	}
	handler = requestIDMiddleware(handler)

	return loggingMiddleware(handler)
}
