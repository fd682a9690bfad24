package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hackovate/judging-portal/handlers"
	"github.com/hackovate/judging-portal/middleware"
)

type Handlers struct {
	Auth             *handlers.AuthHandler
	Evaluator        *handlers.EvaluatorHandler
	Team             *handlers.TeamHandler
	ProblemStatement *handlers.ProblemStatementHandler
	Round            *handlers.RoundHandler
	Parameter        *handlers.ParameterHandler
	Evaluation       *handlers.EvaluationHandler
	Standings        *handlers.StandingsHandler
	WebSocket        *handlers.WebSocketHandler
}

type Options struct {
	Logger             *slog.Logger
	CORSAllowedOrigins []string
	// LogoUploads gates the team logo route; without object storage
	// credentials the route is not mounted at all.
	LogoUploads bool
}

func SetupRoutes(router *chi.Mux, h Handlers, opts Options) {
	allowedOrigins := opts.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/ws/standings", h.WebSocket.ServeStandings)

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		r.Get("/evaluators", h.Evaluator.List)
		r.Get("/problem-statements", h.ProblemStatement.List)
		r.Get("/parameters", h.Parameter.List)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.List)
			r.Post("/", h.Team.Create)
			r.Post("/{teamID}/assign-ps", h.Team.AssignProblemStatement)
			if opts.LogoUploads {
				r.Post("/{teamID}/logo", h.Team.UploadLogo)
			}
		})

		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", h.Round.List)
			r.Post("/", h.Round.Create)
			r.Post("/{roundID}/toggle-active", h.Round.ToggleActive)
		})

		r.Route("/evaluations", func(r chi.Router) {
			r.Get("/", h.Evaluation.List)
			r.Post("/", h.Evaluation.Submit)
			r.Put("/{evaluationID}", h.Evaluation.Update)
			r.Delete("/{evaluationID}", h.Evaluation.Delete)
		})

		r.Route("/standings", func(r chi.Router) {
			r.Get("/leaderboard", h.Standings.Leaderboard)
			r.Get("/round-averages", h.Standings.RoundAverages)
			r.Get("/ps-distribution", h.Standings.ProblemStatementDistribution)
		})
	})
}
