package transport

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/southsideweekly/contributor-hub/internal/transport/handler"
	transportMiddleware "github.com/southsideweekly/contributor-hub/internal/transport/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	pitchHandler *handler.PitchHandler,
	userHandler *handler.UserHandler,
	referenceHandler *handler.ReferenceHandler,
	issueHandler *handler.IssueHandler,
	resourceHandler *handler.ResourceHandler,
	feedbackHandler *handler.FeedbackHandler,
	healthHandler *handler.HealthHandler,
	log *zap.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Recovery goes first so panics in other middleware are caught too
	router.Use(transportMiddleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(transportMiddleware.Logging(log))
	router.Use(transportMiddleware.Timeout(5*time.Second, log))
	router.Use(transportMiddleware.Metrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/pitch", func(r chi.Router) {
		r.Post("/create", pitchHandler.CreatePitch)
		r.Post("/approve", pitchHandler.ApprovePitch)
		r.Post("/decline", pitchHandler.DeclinePitch)
		r.Get("/", pitchHandler.ListPitches)

		r.Route("/{id}", func(r chi.Router) {
			r.Put("/submitClaim", pitchHandler.SubmitClaim)
			r.Put("/approveClaim", pitchHandler.ApproveClaim)
			r.Put("/declineClaim", pitchHandler.DeclineClaim)
			r.Put("/removeContributor", pitchHandler.RemoveContributor)
			r.Put("/teamTarget", pitchHandler.SetTeamTarget)
			r.Get("/aggregate", pitchHandler.AggregatePitch)
		})
	})

	router.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/lastActive", userHandler.SetLastActive)
			r.Put("/reviewOnboarding", userHandler.ReviewOnboarding)
		})
	})

	router.Route("/team", func(r chi.Router) {
		r.Post("/add", referenceHandler.AddTeam)
		r.Get("/", referenceHandler.ListTeams)
	})

	router.Route("/interest", func(r chi.Router) {
		r.Post("/add", referenceHandler.AddInterest)
		r.Get("/", referenceHandler.ListInterests)
	})

	router.Route("/issue", func(r chi.Router) {
		r.Post("/", issueHandler.CreateIssue)
		r.Get("/", issueHandler.ListIssues)
		r.Put("/{id}/pitchStatus", issueHandler.SetPitchStatus)
	})

	router.Route("/resource", func(r chi.Router) {
		r.Post("/", resourceHandler.CreateResource)
		r.Get("/", resourceHandler.ListResources)
		r.Put("/{id}", resourceHandler.UpdateResource)
		r.Delete("/{id}", resourceHandler.DeleteResource)
	})

	router.Route("/feedback", func(r chi.Router) {
		r.Post("/user", feedbackHandler.CreateUserFeedback)
		r.Get("/user", feedbackHandler.ListUserFeedback)
		r.Post("/pitch", feedbackHandler.CreatePitchFeedback)
		r.Get("/pitch", feedbackHandler.ListPitchFeedback)
	})

	router.Get("/health", healthHandler.Health)

	return router
}
