// Package server Spark
//
// The Spark is a dating service backend which provides onboarding, discovery, matches, messaging and moderation.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//     bearer:
//       type: apiKey
//       name: Authorization
//       in: header
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/sparkdate/spark/internal/feed"
	"github.com/sparkdate/spark/internal/health"
	mm "github.com/sparkdate/spark/internal/middleware"
	"github.com/sparkdate/spark/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const (
	maxBodySize   = 64 * 1024
	maxAvatarSize = 5 * 1024 * 1024

	healthTimeout = 5 * time.Second
	statsTTL      = 10 * time.Minute
)

type server struct {
	s        service.Service
	sessions *feed.Sessions

	now func() time.Time
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, sessions *feed.Sessions, r chi.Router, timeout time.Duration, pingers ...health.Pinger) {
	r.Use(
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		mm.Logger,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		s:        s,
		sessions: sessions,
		now:      time.Now,
	}

	r.Get("/health", health.Handler(healthTimeout, pingers...))

	r.Route("/v1", func(r chi.Router) {
		r.With(mm.BodyLimiter(maxBodySize)).Post("/auth/callback", srv.authCallback)

		r.Group(func(r chi.Router) {
			r.Use(mm.Authenticated(s))

			r.With(mm.BodyLimiter(maxAvatarSize)).Put("/profile/avatar", srv.uploadAvatar)

			r.Group(func(r chi.Router) {
				r.Use(mm.BodyLimiter(maxBodySize))

				r.Get("/auth/session", srv.getSession)
				r.Post("/auth/signout", srv.signOut)
				r.Delete("/account", srv.deleteAccount)

				r.Get("/profile", srv.getProfile)
				r.Patch("/profile", srv.updateProfile)
				r.Post("/onboarding", srv.completeOnboarding)

				r.Get("/candidates", srv.listCandidates)
				r.Get("/discover", srv.getDiscover)
				r.Post("/discover/swipe", srv.swipeDiscover)
				r.Post("/discover/reset", srv.resetDiscover)

				r.Post("/swipes", srv.recordSwipe)
				r.Get("/liked", srv.listLiked)

				r.Get("/matches", srv.listMatches)
				r.Get("/matches/check/{userID}", srv.checkMatch)
				r.Get("/matches/{id}/messages", srv.listConversation)
				r.Post("/matches/{id}/messages", srv.sendMessage)

				r.Post("/reports", srv.createReport)

				r.Get("/settings", srv.getSettings)
				r.Patch("/settings", srv.updateSettings)

				r.Route("/admin", func(r chi.Router) {
					r.Use(mm.RequireAdmin)

					r.Get("/stats", mm.Cached(statsTTL, srv.getStats))

					r.Get("/reports", srv.listReports)
					r.Post("/reports/{id}/{decision}", srv.resolveReport)

					r.Get("/matches", srv.listMatchOverviews)
					r.Get("/matches/{id}/messages", srv.listMatchMessages)
					r.Post("/matches/{id}/unmatch", srv.unmatch)

					r.Get("/users", srv.listUsers)
					r.Post("/users/{id}/verify", srv.verifyUser)
					r.Post("/users/{id}/ban", srv.banUser)
					r.Delete("/users/{id}", srv.deleteUser)
				})
			})
		})
	})
}
