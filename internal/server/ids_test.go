package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	blob "github.com/sparkdate/spark/internal/blob/mock"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/feed"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/service/impl"
	storage "github.com/sparkdate/spark/internal/storage/mock"
)

func Test_malformedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no storage expectations: a malformed id must be rejected before any query
	s := impl.New(storage.NewMockStorage(ctrl), blob.NewMockStorage(ctrl), impl.Options{})
	srv := server{
		s: s,
		sessions: feed.NewSessions(time.Minute, func(ctx context.Context, userID string) ([]*entities.Candidate, error) {
			return s.FetchCandidates(ctx, service.Identity{UserID: userID})
		}),
		now: func() time.Time { return timestamp },
	}

	member := service.Identity{UserID: "6f1c2b3a-4d5e-4f60-8a71-9b0c1d2e3f40"}
	moderator := service.Identity{UserID: "6f1c2b3a-4d5e-4f60-8a71-9b0c1d2e3f41", IsAdmin: true}

	router := chi.NewRouter()
	router.Post("/v1/swipes", srv.recordSwipe)
	router.Get("/v1/matches/check/{userID}", srv.checkMatch)
	router.Get("/v1/matches/{id}/messages", srv.listConversation)
	router.Post("/v1/matches/{id}/messages", srv.sendMessage)
	router.Post("/v1/reports", srv.createReport)
	router.Post("/v1/admin/reports/{id}/{decision}", srv.resolveReport)
	router.Get("/v1/admin/matches/{id}/messages", srv.listMatchMessages)
	router.Post("/v1/admin/matches/{id}/unmatch", srv.unmatch)
	router.Post("/v1/admin/users/{id}/verify", srv.verifyUser)
	router.Post("/v1/admin/users/{id}/ban", srv.banUser)
	router.Delete("/v1/admin/users/{id}", srv.deleteUser)

	tt := []struct {
		name     string
		id       service.Identity
		method   string
		path     string
		body     string
		expected int
	}{
		{name: "swipe", id: member, method: http.MethodPost, path: "/v1/swipes", body: `{"swipedId":"42","action":"like"}`, expected: http.StatusBadRequest},
		{name: "report", id: member, method: http.MethodPost, path: "/v1/reports", body: `{"reportedUserId":"42","reason":"spam","contentType":"profile"}`, expected: http.StatusBadRequest},
		{name: "check match", id: member, method: http.MethodGet, path: "/v1/matches/check/42", expected: http.StatusNotFound},
		{name: "conversation", id: member, method: http.MethodGet, path: "/v1/matches/42/messages", expected: http.StatusNotFound},
		{name: "send message", id: member, method: http.MethodPost, path: "/v1/matches/42/messages", body: `{"content":"hi"}`, expected: http.StatusNotFound},
		{name: "resolve report", id: moderator, method: http.MethodPost, path: "/v1/admin/reports/42/approve", expected: http.StatusNotFound},
		{name: "match messages", id: moderator, method: http.MethodGet, path: "/v1/admin/matches/42/messages", expected: http.StatusNotFound},
		{name: "unmatch", id: moderator, method: http.MethodPost, path: "/v1/admin/matches/42/unmatch", expected: http.StatusNotFound},
		{name: "verify", id: moderator, method: http.MethodPost, path: "/v1/admin/users/42/verify", expected: http.StatusNotFound},
		{name: "ban", id: moderator, method: http.MethodPost, path: "/v1/admin/users/42/ban", expected: http.StatusNotFound},
		{name: "delete", id: moderator, method: http.MethodDelete, path: "/v1/admin/users/42", expected: http.StatusNotFound},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := do(router, &tc.id, tc.method, tc.path, tc.body)

			assert.Equal(t, tc.expected, w.Code)
			assert.NotContains(t, w.Body.String(), "internal error")
		})
	}
}
