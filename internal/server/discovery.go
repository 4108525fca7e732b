package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sparkdate/spark/internal/api"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
)

func (s server) listCandidates(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /candidates Discovery ListCandidates
	//
	// Returns ranked candidates for discovery.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Candidates
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Candidate"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	cc, err := s.s.FetchCandidates(r.Context(), identity(r))
	if err != nil {
		writeServiceError(r.Context(), w, "fetch candidates", err)
		return
	}

	now := s.now()
	out := make([]Candidate, len(cc))
	for i, v := range cc {
		out[i] = *toAPICandidate(v, now)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getDiscover(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /discover Discovery GetDiscover
	//
	// Returns the current card of discovery session, the session is started if there is no live one.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Discovery session
	//     schema:
	//       "$ref": "#/definitions/DiscoverResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	v, err := s.sessions.Current(r.Context(), identity(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), w, "fetch candidates", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIDiscover(v, s.now()))
}

func (s server) swipeDiscover(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /discover/swipe Discovery SwipeDiscover
	//
	// Records a swipe on the current card and moves to the next one.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/DiscoverSwipeRequest"
	// responses:
	//   '200':
	//     description: Swipe result with the next card
	//     schema:
	//       "$ref": "#/definitions/DiscoverSwipeResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: candidate is not the current card
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req DiscoverSwipeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	id := identity(r)

	v, err := s.sessions.Current(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(r.Context(), w, "fetch candidates", err)
		return
	}

	if v.Current == nil || v.Current.ID != req.CandidateID {
		api.WriteError(w, http.StatusConflict, "candidate is not the current card")
		return
	}

	res, err := s.s.RecordSwipe(r.Context(), id, req.CandidateID, entities.SwipeAction(req.Action))
	if err != nil {
		// already swiped card is skipped
		if errors.Is(err, service.ErrConflict) {
			s.sessions.Advance(id.UserID, req.CandidateID)
		}

		writeServiceError(r.Context(), w, "record swipe", err)
		return
	}

	v, _ = s.sessions.Advance(id.UserID, req.CandidateID)

	api.WriteOK(w, http.StatusOK, DiscoverSwipeResponse{
		SwipeResponse: toAPISwipeResponse(res),
		Feed:          toAPIDiscover(v, s.now()),
	})
}

func (s server) resetDiscover(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /discover/reset Discovery ResetDiscover
	//
	// Discards discovery session, the next request starts a new one.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: session is discarded

	s.sessions.Reset(identity(r).UserID)

	w.WriteHeader(http.StatusNoContent)
}

func (s server) recordSwipe(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /swipes Discovery RecordSwipe
	//
	// Records a swipe, a like is checked for a mutual one.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SwipeRequest"
	// responses:
	//   '201':
	//     description: Swipe result
	//     schema:
	//       "$ref": "#/definitions/SwipeResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: profile is already swiped
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SwipeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.s.RecordSwipe(r.Context(), identity(r), req.SwipedID, entities.SwipeAction(req.Action))
	if err != nil {
		writeServiceError(r.Context(), w, "record swipe", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPISwipeResponse(res))
}

func (s server) listLiked(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /liked Discovery ListLiked
	//
	// Returns liked profiles, newest like first.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Liked profiles
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/LikedProfile"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	pp, err := s.s.ListLiked(r.Context(), identity(r))
	if err != nil {
		writeServiceError(r.Context(), w, "list liked", err)
		return
	}

	now := s.now()
	out := make([]LikedProfile, len(pp))
	for i, v := range pp {
		out[i] = LikedProfile{
			Profile: toAPIProfile(&v.Profile, now),
			LikedAt: toUnix(v.LikedAt),
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) checkMatch(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /matches/check/{userID} Matches CheckMatch
	//
	// Checks whether the user and the requester liked each other.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: userID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Check result
	//     schema:
	//       "$ref": "#/definitions/CheckMatchResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	ok, err := s.s.CheckMatch(r.Context(), identity(r).UserID, chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(r.Context(), w, "check match", err)
		return
	}

	api.WriteOK(w, http.StatusOK, CheckMatchResponse{Matched: ok})
}
