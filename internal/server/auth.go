package server

import (
	"net/http"

	"github.com/sparkdate/spark/internal/api"
	mm "github.com/sparkdate/spark/internal/middleware"
)

func (s server) authCallback(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/callback Auth AuthCallback
	//
	// Exchanges one-time code issued by the sign in flow to a session.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AuthCallbackRequest"
	// responses:
	//   '200':
	//     description: Session
	//     schema:
	//       "$ref": "#/definitions/AuthResponse"
	//   '401':
	//     description: code is unknown or expired
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: account is banned
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AuthCallbackRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.Code == "" {
		api.WriteError(w, http.StatusBadRequest, "code is required")
		return
	}

	res, err := s.s.ExchangeAuthCode(r.Context(), req.Code)
	if err != nil {
		writeServiceError(r.Context(), w, "exchange auth code", err)
		return
	}

	api.WriteOK(w, http.StatusOK, AuthResponse{
		Token:     res.Token,
		ExpiresAt: toUnix(res.ExpiresAt),
		UserID:    res.Identity.UserID,
		IsAdmin:   res.Identity.IsAdmin,
		Redirect:  string(res.Redirect),
	})
}

func (s server) getSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /auth/session Auth GetSession
	//
	// Returns the session's identity.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Identity
	//     schema:
	//       "$ref": "#/definitions/SessionResponse"
	//   '401':
	//     description: not authenticated
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := identity(r)

	api.WriteOK(w, http.StatusOK, SessionResponse{
		UserID:  id.UserID,
		IsAdmin: id.IsAdmin,
	})
}

func (s server) signOut(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/signout Auth SignOut
	//
	// Deletes the session.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: signed out
	//   '401':
	//     description: not authenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.SignOut(r.Context(), mm.GetToken(r.Context())); err != nil {
		writeServiceError(r.Context(), w, "sign out", err)
		return
	}

	s.sessions.Reset(identity(r).UserID)

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /account Auth DeleteAccount
	//
	// Irreversibly deletes the account with all its data.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: deleted
	//   '401':
	//     description: not authenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := identity(r)

	if err := s.s.DeleteAccount(r.Context(), id); err != nil {
		writeServiceError(r.Context(), w, "delete account", err)
		return
	}

	s.sessions.Reset(id.UserID)

	w.WriteHeader(http.StatusNoContent)
}
