package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/sparkdate/spark/internal/api"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
)

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/stats Admin GetStats
	//
	// Returns dashboard counters. The response is cached for 10 minutes.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/Stats"
	//   '403':
	//     description: not an admin
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	st, err := s.s.GetStats(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "get stats", err)
		return
	}

	api.WriteOK(w, http.StatusOK, Stats{
		TotalUsers:      st.TotalUsers,
		TotalMatches:    st.TotalMatches,
		ActiveChats:     st.ActiveChats,
		ReportedContent: st.ReportedContent,
	})
}

func (s server) listReports(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/reports Admin ListReports
	//
	// Returns reported content, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: status
	//   description: filters reports by status
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, pending, approved, rejected]
	// responses:
	//   '200':
	//     description: Reports
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/ReportWithUsers"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var status *entities.ReportStatus
	if v := r.URL.Query().Get("status"); v != "" && v != "all" {
		st := entities.ReportStatus(v)
		status = &st
	}

	reports, err := s.s.ListReports(r.Context(), status)
	if err != nil {
		writeServiceError(r.Context(), w, "list reports", err)
		return
	}

	out := make([]ReportWithUsers, len(reports))
	for i, v := range reports {
		out[i] = ReportWithUsers{
			Report:       toAPIReport(&v.Report),
			Reporter:     toAPIBrief(v.Reporter),
			ReportedUser: toAPIBrief(v.ReportedUser),
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) resolveReport(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /admin/reports/{id}/{decision} Admin ResolveReport
	//
	// Approves or rejects the report.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: decision
	//   in: path
	//   required: true
	//   type: string
	//   enum: [approve, reject]
	// responses:
	//   '200':
	//     description: Report
	//     schema:
	//       "$ref": "#/definitions/Report"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: report not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: report is already resolved to the other decision
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	rep, err := s.s.ResolveReport(r.Context(), chi.URLParam(r, "id"), service.Decision(chi.URLParam(r, "decision")))
	if err != nil {
		writeServiceError(r.Context(), w, "resolve report", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIReport(rep))
}

func (s server) listMatchOverviews(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/matches Admin ListMatches
	//
	// Returns every match with both users and messages count, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Matches
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/MatchOverview"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	matches, err := s.s.ListMatchesWithMessages(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "list matches", err)
		return
	}

	out := make([]MatchOverview, len(matches))
	for i, v := range matches {
		out[i] = MatchOverview{
			Match:         toAPIMatch(&v.Match),
			User:          toAPIBrief(v.User),
			MatchedUser:   toAPIBrief(v.MatchedUser),
			MessagesCount: v.MessagesCount,
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) listMatchMessages(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/matches/{id}/messages Admin ListMessages
	//
	// Returns messages of the match, oldest first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Messages
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/MessageWithSender"
	//   '404':
	//     description: match not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	messages, err := s.s.ListMessages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, "list messages", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMessages(messages))
}

func (s server) unmatch(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /admin/matches/{id}/unmatch Admin Unmatch
	//
	// Moves the match to unmatched status.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Match
	//     schema:
	//       "$ref": "#/definitions/Match"
	//   '404':
	//     description: match not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	m, err := s.s.Unmatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, "unmatch", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMatch(m))
}

func (s server) listUsers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/users Admin ListUsers
	//
	// Returns users, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: search
	//   description: filters users by name or email case-insensitively
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Users
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/User"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	users, err := s.s.ListUsers(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		writeServiceError(r.Context(), w, "list users", err)
		return
	}

	out := make([]User, len(users))
	for i, v := range users {
		out[i] = User{
			ID:        v.ID,
			FullName:  v.FullName,
			Email:     v.Email,
			CreatedAt: toUnix(v.CreatedAt),
			Banned:    v.Banned,
			Verified:  v.Verified,
		}

		if v.LastSignInAt != nil {
			t := toUnix(*v.LastSignInAt)
			out[i].LastSignInAt = &t
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) verifyUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /admin/users/{id}/verify Admin VerifyUser
	//
	// Marks the user's profile as verified.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: verified
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.VerifyUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(r.Context(), w, "verify user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) banUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /admin/users/{id}/ban Admin BanUser
	//
	// Bans the user revoking its sessions.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: banned
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")

	if err := s.s.BanUser(r.Context(), id); err != nil {
		writeServiceError(r.Context(), w, "ban user", err)
		return
	}

	s.sessions.Reset(id)

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /admin/users/{id} Admin DeleteUser
	//
	// Irreversibly deletes the user with all its data.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: deleted
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")

	if err := s.s.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(r.Context(), w, "delete user", err)
		return
	}

	s.sessions.Reset(id)

	w.WriteHeader(http.StatusNoContent)
}
