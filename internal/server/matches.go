package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sparkdate/spark/internal/api"
)

func (s server) listMatches(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /matches Matches ListMatches
	//
	// Returns own matches with counterparts' profiles, recently updated first.
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
	//         "$ref": "#/definitions/MatchWithProfile"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	matches, err := s.s.ListMatches(r.Context(), identity(r))
	if err != nil {
		writeServiceError(r.Context(), w, "list matches", err)
		return
	}

	out := make([]MatchWithProfile, len(matches))
	for i, v := range matches {
		out[i] = MatchWithProfile{
			Match:   toAPIMatch(&v.Match),
			Profile: toAPIBrief(v.Profile),
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) listConversation(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /matches/{id}/messages Matches ListConversation
	//
	// Returns messages of own match, oldest first.
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
	//   '403':
	//     description: chat is not available
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: match not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	messages, err := s.s.ListConversation(r.Context(), identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, "list conversation", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMessages(messages))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /matches/{id}/messages Matches SendMessage
	//
	// Sends a message to the match.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SendMessageRequest"
	// responses:
	//   '201':
	//     description: Message
	//     schema:
	//       "$ref": "#/definitions/Message"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: chat is not available
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: match not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendMessageRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	m, err := s.s.SendMessage(r.Context(), identity(r), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		writeServiceError(r.Context(), w, "send message", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIMessage(m))
}

func (s server) createReport(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /reports Moderation CreateReport
	//
	// Reports a profile or a message.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ReportRequest"
	// responses:
	//   '201':
	//     description: Report
	//     schema:
	//       "$ref": "#/definitions/Report"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ReportRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	rep, err := s.s.CreateReport(r.Context(), identity(r), toReportForm(req))
	if err != nil {
		writeServiceError(r.Context(), w, "create report", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIReport(rep))
}
