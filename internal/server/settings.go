package server

import (
	"net/http"

	"github.com/sparkdate/spark/internal/api"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
)

func (s server) getSettings(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /settings Settings GetSettings
	//
	// Returns own settings.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Settings
	//     schema:
	//       "$ref": "#/definitions/Settings"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	st, err := s.s.GetSettings(r.Context(), identity(r))
	if err != nil {
		writeServiceError(r.Context(), w, "get settings", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPISettings(st))
}

func (s server) updateSettings(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /settings Settings UpdateSettings
	//
	// Updates own settings, omitted fields are kept.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UpdateSettingsRequest"
	// responses:
	//   '200':
	//     description: Settings
	//     schema:
	//       "$ref": "#/definitions/Settings"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdateSettingsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	patch := service.SettingsPatch{
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		Location:           req.Location,
	}
	if req.Visibility != nil {
		v := entities.Visibility(*req.Visibility)
		patch.Visibility = &v
	}
	if req.MaxDistance != nil {
		v := entities.MaxDistance(*req.MaxDistance)
		patch.MaxDistance = &v
	}

	st, err := s.s.UpdateSettings(r.Context(), identity(r), patch)
	if err != nil {
		writeServiceError(r.Context(), w, "update settings", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPISettings(st))
}
