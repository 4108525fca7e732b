package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/sparkdate/spark/internal/api"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
)

var errInvalidBirthdate = errors.New("invalid birthdate, expected YYYY-MM-DD")

func parseBirthdate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	v, err := entities.ParseBirthdate(s)
	if err != nil {
		return nil, errInvalidBirthdate
	}

	return &v, nil
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile Profile GetProfile
	//
	// Returns own profile, the profile is created on the first access.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '401':
	//     description: not authenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.GetOrCreateProfile(r.Context(), identity(r))
	if err != nil {
		writeServiceError(r.Context(), w, "get profile", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(p, s.now()))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /profile Profile UpdateProfile
	//
	// Updates own profile, omitted fields are kept.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UpdateProfileRequest"
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdateProfileRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	patch := service.ProfilePatch{
		FullName:   req.FullName,
		Gender:     req.Gender,
		Bio:        req.Bio,
		Interests:  req.Interests,
		Location:   req.Location,
		Occupation: req.Occupation,
		Education:  req.Education,
		LookingFor: req.LookingFor,
		Height:     req.Height,
		Languages:  req.Languages,
	}

	if req.Birthdate != nil {
		b, err := parseBirthdate(*req.Birthdate)
		if err != nil || b == nil {
			api.WriteError(w, http.StatusBadRequest, errInvalidBirthdate.Error())
			return
		}
		patch.Birthdate = b
	}

	p, err := s.s.UpdateProfile(r.Context(), identity(r), patch)
	if err != nil {
		writeServiceError(r.Context(), w, "update profile", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(p, s.now()))
}

func (s server) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profile/avatar Profile UploadAvatar
	//
	// Uploads avatar image replacing the previous one.
	//
	// ---
	// security:
	// - bearer: []
	// consumes:
	// - multipart/form-data
	// parameters:
	// - name: file
	//   in: formData
	//   type: file
	//   required: true
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, h, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close() // nolint:errcheck

	p, err := s.s.UploadAvatar(r.Context(), identity(r), h.Filename, h.Header.Get("Content-Type"), f)
	if err != nil {
		writeServiceError(r.Context(), w, "upload avatar", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(p, s.now()))
}

func (s server) completeOnboarding(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /onboarding Profile CompleteOnboarding
	//
	// Completes onboarding replacing own profile with the collected data.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/OnboardingRequest"
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/OnboardingResponse"
	//   '400':
	//     description: validation failed
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req OnboardingRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CompleteOnboarding(r.Context(), identity(r), service.OnboardingForm{
		FullName:   req.FullName,
		Birthdate:  birthdate,
		Gender:     req.Gender,
		Bio:        req.Bio,
		Interests:  req.Interests,
		Languages:  req.Languages,
		Location:   req.Location,
		Occupation: req.Occupation,
		Education:  req.Education,
		LookingFor: req.LookingFor,
		Height:     req.Height,
	})
	if err != nil {
		writeServiceError(r.Context(), w, "complete onboarding", err)
		return
	}

	api.WriteOK(w, http.StatusOK, OnboardingResponse{
		Profile:  toAPIProfile(p, s.now()),
		Redirect: string(service.DashboardRedirect),
	})
}
