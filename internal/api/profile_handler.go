package api

import (
	"net/http"

	"talky/backend/internal/interfaces"
	"talky/backend/internal/model"
)

// ProfileHandler serves the authenticated profile routes.
type ProfileHandler struct {
	service interfaces.ProfileService
}

func NewProfileHandler(svc interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleCreateProfile godoc
// @Summary      Create the caller's profile
// @Description  Stores the profile row for the authenticated user. Can only be done once.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      model.CreateProfileRequest  true  "Profile"
// @Success      201      {object}  model.UserProfile
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /profiles [post]
func (h *ProfileHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProfileRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	profile, err := h.service.Create(r.Context(), userIDFromContext(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, profile)
}

// HandleGetProfile godoc
// @Summary      Get the caller's profile
// @Tags         Profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UserProfile
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profiles/me [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
