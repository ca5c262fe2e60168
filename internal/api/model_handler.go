package api

import (
	"net/http"

	"talky/backend/internal/interfaces"
)

// ModelHandler serves the provider listing.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List providers
// @Description  Lists the upstream providers the relay can route to and the one used by default.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  model.ProvidersResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, providers)
}
