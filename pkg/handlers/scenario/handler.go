package scenario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrearuggiero83/StorePilot/pkg/adapters"
	"github.com/andrearuggiero83/StorePilot/pkg/models/api"
	"github.com/andrearuggiero83/StorePilot/pkg/services/assumptions"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenario"
	"github.com/rs/zerolog"
)

type Handler struct {
	scenarios scenario.Controller
}

func NewHandler(scenarios scenario.Controller) *Handler {
	return &Handler{scenarios: scenarios}
}

// Evaluate runs one scenario: 200 with the full result set, 422 with the
// structured field errors on invalid assumptions, 400 on malformed JSON.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("malformed evaluate request")
		writeJSON(w, logger, http.StatusBadRequest, api.ValidationErrorResponse{
			Error: "malformed request body",
		})
		return
	}

	ev, err := h.scenarios.Evaluate(ctx, adapters.MapEvaluateRequestToRaw(req))
	if err != nil {
		var verr *assumptions.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, logger, http.StatusUnprocessableEntity, adapters.MapValidationErrorToApi(verr))
			return
		}
		logger.Error().Err(err).Msg("scenario evaluation failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapEvaluationDomainToApi(ev))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
