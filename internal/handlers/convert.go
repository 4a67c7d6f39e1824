package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
	"github.com/sbilibin2017/gw-coin-purchase/internal/services"
)

// NewConvertHandler recomputes the counterpart amount after a form edit.
// @Summary Recompute the purchase form
// @Description Derives the fiat amount from the crypto amount, or the crypto amount from the fiat amount when edited is fiat_amount. Missing rates count as 1; an unknown coin leaves the form unchanged.
// @Tags form
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Edited field and current form"
// @Success 200 {object} models.ConvertResponse "Recomputed form"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /convert [post]
func NewConvertHandler(loader PageLoader, form FormProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		page := loader.LoadPage(r.Context())

		updated, err := form.Apply(req.Form, req.Edited, page.Coins, page.Rates)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownField):
				writeError(w, http.StatusBadRequest, "Unknown form field")
			default:
				logger.FromContext(r.Context()).Errorw("failed to recompute form", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.ConvertResponse{Form: updated})
	}
}
