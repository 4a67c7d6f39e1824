package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// NewGetRatesHandler returns an HTTP handler for fetching currency exchange rates.
// @Summary Get exchange rates
// @Description Returns the USD based multiplier for every currency known to the rate provider
// @Tags exchange
// @Produce json
// @Success 200 {object} models.RatesResponse "Exchange rates"
// @Failure 502 {object} models.ErrorResponse "Failed to retrieve exchange rates"
// @Router /rates [get]
func NewGetRatesHandler(svc RatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.GetRates(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to get exchange rates", "error", err)
			writeError(w, http.StatusBadGateway, "Failed to retrieve exchange rates")
			return
		}

		writeJSON(w, http.StatusOK, models.RatesResponse{Rates: rates})
	}
}
