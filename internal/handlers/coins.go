package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// NewGetCoinsHandler returns an HTTP handler listing the supported coins.
// @Summary List supported coins
// @Description Returns the coins offered by the purchase form as published in the CMS
// @Tags coins
// @Produce json
// @Success 200 {object} models.CoinsResponse "Supported coins"
// @Failure 502 {object} models.ErrorResponse "Failed to retrieve coins"
// @Router /coins [get]
func NewGetCoinsHandler(svc CoinsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coins, err := svc.GetCoins(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to get coins", "error", err)
			writeError(w, http.StatusBadGateway, "Failed to retrieve coins")
			return
		}

		writeJSON(w, http.StatusOK, models.CoinsResponse{Coins: coins})
	}
}
