package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// NewPurchaseHandler validates a purchase form submission.
// No payment is made; an accepted submission only returns an informational notification.
// @Summary Submit the purchase form
// @Description Checks the required fields and the selected coin, then returns the notification describing the intended transaction
// @Tags form
// @Accept json
// @Produce json
// @Param request body models.PurchaseForm true "Purchase form"
// @Success 200 {object} models.PurchaseResponse "Submission accepted"
// @Failure 400 {object} models.PurchaseErrorResponse "Missing fields or no coin selected"
// @Router /purchase [post]
func NewPurchaseHandler(loader PageLoader, form FormProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PurchaseForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		page := loader.LoadPage(r.Context())

		notification, fieldErrs := form.Submit(req, page.Coins)
		switch {
		case len(fieldErrs) > 0:
			writeJSON(w, http.StatusBadRequest, models.PurchaseErrorResponse{Errors: fieldErrs})
		case notification == nil:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		case notification.Level == models.NotificationError:
			writeJSON(w, http.StatusBadRequest, models.PurchaseErrorResponse{Notification: notification})
		default:
			logger.FromContext(r.Context()).Infow("purchase accepted",
				"coin", req.CryptoCurrency, "fiat", req.FiatCurrency)
			writeJSON(w, http.StatusOK, models.PurchaseResponse{Notification: *notification})
		}
	}
}
