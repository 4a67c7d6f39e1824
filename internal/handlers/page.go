package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
	"github.com/sbilibin2017/gw-coin-purchase/internal/services"
)

// Values of the action button on the HTML form.
const (
	ActionRecalculate = "recalculate"
	ActionSubmit      = "submit"
)

// NewPageHandler renders the purchase page on GET and processes the HTML form on POST.
//
// A POST first recomputes the counterpart amount for whichever field changed
// since the last render, then submits the form when action is submit.
func NewPageHandler(loader PageLoader, form FormProcessor, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		page := loader.LoadPage(r.Context())

		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form data", http.StatusBadRequest)
				return
			}

			cur := readForm(r, "")
			prev := readForm(r, "prev")

			if edited, ok := services.DetectEdit(prev, cur); ok {
				updated, err := form.Apply(cur, edited, page.Coins, page.Rates)
				if err != nil {
					log.Errorw("failed to recompute form", "edited", edited, "error", err)
				} else {
					cur = updated
				}
			}

			page.Form = cur
			page.SelectCoin(cur.CryptoCurrency)

			if r.PostFormValue("action") == ActionSubmit {
				page.Notification, page.Errors = form.Submit(cur, page.Coins)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Render(w, page); err != nil {
			log.Errorw("failed to render page", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}

// readForm reads the purchase form fields, optionally with a name prefix.
func readForm(r *http.Request, prefix string) models.PurchaseForm {
	name := func(field string) string {
		if prefix == "" {
			return field
		}
		return prefix + strings.ToUpper(field[:1]) + field[1:]
	}

	return models.PurchaseForm{
		CryptoCurrency: r.PostFormValue(name("cryptoCurrency")),
		FiatCurrency:   r.PostFormValue(name("fiatCurrency")),
		CryptoAmount:   parseAmount(r.PostFormValue(name("cryptoAmount"))),
		FiatAmount:     parseAmount(r.PostFormValue(name("fiatAmount"))),
		WalletAddress:  strings.TrimSpace(r.PostFormValue("walletAddress")),
	}
}

// parseAmount returns nil for an empty or unparsable amount.
func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
