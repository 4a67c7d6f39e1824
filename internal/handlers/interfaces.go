//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handlers

package handlers

import (
	"context"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// CoinsGetter returns the supported coins.
type CoinsGetter interface {
	GetCoins(ctx context.Context) ([]models.Coin, error)
}

// RatesGetter returns the currency rate table.
type RatesGetter interface {
	GetRates(ctx context.Context) (models.Rates, error)
}

// PageLoader fetches the coins and rates the form works against.
type PageLoader interface {
	LoadPage(ctx context.Context) *models.PageData
}

// FormProcessor recomputes and submits the purchase form.
type FormProcessor interface {
	Apply(form models.PurchaseForm, edited string, coins []models.Coin, rates models.Rates) (models.PurchaseForm, error)
	Submit(form models.PurchaseForm, coins []models.Coin) (*models.Notification, models.FieldErrors)
}
