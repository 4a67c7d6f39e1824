package services

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-coin-purchase/internal/conversion"
	"github.com/sbilibin2017/gw-coin-purchase/internal/metrics"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

var (
	// ErrUnknownField is returned when the edited field is not part of the form.
	ErrUnknownField = errors.New("unknown form field")
)

// Messages shown to the user
const (
	MsgSelectCoin = "Please select a cryptocurrency."
)

// requiredMessages holds the inline message for each required field.
var requiredMessages = map[string]string{
	models.FieldCryptoAmount:  "Please enter a crypto amount",
	models.FieldFiatAmount:    "Please enter a fiat amount",
	models.FieldWalletAddress: "Please enter your wallet address",
}

// FormService recomputes and submits the purchase form.
type FormService struct {
	validate *validator.Validate
	metrics  *metrics.PurchaseMetrics
}

// NewFormService creates a new service instance. m may be nil.
func NewFormService(m *metrics.PurchaseMetrics) *FormService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FormService{
		validate: v,
		metrics:  m,
	}
}

// Apply recomputes the counterpart amount after the user edited one field.
//
// Editing the fiat amount derives the crypto amount; every other edit
// derives the fiat amount from the crypto amount. Only the counterpart is
// written, so a derived value never feeds back into its source.
// When the selected coin is not in coins the form is returned unchanged.
func (s *FormService) Apply(
	form models.PurchaseForm,
	edited string,
	coins []models.Coin,
	rates models.Rates,
) (models.PurchaseForm, error) {
	switch edited {
	case models.FieldCryptoAmount, models.FieldCryptoCurrency,
		models.FieldFiatCurrency, models.FieldFiatAmount:
	case models.FieldWalletAddress:
		return form, nil
	default:
		return form, fmt.Errorf("%w: %q", ErrUnknownField, edited)
	}

	s.metrics.ObserveConversion(edited)

	coin, ok := models.FindCoin(coins, form.CryptoCurrency)
	if !ok {
		return form, nil
	}
	rate := conversion.RateFor(rates, form.FiatCurrency)

	if edited == models.FieldFiatAmount {
		if form.FiatAmount == nil {
			return form, nil
		}
		crypto := conversion.FiatToCrypto(*form.FiatAmount, coin.PriceUSD, rate)
		if conversion.IsFinite(crypto) {
			form.CryptoAmount = &crypto
		}
		return form, nil
	}

	if form.CryptoAmount == nil {
		return form, nil
	}
	fiat := conversion.CryptoToFiat(*form.CryptoAmount, coin.PriceUSD, rate)
	if conversion.IsFinite(fiat) {
		form.FiatAmount = &fiat
	}
	return form, nil
}

// Submit validates the form and returns the notification to show.
//
// Missing required fields yield inline errors and no notification.
// No payment is made: an accepted form only produces an info notification.
func (s *FormService) Submit(form models.PurchaseForm, coins []models.Coin) (*models.Notification, models.FieldErrors) {
	if errs := s.fieldErrors(form); len(errs) > 0 {
		s.metrics.ObserveSubmission(metrics.ResultInvalid)
		return nil, errs
	}

	coin, ok := models.FindCoin(coins, form.CryptoCurrency)
	if !ok {
		s.metrics.ObserveSubmission(metrics.ResultNoCoin)
		return &models.Notification{
			Level:   models.NotificationError,
			Message: MsgSelectCoin,
		}, nil
	}

	s.metrics.ObserveSubmission(metrics.ResultAccepted)
	return &models.Notification{
		Level: models.NotificationInfo,
		Message: fmt.Sprintf("Proceeding with payment of %s %s for %s %s",
			FormatAmount(*form.FiatAmount), form.FiatCurrency,
			FormatAmount(*form.CryptoAmount), coin.Symbol,
		),
	}, nil
}

func (s *FormService) fieldErrors(form models.PurchaseForm) models.FieldErrors {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.FieldErrors{"form": err.Error()}
	}

	errs := make(models.FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := requiredMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		errs[fe.Field()] = msg
	}
	return errs
}

// FormatAmount prints an amount with the fewest digits that round-trip.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DetectEdit works out which field the user changed between two renders of the form.
//
// When both amounts changed the crypto amount wins, matching the direction
// every selector change is recomputed in. A lone fiat amount change drives
// the crypto amount even if a selector changed alongside it.
func DetectEdit(prev, cur models.PurchaseForm) (string, bool) {
	cryptoChanged := !sameAmount(prev.CryptoAmount, cur.CryptoAmount)
	fiatChanged := !sameAmount(prev.FiatAmount, cur.FiatAmount)

	switch {
	case cryptoChanged:
		return models.FieldCryptoAmount, true
	case fiatChanged:
		return models.FieldFiatAmount, true
	case prev.CryptoCurrency != cur.CryptoCurrency:
		return models.FieldCryptoCurrency, true
	case prev.FiatCurrency != cur.FiatCurrency:
		return models.FieldFiatCurrency, true
	default:
		return "", false
	}
}

func sameAmount(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
