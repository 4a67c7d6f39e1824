package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

func TestPurchaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := NewMockPageLoader(ctrl)
	mockForm := NewMockFormProcessor(ctrl)

	page := &models.PageData{Coins: testCoins, Rates: testRates, CoinsLoaded: true, RatesLoaded: true}
	valid := models.PurchaseForm{
		CryptoCurrency: "BTC",
		FiatCurrency:   "NGN",
		CryptoAmount:   ptr(0.5),
		FiatAmount:     ptr(48000000),
		WalletAddress:  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	}
	noWallet := valid
	noWallet.WalletAddress = ""

	accepted := &models.Notification{
		Level:   models.NotificationInfo,
		Message: "Proceeding with payment of 48000000 NGN for 0.5 BTC",
	}
	noCoin := &models.Notification{
		Level:   models.NotificationError,
		Message: "Please select a cryptocurrency.",
	}

	tests := []struct {
		name               string
		body               string
		setupMocks         func()
		expectedStatus     int
		expectedNotifyMsg  string
		expectedFieldError string
	}{
		{
			name: "accepted",
			body: mustJSON(t, valid),
			setupMocks: func() {
				mockLoader.EXPECT().LoadPage(gomock.Any()).Return(page)
				mockForm.EXPECT().Submit(valid, testCoins).Return(accepted, nil)
			},
			expectedStatus:    http.StatusOK,
			expectedNotifyMsg: accepted.Message,
		},
		{
			name: "missing wallet address",
			body: mustJSON(t, noWallet),
			setupMocks: func() {
				mockLoader.EXPECT().LoadPage(gomock.Any()).Return(page)
				mockForm.EXPECT().Submit(noWallet, testCoins).
					Return(nil, models.FieldErrors{models.FieldWalletAddress: "Please enter your wallet address"})
			},
			expectedStatus:     http.StatusBadRequest,
			expectedFieldError: models.FieldWalletAddress,
		},
		{
			name: "no coin selected",
			body: mustJSON(t, valid),
			setupMocks: func() {
				mockLoader.EXPECT().LoadPage(gomock.Any()).Return(page)
				mockForm.EXPECT().Submit(valid, testCoins).Return(noCoin, nil)
			},
			expectedStatus:    http.StatusBadRequest,
			expectedNotifyMsg: noCoin.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewPurchaseHandler(mockLoader, mockForm)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/purchase", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var resp struct {
				Errors       models.FieldErrors   `json:"errors"`
				Notification *models.Notification `json:"notification"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

			if tt.expectedFieldError != "" {
				assert.Contains(t, resp.Errors, tt.expectedFieldError)
				assert.Nil(t, resp.Notification)
				return
			}
			require.NotNil(t, resp.Notification)
			assert.Equal(t, tt.expectedNotifyMsg, resp.Notification.Message)
		})
	}
}

func TestPurchaseHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPurchaseHandler(NewMockPageLoader(ctrl), NewMockFormProcessor(ctrl))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/purchase", bytes.NewBufferString("[")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
