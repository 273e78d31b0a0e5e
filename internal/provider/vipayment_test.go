package provider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVipaymentGateway_CreateOrder(t *testing.T) {
	req := entities.OrderRequest{
		ServiceCode: "VP",
		ProductCode: "430",
		ProductName: "Diamonds",
		UserID:      "123",
		ZoneID:      "456",
	}

	testCases := []struct {
		name         string
		httpStatus   int
		response     string
		wantErr      string
		wantRejected bool
		wantRef      entities.OrderRef
		wantStatus   entities.Status
	}{
		{
			name:       "success",
			httpStatus: http.StatusOK,
			response:   `{"result":true,"data":{"trxid":"trx-99"}}`,
			wantRef:    entities.OrderRef{Provider: entities.ProviderVipayment, OrderID: "trx-99"},
			wantStatus: entities.StatusWaiting,
		},
		{
			name:         "provider rejects order",
			httpStatus:   http.StatusOK,
			response:     `{"result":false,"message":"insufficient balance"}`,
			wantRejected: true,
		},
		{
			name:       "unexpected status code",
			httpStatus: http.StatusServiceUnavailable,
			wantErr:    "unexpected status code: 503",
		},
		{
			name:       "malformed response",
			httpStatus: http.StatusOK,
			response:   `{"result":`,
			wantErr:    "failed to decode response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/game-feature", r.URL.Path)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
				assert.Equal(t, "curl/7.64.1", r.Header.Get("User-Agent"))

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "test-key", r.PostForm.Get("key"))
				assert.Equal(t, "test-sign", r.PostForm.Get("sign"))
				assert.Equal(t, "order", r.PostForm.Get("type"))
				assert.Equal(t, "430", r.PostForm.Get("service"))
				assert.Equal(t, "123", r.PostForm.Get("data_no"))
				assert.Equal(t, "456", r.PostForm.Get("data_zone"))

				w.WriteHeader(tc.httpStatus)
				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw := provider.NewVipaymentGateway(testLogger(), config.Vipayment{
				URI:  srv.URL,
				Key:  "test-key",
				Sign: "test-sign",
			})

			res, err := gw.CreateOrder(context.Background(), req)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.wantRejected, res.Rejected)
			assert.Equal(t, tc.response, res.Raw)
			if !tc.wantRejected {
				assert.Equal(t, tc.wantRef, res.Ref)
				assert.Equal(t, tc.wantStatus, res.Status)
			}
		})
	}
}

func TestVipaymentGateway_CheckOrder(t *testing.T) {
	testCases := []struct {
		name         string
		response     string
		wantRejected bool
		wantStatus   entities.Status
	}{
		{
			name:       "status is passed through",
			response:   `{"result":true,"data":[{"status":"success"}]}`,
			wantStatus: entities.StatusSuccess,
		},
		{
			name:         "rejected when result is false",
			response:     `{"result":false,"data":[]}`,
			wantRejected: true,
		},
		// result=true с пустым data провайдер отдаёт по неизвестным trxid
		{
			name:         "rejected when data is empty",
			response:     `{"result":true,"data":[]}`,
			wantRejected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/game-feature", r.URL.Path)

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "test-key", r.PostForm.Get("key"))
				assert.Equal(t, "test-sign", r.PostForm.Get("sign"))
				assert.Equal(t, "status", r.PostForm.Get("type"))
				assert.Equal(t, "trx-99", r.PostForm.Get("trxid"))

				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw := provider.NewVipaymentGateway(testLogger(), config.Vipayment{
				URI:  srv.URL,
				Key:  "test-key",
				Sign: "test-sign",
			})

			res, err := gw.CheckOrder(context.Background(), entities.OrderRef{
				Provider: entities.ProviderVipayment,
				OrderID:  "trx-99",
			})
			require.NoError(t, err)

			assert.Equal(t, tc.wantRejected, res.Rejected)
			assert.Equal(t, tc.response, res.Raw)
			if !tc.wantRejected {
				assert.Equal(t, tc.wantStatus, res.Status)
			}
		})
	}
}
