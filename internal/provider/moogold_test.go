package provider_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
)

// assertMoogoldAuth сверяет подпись и Basic-авторизацию по тем же байтам,
// что пришли в теле запроса.
func assertMoogoldAuth(t *testing.T, r *http.Request, body []byte, apiMethod string) {
	t.Helper()

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write(body)
	mac.Write([]byte(r.Header.Get("timestamp")))
	mac.Write([]byte(apiMethod))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("auth"))

	basic := base64.StdEncoding.EncodeToString([]byte("partner-1:secret-key"))
	assert.Equal(t, "Basic "+basic, r.Header.Get("Authorization"))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	assert.NotEmpty(t, r.Header.Get("timestamp"))
}

func moogoldTestConfig(uri string) config.Moogold {
	return config.Moogold{
		URI:       uri + "/",
		SecretKey: "secret-key",
		PartnerID: "partner-1",
	}
}

func TestMoogoldGateway_CreateOrder(t *testing.T) {
	req := entities.OrderRequest{
		ServiceCode: "MG",
		ProductCode: "4233885",
		UserID:      "123",
		ZoneID:      "456",
	}

	testCases := []struct {
		name         string
		response     string
		wantRejected bool
		wantOrderID  string
	}{
		{
			name:        "success",
			response:    `{"status":true,"account_details":{"order_id":25623}}`,
			wantOrderID: "25623",
		},
		{
			name:         "provider rejects order",
			response:     `{"status":false,"err_message":"out of stock"}`,
			wantRejected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/order/create_order", r.URL.Path)

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assertMoogoldAuth(t, r, body, "order/create_order")

				var got struct {
					Path string            `json:"path"`
					Data map[string]string `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "order/create_order", got.Path)
				assert.Equal(t, "1", got.Data["category"])
				assert.Equal(t, "4233885", got.Data["product-id"])
				assert.Equal(t, "1", got.Data["quantity"])
				assert.Equal(t, "123", got.Data["User ID"])
				assert.Equal(t, "456", got.Data["Server"])

				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw := provider.NewMoogoldGateway(testLogger(), moogoldTestConfig(srv.URL))

			res, err := gw.CreateOrder(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tc.wantRejected, res.Rejected)
			assert.Equal(t, tc.response, res.Raw)
			if !tc.wantRejected {
				assert.Equal(t, entities.OrderRef{Provider: entities.ProviderMoogold, OrderID: tc.wantOrderID}, res.Ref)
				assert.Equal(t, entities.StatusProcessing, res.Status)
			}
		})
	}
}

func TestMoogoldGateway_CheckOrder(t *testing.T) {
	testCases := []struct {
		name         string
		response     string
		wantRejected bool
		wantStatus   entities.Status
	}{
		{
			name:       "status is passed through",
			response:   `{"order_status":"completed"}`,
			wantStatus: entities.StatusCompleted,
		},
		{
			name:         "rejected when status is empty",
			response:     `{"err_message":"order not found"}`,
			wantRejected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/order/order_detail", r.URL.Path)

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assertMoogoldAuth(t, r, body, "order/order_detail")
				// order_id уходит числом, как того требует API
				assert.JSONEq(t, `{"path":"order/order_detail","order_id":25623}`, string(body))

				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw := provider.NewMoogoldGateway(testLogger(), moogoldTestConfig(srv.URL))

			res, err := gw.CheckOrder(context.Background(), entities.OrderRef{
				Provider: entities.ProviderMoogold,
				OrderID:  "25623",
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

func TestMoogoldGateway_ListProducts(t *testing.T) {
	catalog := `{"success":true,"data":[{"ID":"4233885","post_title":"Diamonds"}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/list_product", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assertMoogoldAuth(t, r, body, "product/list_product")
		assert.JSONEq(t, `{"path":"product/list_product","category_id":19}`, string(body))

		w.Write([]byte(catalog))
	}))
	defer srv.Close()

	gw := provider.NewMoogoldGateway(testLogger(), moogoldTestConfig(srv.URL))

	raw, err := gw.ListProducts(context.Background(), "19")
	require.NoError(t, err)
	// каталог отдаётся как есть, без разбора
	assert.Equal(t, catalog, string(raw))
}

func TestMoogoldGateway_FindProduct(t *testing.T) {
	detail := `{"ID":"4233885","post_title":"Diamonds","variation":[]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/product_detail", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assertMoogoldAuth(t, r, body, "product/product_detail")
		assert.JSONEq(t, `{"path":"product/product_detail","product_id":4233885}`, string(body))

		w.Write([]byte(detail))
	}))
	defer srv.Close()

	gw := provider.NewMoogoldGateway(testLogger(), moogoldTestConfig(srv.URL))

	raw, err := gw.FindProduct(context.Background(), "4233885")
	require.NoError(t, err)
	assert.Equal(t, detail, string(raw))
}
