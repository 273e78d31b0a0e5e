package provider_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
)

// generateTestKey кладёт свежий RSA-ключ в PEM во временный каталог.
func generateTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	path := filepath.Join(t.TempDir(), "jollymax.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return key, path
}

func jollymaxTestConfig(uri, keyPath string) config.Jollymax {
	return config.Jollymax{
		URI:            uri,
		MerchantAppID:  "app-1",
		MerchantNo:     "merchant-1",
		PrivateKeyPath: keyPath,
	}
}

// assertJollymaxEnvelope сверяет конверт и подпись sign по байтам тела,
// тело возвращается для дальнейшего разбора.
func assertJollymaxEnvelope(t *testing.T, r *http.Request, key *rsa.PrivateKey) []byte {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

	sig, err := base64.StdEncoding.DecodeString(r.Header.Get("sign"))
	assert.NoError(t, err)
	digest := sha256.Sum256(body)
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, digest[:], sig))

	var envelope struct {
		RequestTime   string `json:"requestTime"`
		Version       string `json:"version"`
		KeyVersion    string `json:"keyVersion"`
		MerchantAppID string `json:"merchantAppId"`
		MerchantNo    string `json:"merchantNo"`
	}
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "1.0", envelope.Version)
	assert.Equal(t, "1", envelope.KeyVersion)
	assert.Equal(t, "app-1", envelope.MerchantAppID)
	assert.Equal(t, "merchant-1", envelope.MerchantNo)

	_, err = time.Parse("2006-01-02T15:04:05.000-07:00", envelope.RequestTime)
	assert.NoError(t, err)

	return body
}

func TestJollymaxGateway_CreateOrder(t *testing.T) {
	key, keyPath := generateTestKey(t)

	req := entities.OrderRequest{
		ServiceCode: "JM",
		ProductCode: "mlbb_86",
		UserID:      "123",
		ZoneID:      "456",
	}

	testCases := []struct {
		name         string
		response     string
		wantRejected bool
	}{
		{
			name:     "success",
			response: `{"code":"APPLY_SUCCESS","data":{"status":"waiting"}}`,
		},
		{
			name:         "provider rejects order",
			response:     `{"code":"PRODUCT_NOT_FOUND","message":"unknown code"}`,
			wantRejected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotOrderID, gotMessageID string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/distribute-order-create", r.URL.Path)

				body := assertJollymaxEnvelope(t, r, key)

				var got struct {
					Data struct {
						OutOrderID string `json:"outOrderId"`
						Code       string `json:"code"`
						Quantity   int    `json:"quantity"`
						TradeInfo  struct {
							UserID   string `json:"userId"`
							ServerID string `json:"serverId"`
						} `json:"tradeInfo"`
						MessageID string `json:"messageId"`
					} `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.True(t, strings.HasPrefix(got.Data.OutOrderID, "TM003400"))
				assert.Equal(t, "mlbb_86", got.Data.Code)
				assert.Equal(t, 1, got.Data.Quantity)
				assert.Equal(t, "123", got.Data.TradeInfo.UserID)
				assert.Equal(t, "456", got.Data.TradeInfo.ServerID)
				assert.NotEmpty(t, got.Data.MessageID)

				gotOrderID = got.Data.OutOrderID
				gotMessageID = got.Data.MessageID

				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, keyPath))
			require.NoError(t, err)

			res, err := gw.CreateOrder(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tc.wantRejected, res.Rejected)
			assert.Equal(t, tc.response, res.Raw)
			if !tc.wantRejected {
				assert.Equal(t, entities.OrderRef{
					Provider:  entities.ProviderJollymax,
					OrderID:   gotOrderID,
					MessageID: gotMessageID,
				}, res.Ref)
				assert.Equal(t, entities.StatusWaiting, res.Status)
			}
		})
	}
}

func TestJollymaxGateway_CheckOrder(t *testing.T) {
	key, keyPath := generateTestKey(t)

	testCases := []struct {
		name         string
		response     string
		wantRejected bool
		wantStatus   entities.Status
	}{
		{
			name:       "status is passed through",
			response:   `{"code":"APPLY_SUCCESS","data":{"status":"success"}}`,
			wantStatus: entities.StatusSuccess,
		},
		{
			name:         "rejected when code is not success",
			response:     `{"code":"ORDER_NOT_EXIST"}`,
			wantRejected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/distribute-order-query", r.URL.Path)

				body := assertJollymaxEnvelope(t, r, key)

				var got struct {
					Data struct {
						OutOrderID string `json:"outOrderId"`
						MessageID  string `json:"messageId"`
					} `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "TM00340099", got.Data.OutOrderID)
				assert.Equal(t, "msg-1", got.Data.MessageID)

				w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, keyPath))
			require.NoError(t, err)

			res, err := gw.CheckOrder(context.Background(), entities.OrderRef{
				Provider:  entities.ProviderJollymax,
				OrderID:   "TM00340099",
				MessageID: "msg-1",
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

func TestJollymaxGateway_Balance(t *testing.T) {
	key, keyPath := generateTestKey(t)

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/distribute-balance-query", r.URL.Path)
			assertJollymaxEnvelope(t, r, key)
			w.Write([]byte(`{"code":"APPLY_SUCCESS","data":{"balance":105.7}}`))
		}))
		defer srv.Close()

		gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, keyPath))
		require.NoError(t, err)

		balance, err := gw.Balance(context.Background())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(105.7).Equal(balance))
	})

	t.Run("error code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"SYSTEM_BUSY"}`))
		}))
		defer srv.Close()

		gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, keyPath))
		require.NoError(t, err)

		_, err = gw.Balance(context.Background())
		assert.ErrorContains(t, err, "balance was not received: SYSTEM_BUSY")
	})
}

func TestJollymaxGateway_PrivateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"APPLY_SUCCESS","data":{"balance":1}}`))
	}))
	defer srv.Close()

	t.Run("pkcs8 key", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "jollymax.pem")
		block := &pem.Block{Type: "PRIVATE KEY", Bytes: der}
		require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))

		gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, path))
		require.NoError(t, err)

		_, err = gw.Balance(context.Background())
		assert.NoError(t, err)
	})

	t.Run("key file is missing", func(t *testing.T) {
		gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, "no-such-key.pem"))
		require.NoError(t, err)

		_, err = gw.Balance(context.Background())
		assert.ErrorContains(t, err, "failed to read private key")
	})

	t.Run("garbage instead of pem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jollymax.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a pem"), 0o600))

		gw, err := provider.NewJollymaxGateway(testLogger(), jollymaxTestConfig(srv.URL, path))
		require.NoError(t, err)

		_, err = gw.Balance(context.Background())
		assert.ErrorContains(t, err, "failed to decode private key pem")
	})
}
