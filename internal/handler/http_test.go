package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/handler"
	mocks "github.com/skydevhost/skyshop-gateway/internal/handler/mocks"
	"github.com/skydevhost/skyshop-gateway/internal/service"
)

func newTestRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func doRequest(r chi.Router, method, target, body string) (*http.Response, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	raw, _ := io.ReadAll(res.Body)
	return res, string(raw)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{"Input":"123","Zone_ID":"456","Email":"user@mail.com",` +
		`"payment":{"products":[{"name":"VP+430+Diamonds","quantity":1,"price":100}]}}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(req entities.OrderRequest) bool {
						return req.ServiceCode == "VP" && req.ProductCode == "430" &&
							req.ProductName == "Diamonds" && req.UserID == "123" &&
							req.ZoneID == "456" && req.Email == "user@mail.com" &&
							req.Quantity == 1
					})).
					Return(&service.PlaceResult{
						Ref: entities.OrderRef{Provider: entities.ProviderVipayment, OrderID: "trx-1"},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"trx-1"`,
		},
		{
			name:         "test request is echoed",
			body:         `{"test":{"ping":1}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusOK,
			wantBody:     "testing request successfully",
		},
		{
			name:         "missing parameters",
			body:         `{"Zone_ID":"456","Email":"user@mail.com"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "missing parameters",
		},
		{
			name:         "missing products",
			body:         `{"Input":"123","Zone_ID":"456","Email":"user@mail.com","payment":{"products":[]}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "missing products",
		},
		{
			name: "missing product parameters",
			body: `{"Input":"123","Zone_ID":"456","Email":"user@mail.com",` +
				`"payment":{"products":[{"name":"VP+430+Diamonds","quantity":1}]}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "missing product parameters",
		},
		{
			name: "missing product info",
			body: `{"Input":"123","Zone_ID":"456","Email":"user@mail.com",` +
				`"payment":{"products":[{"name":"Diamonds","quantity":1,"price":100}]}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "missing product info",
		},
		{
			name: "unknown service code",
			body: `{"Input":"123","Zone_ID":"456","Email":"user@mail.com",` +
				`"payment":{"products":[{"name":"XX+430+Diamonds","quantity":1,"price":100}]}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(nil, entities.ErrUnknownService).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid service code",
		},
		{
			name: "provider unavailable",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(nil, entities.ErrProviderUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "provider unavailable",
		},
		{
			name: "provider rejects order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(&service.PlaceResult{
						Raw:      `{"result":false,"message":"insufficient balance"}`,
						Rejected: true,
					}, nil).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "order creation failed",
		},
		{
			name: "storage error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "create order",
		},
		{
			name:         "malformed body",
			body:         `{"Input":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusInternalServerError,
			wantBody:     "request data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			res, body := doRequest(r, http.MethodPost, "/v1/skyshop", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder_EchoesRequestOnValidationError(t *testing.T) {
	_, r := newTestRouter(t)

	body := `{"Email":"user@mail.com"}`
	res, got := doRequest(r, http.MethodPost, "/v1/skyshop", body)

	// витрина получает свой запрос обратно для разбора инцидента
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, got, `"user@mail.com"`)
}

func TestHTTPHandler_CreateOrder_SuccessEnvelope(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().
		PlaceOrder(mock.Anything, mock.Anything).
		Return(&service.PlaceResult{
			Ref: entities.OrderRef{
				Provider:  entities.ProviderJollymax,
				OrderID:   "TM00340020250101123000abc",
				MessageID: "20250101123000def",
			},
		}, nil).Once()

	body := `{"Input":"123","Zone_ID":"456","Email":"user@mail.com",` +
		`"payment":{"products":[{"name":"JM+pubgm_gp_60+UC 60","quantity":1,"price":100}]}}`
	res, got := doRequest(r, http.MethodPost, "/v1/skyshop", body)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, got, `"status":"success"`)
	assert.Contains(t, got, `"message":"order created"`)
	assert.Contains(t, got, `"order_id":"TM00340020250101123000abc"`)
	assert.Contains(t, got, `"message_id":"20250101123000def"`)
}

func TestHTTPHandler_Info(t *testing.T) {
	_, r := newTestRouter(t)

	res, body := doRequest(r, http.MethodGet, "/v1/", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Skyshop Service API")
	assert.Contains(t, body, `"status":"active"`)
}

func TestHTTPHandler_Stats(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().Stats(mock.Anything).Return(service.OrderStats{
		Total: 9,
		ByProvider: map[entities.Provider]int{
			entities.ProviderVipayment: 2,
			entities.ProviderMoogold:   3,
			entities.ProviderJollymax:  4,
		},
	}, nil).Once()

	res, body := doRequest(r, http.MethodGet, "/v1/ops/stats", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total":9`)
	assert.Contains(t, body, `"MOOGOLD":3`)
}

func TestHTTPHandler_Orders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().Summaries(mock.Anything, entities.ProviderVipayment).
			Return([]entities.OrderSummary{
				{UserID: "123", OrderID: "trx-1", Status: entities.StatusWaiting},
			}, nil).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/orders?provider=VP", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"order_id":"trx-1"`)
	})

	t.Run("invalid provider code", func(t *testing.T) {
		_, r := newTestRouter(t)

		res, body := doRequest(r, http.MethodGet, "/v1/ops/orders?provider=XX", "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Invalid service code")
	})
}

func TestHTTPHandler_OrderByID(t *testing.T) {
	validOrder := entities.Order{
		UserID:   "123",
		Provider: entities.ProviderVipayment,
		OrderID:  "trx-1",
		Status:   entities.StatusWaiting,
	}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			target: "/v1/ops/orders/VP/trx-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByRef(mock.Anything, entities.OrderRef{
						Provider: entities.ProviderVipayment, OrderID: "trx-1",
					}).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"trx-1"`,
		},
		{
			name:   "jollymax ref carries message id",
			target: "/v1/ops/orders/JM/TM1?message_id=msg1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByRef(mock.Anything, entities.OrderRef{
						Provider: entities.ProviderJollymax, OrderID: "TM1", MessageID: "msg1",
					}).
					Return(entities.Order{Provider: entities.ProviderJollymax, OrderID: "TM1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "order found",
		},
		{
			name:   "not found",
			target: "/v1/ops/orders/VP/not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByRef(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "order not found",
		},
		{
			name:         "invalid provider code",
			target:       "/v1/ops/orders/XX/trx-1",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Invalid service code",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			res, body := doRequest(r, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, entities.OrderRef{
				Provider: entities.ProviderMoogold, OrderID: "250099999",
			}).
			Return(nil).Once()

		res, body := doRequest(r, http.MethodDelete, "/v1/ops/orders/MG/250099999", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "order deleted")
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, mock.Anything).
			Return(entities.ErrOrderNotFound).Once()

		res, body := doRequest(r, http.MethodDelete, "/v1/ops/orders/MG/not-exist", "")

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "order not found")
	})
}

func TestHTTPHandler_Balance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().Balance(mock.Anything).Return(decimal.NewFromFloat(99.5), nil).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/balance", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"balance":"99.5"`)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().Balance(mock.Anything).
			Return(decimal.Decimal{}, errors.New("timeout")).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/balance", "")

		assert.Equal(t, http.StatusBadGateway, res.StatusCode)
		assert.Contains(t, body, "provider unavailable")
	})
}

func TestHTTPHandler_Products(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().Products(mock.Anything, "19").
			Return([]byte(`[{"ID":19}]`), nil).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/products?category_id=19", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "list of products received successfully")
	})

	t.Run("missing category id", func(t *testing.T) {
		_, r := newTestRouter(t)

		res, body := doRequest(r, http.MethodGet, "/v1/ops/products", "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "invalid category id")
	})

	t.Run("provider unavailable", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().Products(mock.Anything, "19").
			Return(nil, errors.New("timeout")).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/products?category_id=19", "")

		assert.Equal(t, http.StatusBadGateway, res.StatusCode)
		assert.Contains(t, body, "provider unavailable")
	})
}

func TestHTTPHandler_ProductDetail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().ProductDetail(mock.Anything, "4233885").
			Return([]byte(`{"ID":4233885}`), nil).Once()

		res, body := doRequest(r, http.MethodGet, "/v1/ops/products/4233885", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "product received successfully")
	})

	t.Run("invalid product id", func(t *testing.T) {
		_, r := newTestRouter(t)

		res, body := doRequest(r, http.MethodGet, "/v1/ops/products/abc", "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "invalid product id")
	})
}
