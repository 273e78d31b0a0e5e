package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
	mocks "github.com/skydevhost/skyshop-gateway/internal/handler/mocks"
	"github.com/skydevhost/skyshop-gateway/internal/service"
)

func TestKafkaHandler_HandlePlaceOrder(t *testing.T) {
	validMsg := `{"service_code":"MG","product_code":"4233885","product_name":"Diamonds",` +
		`"user_id":"123","zone_id":"456","email":"user@mail.com","quantity":1,"price":"150"}`

	testCases := []struct {
		name         string
		message      string
		mockBehavior func(placer *mocks.MockOrderPlacer)
		wantErr      string
	}{
		{
			name:    "success",
			message: validMsg,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(req entities.OrderRequest) bool {
						return req.ServiceCode == "MG" && req.ProductCode == "4233885" &&
							req.UserID == "123" && req.Email == "user@mail.com"
					})).
					Return(&service.PlaceResult{
						Ref: entities.OrderRef{Provider: entities.ProviderMoogold, OrderID: "250011111"},
					}, nil).Once()
			},
		},
		{
			// бизнес-отказ не считается ошибкой обработки, сообщение коммитится
			name:    "rejected order is committed",
			message: validMsg,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(&service.PlaceResult{Raw: `{"status":false}`, Rejected: true}, nil).Once()
			},
		},
		{
			name:         "malformed message",
			message:      `{"service_code":`,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {},
			wantErr:      "failed to unmarshal order request",
		},
		{
			name:         "missing required fields",
			message:      `{"service_code":"MG"}`,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {},
			wantErr:      "invalid order request",
		},
		{
			name: "zero price",
			message: `{"service_code":"MG","product_code":"4233885","product_name":"Diamonds",` +
				`"user_id":"123","email":"user@mail.com","quantity":1}`,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {},
			wantErr:      "price is required",
		},
		{
			name:    "placer error is propagated",
			message: validMsg,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(nil, entities.ErrProviderUnavailable).Once()
			},
			wantErr: "provider unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			placer := mocks.NewMockOrderPlacer(t)
			tc.mockBehavior(placer)

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				placer:   placer,
			}

			err := h.handlePlaceOrder(context.Background(), kafka.Message{Value: []byte(tc.message)})

			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
