package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

// SkyshopRequest витринный запрос на создание заказа. Имена полей
// повторяют формат витрины как есть.
type SkyshopRequest struct {
	Test    json.RawMessage `json:"test,omitempty"`
	Input   string          `json:"Input"`
	ZoneID  string          `json:"Zone_ID"`
	Email   string          `json:"Email"`
	Payment SkyshopPayment  `json:"payment"`
}

type SkyshopPayment struct {
	Products []SkyshopProduct `json:"products"`
}

// SkyshopProduct первая позиция корзины. name кодирует маршрутизацию:
// "<сервис>+<код продукта>+<название>".
type SkyshopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderMessage нормализованный запрос заказа из Kafka
type OrderMessage struct {
	ServiceCode string          `json:"service_code" validate:"required"`
	ProductCode string          `json:"product_code" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	UserID      string          `json:"user_id" validate:"required"`
	ZoneID      string          `json:"zone_id"`
	Email       string          `json:"email" validate:"required,email"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
}

func OrderMessageToEntity(m OrderMessage) entities.OrderRequest {
	return entities.OrderRequest{
		ServiceCode: m.ServiceCode,
		ProductCode: m.ProductCode,
		ProductName: m.ProductName,
		UserID:      m.UserID,
		ZoneID:      m.ZoneID,
		Email:       m.Email,
		Quantity:    m.Quantity,
		Price:       m.Price,
	}
}

// Order представляет заказ в ответах операторских ручек
type Order struct {
	UserID       string          `json:"user_id"`
	ZoneID       string          `json:"zone_id,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Product      string          `json:"product"`
	ApiName      string          `json:"api_name"`
	OrderID      string          `json:"order_id"`
	MessageID    string          `json:"message_id,omitempty"`
	EmailUser    string          `json:"email_user,omitempty"`
	Status       string          `json:"status"`
	OrderDetails string          `json:"order_details,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		UserID:       o.UserID,
		ZoneID:       o.ZoneID,
		Quantity:     o.Quantity,
		Price:        o.Price,
		Product:      o.Product,
		ApiName:      string(o.Provider),
		OrderID:      o.OrderID,
		MessageID:    o.MessageID,
		EmailUser:    o.EmailUser,
		Status:       string(o.Status),
		OrderDetails: o.OrderDetails,
	}
}

// OrderSummary краткая строка заказа для статистики
type OrderSummary struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func OrderSummaryEntityToJSON(s entities.OrderSummary) OrderSummary {
	return OrderSummary{
		UserID:  s.UserID,
		OrderID: s.OrderID,
		Status:  string(s.Status),
	}
}

// OrderCreatedResponse ответ витрине на успешное создание заказа.
// message_id заполняется только у JollyMax.
type OrderCreatedResponse struct {
	OrderID   string `json:"order_id"`
	MessageID string `json:"message_id,omitempty"`
}

type TestResponse struct {
	Test json.RawMessage `json:"test"`
}

type InfoResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Ver     string `json:"ver"`
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

type StatsResponse struct {
	Total     int            `json:"total"`
	Providers map[string]int `json:"providers"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
