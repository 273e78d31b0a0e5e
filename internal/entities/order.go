package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Order представляет сохранённый заказ на пополнение. ID выдаёт хранилище,
// наружу он не уходит: провайдер знает заказ по Ref.
type Order struct {
	ID           int64
	UserID       string
	ZoneID       string
	Quantity     int
	Price        decimal.Decimal
	Product      string
	Provider     Provider
	OrderID      string
	MessageID    string // заполняется только у JollyMax
	EmailUser    string
	Status       Status
	OrderDetails string
}

// Ref возвращает идентификатор заказа на стороне провайдера.
func (o Order) Ref() OrderRef {
	return OrderRef{Provider: o.Provider, OrderID: o.OrderID, MessageID: o.MessageID}
}

// OrderRef идентифицирует заказ у провайдера. VIPayment и MooGold хватает
// OrderID, заказы JollyMax ключуются парой (OrderID, MessageID).
type OrderRef struct {
	Provider  Provider
	OrderID   string
	MessageID string
}

// OrderUpdate поля, которые может переписать проверка статуса.
// Поле nil хранилище не трогает.
type OrderUpdate struct {
	Status  *Status
	Details *string
}

// OrderSummary краткая строка заказа для операторской статистики
type OrderSummary struct {
	UserID  string
	OrderID string
	Status  Status
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrUnknownService = errors.New("unknown service code")

	// ErrProviderUnavailable помечает транспортные сбои при походе к провайдеру,
	// чтобы хендлер мог отличить их от ошибок хранилища.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
