package entities

import "github.com/shopspring/decimal"

// OrderRequest запрос на покупку после разбора и валидации, готовый к
// маршрутизации. ServiceCode короткий код сервиса ("VP", "MG" или "JM"),
// ProductCode идентификатор продукта на стороне провайдера.
type OrderRequest struct {
	ServiceCode string
	ProductCode string
	ProductName string
	UserID      string
	ZoneID      string
	Email       string
	Quantity    int
	Price       decimal.Decimal
}
