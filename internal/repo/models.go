package repo

import (
	"github.com/shopspring/decimal"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

// orderRow образ entities.Order в базе. Все три таблицы заказов имеют
// одинаковый набор колонок, message_id заполняется только у JollyMax.
type orderRow struct {
	ID           int64           `db:"id"`
	UserID       string          `db:"user_id"`
	ZoneID       string          `db:"zone_id"`
	Quantity     int             `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	Product      string          `db:"product"`
	ApiName      string          `db:"api_name"`
	OrderID      string          `db:"order_id"`
	MessageID    string          `db:"message_id"`
	EmailUser    string          `db:"email_user"`
	Status       string          `db:"status"`
	OrderDetails string          `db:"order_details"`
}

type summaryRow struct {
	UserID  string `db:"user_id"`
	OrderID string `db:"order_id"`
	Status  string `db:"status"`
}

func OrderToEntity(r orderRow) entities.Order {
	return entities.Order{
		ID:           r.ID,
		UserID:       r.UserID,
		ZoneID:       r.ZoneID,
		Quantity:     r.Quantity,
		Price:        r.Price,
		Product:      r.Product,
		Provider:     entities.Provider(r.ApiName),
		OrderID:      r.OrderID,
		MessageID:    r.MessageID,
		EmailUser:    r.EmailUser,
		Status:       entities.Status(r.Status),
		OrderDetails: r.OrderDetails,
	}
}

func SummaryToEntity(r summaryRow) entities.OrderSummary {
	return entities.OrderSummary{
		UserID:  r.UserID,
		OrderID: r.OrderID,
		Status:  entities.Status(r.Status),
	}
}

// tableFor возвращает таблицу заказов провайдера.
func tableFor(p entities.Provider) string {
	switch p {
	case entities.ProviderVipayment:
		return "vp_orders"
	case entities.ProviderMoogold:
		return "mg_orders"
	case entities.ProviderJollymax:
		return "jm_orders"
	}
	return ""
}
