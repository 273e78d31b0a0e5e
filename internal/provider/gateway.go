package provider

import (
	"context"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

// CreateResult результат размещения заказа у провайдера. Rejected помечает
// бизнес-отказ: провайдер ответил, но заказ не создал. Raw хранит тело
// ответа как есть, оно пишется в order_details.
type CreateResult struct {
	Ref      entities.OrderRef
	Status   entities.Status
	Raw      string
	Rejected bool
}

// CheckResult результат проверки статуса. Семантика Rejected и Raw та же,
// что у CreateResult.
type CheckResult struct {
	Status   entities.Status
	Raw      string
	Rejected bool
}

// Gateway клиент провайдера. Транспортные ошибки и ошибки разбора
// возвращаются через error, бизнес-отказы приходят результатом с Rejected.
type Gateway interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (CreateResult, error)
	CheckOrder(ctx context.Context, ref entities.OrderRef) (CheckResult, error)
}
