package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
	"github.com/skydevhost/skyshop-gateway/pkg/utils"
)

type OrderRepo interface {
	// Create идемпотентен, т.к. используется ON CONFLICT DO NOTHING
	Create(ctx context.Context, o entities.Order) error
	ByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, error)
	Delete(ctx context.Context, ref entities.OrderRef) error
	Count(ctx context.Context, p entities.Provider) (int, error)
	Summaries(ctx context.Context, p entities.Provider) ([]entities.OrderSummary, error)
}

type Notifier interface {
	Announce(ctx context.Context, text string)
}

type Catalog interface {
	ListProducts(ctx context.Context, categoryID string) (json.RawMessage, error)
	FindProduct(ctx context.Context, productID string) (json.RawMessage, error)
}

type BalanceProvider interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// PlaceResult ответ транспорту на размещение заказа. Rejected повторяет
// отказ провайдера, Raw несёт его ответ как есть.
type PlaceResult struct {
	Ref      entities.OrderRef
	Raw      string
	Rejected bool
}

// OrderStats срез статистики заказов для операторов
type OrderStats struct {
	Total      int
	ByProvider map[entities.Provider]int
}

type orderService struct {
	logger   *slog.Logger
	repo     OrderRepo
	gateways map[entities.Provider]provider.Gateway
	notifier Notifier
	catalog  Catalog
	balance  BalanceProvider
	cache    Cache
}

func NewOrderService(
	logger *slog.Logger,
	repo OrderRepo,
	gateways map[entities.Provider]provider.Gateway,
	notifier Notifier,
	catalog Catalog,
	balance BalanceProvider,
	cache Cache,
) *orderService {
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		repo:     repo,
		gateways: gateways,
		notifier: notifier,
		catalog:  catalog,
		balance:  balance,
		cache:    cache,
	}
}

// PlaceOrder маршрутизирует запрос к провайдеру и сохраняет созданный
// заказ. Операторы получают уведомление сразу после выбора провайдера,
// до похода к нему, независимо от исхода.
func (s *orderService) PlaceOrder(ctx context.Context, req entities.OrderRequest) (*PlaceResult, error) {
	p, ok := entities.ProviderByCode(req.ServiceCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownService, req.ServiceCode)
	}
	gw, ok := s.gateways[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownService, req.ServiceCode)
	}

	s.notifier.Announce(ctx, orderAnnouncement(p, req))

	res, err := gw.CreateOrder(ctx, req)
	if err != nil {
		return nil, errors.Join(entities.ErrProviderUnavailable, err)
	}
	if res.Rejected {
		s.logger.Warn("order rejected by provider",
			"provider", string(p), "user_id", req.UserID)
		return &PlaceResult{Raw: res.Raw, Rejected: true}, nil
	}

	order := entities.Order{
		UserID:       req.UserID,
		ZoneID:       req.ZoneID,
		Quantity:     req.Quantity,
		Price:        req.Price,
		Product:      req.ProductName,
		Provider:     p,
		OrderID:      res.Ref.OrderID,
		MessageID:    res.Ref.MessageID,
		EmailUser:    req.Email,
		Status:       res.Status,
		OrderDetails: res.Raw,
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, func() error { return s.repo.Create(ctx, order) }); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order placed",
		"provider", string(p), "order_id", res.Ref.OrderID, "user_id", req.UserID)
	return &PlaceResult{Ref: res.Ref, Raw: res.Raw}, nil
}

func (s *orderService) Stats(ctx context.Context) (OrderStats, error) {
	stats := OrderStats{ByProvider: make(map[entities.Provider]int, 3)}
	for _, p := range entities.Providers() {
		count, err := s.repo.Count(ctx, p)
		if err != nil {
			return OrderStats{}, fmt.Errorf("failed to count orders: %w", err)
		}
		stats.ByProvider[p] = count
		stats.Total += count
	}
	return stats, nil
}

func (s *orderService) Summaries(ctx context.Context, p entities.Provider) ([]entities.OrderSummary, error) {
	summaries, err := s.repo.Summaries(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to get summaries: %w", err)
	}
	return summaries, nil
}

func (s *orderService) OrderByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.ByRef(ctx, ref)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, ref entities.OrderRef) error {
	if err := s.repo.Delete(ctx, ref); err != nil {
		return err
	}
	s.logger.Info("order deleted",
		"provider", string(ref.Provider), "order_id", ref.OrderID)
	return nil
}

func (s *orderService) Balance(ctx context.Context) (decimal.Decimal, error) {
	return s.balance.Balance(ctx)
}

func (s *orderService) Products(ctx context.Context, categoryID string) (json.RawMessage, error) {
	key := "products:" + categoryID
	if data, ok := s.cache.Get(key); ok {
		return json.RawMessage(data), nil
	}

	data, err := s.catalog.ListProducts(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, data)
	return data, nil
}

func (s *orderService) ProductDetail(ctx context.Context, productID string) (json.RawMessage, error) {
	key := "product:" + productID
	if data, ok := s.cache.Get(key); ok {
		return json.RawMessage(data), nil
	}

	data, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, data)
	return data, nil
}

func orderAnnouncement(p entities.Provider, req entities.OrderRequest) string {
	return fmt.Sprintf(
		"🪙 Новый заказ\n\n🌐Сервис платежа: %s\n🔵Название: %s\n🪪Пользователь: %s\n💎Количество: %d\n💲Стоимость: %s руб.",
		p.Title(), req.ProductName, req.UserID, req.Quantity, req.Price.String(),
	)
}
