package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
)

type OrderStore interface {
	ByStatus(ctx context.Context, p entities.Provider, s entities.Status) ([]entities.Order, error)
	Update(ctx context.Context, ref entities.OrderRef, upd entities.OrderUpdate) error
}

// Reconciler доводит незавершённые заказы до терминального статуса:
// периодически опрашивает провайдеров и записывает принятые обновления.
type Reconciler struct {
	logger   *slog.Logger
	store    OrderStore
	gateways map[entities.Provider]provider.Gateway
	interval time.Duration
}

func NewReconciler(
	logger *slog.Logger,
	store OrderStore,
	gateways map[entities.Provider]provider.Gateway,
	interval time.Duration,
) *Reconciler {
	return &Reconciler{
		logger:   logger.With(slog.String("service", "reconciler")),
		store:    store,
		gateways: gateways,
		interval: interval,
	}
}

// Start запускает цикл сверки. Интервал отсчитывается от завершения
// прохода, а не по настенным часам.
func (r *Reconciler) Start(ctx context.Context) error {
	r.logger.Info("reconciler started", slog.String("interval", r.interval.String()))
	for {
		r.Sweep(ctx)

		timer := time.NewTimer(r.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("reconciler stopped")
			return nil
		case <-timer.C:
		}
	}
}

// Sweep проходит всех провайдеров параллельно. Сбой одного провайдера не
// прерывает остальных, поэтому все ветки возвращают nil.
func (r *Reconciler) Sweep(ctx context.Context) {
	start := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	for _, p := range entities.Providers() {
		eg.Go(func() error {
			if err := r.sweepProvider(ctx, p); err != nil {
				r.logger.Error("sweep failed", "provider", string(p), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = eg.Wait()

	sweepDuration.Observe(time.Since(start).Seconds())
}

func (r *Reconciler) sweepProvider(ctx context.Context, p entities.Provider) error {
	gw, ok := r.gateways[p]
	if !ok {
		return fmt.Errorf("no gateway for provider %s", p)
	}

	orders, err := r.store.ByStatus(ctx, p, p.CheckableStatus())
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	for _, order := range orders {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ordersChecked.WithLabelValues(string(p)).Inc()

		res, err := gw.CheckOrder(ctx, order.Ref())
		if err != nil {
			checkErrors.WithLabelValues(string(p)).Inc()
			r.logger.Error("failed to check order",
				"provider", string(p), "order_id", order.OrderID, slog.Any("error", err))
			continue
		}
		if res.Rejected {
			r.logger.Warn("order check rejected",
				"provider", string(p), "order_id", order.OrderID)
			continue
		}
		if !p.ValidStatus(res.Status) {
			r.logger.Warn("invalid order status",
				"provider", string(p), "order_id", order.OrderID, "status", string(res.Status))
			continue
		}

		upd := entities.OrderUpdate{Status: &res.Status, Details: &res.Raw}
		if err := r.store.Update(ctx, order.Ref(), upd); err != nil {
			r.logger.Error("failed to update order",
				"provider", string(p), "order_id", order.OrderID, slog.Any("error", err))
			continue
		}

		ordersUpdated.WithLabelValues(string(p), string(res.Status)).Inc()
		r.logger.Info("order status updated",
			"provider", string(p), "order_id", order.OrderID, "status", string(res.Status))
	}
	return nil
}
