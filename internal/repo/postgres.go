package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skydevhost/skyshop-gateway/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create сохраняет новый заказ в таблицу его провайдера. Повторная вставка
// заказа с тем же order_id молча пропускается.
func (r *ordersRepo) Create(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert(tableFor(o.Provider)).
		Columns(
			"user_id", "zone_id", "quantity", "price", "product",
			"api_name", "order_id", "message_id", "email_user",
			"status", "order_details",
		).
		Values(
			o.UserID, o.ZoneID, o.Quantity, o.Price, o.Product,
			string(o.Provider), o.OrderID, o.MessageID, o.EmailUser,
			string(o.Status), o.OrderDetails,
		).
		Suffix("ON CONFLICT DO NOTHING").
		MustSql()

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *ordersRepo) ByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "user_id", "zone_id", "quantity", "price", "product",
		"api_name", "order_id", "message_id", "email_user",
		"status", "order_details").
		From(tableFor(ref.Provider)).
		Where(refWhere(ref)).
		MustSql()

	var row orderRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(row), nil
}

func (r *ordersRepo) ByStatus(ctx context.Context, p entities.Provider, s entities.Status) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "user_id", "zone_id", "quantity", "price", "product",
		"api_name", "order_id", "message_id", "email_user",
		"status", "order_details").
		From(tableFor(p)).
		Where(sq.Eq{"status": string(s)}).
		OrderBy("id").
		MustSql()

	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row))
	}
	return orders, nil
}

// Update переписывает статус и детали заказа. Nil-поля не трогаются.
func (r *ordersRepo) Update(ctx context.Context, ref entities.OrderRef, upd entities.OrderUpdate) error {
	if upd.Status == nil && upd.Details == nil {
		return nil
	}

	q := r.qb.Update(tableFor(ref.Provider))
	if upd.Status != nil {
		q = q.Set("status", string(*upd.Status))
	}
	if upd.Details != nil {
		q = q.Set("order_details", *upd.Details)
	}

	query, args := q.Where(refWhere(ref)).MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) Delete(ctx context.Context, ref entities.OrderRef) error {
	query, args := r.qb.Delete(tableFor(ref.Provider)).
		Where(refWhere(ref)).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) Count(ctx context.Context, p entities.Provider) (int, error) {
	query, args := r.qb.Select("count(*)").
		From(tableFor(p)).
		MustSql()

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *ordersRepo) Summaries(ctx context.Context, p entities.Provider) ([]entities.OrderSummary, error) {
	query, args := r.qb.Select("user_id", "order_id", "status").
		From(tableFor(p)).
		OrderBy("id DESC").
		MustSql()

	var rows []summaryRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select summaries: %w", err)
	}

	summaries := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, SummaryToEntity(row))
	}
	return summaries, nil
}

// refWhere выбирает заказ по провайдерскому идентификатору. У JollyMax
// заказ ключуется парой (order_id, message_id).
func refWhere(ref entities.OrderRef) sq.Eq {
	where := sq.Eq{"order_id": ref.OrderID}
	if ref.Provider == entities.ProviderJollymax {
		where["message_id"] = ref.MessageID
	}
	return where
}
