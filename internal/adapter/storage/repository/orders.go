package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orderdesk/orderdesk/internal/adapter/storage"
	"github.com/orderdesk/orderdesk/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Insert("orders").
		Columns("symbol", "side", "quantity", "price", "status").
		Values(order.Symbol, order.Side, order.Quantity, order.Price, order.Status).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return nil, domain.ErrInvalidOrder
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "symbol", "side", "quantity", "price", "status", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Symbol,
		&order.Side,
		&order.Quantity,
		&order.Price,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (or *Repository) ListOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "symbol", "side", "quantity", "price", "status", "created_at").
		From("orders").
		OrderBy("id DESC").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Symbol,
			&order.Side,
			&order.Quantity,
			&order.Price,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (or *Repository) DeleteOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (or *Repository) Ping(ctx context.Context) error {
	return or.db.Pool.Ping(ctx)
}
