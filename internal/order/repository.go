package order

import (
	"context"
	"database/sql"
	"errors"

	"cantina-be/internal/logger"
	"cantina-be/internal/user"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	// Place runs the whole placement as one transaction: lock the buyer's
	// row, re-check the balance, insert the order and its items, debit.
	Place(ctx context.Context, userID int64, reference string, total decimal.Decimal, items []Item) (*Order, decimal.Decimal, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID int64) (*Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status Status) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Place(
	ctx context.Context,
	userID int64,
	reference string,
	total decimal.Decimal,
	items []Item,
) (*Order, decimal.Decimal, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer tx.Rollback()

	// FOR UPDATE serializes concurrent placements by the same user: the
	// second transaction blocks here until the first commits its debit.
	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, decimal.Zero, ErrUserNotFound
	}
	if err != nil {
		return nil, decimal.Zero, err
	}

	if balance.LessThan(total) {
		return nil, decimal.Zero, ErrInsufficientBalance
	}

	o := &Order{
		Reference: reference,
		UserID:    userID,
		Total:     total,
		Status:    StatusPending,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (reference, user_id, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, reference, userID, total, StatusPending).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Int64("user_id", userID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	for i := range items {
		items[i].OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice).Scan(&items[i].ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Int64("order_id", o.ID),
				zap.Int64("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return nil, decimal.Zero, err
		}
	}
	o.Items = items

	var newBalance decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		UPDATE users SET balance = balance - $1 WHERE id = $2
		RETURNING balance
	`, total, userID).Scan(&newBalance)
	if err != nil {
		log.Error("db: failed to debit balance", zap.Int64("user_id", userID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return nil, decimal.Zero, err
	}

	return o, newBalance, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, user_id, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return r.attachItems(ctx, orders)
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.reference, o.user_id, o.total, o.status, o.created_at,
		       u.id, u.name, u.email, u.student_id, u.role, u.balance, u.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		var u user.User
		err := rows.Scan(
			&o.ID, &o.Reference, &o.UserID, &o.Total, &o.Status, &o.CreatedAt,
			&u.ID, &u.Name, &u.Email, &u.StudentID, &u.Role, &u.Balance, &u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		o.User = &u
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.attachItems(ctx, orders)
}

func (r *repository) GetByID(ctx context.Context, orderID int64) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, reference, user_id, total, status, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.Reference, &o.UserID, &o.Total, &o.Status, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	orders, err := r.attachItems(ctx, []Order{o})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID int64, status Status) (*Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID,
	)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.GetByID(ctx, orderID)
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems loads the line items for a batch of orders in one query,
// with the referenced product joined in for display.
func (r *repository) attachItems(ctx context.Context, orders []Order) ([]Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price,
		       p.id, p.name, p.description, p.price, p.image_url, p.created_at
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.id ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[int64][]Item)
	for rows.Next() {
		var it Item
		err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice,
			&it.Product.ID, &it.Product.Name, &it.Product.Description,
			&it.Product.Price, &it.Product.ImageURL, &it.Product.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}
