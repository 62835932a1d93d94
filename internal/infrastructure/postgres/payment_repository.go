package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
)

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentRow struct {
	ID        string    `db:"id"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	Method    string    `db:"method"`
	ProductID string    `db:"product_id"`
	TxID      string    `db:"tx_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	const q = `
		INSERT INTO payments (id, amount, currency, method, product_id, tx_id, status, created_at, updated_at)
		VALUES (:id, :amount, :currency, :method, :product_id, :tx_id, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, q, toRow(payment)); err != nil {
		return fmt.Errorf("postgres: save payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const q = `
		UPDATE payments
		SET amount = :amount, currency = :currency, method = :method,
		    product_id = :product_id, tx_id = :tx_id, status = :status,
		    updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, toRow(payment))
	if err != nil {
		return fmt.Errorf("postgres: update payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: update payment: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Payment, error) {
	var row paymentRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM payments WHERE id = $1`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: find payment: %w", err)
	}
	return toDomain(row), nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	var rows []paymentRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM payments`); err != nil {
		return nil, fmt.Errorf("postgres: list payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, toDomain(row))
	}
	return payments, nil
}

func toRow(p *domain.Payment) paymentRow {
	return paymentRow{
		ID:        p.ID.String(),
		Amount:    p.Amount,
		Currency:  string(p.Currency),
		Method:    string(p.Method),
		ProductID: p.ProductID,
		TxID:      p.TxID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toDomain(row paymentRow) *domain.Payment {
	return &domain.Payment{
		ID:        domain.ID(row.ID),
		Amount:    row.Amount,
		Currency:  domain.Currency(row.Currency),
		Method:    domain.Method(row.Method),
		ProductID: row.ProductID,
		TxID:      row.TxID,
		Status:    domain.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
