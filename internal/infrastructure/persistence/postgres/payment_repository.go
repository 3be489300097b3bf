package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickcart/payment-records/internal/domain"
	"github.com/quickcart/payment-records/internal/infrastructure/persistence"
)

const recordColumns = `invoice_number, name, email, card_number_masked, expiry_date,
		       address, refund_status, refund_reason, created_at`

type PaymentRecordRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRecordRepository(db *pgxpool.Pool) *PaymentRecordRepository {
	return &PaymentRecordRepository{db: db}
}

// Insert persists a record. The primary key on invoice_number makes the
// uniqueness check atomic with the write; a violation surfaces as
// domain.ErrDuplicateInvoice so the service can regenerate and retry.
func (r *PaymentRecordRepository) Insert(ctx context.Context, record *domain.PaymentRecord) error {
	query := `
		INSERT INTO payments (
			invoice_number, name, email, card_number_masked, expiry_date,
			address, refund_status, refund_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	m := toDBModel(record)
	_, err := r.db.Exec(ctx, query,
		m.InvoiceNumber,
		m.Name,
		m.Email,
		m.CardNumberMasked,
		m.ExpiryDate,
		m.Address,
		m.RefundStatus,
		m.RefundReason,
		m.CreatedAt,
	)

	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return domain.ErrDuplicateInvoice
		}
		return fmt.Errorf("failed to insert payment record: %w", err)
	}

	return nil
}

func (r *PaymentRecordRepository) FindByInvoice(ctx context.Context, invoiceNumber string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM payments WHERE invoice_number = $1`

	row := r.db.QueryRow(ctx, query, invoiceNumber)
	return scanRecord(row)
}

// FindAll returns every record in insertion order.
func (r *PaymentRecordRepository) FindAll(ctx context.Context) ([]*domain.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM payments ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payment records: %w", err)
	}

	return collectRecords(rows)
}

// FindByEmail matches the stored email exactly, case-sensitive, preserving
// insertion order.
func (r *PaymentRecordRepository) FindByEmail(ctx context.Context, email string) ([]*domain.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM payments WHERE email = $1 ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("query payment records by email: %w", err)
	}

	return collectRecords(rows)
}

// UpdateRefund marks the record refunded in a single conditional UPDATE, so
// a concurrent second refund can never overwrite the first reason. Applied
// to an already refunded record it returns the stored record unchanged.
func (r *PaymentRecordRepository) UpdateRefund(ctx context.Context, invoiceNumber, reason string) (*domain.PaymentRecord, error) {
	query := `
		UPDATE payments
		SET refund_status = true, refund_reason = $2
		WHERE invoice_number = $1 AND refund_status = false
		RETURNING ` + recordColumns

	row := r.db.QueryRow(ctx, query, invoiceNumber, reason)
	record, err := scanRecord(row)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	// No row updated: either absent or already refunded.
	return r.FindByInvoice(ctx, invoiceNumber)
}

// Delete permanently removes the record.
func (r *PaymentRecordRepository) Delete(ctx context.Context, invoiceNumber string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE invoice_number = $1`, invoiceNumber)
	if err != nil {
		return fmt.Errorf("failed to delete payment record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// scanRecord converts a database row into a domain record.
// Returns domain.ErrRecordNotFound if the row doesn't exist.
func scanRecord(row pgx.Row) (*domain.PaymentRecord, error) {
	var m PaymentRecordModel
	err := row.Scan(
		&m.InvoiceNumber, &m.Name, &m.Email, &m.CardNumberMasked, &m.ExpiryDate,
		&m.Address, &m.RefundStatus, &m.RefundReason, &m.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to scan payment record: %w", err)
	}
	return toDomainModel(m), nil
}

func collectRecords(rows pgx.Rows) ([]*domain.PaymentRecord, error) {
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.PaymentRecord, error) {
		var m PaymentRecordModel
		err := row.Scan(
			&m.InvoiceNumber, &m.Name, &m.Email, &m.CardNumberMasked, &m.ExpiryDate,
			&m.Address, &m.RefundStatus, &m.RefundReason, &m.CreatedAt,
		)
		return toDomainModel(m), err
	})

	if err != nil {
		return nil, fmt.Errorf("scan payment records: %w", err)
	}
	return results, nil
}
