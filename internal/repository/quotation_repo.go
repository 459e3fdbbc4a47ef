package repository

import (
	"context"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// QuotationRepository handles customer quotations and their line items.
type QuotationRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *database.DB, logger *zap.Logger) *QuotationRepository {
	return &QuotationRepository{
		db:     db,
		logger: logger,
	}
}

// ListForCustomer returns submitted quotations addressed to the
// customer, newest first.
func (r *QuotationRepository) ListForCustomer(ctx context.Context, customer string) ([]*models.Quotation, error) {
	query := `
		SELECT name, grand_total
		FROM quotations
		WHERE docstatus = ? AND quotation_to = 'Customer' AND party_name = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, models.DocstatusSubmitted, customer)
	if err != nil {
		r.logger.Error("Failed to list quotations for customer",
			zap.String("customer", customer), zap.Error(err))
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		var q models.Quotation
		if err := rows.Scan(&q.Name, &q.GrandTotal); err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, &q)
	}
	return quotations, rows.Err()
}

// Items returns a quotation's line items in row order.
func (r *QuotationRepository) Items(ctx context.Context, name string) ([]*models.DocumentItem, error) {
	query := `
		SELECT id, parent, parenttype, idx, item_code, item_name, qty, uom, rate,
			amount, base_amount, custom_vehicle
		FROM document_items
		WHERE parenttype = ? AND parent = ?
		ORDER BY idx
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, models.TargetQuotation.String(), name)
	if err != nil {
		r.logger.Error("Failed to get quotation items", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get quotation items: %w", err)
	}
	defer rows.Close()

	var items []*models.DocumentItem
	for rows.Next() {
		var item models.DocumentItem
		if err := rows.Scan(
			&item.ID, &item.Parent, &item.ParentType, &item.Idx,
			&item.ItemCode, &item.ItemName, &item.Qty, &item.UOM, &item.Rate,
			&item.Amount, &item.BaseAmount, &item.Vehicle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quotation item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
