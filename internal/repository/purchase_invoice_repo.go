package repository

import (
	"context"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// PurchaseInvoiceRepository serves the purchase-invoice debit side of
// the vehicle P/L reports. Invoices link to vehicles only through the
// vehicle tag on their line items.
type PurchaseInvoiceRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewPurchaseInvoiceRepository creates a new purchase invoice repository
func NewPurchaseInvoiceRepository(db *database.DB, logger *zap.Logger) *PurchaseInvoiceRepository {
	return &PurchaseInvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// TotalBaseForVehicle sums base_total over submitted purchase invoices
// in the date range that carry at least one line tagged with the
// vehicle.
func (r *PurchaseInvoiceRepository) TotalBaseForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(pi.base_total), 0)
		FROM purchase_invoices pi
		WHERE pi.docstatus = ?
			AND pi.name IN (
				SELECT DISTINCT parent FROM document_items
				WHERE parenttype = ? AND custom_vehicle = ?
			)
	`
	args := []interface{}{models.DocstatusSubmitted, models.TargetPurchaseInvoice.String(), vehicle}
	query, args = appendDateRange(query, args, "pi.posting_date", fromDate, toDate)

	var total float64
	if err := r.db.Executor(ctx).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to sum purchase invoices for vehicle",
			zap.String("vehicle", vehicle), zap.Error(err))
		return 0, fmt.Errorf("failed to sum purchase invoices: %w", err)
	}
	return total, nil
}

// VehicleItemAmounts sums vehicle-tagged line amounts of submitted
// purchase invoices in the date range, per vehicle. base_amount falls
// back to amount when the base figure is zero.
func (r *PurchaseInvoiceRepository) VehicleItemAmounts(ctx context.Context, vehicles []string, fromDate, toDate string) (map[string]float64, error) {
	if len(vehicles) == 0 {
		return map[string]float64{}, nil
	}

	query := `
		SELECT i.custom_vehicle, i.base_amount, i.amount
		FROM document_items i
		JOIN purchase_invoices pi ON pi.name = i.parent
		WHERE i.parenttype = ?
			AND pi.docstatus = ?
			AND i.custom_vehicle IN (` + placeholders(len(vehicles)) + `)
	`
	args := []interface{}{models.TargetPurchaseInvoice.String(), models.DocstatusSubmitted}
	for _, v := range vehicles {
		args = append(args, v)
	}
	query, args = appendDateRange(query, args, "pi.posting_date", fromDate, toDate)

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to sum purchase invoice items per vehicle", zap.Error(err))
		return nil, fmt.Errorf("failed to sum purchase invoice items: %w", err)
	}
	defer rows.Close()

	amounts := make(map[string]float64)
	for rows.Next() {
		var vehicle string
		var baseAmount, amount float64
		if err := rows.Scan(&vehicle, &baseAmount, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan purchase invoice item: %w", err)
		}
		if baseAmount == 0 {
			baseAmount = amount
		}
		amounts[vehicle] += baseAmount
	}
	return amounts, rows.Err()
}
