package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// ErrUnknownChildTable is returned when no line-item table is mapped
// for a target document type. Unreachable for the closed enum, kept as
// the failure mode for the default branch.
var ErrUnknownChildTable = errors.New("unknown child table for target doctype")

// DocumentRepository handles the five downstream document types a job
// record fans out into (orders, invoices, quotations) and their shared
// line-item table.
type DocumentRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *database.DB, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

func headerTable(target models.TargetDocType) (string, error) {
	switch target {
	case models.TargetPurchaseOrder:
		return "purchase_orders", nil
	case models.TargetPurchaseInvoice:
		return "purchase_invoices", nil
	case models.TargetSalesOrder:
		return "sales_orders", nil
	case models.TargetSalesInvoice:
		return "sales_invoices", nil
	case models.TargetQuotation:
		return "quotations", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownChildTable, target)
	}
}

// SubmittedNamesForJob returns the names of submitted target documents
// linked to the job record.
func (r *DocumentRepository) SubmittedNamesForJob(ctx context.Context, target models.TargetDocType, jobRecordID string) ([]string, error) {
	table, err := headerTable(target)
	if err != nil {
		return nil, err
	}

	query := "SELECT name FROM " + table + " WHERE custom_job_record = ? AND docstatus = ? ORDER BY name"

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, jobRecordID, models.DocstatusSubmitted)
	if err != nil {
		r.logger.Error("Failed to list documents for job",
			zap.String("target", target.String()),
			zap.String("job_record", jobRecordID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list %s documents: %w", target, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan document name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ItemsForParents returns the line items of the given parent documents.
func (r *DocumentRepository) ItemsForParents(ctx context.Context, target models.TargetDocType, parents []string) ([]*models.DocumentItem, error) {
	if len(parents) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, parent, parenttype, idx, item_code, item_name, qty, uom, rate,
			amount, base_amount, custom_vehicle
		FROM document_items
		WHERE parenttype = ? AND parent IN (` + placeholders(len(parents)) + `)
		ORDER BY parent, idx
	`
	args := []interface{}{target.String()}
	for _, p := range parents {
		args = append(args, p)
	}

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list document items",
			zap.String("target", target.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to list document items: %w", err)
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
			return nil, fmt.Errorf("failed to scan document item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// PurchaseOrdersForJob returns non-cancelled purchase orders linked to
// the job record, for the percent-received updater.
func (r *DocumentRepository) PurchaseOrdersForJob(ctx context.Context, jobRecordID string) ([]*models.PurchaseOrder, error) {
	query := `
		SELECT name, custom_job_record, status, per_received, total_qty, docstatus
		FROM purchase_orders
		WHERE custom_job_record = ? AND status != ?
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, jobRecordID, models.OrderStatusCancelled)
	if err != nil {
		r.logger.Error("Failed to list purchase orders for job",
			zap.String("job_record", jobRecordID), zap.Error(err))
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.PurchaseOrder
	for rows.Next() {
		var po models.PurchaseOrder
		if err := rows.Scan(&po.Name, &po.JobRecord, &po.Status, &po.PerReceived, &po.TotalQty, &po.Docstatus); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, &po)
	}
	return orders, rows.Err()
}

// SalesOrdersForJob returns non-cancelled sales orders linked to the
// job record, for the percent-delivered updater.
func (r *DocumentRepository) SalesOrdersForJob(ctx context.Context, jobRecordID string) ([]*models.SalesOrder, error) {
	query := `
		SELECT name, custom_job_record, status, per_delivered, docstatus
		FROM sales_orders
		WHERE custom_job_record = ? AND status != ?
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, jobRecordID, models.OrderStatusCancelled)
	if err != nil {
		r.logger.Error("Failed to list sales orders for job",
			zap.String("job_record", jobRecordID), zap.Error(err))
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.SalesOrder
	for rows.Next() {
		var so models.SalesOrder
		if err := rows.Scan(&so.Name, &so.JobRecord, &so.Status, &so.PerDelivered, &so.Docstatus); err != nil {
			return nil, fmt.Errorf("failed to scan sales order: %w", err)
		}
		orders = append(orders, &so)
	}
	return orders, rows.Err()
}
