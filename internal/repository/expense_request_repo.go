package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// ExpenseRequestRepository handles expense request documents and their
// line items.
type ExpenseRequestRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewExpenseRequestRepository creates a new expense request repository
func NewExpenseRequestRepository(db *database.DB, logger *zap.Logger) *ExpenseRequestRepository {
	return &ExpenseRequestRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves an expense request with its line items. Returns nil
// when no document with that name exists.
func (r *ExpenseRequestRepository) Get(ctx context.Context, name string) (*models.ExpenseRequest, error) {
	query := `
		SELECT name, company, posting_date, status, mode_of_payment,
			payment_reference, clearance_date, payment_to, remarks,
			default_project, default_cost_center, vehicle, custom_job_record,
			total, quantity, approved_by, docstatus
		FROM expense_requests
		WHERE name = ?
	`

	var req models.ExpenseRequest
	var postingDate sql.NullTime

	err := r.db.Executor(ctx).QueryRowContext(ctx, query, name).Scan(
		&req.Name,
		&req.Company,
		&postingDate,
		&req.Status,
		&req.ModeOfPayment,
		&req.PaymentReference,
		&req.ClearanceDate,
		&req.PaymentTo,
		&req.Remarks,
		&req.DefaultProject,
		&req.DefaultCostCenter,
		&req.Vehicle,
		&req.JobRecord,
		&req.Total,
		&req.Quantity,
		&req.ApprovedBy,
		&req.Docstatus,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get expense request", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get expense request: %w", err)
	}

	if postingDate.Valid {
		req.PostingDate = postingDate.Time
	}

	items, err := r.itemsFor(ctx, name)
	if err != nil {
		return nil, err
	}
	req.Expenses = items

	return &req, nil
}

func (r *ExpenseRequestRepository) itemsFor(ctx context.Context, parent string) ([]*models.ExpenseItem, error) {
	query := `
		SELECT id, parent, idx, amount, expense_account, project, cost_center, description
		FROM expense_items
		WHERE parent = ?
		ORDER BY idx
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, parent)
	if err != nil {
		r.logger.Error("Failed to get expense items", zap.String("parent", parent), zap.Error(err))
		return nil, fmt.Errorf("failed to get expense items: %w", err)
	}
	defer rows.Close()

	var items []*models.ExpenseItem
	for rows.Next() {
		var item models.ExpenseItem
		if err := rows.Scan(
			&item.ID,
			&item.Parent,
			&item.Idx,
			&item.Amount,
			&item.ExpenseAccount,
			&item.Project,
			&item.CostCenter,
			&item.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// Save upserts the request header and replaces its line items. Callers
// run it inside WithTransaction together with any dependent writes.
func (r *ExpenseRequestRepository) Save(ctx context.Context, req *models.ExpenseRequest) error {
	ex := r.db.Executor(ctx)

	headerQuery := `
		INSERT INTO expense_requests (
			name, company, posting_date, status, mode_of_payment,
			payment_reference, clearance_date, payment_to, remarks,
			default_project, default_cost_center, vehicle, custom_job_record,
			total, quantity, approved_by, docstatus
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			company = excluded.company,
			posting_date = excluded.posting_date,
			status = excluded.status,
			mode_of_payment = excluded.mode_of_payment,
			payment_reference = excluded.payment_reference,
			clearance_date = excluded.clearance_date,
			payment_to = excluded.payment_to,
			remarks = excluded.remarks,
			default_project = excluded.default_project,
			default_cost_center = excluded.default_cost_center,
			vehicle = excluded.vehicle,
			custom_job_record = excluded.custom_job_record,
			total = excluded.total,
			quantity = excluded.quantity,
			approved_by = excluded.approved_by,
			docstatus = excluded.docstatus
	`

	_, err := ex.ExecContext(ctx, headerQuery,
		req.Name,
		req.Company,
		req.PostingDate,
		req.Status,
		req.ModeOfPayment,
		req.PaymentReference,
		req.ClearanceDate,
		req.PaymentTo,
		req.Remarks,
		req.DefaultProject,
		req.DefaultCostCenter,
		req.Vehicle,
		req.JobRecord,
		req.Total,
		req.Quantity,
		req.ApprovedBy,
		req.Docstatus,
	)
	if err != nil {
		r.logger.Error("Failed to save expense request", zap.String("name", req.Name), zap.Error(err))
		return fmt.Errorf("failed to save expense request: %w", err)
	}

	if _, err := ex.ExecContext(ctx, "DELETE FROM expense_items WHERE parent = ?", req.Name); err != nil {
		return fmt.Errorf("failed to clear expense items: %w", err)
	}

	itemQuery := `
		INSERT INTO expense_items (parent, idx, amount, expense_account, project, cost_center, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, item := range req.Expenses {
		item.Parent = req.Name
		item.Idx = i + 1
		result, err := ex.ExecContext(ctx, itemQuery,
			item.Parent,
			item.Idx,
			item.Amount,
			item.ExpenseAccount,
			item.Project,
			item.CostCenter,
			item.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to save expense item: %w", err)
		}
		if id, err := result.LastInsertId(); err == nil {
			item.ID = id
		}
	}

	return nil
}

// SetApprovedBy stamps the approver's full name on the request.
func (r *ExpenseRequestRepository) SetApprovedBy(ctx context.Context, name, fullName string) error {
	_, err := r.db.Executor(ctx).ExecContext(ctx,
		"UPDATE expense_requests SET approved_by = ? WHERE name = ?", fullName, name)
	if err != nil {
		r.logger.Error("Failed to set approved_by", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to set approved_by: %w", err)
	}
	return nil
}

// ListApprovedForJob returns approved, submitted expense requests
// linked to the given job record.
func (r *ExpenseRequestRepository) ListApprovedForJob(ctx context.Context, jobRecordID string) ([]*models.ExpenseRequest, error) {
	query := `
		SELECT name, total
		FROM expense_requests
		WHERE custom_job_record = ? AND docstatus = ? AND status = ?
		ORDER BY name
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query,
		jobRecordID, models.DocstatusSubmitted, models.ExpenseStatusApproved)
	if err != nil {
		r.logger.Error("Failed to list expense requests for job",
			zap.String("job_record", jobRecordID), zap.Error(err))
		return nil, fmt.Errorf("failed to list expense requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.ExpenseRequest
	for rows.Next() {
		var req models.ExpenseRequest
		if err := rows.Scan(&req.Name, &req.Total); err != nil {
			return nil, fmt.Errorf("failed to scan expense request: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
