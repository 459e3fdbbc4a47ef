package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// JobRecordRepository handles job records with their requested items
// and vehicle assignments.
type JobRecordRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewJobRecordRepository creates a new job record repository
func NewJobRecordRepository(db *database.DB, logger *zap.Logger) *JobRecordRepository {
	return &JobRecordRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a job record with items and assignments, or nil.
func (r *JobRecordRepository) Get(ctx context.Context, name string) (*models.JobRecord, error) {
	query := `
		SELECT name, date, company, customer, total_quantity,
			percent_received, percent_delivered, docstatus
		FROM job_records
		WHERE name = ?
	`

	var job models.JobRecord
	var date sql.NullTime

	err := r.db.Executor(ctx).QueryRowContext(ctx, query, name).Scan(
		&job.Name,
		&date,
		&job.Company,
		&job.Customer,
		&job.TotalQuantity,
		&job.PercentReceived,
		&job.PercentDelivered,
		&job.Docstatus,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get job record", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get job record: %w", err)
	}

	if date.Valid {
		job.Date = date.Time
	}

	items, err := r.itemsFor(ctx, name)
	if err != nil {
		return nil, err
	}
	job.Items = items

	assignments, err := r.assignmentsFor(ctx, name)
	if err != nil {
		return nil, err
	}
	job.Assignments = assignments

	return &job, nil
}

func (r *JobRecordRepository) itemsFor(ctx context.Context, parent string) ([]*models.JobItem, error) {
	query := `
		SELECT id, parent, idx, item, item_name, quantity, uom, rate
		FROM job_items
		WHERE parent = ?
		ORDER BY idx
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to get job items: %w", err)
	}
	defer rows.Close()

	var items []*models.JobItem
	for rows.Next() {
		var item models.JobItem
		if err := rows.Scan(
			&item.ID, &item.Parent, &item.Idx, &item.Item,
			&item.ItemName, &item.Quantity, &item.UOM, &item.Rate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *JobRecordRepository) assignmentsFor(ctx context.Context, parent string) ([]*models.JobAssignment, error) {
	query := `
		SELECT id, parent, idx, vehicle, driver, driver_name, driver_type, trip_amount
		FROM job_assignments
		WHERE parent = ?
		ORDER BY idx
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to get job assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.JobAssignment
	for rows.Next() {
		var a models.JobAssignment
		if err := rows.Scan(
			&a.ID, &a.Parent, &a.Idx, &a.Vehicle,
			&a.Driver, &a.DriverName, &a.DriverType, &a.TripAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// ListInRange returns non-cancelled job record headers in the date
// range, optionally narrowed to the given names.
func (r *JobRecordRepository) ListInRange(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error) {
	query := `
		SELECT name, date
		FROM job_records
		WHERE docstatus < ?
	`
	args := []interface{}{models.DocstatusCancelled}
	query, args = appendDateRange(query, args, "date", fromDate, toDate)

	if len(names) > 0 {
		query += " AND name IN (" + placeholders(len(names)) + ")"
		for _, n := range names {
			args = append(args, n)
		}
	}
	query += " ORDER BY date, name"

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list job records", zap.Error(err))
		return nil, fmt.Errorf("failed to list job records: %w", err)
	}
	defer rows.Close()

	var jobs []*models.JobRecord
	for rows.Next() {
		var job models.JobRecord
		var date sql.NullTime
		if err := rows.Scan(&job.Name, &date); err != nil {
			return nil, fmt.Errorf("failed to scan job record: %w", err)
		}
		if date.Valid {
			job.Date = date.Time
		}
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

// AssignmentsForJobs returns the assignments of the given job records,
// optionally filtered by vehicle and driver.
func (r *JobRecordRepository) AssignmentsForJobs(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error) {
	if len(jobNames) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, parent, idx, vehicle, driver, driver_name, driver_type, trip_amount
		FROM job_assignments
		WHERE parent IN (` + placeholders(len(jobNames)) + `)
	`
	var args []interface{}
	for _, n := range jobNames {
		args = append(args, n)
	}

	if len(vehicles) > 0 {
		query += " AND vehicle IN (" + placeholders(len(vehicles)) + ")"
		for _, v := range vehicles {
			args = append(args, v)
		}
	}
	if len(drivers) > 0 {
		query += " AND driver IN (" + placeholders(len(drivers)) + ")"
		for _, d := range drivers {
			args = append(args, d)
		}
	}
	query += " ORDER BY parent, idx"

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list job assignments", zap.Error(err))
		return nil, fmt.Errorf("failed to list job assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.JobAssignment
	for rows.Next() {
		var a models.JobAssignment
		if err := rows.Scan(
			&a.ID, &a.Parent, &a.Idx, &a.Vehicle,
			&a.Driver, &a.DriverName, &a.DriverType, &a.TripAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// SetPercentReceived persists the recomputed purchase fulfillment ratio.
func (r *JobRecordRepository) SetPercentReceived(ctx context.Context, name string, percent float64) error {
	_, err := r.db.Executor(ctx).ExecContext(ctx,
		"UPDATE job_records SET percent_received = ? WHERE name = ?", percent, name)
	if err != nil {
		r.logger.Error("Failed to set percent received", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to set percent received: %w", err)
	}
	return nil
}

// SetPercentDelivered persists the recomputed delivery fulfillment ratio.
func (r *JobRecordRepository) SetPercentDelivered(ctx context.Context, name string, percent float64) error {
	_, err := r.db.Executor(ctx).ExecContext(ctx,
		"UPDATE job_records SET percent_delivered = ? WHERE name = ?", percent, name)
	if err != nil {
		r.logger.Error("Failed to set percent delivered", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to set percent delivered: %w", err)
	}
	return nil
}
