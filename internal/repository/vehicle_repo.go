package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// VehicleRepository handles fleet vehicles, trip revenue and the
// employee display names the vehicle P/L report shows.
type VehicleRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *database.DB, logger *zap.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:     db,
		logger: logger,
	}
}

// DistinctTripVehicles returns the vehicles appearing on non-cancelled
// trips in the date range, optionally narrowed to one vehicle.
func (r *VehicleRepository) DistinctTripVehicles(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error) {
	query := `
		SELECT DISTINCT vehicle
		FROM trip_details
		WHERE docstatus != ? AND vehicle != ''
	`
	args := []interface{}{models.DocstatusCancelled}
	if vehicle != "" {
		query += " AND vehicle = ?"
		args = append(args, vehicle)
	}
	query, args = appendDateRange(query, args, "posting_date", fromDate, toDate)
	query += " ORDER BY vehicle"

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list trip vehicles", zap.Error(err))
		return nil, fmt.Errorf("failed to list trip vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan trip vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// GetVehicles returns the vehicle documents for the given names.
func (r *VehicleRepository) GetVehicles(ctx context.Context, names []string) ([]*models.Vehicle, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := `
		SELECT name, license_plate, employee
		FROM vehicles
		WHERE name IN (` + placeholders(len(names)) + `)
		ORDER BY name
	`
	var args []interface{}
	for _, n := range names {
		args = append(args, n)
	}

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.Name, &v.LicensePlate, &v.Employee); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

// TripRevenueForVehicle sums vehicle_revenue over the vehicle's
// non-cancelled trips in the date range.
func (r *VehicleRepository) TripRevenueForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(vehicle_revenue), 0)
		FROM trip_details
		WHERE vehicle = ? AND docstatus != ?
	`
	args := []interface{}{vehicle, models.DocstatusCancelled}
	query, args = appendDateRange(query, args, "posting_date", fromDate, toDate)

	var total float64
	if err := r.db.Executor(ctx).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to sum trip revenue",
			zap.String("vehicle", vehicle), zap.Error(err))
		return 0, fmt.Errorf("failed to sum trip revenue: %w", err)
	}
	return total, nil
}

// EmployeeName resolves an employee's display name, falling back to the
// ID when the employee document is missing.
func (r *VehicleRepository) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	if employeeID == "" {
		return "", nil
	}

	var name string
	err := r.db.Executor(ctx).QueryRowContext(ctx,
		"SELECT employee_name FROM employees WHERE name = ?", employeeID).Scan(&name)
	if err == sql.ErrNoRows {
		return employeeID, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get employee name: %w", err)
	}
	if name == "" {
		return employeeID, nil
	}
	return name, nil
}
