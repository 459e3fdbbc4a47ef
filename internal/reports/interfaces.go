package reports

import (
	"context"

	"github.com/fatehlogistics/erp-backend/internal/models"
)

// VehicleRepositoryInterface for dependency injection
type VehicleRepositoryInterface interface {
	DistinctTripVehicles(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error)
	GetVehicles(ctx context.Context, names []string) ([]*models.Vehicle, error)
	TripRevenueForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
}

// PurchaseInvoiceRepositoryInterface for dependency injection
type PurchaseInvoiceRepositoryInterface interface {
	TotalBaseForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	VehicleItemAmounts(ctx context.Context, vehicles []string, fromDate, toDate string) (map[string]float64, error)
}

// JournalEntryRepositoryInterface for dependency injection
type JournalEntryRepositoryInterface interface {
	TotalDebitForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	DebitLinesForVehicles(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error)
}

// JobRecordRepositoryInterface for dependency injection
type JobRecordRepositoryInterface interface {
	ListInRange(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error)
	AssignmentsForJobs(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error)
}
