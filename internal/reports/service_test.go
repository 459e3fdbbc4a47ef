package reports

import (
	"context"
	"testing"
	"time"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock repositories
type mockVehicleRepo struct {
	distinctTripVehiclesFunc  func(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error)
	getVehiclesFunc           func(ctx context.Context, names []string) ([]*models.Vehicle, error)
	tripRevenueForVehicleFunc func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	employeeNameFunc          func(ctx context.Context, employeeID string) (string, error)
}

func (m *mockVehicleRepo) DistinctTripVehicles(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error) {
	if m.distinctTripVehiclesFunc != nil {
		return m.distinctTripVehiclesFunc(ctx, vehicle, fromDate, toDate)
	}
	return nil, nil
}

func (m *mockVehicleRepo) GetVehicles(ctx context.Context, names []string) ([]*models.Vehicle, error) {
	if m.getVehiclesFunc != nil {
		return m.getVehiclesFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockVehicleRepo) TripRevenueForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	if m.tripRevenueForVehicleFunc != nil {
		return m.tripRevenueForVehicleFunc(ctx, vehicle, fromDate, toDate)
	}
	return 0, nil
}

func (m *mockVehicleRepo) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	if m.employeeNameFunc != nil {
		return m.employeeNameFunc(ctx, employeeID)
	}
	return employeeID, nil
}

type mockPurchaseInvoiceRepo struct {
	totalBaseForVehicleFunc func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	vehicleItemAmountsFunc  func(ctx context.Context, vehicles []string, fromDate, toDate string) (map[string]float64, error)
}

func (m *mockPurchaseInvoiceRepo) TotalBaseForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	if m.totalBaseForVehicleFunc != nil {
		return m.totalBaseForVehicleFunc(ctx, vehicle, fromDate, toDate)
	}
	return 0, nil
}

func (m *mockPurchaseInvoiceRepo) VehicleItemAmounts(ctx context.Context, vehicles []string, fromDate, toDate string) (map[string]float64, error) {
	if m.vehicleItemAmountsFunc != nil {
		return m.vehicleItemAmountsFunc(ctx, vehicles, fromDate, toDate)
	}
	return map[string]float64{}, nil
}

type mockJournalRepo struct {
	totalDebitForVehicleFunc  func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error)
	debitLinesForVehiclesFunc func(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error)
}

func (m *mockJournalRepo) TotalDebitForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	if m.totalDebitForVehicleFunc != nil {
		return m.totalDebitForVehicleFunc(ctx, vehicle, fromDate, toDate)
	}
	return 0, nil
}

func (m *mockJournalRepo) DebitLinesForVehicles(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error) {
	if m.debitLinesForVehiclesFunc != nil {
		return m.debitLinesForVehiclesFunc(ctx, vehicles, fromDate, toDate)
	}
	return nil, nil
}

type mockJobRecordRepo struct {
	listInRangeFunc        func(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error)
	assignmentsForJobsFunc func(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error)
}

func (m *mockJobRecordRepo) ListInRange(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error) {
	if m.listInRangeFunc != nil {
		return m.listInRangeFunc(ctx, fromDate, toDate, names)
	}
	return nil, nil
}

func (m *mockJobRecordRepo) AssignmentsForJobs(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error) {
	if m.assignmentsForJobsFunc != nil {
		return m.assignmentsForJobsFunc(ctx, jobNames, vehicles, drivers)
	}
	return nil, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestVehiclePL(t *testing.T) {
	vehicles := &mockVehicleRepo{
		distinctTripVehiclesFunc: func(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error) {
			return []string{"TRUCK-01", "TRUCK-02"}, nil
		},
		getVehiclesFunc: func(ctx context.Context, names []string) ([]*models.Vehicle, error) {
			return []*models.Vehicle{
				{Name: "TRUCK-01", Employee: "EMP-001"},
				{Name: "TRUCK-02", Employee: "EMP-002"},
			}, nil
		},
		tripRevenueForVehicleFunc: func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
			if vehicle == "TRUCK-01" {
				return 1000, nil
			}
			return 400, nil
		},
		employeeNameFunc: func(ctx context.Context, employeeID string) (string, error) {
			return "Driver " + employeeID, nil
		},
	}
	purchaseInvoices := &mockPurchaseInvoiceRepo{
		totalBaseForVehicleFunc: func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
			if vehicle == "TRUCK-01" {
				return 300, nil
			}
			return 0, nil
		},
	}
	journals := &mockJournalRepo{
		totalDebitForVehicleFunc: func(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
			if vehicle == "TRUCK-01" {
				return 150, nil
			}
			return 500, nil
		},
	}

	service := NewService(vehicles, purchaseInvoices, journals, &mockJobRecordRepo{}, zap.NewNop())
	rows, err := service.VehiclePL(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "TRUCK-01", rows[0].Vehicle)
	assert.Equal(t, 1000.0, rows[0].TotalCredit)
	assert.Equal(t, 450.0, rows[0].TotalDebit)
	assert.Equal(t, 550.0, rows[0].ProfitLoss)
	assert.Equal(t, "Driver EMP-001", rows[0].EmployeeName)

	// A vehicle can run at a loss.
	assert.Equal(t, -100.0, rows[1].ProfitLoss)
}

func TestVehiclePL_EmployeeFilter(t *testing.T) {
	vehicles := &mockVehicleRepo{
		distinctTripVehiclesFunc: func(ctx context.Context, vehicle, fromDate, toDate string) ([]string, error) {
			return []string{"TRUCK-01", "TRUCK-02"}, nil
		},
		getVehiclesFunc: func(ctx context.Context, names []string) ([]*models.Vehicle, error) {
			return []*models.Vehicle{
				{Name: "TRUCK-01", Employee: "EMP-001"},
				{Name: "TRUCK-02", Employee: "EMP-002"},
			}, nil
		},
	}

	service := NewService(vehicles, &mockPurchaseInvoiceRepo{}, &mockJournalRepo{}, &mockJobRecordRepo{}, zap.NewNop())
	rows, err := service.VehiclePL(context.Background(), Filters{Employee: "EMP-002"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "TRUCK-02", rows[0].Vehicle)
}

func TestVehiclePL_NoTrips(t *testing.T) {
	service := NewService(&mockVehicleRepo{}, &mockPurchaseInvoiceRepo{}, &mockJournalRepo{}, &mockJobRecordRepo{}, zap.NewNop())
	rows, err := service.VehiclePL(context.Background(), Filters{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestVehicleJobPL_FirstRowCarriesTotals(t *testing.T) {
	jobRecords := &mockJobRecordRepo{
		listInRangeFunc: func(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error) {
			return []*models.JobRecord{
				{Name: "JOB-001", Date: day("2025-03-01")},
				{Name: "JOB-002", Date: day("2025-03-05")},
			}, nil
		},
		assignmentsForJobsFunc: func(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error) {
			return []*models.JobAssignment{
				{Parent: "JOB-001", Vehicle: "TRUCK-01", Driver: "DRV-001", DriverName: "Asif", TripAmount: 100},
				{Parent: "JOB-002", Vehicle: "TRUCK-01", Driver: "DRV-001", DriverName: "Asif", TripAmount: 50},
			}, nil
		},
	}
	journals := &mockJournalRepo{
		debitLinesForVehiclesFunc: func(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error) {
			return []models.VehicleDebitLine{
				{Vehicle: "TRUCK-01", JournalEntry: "JV-001", Account: "Fuel - FL", Debit: 30},
			}, nil
		},
	}

	service := NewService(&mockVehicleRepo{}, &mockPurchaseInvoiceRepo{}, journals, jobRecords, zap.NewNop())
	rows, err := service.VehicleJobPL(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "TRUCK-01", first.Vehicle)
	assert.Equal(t, "JOB-001", first.JobRecord)
	require.NotNil(t, first.TotalCredit)
	assert.Equal(t, 100.0, *first.TotalCredit)
	require.NotNil(t, first.VehicleTotalCredit)
	assert.Equal(t, 150.0, *first.VehicleTotalCredit)
	assert.Equal(t, "JV-001", first.JournalEntry)
	require.NotNil(t, first.JEDebit)
	assert.Equal(t, 30.0, *first.JEDebit)
	require.NotNil(t, first.TotalDebit)
	assert.Equal(t, 30.0, *first.TotalDebit)
	require.NotNil(t, first.ProfitLoss)
	assert.Equal(t, 120.0, *first.ProfitLoss)

	second := rows[1]
	assert.Equal(t, "TRUCK-01", second.Vehicle)
	assert.Equal(t, "JOB-002", second.JobRecord)
	require.NotNil(t, second.TotalCredit)
	assert.Equal(t, 50.0, *second.TotalCredit)
	assert.Nil(t, second.VehicleTotalCredit)
	assert.Nil(t, second.TotalDebit)
	assert.Nil(t, second.ProfitLoss)
	assert.Empty(t, second.JournalEntry)
	assert.Nil(t, second.JEDebit)
}

func TestVehicleJobPL_JournalDetailRows(t *testing.T) {
	jobRecords := &mockJobRecordRepo{
		listInRangeFunc: func(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error) {
			return []*models.JobRecord{{Name: "JOB-001", Date: day("2025-03-01")}}, nil
		},
		assignmentsForJobsFunc: func(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error) {
			return []*models.JobAssignment{
				{Parent: "JOB-001", Vehicle: "TRUCK-01", Driver: "DRV-001", DriverName: "Asif", TripAmount: 500},
			}, nil
		},
	}
	journals := &mockJournalRepo{
		debitLinesForVehiclesFunc: func(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error) {
			return []models.VehicleDebitLine{
				{Vehicle: "TRUCK-01", JournalEntry: "JV-001", Account: "Fuel - FL", Debit: 30},
				{Vehicle: "TRUCK-01", JournalEntry: "JV-002", Account: "Repairs - FL", Debit: 70},
			}, nil
		},
	}
	purchaseInvoices := &mockPurchaseInvoiceRepo{
		vehicleItemAmountsFunc: func(ctx context.Context, vehicles []string, fromDate, toDate string) (map[string]float64, error) {
			return map[string]float64{"TRUCK-01": 200}, nil
		},
	}

	service := NewService(&mockVehicleRepo{}, purchaseInvoices, journals, jobRecords, zap.NewNop())
	rows, err := service.VehicleJobPL(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "JV-001", first.JournalEntry)
	require.NotNil(t, first.TotalDebit)
	assert.Equal(t, 300.0, *first.TotalDebit) // 200 invoice + 100 journal
	require.NotNil(t, first.ProfitLoss)
	assert.Equal(t, 200.0, *first.ProfitLoss)

	// Continuation row: journal detail only, identity columns blank.
	cont := rows[1]
	assert.Empty(t, cont.Vehicle)
	assert.Empty(t, cont.JobRecord)
	assert.Nil(t, cont.TotalCredit)
	assert.Equal(t, "JV-002", cont.JournalEntry)
	assert.Equal(t, "Repairs - FL", cont.Account)
	require.NotNil(t, cont.JEDebit)
	assert.Equal(t, 70.0, *cont.JEDebit)
	assert.Nil(t, cont.TotalDebit)
}

func TestVehicleJobPL_SortsByVehicleThenJobDate(t *testing.T) {
	jobRecords := &mockJobRecordRepo{
		listInRangeFunc: func(ctx context.Context, fromDate, toDate string, names []string) ([]*models.JobRecord, error) {
			return []*models.JobRecord{
				{Name: "JOB-001", Date: day("2025-03-10")},
				{Name: "JOB-002", Date: day("2025-03-01")},
				{Name: "JOB-003", Date: day("2025-03-05")},
			}, nil
		},
		assignmentsForJobsFunc: func(ctx context.Context, jobNames, vehicles, drivers []string) ([]*models.JobAssignment, error) {
			return []*models.JobAssignment{
				{Parent: "JOB-001", Vehicle: "TRUCK-02", TripAmount: 10},
				{Parent: "JOB-002", Vehicle: "TRUCK-01", TripAmount: 20},
				{Parent: "JOB-003", Vehicle: "TRUCK-02", TripAmount: 30},
			}, nil
		},
	}

	service := NewService(&mockVehicleRepo{}, &mockPurchaseInvoiceRepo{}, &mockJournalRepo{}, jobRecords, zap.NewNop())
	rows, err := service.VehicleJobPL(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "JOB-002", rows[0].JobRecord) // TRUCK-01
	assert.Equal(t, "JOB-003", rows[1].JobRecord) // TRUCK-02, earlier date
	assert.Equal(t, "JOB-001", rows[2].JobRecord) // TRUCK-02, later date
}

func TestVehicleJobPL_NoJobRecords(t *testing.T) {
	service := NewService(&mockVehicleRepo{}, &mockPurchaseInvoiceRepo{}, &mockJournalRepo{}, &mockJobRecordRepo{}, zap.NewNop())
	rows, err := service.VehicleJobPL(context.Background(), Filters{FromDate: "2030-01-01"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
