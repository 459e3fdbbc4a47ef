package reports

import (
	"context"
	"sort"
	"time"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"go.uber.org/zap"
)

// Service computes the two vehicle profit/loss reports.
type Service struct {
	vehicles         VehicleRepositoryInterface
	purchaseInvoices PurchaseInvoiceRepositoryInterface
	journals         JournalEntryRepositoryInterface
	jobRecords       JobRecordRepositoryInterface
	logger           *zap.Logger
}

// NewService creates a new report service
func NewService(
	vehicles VehicleRepositoryInterface,
	purchaseInvoices PurchaseInvoiceRepositoryInterface,
	journals JournalEntryRepositoryInterface,
	jobRecords JobRecordRepositoryInterface,
	logger *zap.Logger,
) *Service {
	return &Service{
		vehicles:         vehicles,
		purchaseInvoices: purchaseInvoices,
		journals:         journals,
		jobRecords:       jobRecords,
		logger:           logger,
	}
}

// VehiclePL aggregates credit, debit and profit/loss per vehicle.
// Credit is trip revenue; debit is linked purchase-invoice totals plus
// linked journal-entry debits, both matched through the vehicle tag on
// their line items.
func (s *Service) VehiclePL(ctx context.Context, f Filters) ([]*VehiclePLRow, error) {
	vehicle := ""
	if len(f.Vehicles) > 0 {
		vehicle = f.Vehicles[0]
	}

	names, err := s.vehicles.DistinctTripVehicles(ctx, vehicle, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	vehicles, err := s.vehicles.GetVehicles(ctx, names)
	if err != nil {
		return nil, err
	}

	var rows []*VehiclePLRow
	for _, v := range vehicles {
		if f.Employee != "" && v.Employee != f.Employee {
			continue
		}

		tripRevenue, err := s.vehicles.TripRevenueForVehicle(ctx, v.Name, f.FromDate, f.ToDate)
		if err != nil {
			return nil, err
		}
		purchaseTotal, err := s.purchaseInvoices.TotalBaseForVehicle(ctx, v.Name, f.FromDate, f.ToDate)
		if err != nil {
			return nil, err
		}
		journalTotal, err := s.journals.TotalDebitForVehicle(ctx, v.Name, f.FromDate, f.ToDate)
		if err != nil {
			return nil, err
		}
		employeeName, err := s.vehicles.EmployeeName(ctx, v.Employee)
		if err != nil {
			return nil, err
		}

		totalDebit := purchaseTotal + journalTotal
		rows = append(rows, &VehiclePLRow{
			Vehicle:      v.Name,
			Employee:     v.Employee,
			EmployeeName: employeeName,
			TotalCredit:  tripRevenue,
			TotalDebit:   totalDebit,
			ProfitLoss:   tripRevenue - totalDebit,
		})
	}

	s.logger.Debug("Computed vehicle P/L report", zap.Int("rows", len(rows)))
	return rows, nil
}

// VehicleJobPL produces one row per job assignment, grouped and sorted
// by vehicle then job date. A vehicle's aggregate columns appear only
// on its first row, and each of its journal debit lines gets its own
// row; continuation rows leave the identity and aggregate columns
// blank. The shape is a rendering convention the consuming table
// depends on, so it is reproduced exactly.
func (s *Service) VehicleJobPL(ctx context.Context, f Filters) ([]*VehicleJobPLRow, error) {
	jobRecords, err := s.jobRecords.ListInRange(ctx, f.FromDate, f.ToDate, f.JobRecords)
	if err != nil {
		return nil, err
	}
	if len(jobRecords) == 0 {
		return nil, nil
	}

	jobNames := make([]string, 0, len(jobRecords))
	jobDates := make(map[string]time.Time, len(jobRecords))
	for _, jr := range jobRecords {
		jobNames = append(jobNames, jr.Name)
		jobDates[jr.Name] = jr.Date
	}

	assignments, err := s.jobRecords.AssignmentsForJobs(ctx, jobNames, f.Vehicles, f.Drivers)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, nil
	}

	var vehiclesInReport []string
	seen := make(map[string]bool)
	for _, ja := range assignments {
		if ja.Vehicle != "" && !seen[ja.Vehicle] {
			seen[ja.Vehicle] = true
			vehiclesInReport = append(vehiclesInReport, ja.Vehicle)
		}
	}

	piDebits, err := s.purchaseInvoices.VehicleItemAmounts(ctx, vehiclesInReport, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}

	jeLines, err := s.journals.DebitLinesForVehicles(ctx, vehiclesInReport, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}
	jeDetails := make(map[string][]models.VehicleDebitLine)
	jeTotals := make(map[string]float64)
	for _, line := range jeLines {
		jeDetails[line.Vehicle] = append(jeDetails[line.Vehicle], line)
		jeTotals[line.Vehicle] += line.Debit
	}

	vehicleCredits := make(map[string]float64)
	for _, ja := range assignments {
		vehicleCredits[ja.Vehicle] += ja.TripAmount
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Vehicle != assignments[j].Vehicle {
			return assignments[i].Vehicle < assignments[j].Vehicle
		}
		return jobDates[assignments[i].Parent].Before(jobDates[assignments[j].Parent])
	})

	var rows []*VehicleJobPLRow
	firstRow := make(map[string]bool)
	jeSpent := make(map[string]bool)

	for _, ja := range assignments {
		vehicle := ja.Vehicle
		totalDebit := piDebits[vehicle] + jeTotals[vehicle]
		profitLoss := vehicleCredits[vehicle] - totalDebit

		isFirst := !firstRow[vehicle]
		firstRow[vehicle] = true

		row := &VehicleJobPLRow{
			Vehicle:     vehicle,
			JobRecord:   ja.Parent,
			Driver:      ja.Driver,
			DriverName:  ja.DriverName,
			TotalCredit: amount(ja.TripAmount),
		}
		if isFirst {
			row.VehicleTotalCredit = amount(vehicleCredits[vehicle])
			row.TotalDebit = amount(totalDebit)
			row.ProfitLoss = amount(profitLoss)
		}

		details := jeDetails[vehicle]
		if len(details) > 0 && !jeSpent[vehicle] {
			jeSpent[vehicle] = true

			row.JournalEntry = details[0].JournalEntry
			row.Account = details[0].Account
			row.JEDebit = amount(details[0].Debit)
			rows = append(rows, row)

			for _, line := range details[1:] {
				rows = append(rows, &VehicleJobPLRow{
					JournalEntry: line.JournalEntry,
					Account:      line.Account,
					JEDebit:      amount(line.Debit),
				})
			}
		} else {
			rows = append(rows, row)
		}
	}

	s.logger.Debug("Computed vehicle job P/L report", zap.Int("rows", len(rows)))
	return rows, nil
}
