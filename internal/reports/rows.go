package reports

// VehiclePLRow is one vehicle of the vehicle-level P/L report.
type VehiclePLRow struct {
	Vehicle      string  `json:"vehicle"`
	Employee     string  `json:"employee"`
	EmployeeName string  `json:"employee_name"`
	TotalCredit  float64 `json:"total_credit"`
	TotalDebit   float64 `json:"total_debit"`
	ProfitLoss   float64 `json:"profit_loss"`
}

// VehicleJobPLRow is one flattened row of the job-assignment P/L
// report. A vehicle's aggregate figures appear only on its first row;
// continuation rows carry nil aggregates and blank identity columns so
// a summing front end never double-counts.
type VehicleJobPLRow struct {
	Vehicle            string   `json:"vehicle"`
	JobRecord          string   `json:"job_record"`
	Driver             string   `json:"driver"`
	DriverName         string   `json:"driver_name"`
	TotalCredit        *float64 `json:"total_credit"`
	VehicleTotalCredit *float64 `json:"vehicle_total_credit"`
	JournalEntry       string   `json:"journal_entry"`
	Account            string   `json:"account"`
	JEDebit            *float64 `json:"je_debit"`
	TotalDebit         *float64 `json:"total_debit"`
	ProfitLoss         *float64 `json:"profit_loss"`
}

func amount(v float64) *float64 {
	return &v
}
