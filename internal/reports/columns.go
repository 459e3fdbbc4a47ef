package reports

// Column describes one report column the way the front end renders it.
type Column struct {
	Fieldname string `json:"fieldname"`
	Label     string `json:"label"`
	Fieldtype string `json:"fieldtype"`
	Options   string `json:"options,omitempty"`
	Width     int    `json:"width"`
}

// VehiclePLColumns is the column layout of the vehicle-level P/L report.
func VehiclePLColumns() []Column {
	return []Column{
		{Fieldname: "vehicle", Label: "Vehicle", Fieldtype: "Link", Options: "Vehicle", Width: 250},
		{Fieldname: "employee", Label: "Employee", Fieldtype: "Link", Options: "Employee", Width: 250},
		{Fieldname: "total_credit", Label: "Total Credit", Fieldtype: "Currency", Width: 250},
		{Fieldname: "total_debit", Label: "Total Debit", Fieldtype: "Currency", Width: 250},
		{Fieldname: "profit_loss", Label: "Profit & Loss", Fieldtype: "Currency", Width: 250},
	}
}

// VehicleJobPLColumns is the column layout of the job-assignment P/L
// report.
func VehicleJobPLColumns() []Column {
	return []Column{
		{Fieldname: "vehicle", Label: "Vehicle", Fieldtype: "Link", Options: "Vehicle", Width: 130},
		{Fieldname: "job_record", Label: "Job Record", Fieldtype: "Link", Options: "Job Record", Width: 140},
		{Fieldname: "driver", Label: "Employee", Fieldtype: "Link", Options: "Driver", Width: 160},
		{Fieldname: "total_credit", Label: "Trip Credit", Fieldtype: "Currency", Width: 130},
		{Fieldname: "vehicle_total_credit", Label: "Total Credit", Fieldtype: "Currency", Width: 140},
		{Fieldname: "journal_entry", Label: "Journal Entry", Fieldtype: "Link", Options: "Journal Entry", Width: 160},
		{Fieldname: "account", Label: "Account", Fieldtype: "Link", Options: "Account", Width: 200},
		{Fieldname: "je_debit", Label: "JE Debit", Fieldtype: "Currency", Width: 130},
		{Fieldname: "total_debit", Label: "Total Debit", Fieldtype: "Currency", Width: 130},
		{Fieldname: "profit_loss", Label: "Profit & Loss", Fieldtype: "Currency", Width: 130},
	}
}
