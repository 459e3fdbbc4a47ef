package models

import "time"

// ExpenseRequest is an employee-submitted claim for reimbursable spending.
// Totals are recomputed from the line items on every save; an approved
// request is materialized into exactly one journal entry.
type ExpenseRequest struct {
	Name              string    `json:"name"`
	Company           string    `json:"company"`
	PostingDate       time.Time `json:"posting_date"`
	Status            string    `json:"status"`
	ModeOfPayment     string    `json:"mode_of_payment"`
	PaymentReference  string    `json:"payment_reference"`
	ClearanceDate     string    `json:"clearance_date"`
	PaymentTo         string    `json:"payment_to"`
	Remarks           string    `json:"remarks"`
	DefaultProject    string    `json:"default_project"`
	DefaultCostCenter string    `json:"default_cost_center"`
	Vehicle           string    `json:"vehicle"`
	JobRecord         string    `json:"custom_job_record"`
	Total             float64   `json:"total"`
	Quantity          int       `json:"quantity"`
	ApprovedBy        string    `json:"approved_by"`
	Docstatus         int       `json:"docstatus"`

	Expenses []*ExpenseItem `json:"expenses"`
}

// ExpenseItem is a single line of an expense request.
type ExpenseItem struct {
	ID             int64   `json:"id"`
	Parent         string  `json:"parent"`
	Idx            int     `json:"idx"`
	Amount         float64 `json:"amount"`
	ExpenseAccount string  `json:"expense_account"`
	Project        string  `json:"project"`
	CostCenter     string  `json:"cost_center"`
	Description    string  `json:"description"`
}

// ExpenseEntryReference points a job record at an approved expense request.
type ExpenseEntryReference struct {
	ReferenceDoctype string  `json:"reference_doctype"`
	ReferenceRecord  string  `json:"reference_record"`
	Amount           float64 `json:"amount"`
}
