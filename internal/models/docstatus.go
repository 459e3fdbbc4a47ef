package models

// Docstatus follows the usual ERP document lifecycle convention:
// 0 = draft, 1 = submitted, 2 = cancelled.
const (
	DocstatusDraft     = 0
	DocstatusSubmitted = 1
	DocstatusCancelled = 2
)

// Expense request workflow statuses
const (
	ExpenseStatusDraft           = "Draft"
	ExpenseStatusPendingApproval = "Pending Approval"
	ExpenseStatusApproved        = "Approved"
	ExpenseStatusRejected        = "Rejected"
)

// ModeOfPaymentCash is the one payment mode that never requires a
// payment reference or clearance date.
const ModeOfPaymentCash = "Cash"
