package models

import "time"

// JournalEntry is a double-entry accounting document. Entries produced
// from expense requests carry the source request name in BillNo, which
// is what the duplicate-materialization guard checks.
type JournalEntry struct {
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	VoucherType    string    `json:"voucher_type"`
	PostingDate    time.Time `json:"posting_date"`
	Company        string    `json:"company"`
	ModeOfPayment  string    `json:"mode_of_payment"`
	ChequeNo       string    `json:"cheque_no"`
	ChequeDate     string    `json:"cheque_date"`
	ReferenceDate  string    `json:"reference_date"`
	PayToRecdFrom  string    `json:"pay_to_recd_from"`
	BillNo         string    `json:"bill_no"`
	UserRemark     string    `json:"user_remark"`
	Vehicle        string    `json:"custom_vehicle"`
	TotalDebit     float64   `json:"total_debit"`
	TotalCredit    float64   `json:"total_credit"`
	Docstatus      int       `json:"docstatus"`

	Accounts []*JournalEntryAccount `json:"accounts"`
}

// JournalEntryAccount is one debit or credit row of a journal entry.
type JournalEntryAccount struct {
	ID                      int64   `json:"id"`
	Parent                  string  `json:"parent"`
	Idx                     int     `json:"idx"`
	Account                 string  `json:"account"`
	Debit                   float64 `json:"debit"`
	Credit                  float64 `json:"credit"`
	DebitInAccountCurrency  float64 `json:"debit_in_account_currency"`
	CreditInAccountCurrency float64 `json:"credit_in_account_currency"`
	Project                 string  `json:"project"`
	CostCenter              string  `json:"cost_center"`
	UserRemark              string  `json:"user_remark"`
	Vehicle                 string  `json:"custom_vehicle"`
}

// VehicleDebitLine is one vehicle-tagged debit row of a submitted
// journal entry, as consumed by the job-assignment P/L report.
type VehicleDebitLine struct {
	Vehicle      string  `json:"custom_vehicle"`
	JournalEntry string  `json:"journal_entry"`
	Account      string  `json:"account"`
	Debit        float64 `json:"debit"`
}
