package ledger

import "errors"

// Domain errors for expense-to-journal materialization. Each aborts the
// in-progress save; none is retried automatically.
var (
	// ErrDuplicateJournalEntry means a journal entry already references
	// the expense request.
	ErrDuplicateJournalEntry = errors.New("journal entry already exists for this expense request")

	// ErrMissingPaymentReference means a non-cash payment is missing its
	// reference or clearance date.
	ErrMissingPaymentReference = errors.New("payment reference and date are required for all non-cash payments")

	// ErrPaymentAccountNotFound means the selected payment mode has no
	// linked account for the request's company.
	ErrPaymentAccountNotFound = errors.New("the selected mode of payment has no linked account")
)
