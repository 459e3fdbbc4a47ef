package ledger

import (
	"context"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"go.uber.org/zap"
)

// Materializer turns an approved expense request into exactly one
// submitted journal entry. The duplicate guard is a read-then-write
// check; closing the race between concurrent approvals is left to the
// store's transaction semantics.
type Materializer struct {
	journals     JournalEntryRepositoryInterface
	requests     ExpenseRequestRepositoryInterface
	paymentModes PaymentModeRepositoryInterface
	users        UserRepositoryInterface
	txManager    TransactionManager
	logger       *zap.Logger
}

// NewMaterializer creates a new expense-to-journal materializer
func NewMaterializer(
	journals JournalEntryRepositoryInterface,
	requests ExpenseRequestRepositoryInterface,
	paymentModes PaymentModeRepositoryInterface,
	users UserRepositoryInterface,
	txManager TransactionManager,
	logger *zap.Logger,
) *Materializer {
	return &Materializer{
		journals:     journals,
		requests:     requests,
		paymentModes: paymentModes,
		users:        users,
		txManager:    txManager,
		logger:       logger,
	}
}

// Materialize creates and submits the journal entry for an approved
// expense request. It is a no-op for any other status, so callers may
// invoke it unconditionally on save. Returns the created entry, or nil
// when nothing was materialized.
func (m *Materializer) Materialize(ctx context.Context, req *models.ExpenseRequest, actingUser string) (*models.JournalEntry, error) {
	if req.Status != models.ExpenseStatusApproved {
		return nil, nil
	}

	exists, err := m.journals.ExistsByBillNo(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateJournalEntry, req.Name)
	}

	if req.ModeOfPayment != models.ModeOfPaymentCash {
		if req.PaymentReference == "" || req.ClearanceDate == "" {
			return nil, ErrMissingPaymentReference
		}
	} else {
		// Cash needs no clearance trail.
		req.PaymentReference = ""
		req.ClearanceDate = ""
	}

	payAccount, err := m.paymentModes.DefaultAccount(ctx, req.ModeOfPayment, req.Company)
	if err != nil {
		return nil, err
	}
	if payAccount == "" {
		return nil, fmt.Errorf("%w: %s", ErrPaymentAccountNotFound, req.ModeOfPayment)
	}

	accounts := make([]*models.JournalEntryAccount, 0, len(req.Expenses)+1)
	for _, item := range req.Expenses {
		accounts = append(accounts, &models.JournalEntryAccount{
			Account:                item.ExpenseAccount,
			Debit:                  item.Amount,
			DebitInAccountCurrency: item.Amount,
			Project:                item.Project,
			CostCenter:             item.CostCenter,
			UserRemark:             item.Description,
			Vehicle:                req.Vehicle,
		})
	}
	accounts = append(accounts, &models.JournalEntryAccount{
		Account:                 payAccount,
		Credit:                  req.Total,
		CreditInAccountCurrency: req.Total,
		CostCenter:              req.DefaultCostCenter,
		UserRemark:              req.Remarks,
		Vehicle:                 req.Vehicle,
	})

	entry := &models.JournalEntry{
		Title:         req.Name,
		VoucherType:   "Journal Entry",
		PostingDate:   req.PostingDate,
		Company:       req.Company,
		ModeOfPayment: req.ModeOfPayment,
		ChequeNo:      req.PaymentReference,
		ChequeDate:    req.ClearanceDate,
		ReferenceDate: req.ClearanceDate,
		PayToRecdFrom: req.PaymentTo,
		BillNo:        req.Name,
		UserRemark:    req.Remarks,
		Vehicle:       req.Vehicle,
		Accounts:      accounts,
		Docstatus:     models.DocstatusDraft,
	}

	fullName := actingUser
	if user, err := m.users.Get(ctx, actingUser); err != nil {
		return nil, err
	} else if user != nil {
		fullName = user.FullName()
	}

	err = m.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := m.requests.SetApprovedBy(txCtx, req.Name, fullName); err != nil {
			return err
		}
		if err := m.journals.Create(txCtx, entry); err != nil {
			return err
		}
		return m.journals.Submit(txCtx, entry.Name)
	})
	if err != nil {
		m.logger.Error("Failed to materialize journal entry",
			zap.String("expense_request", req.Name),
			zap.Error(err))
		return nil, err
	}
	req.ApprovedBy = fullName

	m.logger.Info("Journal entry materialized",
		zap.String("expense_request", req.Name),
		zap.String("journal_entry", entry.Name),
		zap.Float64("total", req.Total))

	return entry, nil
}
