package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// PaymentModeRepository resolves payment modes to their per-company
// default ledger accounts.
type PaymentModeRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewPaymentModeRepository creates a new payment mode repository
func NewPaymentModeRepository(db *database.DB, logger *zap.Logger) *PaymentModeRepository {
	return &PaymentModeRepository{
		db:     db,
		logger: logger,
	}
}

// DefaultAccount returns the ledger account configured for the payment
// mode and company, or "" when the mode is not configured.
func (r *PaymentModeRepository) DefaultAccount(ctx context.Context, mode, company string) (string, error) {
	var account string
	err := r.db.Executor(ctx).QueryRowContext(ctx,
		"SELECT default_account FROM mode_of_payment_accounts WHERE parent = ? AND company = ?",
		mode, company).Scan(&account)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to resolve payment mode account",
			zap.String("mode", mode), zap.String("company", company), zap.Error(err))
		return "", fmt.Errorf("failed to resolve payment mode account: %w", err)
	}
	return account, nil
}
