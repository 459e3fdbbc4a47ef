package ledger

import (
	"context"

	"github.com/fatehlogistics/erp-backend/internal/models"
)

// JournalEntryRepositoryInterface for dependency injection
type JournalEntryRepositoryInterface interface {
	ExistsByBillNo(ctx context.Context, billNo string) (bool, error)
	Create(ctx context.Context, entry *models.JournalEntry) error
	Submit(ctx context.Context, name string) error
}

// ExpenseRequestRepositoryInterface for dependency injection
type ExpenseRequestRepositoryInterface interface {
	SetApprovedBy(ctx context.Context, name, fullName string) error
}

// PaymentModeRepositoryInterface for dependency injection
type PaymentModeRepositoryInterface interface {
	DefaultAccount(ctx context.Context, mode, company string) (string, error)
}

// UserRepositoryInterface for dependency injection
type UserRepositoryInterface interface {
	Get(ctx context.Context, name string) (*models.User, error)
}

// TransactionManager runs a function inside a document-store
// transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
