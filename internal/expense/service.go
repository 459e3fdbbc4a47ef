package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"go.uber.org/zap"
)

// ErrRequestNotFound means no expense request exists under the given name.
var ErrRequestNotFound = errors.New("expense request not found")

// RequestRepositoryInterface for dependency injection
type RequestRepositoryInterface interface {
	Get(ctx context.Context, name string) (*models.ExpenseRequest, error)
	Save(ctx context.Context, req *models.ExpenseRequest) error
	ListApprovedForJob(ctx context.Context, jobRecordID string) ([]*models.ExpenseRequest, error)
}

// MaterializerInterface for dependency injection
type MaterializerInterface interface {
	Materialize(ctx context.Context, req *models.ExpenseRequest, actingUser string) (*models.JournalEntry, error)
}

// TransactionManager runs a function inside a document-store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns the expense request save hook and the job-linked expense
// queries.
type Service struct {
	requests     RequestRepositoryInterface
	materializer MaterializerInterface
	txManager    TransactionManager
	logger       *zap.Logger
}

// NewService creates a new expense service
func NewService(
	requests RequestRepositoryInterface,
	materializer MaterializerInterface,
	txManager TransactionManager,
	logger *zap.Logger,
) *Service {
	return &Service{
		requests:     requests,
		materializer: materializer,
		txManager:    txManager,
		logger:       logger,
	}
}

// Save recomputes the request totals, backfills line dimensions from
// the request defaults and persists the document. Materialization is
// attempted on every save; it short-circuits unless the request is
// approved, so the guard checks run harmlessly for drafts.
func (s *Service) Save(ctx context.Context, req *models.ExpenseRequest, actingUser string) error {
	var total float64
	count := 0

	for _, item := range req.Expenses {
		total += item.Amount
		count++

		if item.Project == "" && req.DefaultProject != "" {
			item.Project = req.DefaultProject
		}
		if item.CostCenter == "" && req.DefaultCostCenter != "" {
			item.CostCenter = req.DefaultCostCenter
		}
	}

	req.Total = total
	req.Quantity = count

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.requests.Save(txCtx, req); err != nil {
			return err
		}
		_, err := s.materializer.Materialize(txCtx, req, actingUser)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to save expense request",
			zap.String("name", req.Name), zap.Error(err))
		return err
	}

	s.logger.Info("Expense request saved",
		zap.String("name", req.Name),
		zap.Float64("total", req.Total),
		zap.Int("quantity", req.Quantity))
	return nil
}

// SaveByName reloads a stored request and runs the save hook on it.
func (s *Service) SaveByName(ctx context.Context, name, actingUser string) (*models.ExpenseRequest, error) {
	req, err := s.requests.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, name)
	}
	if err := s.Save(ctx, req, actingUser); err != nil {
		return nil, err
	}
	return req, nil
}

// InitialiseJournalEntry materializes the journal entry for a named
// request, for the explicit front-end action.
func (s *Service) InitialiseJournalEntry(ctx context.Context, name, actingUser string) (*models.JournalEntry, error) {
	req, err := s.requests.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, name)
	}

	return s.materializer.Materialize(ctx, req, actingUser)
}

// ExpenseEntriesForJob returns references to the approved, submitted
// expense requests linked to a job record.
func (s *Service) ExpenseEntriesForJob(ctx context.Context, jobRecordID string) ([]*models.ExpenseEntryReference, error) {
	requests, err := s.requests.ListApprovedForJob(ctx, jobRecordID)
	if err != nil {
		return nil, err
	}

	refs := make([]*models.ExpenseEntryReference, 0, len(requests))
	for _, req := range requests {
		refs = append(refs, &models.ExpenseEntryReference{
			ReferenceDoctype: "Expense Request",
			ReferenceRecord:  req.Name,
			Amount:           req.Total,
		})
	}
	return refs, nil
}
