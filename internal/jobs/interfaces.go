package jobs

import (
	"context"

	"github.com/fatehlogistics/erp-backend/internal/models"
)

// JobRecordRepositoryInterface for dependency injection
type JobRecordRepositoryInterface interface {
	Get(ctx context.Context, name string) (*models.JobRecord, error)
	SetPercentReceived(ctx context.Context, name string, percent float64) error
	SetPercentDelivered(ctx context.Context, name string, percent float64) error
}

// DocumentRepositoryInterface for dependency injection
type DocumentRepositoryInterface interface {
	SubmittedNamesForJob(ctx context.Context, target models.TargetDocType, jobRecordID string) ([]string, error)
	ItemsForParents(ctx context.Context, target models.TargetDocType, parents []string) ([]*models.DocumentItem, error)
	PurchaseOrdersForJob(ctx context.Context, jobRecordID string) ([]*models.PurchaseOrder, error)
	SalesOrdersForJob(ctx context.Context, jobRecordID string) ([]*models.SalesOrder, error)
}

// QuotationRepositoryInterface for dependency injection
type QuotationRepositoryInterface interface {
	ListForCustomer(ctx context.Context, customer string) ([]*models.Quotation, error)
	Items(ctx context.Context, name string) ([]*models.DocumentItem, error)
}
