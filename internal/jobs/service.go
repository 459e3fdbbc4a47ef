package jobs

import (
	"context"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"go.uber.org/zap"
)

// ParseTargetDocType validates a doctype string coming off the wire.
func ParseTargetDocType(s string) (models.TargetDocType, error) {
	target := models.TargetDocType(s)
	if !target.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTargetDocType, s)
	}
	return target, nil
}

// Service answers job-record fulfillment queries and keeps the percent
// fields in step with the downstream orders.
type Service struct {
	jobRecords JobRecordRepositoryInterface
	documents  DocumentRepositoryInterface
	quotations QuotationRepositoryInterface
	logger     *zap.Logger
}

// NewService creates a new job record service
func NewService(
	jobRecords JobRecordRepositoryInterface,
	documents DocumentRepositoryInterface,
	quotations QuotationRepositoryInterface,
	logger *zap.Logger,
) *Service {
	return &Service{
		jobRecords: jobRecords,
		documents:  documents,
		quotations: quotations,
		logger:     logger,
	}
}

// RemainingItems computes, per requested item on the job record, the
// quantity not yet covered by submitted documents of the target type.
// Items already fully covered are omitted; the job's item order is
// preserved.
func (s *Service) RemainingItems(ctx context.Context, jobRecordID string, target models.TargetDocType) ([]*models.RemainingItem, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTargetDocType, target)
	}

	job, err := s.jobRecords.Get(ctx, jobRecordID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: %s", ErrJobRecordNotFound, jobRecordID)
	}

	parents, err := s.documents.SubmittedNamesForJob(ctx, target, jobRecordID)
	if err != nil {
		return nil, err
	}

	ordered := make(map[string]float64)
	if len(parents) > 0 {
		items, err := s.documents.ItemsForParents(ctx, target, parents)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			ordered[item.ItemCode] += item.Qty
		}
	}

	var remaining []*models.RemainingItem
	for _, item := range job.Items {
		qty := item.Quantity - ordered[item.Item]
		if qty <= 0 {
			continue
		}
		remaining = append(remaining, &models.RemainingItem{
			ItemCode: item.Item,
			ItemName: item.ItemName,
			Qty:      qty,
			UOM:      item.UOM,
			Rate:     item.Rate,
		})
	}

	s.logger.Debug("Resolved remaining items",
		zap.String("job_record", jobRecordID),
		zap.String("target", target.String()),
		zap.Int("count", len(remaining)))
	return remaining, nil
}

// UpdatePercentPurchased recomputes a job record's purchase fulfillment
// from its non-cancelled purchase orders. Each order contributes its
// received percentage weighted by its own quantity; a job with no
// orders resets to zero.
func (s *Service) UpdatePercentPurchased(ctx context.Context, jobRecordID string) (float64, error) {
	job, err := s.jobRecords.Get(ctx, jobRecordID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, fmt.Errorf("%w: %s", ErrJobRecordNotFound, jobRecordID)
	}

	orders, err := s.documents.PurchaseOrdersForJob(ctx, jobRecordID)
	if err != nil {
		return 0, err
	}

	percent := 0.0
	if len(orders) > 0 && job.TotalQuantity > 0 {
		var weighted float64
		for _, po := range orders {
			weighted += po.PerReceived * po.TotalQty
		}
		percent = weighted / job.TotalQuantity
	}

	if err := s.jobRecords.SetPercentReceived(ctx, jobRecordID, percent); err != nil {
		return 0, err
	}

	s.logger.Info("Updated percent purchased",
		zap.String("job_record", jobRecordID),
		zap.Float64("percent", percent))
	return percent, nil
}

// UpdatePercentDelivered recomputes a job record's delivery fulfillment
// as the plain mean of its non-cancelled sales orders' delivered
// percentages. A job with no orders resets to zero.
func (s *Service) UpdatePercentDelivered(ctx context.Context, jobRecordID string) (float64, error) {
	job, err := s.jobRecords.Get(ctx, jobRecordID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, fmt.Errorf("%w: %s", ErrJobRecordNotFound, jobRecordID)
	}

	orders, err := s.documents.SalesOrdersForJob(ctx, jobRecordID)
	if err != nil {
		return 0, err
	}

	percent := 0.0
	if len(orders) > 0 {
		var sum float64
		for _, so := range orders {
			sum += so.PerDelivered
		}
		percent = sum / float64(len(orders))
	}

	if err := s.jobRecords.SetPercentDelivered(ctx, jobRecordID, percent); err != nil {
		return 0, err
	}

	s.logger.Info("Updated percent delivered",
		zap.String("job_record", jobRecordID),
		zap.Float64("percent", percent))
	return percent, nil
}

// QuotationsForCustomer lists the submitted quotations addressed to a
// customer, newest first. An empty customer matches nothing.
func (s *Service) QuotationsForCustomer(ctx context.Context, customer string) ([]*models.Quotation, error) {
	if customer == "" {
		return nil, nil
	}
	return s.quotations.ListForCustomer(ctx, customer)
}

// ItemsFromQuotations flattens the line items of the given quotations,
// in input order, each tagged with its source quotation.
func (s *Service) ItemsFromQuotations(ctx context.Context, quotationNames []string) ([]*models.QuotationItemOut, error) {
	var out []*models.QuotationItemOut
	for _, name := range quotationNames {
		items, err := s.quotations.Items(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			out = append(out, &models.QuotationItemOut{
				ItemCode: item.ItemCode,
				ItemName: item.ItemName,
				UOM:      item.UOM,
				Qty:      item.Qty,
				Rate:     item.Rate,
				Amount:   item.Amount,
				Parent:   item.Parent,
			})
		}
	}
	return out, nil
}
