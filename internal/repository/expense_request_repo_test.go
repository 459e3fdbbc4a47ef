package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExpenseRequestRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRequestRepository(db, zap.NewNop())
	ctx := context.Background()

	req := &models.ExpenseRequest{
		Name:              "EXP-0001",
		Company:           "Fateh Logistics",
		PostingDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:            models.ExpenseStatusApproved,
		ModeOfPayment:     models.ModeOfPaymentCash,
		PaymentTo:         "Hamid Khan",
		Remarks:           "fuel and tolls",
		DefaultProject:    "P-001",
		DefaultCostCenter: "CC-001",
		Vehicle:           "TRUCK-01",
		JobRecord:         "JOB-001",
		Total:             150,
		Quantity:          2,
		Docstatus:         models.DocstatusSubmitted,
		Expenses: []*models.ExpenseItem{
			{Amount: 100, ExpenseAccount: "Fuel - FL", Project: "P-001", CostCenter: "CC-001"},
			{Amount: 50, ExpenseAccount: "Tolls - FL", Project: "P-001", CostCenter: "CC-001"},
		},
	}
	require.NoError(t, repo.Save(ctx, req))

	got, err := repo.Get(ctx, "EXP-0001")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, req.Name, got.Name)
	assert.Equal(t, req.Status, got.Status)
	assert.Equal(t, req.ModeOfPayment, got.ModeOfPayment)
	assert.Equal(t, req.Total, got.Total)
	assert.Equal(t, req.Quantity, got.Quantity)
	assert.Equal(t, req.JobRecord, got.JobRecord)

	require.Len(t, got.Expenses, 2)
	assert.Equal(t, 1, got.Expenses[0].Idx)
	assert.Equal(t, "Fuel - FL", got.Expenses[0].ExpenseAccount)
	assert.Equal(t, float64(100), got.Expenses[0].Amount)
	assert.Equal(t, "EXP-0001", got.Expenses[0].Parent)
}

func TestExpenseRequestRepository_SaveReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRequestRepository(db, zap.NewNop())
	ctx := context.Background()

	req := &models.ExpenseRequest{
		Name:   "EXP-0002",
		Status: models.ExpenseStatusDraft,
		Expenses: []*models.ExpenseItem{
			{Amount: 10, ExpenseAccount: "Fuel - FL"},
			{Amount: 20, ExpenseAccount: "Tolls - FL"},
		},
	}
	require.NoError(t, repo.Save(ctx, req))

	req.Status = models.ExpenseStatusApproved
	req.Expenses = []*models.ExpenseItem{
		{Amount: 75, ExpenseAccount: "Repairs - FL"},
	}
	require.NoError(t, repo.Save(ctx, req))

	got, err := repo.Get(ctx, "EXP-0002")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, models.ExpenseStatusApproved, got.Status)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "Repairs - FL", got.Expenses[0].ExpenseAccount)
	assert.Equal(t, 1, got.Expenses[0].Idx)
}

func TestExpenseRequestRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRequestRepository(db, zap.NewNop())

	got, err := repo.Get(context.Background(), "EXP-MISSING")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpenseRequestRepository_SetApprovedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRequestRepository(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.ExpenseRequest{Name: "EXP-0003"}))
	require.NoError(t, repo.SetApprovedBy(ctx, "EXP-0003", "Hamid Khan"))

	got, err := repo.Get(ctx, "EXP-0003")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hamid Khan", got.ApprovedBy)
}

func TestExpenseRequestRepository_ListApprovedForJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRequestRepository(db, zap.NewNop())
	ctx := context.Background()

	fixtures := []*models.ExpenseRequest{
		{Name: "EXP-0010", JobRecord: "JOB-001", Status: models.ExpenseStatusApproved, Docstatus: models.DocstatusSubmitted, Total: 150},
		{Name: "EXP-0011", JobRecord: "JOB-001", Status: models.ExpenseStatusApproved, Docstatus: models.DocstatusSubmitted, Total: 75.25},
		{Name: "EXP-0012", JobRecord: "JOB-001", Status: models.ExpenseStatusApproved, Docstatus: models.DocstatusDraft, Total: 10},
		{Name: "EXP-0013", JobRecord: "JOB-001", Status: models.ExpenseStatusDraft, Docstatus: models.DocstatusSubmitted, Total: 20},
		{Name: "EXP-0014", JobRecord: "JOB-002", Status: models.ExpenseStatusApproved, Docstatus: models.DocstatusSubmitted, Total: 30},
	}
	for _, f := range fixtures {
		require.NoError(t, repo.Save(ctx, f))
	}

	got, err := repo.ListApprovedForJob(ctx, "JOB-001")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "EXP-0010", got[0].Name)
	assert.Equal(t, float64(150), got[0].Total)
	assert.Equal(t, "EXP-0011", got[1].Name)
	assert.Equal(t, 75.25, got[1].Total)
}
