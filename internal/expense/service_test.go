package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"go.uber.org/zap"
)

// Mock repositories
type mockRequestRepo struct {
	getFunc                func(ctx context.Context, name string) (*models.ExpenseRequest, error)
	saveFunc               func(ctx context.Context, req *models.ExpenseRequest) error
	listApprovedForJobFunc func(ctx context.Context, jobRecordID string) ([]*models.ExpenseRequest, error)

	saved *models.ExpenseRequest
}

func (m *mockRequestRepo) Get(ctx context.Context, name string) (*models.ExpenseRequest, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRequestRepo) Save(ctx context.Context, req *models.ExpenseRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	m.saved = req
	return nil
}

func (m *mockRequestRepo) ListApprovedForJob(ctx context.Context, jobRecordID string) ([]*models.ExpenseRequest, error) {
	if m.listApprovedForJobFunc != nil {
		return m.listApprovedForJobFunc(ctx, jobRecordID)
	}
	return nil, nil
}

type mockMaterializer struct {
	materializeFunc func(ctx context.Context, req *models.ExpenseRequest, actingUser string) (*models.JournalEntry, error)

	calls int
}

func (m *mockMaterializer) Materialize(ctx context.Context, req *models.ExpenseRequest, actingUser string) (*models.JournalEntry, error) {
	m.calls++
	if m.materializeFunc != nil {
		return m.materializeFunc(ctx, req, actingUser)
	}
	return nil, nil
}

type mockTxManager struct{}

func (m *mockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestSave_RecomputesTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []*models.ExpenseItem
		wantTotal    float64
		wantQuantity int
	}{
		{
			name: "three lines",
			items: []*models.ExpenseItem{
				{Amount: 100}, {Amount: 250.5}, {Amount: 49.5},
			},
			wantTotal:    400,
			wantQuantity: 3,
		},
		{
			name:         "no lines",
			items:        nil,
			wantTotal:    0,
			wantQuantity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.ExpenseRequest{
				Name:     "EXP-0001",
				Total:    999,
				Quantity: 99,
				Expenses: tt.items,
			}

			requests := &mockRequestRepo{}
			materializer := &mockMaterializer{}
			service := NewService(requests, materializer, &mockTxManager{}, zap.NewNop())

			if err := service.Save(context.Background(), req, "admin@fateh.com"); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			if req.Total != tt.wantTotal {
				t.Errorf("Save() total = %v, want %v", req.Total, tt.wantTotal)
			}
			if req.Quantity != tt.wantQuantity {
				t.Errorf("Save() quantity = %v, want %v", req.Quantity, tt.wantQuantity)
			}
			if requests.saved != req {
				t.Errorf("Save() did not persist the request")
			}
			if materializer.calls != 1 {
				t.Errorf("Save() materializer calls = %d, want 1", materializer.calls)
			}
		})
	}
}

func TestSave_BackfillsLineDimensions(t *testing.T) {
	req := &models.ExpenseRequest{
		Name:              "EXP-0002",
		DefaultProject:    "P-DEFAULT",
		DefaultCostCenter: "CC-DEFAULT",
		Expenses: []*models.ExpenseItem{
			{Amount: 10},
			{Amount: 20, Project: "P-OWN", CostCenter: "CC-OWN"},
		},
	}

	service := NewService(&mockRequestRepo{}, &mockMaterializer{}, &mockTxManager{}, zap.NewNop())
	if err := service.Save(context.Background(), req, "admin@fateh.com"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if req.Expenses[0].Project != "P-DEFAULT" || req.Expenses[0].CostCenter != "CC-DEFAULT" {
		t.Errorf("Save() empty line dimensions not backfilled: %+v", req.Expenses[0])
	}
	if req.Expenses[1].Project != "P-OWN" || req.Expenses[1].CostCenter != "CC-OWN" {
		t.Errorf("Save() overwrote explicit line dimensions: %+v", req.Expenses[1])
	}
}

func TestSave_PropagatesMaterializerError(t *testing.T) {
	wantErr := errors.New("payment account missing")
	materializer := &mockMaterializer{
		materializeFunc: func(ctx context.Context, req *models.ExpenseRequest, actingUser string) (*models.JournalEntry, error) {
			return nil, wantErr
		},
	}

	service := NewService(&mockRequestRepo{}, materializer, &mockTxManager{}, zap.NewNop())
	err := service.Save(context.Background(), &models.ExpenseRequest{Name: "EXP-0003"}, "admin@fateh.com")
	if !errors.Is(err, wantErr) {
		t.Errorf("Save() error = %v, want %v", err, wantErr)
	}
}

func TestSaveByName_UnknownRequest(t *testing.T) {
	service := NewService(&mockRequestRepo{}, &mockMaterializer{}, &mockTxManager{}, zap.NewNop())

	_, err := service.SaveByName(context.Background(), "EXP-MISSING", "admin@fateh.com")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("SaveByName() error = %v, want ErrRequestNotFound", err)
	}
}

func TestExpenseEntriesForJob(t *testing.T) {
	requests := &mockRequestRepo{
		listApprovedForJobFunc: func(ctx context.Context, jobRecordID string) ([]*models.ExpenseRequest, error) {
			return []*models.ExpenseRequest{
				{Name: "EXP-0001", Total: 150},
				{Name: "EXP-0002", Total: 75.25},
			}, nil
		},
	}

	service := NewService(requests, &mockMaterializer{}, &mockTxManager{}, zap.NewNop())
	refs, err := service.ExpenseEntriesForJob(context.Background(), "JOB-001")
	if err != nil {
		t.Fatalf("ExpenseEntriesForJob() error = %v", err)
	}

	if len(refs) != 2 {
		t.Fatalf("ExpenseEntriesForJob() refs = %d, want 2", len(refs))
	}
	if refs[0].ReferenceDoctype != "Expense Request" || refs[0].ReferenceRecord != "EXP-0001" || refs[0].Amount != 150 {
		t.Errorf("ExpenseEntriesForJob() first ref = %+v", refs[0])
	}
}
