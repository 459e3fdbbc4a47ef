package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fatehlogistics/erp-backend/internal/expense"
	"github.com/fatehlogistics/erp-backend/internal/jobs"
	"github.com/fatehlogistics/erp-backend/internal/ledger"
	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/internal/reports"
)

// ExpenseService is the expense surface the handlers call.
type ExpenseService interface {
	SaveByName(ctx context.Context, name, actingUser string) (*models.ExpenseRequest, error)
	InitialiseJournalEntry(ctx context.Context, name, actingUser string) (*models.JournalEntry, error)
	ExpenseEntriesForJob(ctx context.Context, jobRecordID string) ([]*models.ExpenseEntryReference, error)
}

// JobService is the job-record surface the handlers call.
type JobService interface {
	RemainingItems(ctx context.Context, jobRecordID string, target models.TargetDocType) ([]*models.RemainingItem, error)
	UpdatePercentPurchased(ctx context.Context, jobRecordID string) (float64, error)
	UpdatePercentDelivered(ctx context.Context, jobRecordID string) (float64, error)
	QuotationsForCustomer(ctx context.Context, customer string) ([]*models.Quotation, error)
	ItemsFromQuotations(ctx context.Context, quotationNames []string) ([]*models.QuotationItemOut, error)
}

// ReportService is the report surface the handlers call.
type ReportService interface {
	VehiclePL(ctx context.Context, f reports.Filters) ([]*reports.VehiclePLRow, error)
	VehicleJobPL(ctx context.Context, f reports.Filters) ([]*reports.VehicleJobPLRow, error)
}

// ReportExporter renders report rows as a workbook.
type ReportExporter interface {
	Write(w io.Writer, sheet string, columns []reports.Column, rows [][]interface{}) error
}

// Handlers contains all HTTP request handlers
type Handlers struct {
	expenseService ExpenseService
	jobService     JobService
	reportService  ReportService
	exporter       ReportExporter
	logger         Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	expenseService ExpenseService,
	jobService JobService,
	reportService ReportService,
	exporter ReportExporter,
	logger Logger,
) *Handlers {
	return &Handlers{
		expenseService: expenseService,
		jobService:     jobService,
		reportService:  reportService,
		exporter:       exporter,
		logger:         logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ReportResponse pairs a report's column layout with its data rows.
type ReportResponse struct {
	Columns []reports.Column `json:"columns"`
	Data    interface{}      `json:"data"`
}

// actingUser resolves the user a mutation is attributed to.
func actingUser(c *gin.Context) string {
	if user := c.GetHeader("X-User"); user != "" {
		return user
	}
	return "Administrator"
}

// statusForError maps domain sentinel errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrDuplicateJournalEntry):
		return http.StatusConflict
	case errors.Is(err, expense.ErrRequestNotFound),
		errors.Is(err, jobs.ErrJobRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrMissingPaymentReference),
		errors.Is(err, ledger.ErrPaymentAccountNotFound),
		errors.Is(err, jobs.ErrUnsupportedTargetDocType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) fail(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	h.logger.Error(msg, append(keysAndValues, "error", err)...)

	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = msg
	}
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// SaveExpenseRequest handles POST /api/expense-requests/:name/save
func (h *Handlers) SaveExpenseRequest(c *gin.Context) {
	name := c.Param("name")

	req, err := h.expenseService.SaveByName(c.Request.Context(), name, actingUser(c))
	if err != nil {
		h.fail(c, err, "failed to save expense request", "name", name)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    req,
	})
}

// InitialiseJournalEntry handles POST /api/expense-requests/:name/journal-entry
func (h *Handlers) InitialiseJournalEntry(c *gin.Context) {
	name := c.Param("name")

	entry, err := h.expenseService.InitialiseJournalEntry(c.Request.Context(), name, actingUser(c))
	if err != nil {
		h.fail(c, err, "failed to initialise journal entry", "name", name)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    entry,
	})
}

// RemainingItems handles GET /api/job-records/:id/remaining-items
func (h *Handlers) RemainingItems(c *gin.Context) {
	jobRecordID := c.Param("id")

	target, err := jobs.ParseTargetDocType(c.Query("target_doctype"))
	if err != nil {
		h.fail(c, err, "invalid target doctype", "job_record", jobRecordID)
		return
	}

	items, err := h.jobService.RemainingItems(c.Request.Context(), jobRecordID, target)
	if err != nil {
		h.fail(c, err, "failed to resolve remaining items", "job_record", jobRecordID)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ExpenseEntriesForJob handles GET /api/job-records/:id/expense-entries
func (h *Handlers) ExpenseEntriesForJob(c *gin.Context) {
	jobRecordID := c.Param("id")

	entries, err := h.expenseService.ExpenseEntriesForJob(c.Request.Context(), jobRecordID)
	if err != nil {
		h.fail(c, err, "failed to list expense entries", "job_record", jobRecordID)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    entries,
	})
}

// UpdatePercentPurchased handles POST /api/job-records/:id/percent-purchased
func (h *Handlers) UpdatePercentPurchased(c *gin.Context) {
	jobRecordID := c.Param("id")

	percent, err := h.jobService.UpdatePercentPurchased(c.Request.Context(), jobRecordID)
	if err != nil {
		h.fail(c, err, "failed to update percent purchased", "job_record", jobRecordID)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    gin.H{"percent_received": percent},
	})
}

// UpdatePercentDelivered handles POST /api/job-records/:id/percent-delivered
func (h *Handlers) UpdatePercentDelivered(c *gin.Context) {
	jobRecordID := c.Param("id")

	percent, err := h.jobService.UpdatePercentDelivered(c.Request.Context(), jobRecordID)
	if err != nil {
		h.fail(c, err, "failed to update percent delivered", "job_record", jobRecordID)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    gin.H{"percent_delivered": percent},
	})
}

// QuotationsForCustomer handles GET /api/quotations
func (h *Handlers) QuotationsForCustomer(c *gin.Context) {
	customer := c.Query("customer")

	quotations, err := h.jobService.QuotationsForCustomer(c.Request.Context(), customer)
	if err != nil {
		h.fail(c, err, "failed to list quotations", "customer", customer)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    quotations,
	})
}

// ItemsFromQuotationsRequest carries the quotation names, either as a
// JSON list or as a serialized list the front end produces.
type ItemsFromQuotationsRequest struct {
	Quotations json.RawMessage `json:"quotations"`
}

// quotationNames accepts ["Q-1","Q-2"], "[\"Q-1\"]" or "Q-1,Q-2".
func (r *ItemsFromQuotationsRequest) quotationNames() ([]string, error) {
	if len(r.Quotations) == 0 {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(r.Quotations, &names); err == nil {
		return names, nil
	}

	var raw string
	if err := json.Unmarshal(r.Quotations, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		return names, nil
	}
	return reports.ParseMultivalue(raw), nil
}

// ItemsFromQuotations handles POST /api/quotations/items
func (h *Handlers) ItemsFromQuotations(c *gin.Context) {
	var req ItemsFromQuotationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid quotation items request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	names, err := req.quotationNames()
	if err != nil {
		h.logger.Error("Invalid quotation list", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid quotation list",
		})
		return
	}

	items, err := h.jobService.ItemsFromQuotations(c.Request.Context(), names)
	if err != nil {
		h.fail(c, err, "failed to collect quotation items")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

func reportFilters(c *gin.Context) reports.Filters {
	return reports.Filters{
		FromDate:   c.Query("from_date"),
		ToDate:     c.Query("to_date"),
		Vehicles:   reports.ParseMultivalue(c.Query("vehicle")),
		Drivers:    reports.ParseMultivalue(c.Query("driver")),
		JobRecords: reports.ParseMultivalue(c.Query("job_record")),
		Employee:   c.Query("employee"),
	}
}

func (h *Handlers) writeWorkbook(c *gin.Context, filename, sheet string, columns []reports.Column, values [][]interface{}) {
	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, sheet, columns, values); err != nil {
		h.fail(c, err, "failed to export report")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// VehiclePLReport handles GET /api/reports/vehicle-pl
func (h *Handlers) VehiclePLReport(c *gin.Context) {
	filters := reportFilters(c)
	if err := filters.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	rows, err := h.reportService.VehiclePL(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err, "failed to compute vehicle P/L report")
		return
	}

	if c.Query("format") == "xlsx" {
		h.writeWorkbook(c, "vehicle-pl.xlsx", "Vehicle PL",
			reports.VehiclePLColumns(), reports.VehiclePLValues(rows))
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ReportResponse{
			Columns: reports.VehiclePLColumns(),
			Data:    rows,
		},
	})
}

// VehicleJobPLReport handles GET /api/reports/vehicle-job-pl
func (h *Handlers) VehicleJobPLReport(c *gin.Context) {
	filters := reportFilters(c)
	if err := filters.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	rows, err := h.reportService.VehicleJobPL(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err, "failed to compute vehicle job P/L report")
		return
	}

	if c.Query("format") == "xlsx" {
		h.writeWorkbook(c, "vehicle-job-pl.xlsx", "Vehicle Job PL",
			reports.VehicleJobPLColumns(), reports.VehicleJobPLValues(rows))
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ReportResponse{
			Columns: reports.VehicleJobPLColumns(),
			Data:    rows,
		},
	})
}
