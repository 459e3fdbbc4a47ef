package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// JournalEntryRepository handles journal entry documents and their
// account rows.
type JournalEntryRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewJournalEntryRepository creates a new journal entry repository
func NewJournalEntryRepository(db *database.DB, logger *zap.Logger) *JournalEntryRepository {
	return &JournalEntryRepository{
		db:     db,
		logger: logger,
	}
}

// ExistsByBillNo reports whether any journal entry references the given
// source document. The expense materializer uses this as its duplicate
// guard.
func (r *JournalEntryRepository) ExistsByBillNo(ctx context.Context, billNo string) (bool, error) {
	var count int
	err := r.db.Executor(ctx).QueryRowContext(ctx,
		"SELECT COUNT(1) FROM journal_entries WHERE bill_no = ?", billNo).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to check journal entry by bill no",
			zap.String("bill_no", billNo), zap.Error(err))
		return false, fmt.Errorf("failed to check journal entry: %w", err)
	}
	return count > 0, nil
}

// GenerateName allocates the next journal entry name for today,
// JV-YYYYMMDD-NNNN.
func (r *JournalEntryRepository) GenerateName(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("JV-%s-", time.Now().Format("20060102"))

	query := `
		SELECT name
		FROM journal_entries
		WHERE name LIKE ?
		ORDER BY name DESC
		LIMIT 1
	`

	var lastName string
	err := r.db.Executor(ctx).QueryRowContext(ctx, query, prefix+"%").Scan(&lastName)

	sequence := 1
	if err == nil && lastName != "" {
		var seq int
		if _, err := fmt.Sscanf(lastName, prefix+"%d", &seq); err == nil {
			sequence = seq + 1
		}
	} else if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to generate journal entry name: %w", err)
	}

	return fmt.Sprintf("%s%04d", prefix, sequence), nil
}

// Create inserts the entry header and its account rows. The entry name
// is allocated here when the caller leaves it empty.
func (r *JournalEntryRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	ex := r.db.Executor(ctx)

	if entry.Name == "" {
		name, err := r.GenerateName(ctx)
		if err != nil {
			return err
		}
		entry.Name = name
	}

	var totalDebit, totalCredit float64
	for _, acc := range entry.Accounts {
		totalDebit += acc.Debit
		totalCredit += acc.Credit
	}
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit

	headerQuery := `
		INSERT INTO journal_entries (
			name, title, voucher_type, posting_date, company, mode_of_payment,
			cheque_no, cheque_date, reference_date, pay_to_recd_from, bill_no,
			user_remark, custom_vehicle, total_debit, total_credit, docstatus
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, headerQuery,
		entry.Name,
		entry.Title,
		entry.VoucherType,
		entry.PostingDate,
		entry.Company,
		entry.ModeOfPayment,
		entry.ChequeNo,
		entry.ChequeDate,
		entry.ReferenceDate,
		entry.PayToRecdFrom,
		entry.BillNo,
		entry.UserRemark,
		entry.Vehicle,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.Docstatus,
	)
	if err != nil {
		r.logger.Error("Failed to create journal entry", zap.String("name", entry.Name), zap.Error(err))
		return fmt.Errorf("failed to create journal entry: %w", err)
	}

	accountQuery := `
		INSERT INTO journal_entry_accounts (
			parent, idx, account, debit, credit,
			debit_in_account_currency, credit_in_account_currency,
			project, cost_center, user_remark, custom_vehicle
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, acc := range entry.Accounts {
		acc.Parent = entry.Name
		acc.Idx = i + 1
		result, err := ex.ExecContext(ctx, accountQuery,
			acc.Parent,
			acc.Idx,
			acc.Account,
			acc.Debit,
			acc.Credit,
			acc.DebitInAccountCurrency,
			acc.CreditInAccountCurrency,
			acc.Project,
			acc.CostCenter,
			acc.UserRemark,
			acc.Vehicle,
		)
		if err != nil {
			return fmt.Errorf("failed to create journal entry account: %w", err)
		}
		if id, err := result.LastInsertId(); err == nil {
			acc.ID = id
		}
	}

	return nil
}

// Submit finalizes the entry. Submitted entries are never mutated again.
func (r *JournalEntryRepository) Submit(ctx context.Context, name string) error {
	result, err := r.db.Executor(ctx).ExecContext(ctx,
		"UPDATE journal_entries SET docstatus = ? WHERE name = ? AND docstatus = ?",
		models.DocstatusSubmitted, name, models.DocstatusDraft)
	if err != nil {
		r.logger.Error("Failed to submit journal entry", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to submit journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to submit journal entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("journal entry %s is not a draft", name)
	}
	return nil
}

// Get retrieves a journal entry with its account rows, or nil.
func (r *JournalEntryRepository) Get(ctx context.Context, name string) (*models.JournalEntry, error) {
	query := `
		SELECT name, title, voucher_type, posting_date, company, mode_of_payment,
			cheque_no, cheque_date, reference_date, pay_to_recd_from, bill_no,
			user_remark, custom_vehicle, total_debit, total_credit, docstatus
		FROM journal_entries
		WHERE name = ?
	`

	var entry models.JournalEntry
	var postingDate sql.NullTime

	err := r.db.Executor(ctx).QueryRowContext(ctx, query, name).Scan(
		&entry.Name,
		&entry.Title,
		&entry.VoucherType,
		&postingDate,
		&entry.Company,
		&entry.ModeOfPayment,
		&entry.ChequeNo,
		&entry.ChequeDate,
		&entry.ReferenceDate,
		&entry.PayToRecdFrom,
		&entry.BillNo,
		&entry.UserRemark,
		&entry.Vehicle,
		&entry.TotalDebit,
		&entry.TotalCredit,
		&entry.Docstatus,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get journal entry", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	if postingDate.Valid {
		entry.PostingDate = postingDate.Time
	}

	accountQuery := `
		SELECT id, parent, idx, account, debit, credit,
			debit_in_account_currency, credit_in_account_currency,
			project, cost_center, user_remark, custom_vehicle
		FROM journal_entry_accounts
		WHERE parent = ?
		ORDER BY idx
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, accountQuery, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var acc models.JournalEntryAccount
		if err := rows.Scan(
			&acc.ID,
			&acc.Parent,
			&acc.Idx,
			&acc.Account,
			&acc.Debit,
			&acc.Credit,
			&acc.DebitInAccountCurrency,
			&acc.CreditInAccountCurrency,
			&acc.Project,
			&acc.CostCenter,
			&acc.UserRemark,
			&acc.Vehicle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry account: %w", err)
		}
		entry.Accounts = append(entry.Accounts, &acc)
	}

	return &entry, rows.Err()
}

// TotalDebitForVehicle sums total_debit over submitted journal entries
// in the date range that carry at least one account row tagged with the
// vehicle.
func (r *JournalEntryRepository) TotalDebitForVehicle(ctx context.Context, vehicle, fromDate, toDate string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(je.total_debit), 0)
		FROM journal_entries je
		WHERE je.docstatus = ?
			AND je.name IN (
				SELECT DISTINCT parent FROM journal_entry_accounts WHERE custom_vehicle = ?
			)
	`
	args := []interface{}{models.DocstatusSubmitted, vehicle}
	query, args = appendDateRange(query, args, "je.posting_date", fromDate, toDate)

	var total float64
	if err := r.db.Executor(ctx).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to sum journal debits for vehicle",
			zap.String("vehicle", vehicle), zap.Error(err))
		return 0, fmt.Errorf("failed to sum journal debits: %w", err)
	}
	return total, nil
}

// DebitLinesForVehicles returns vehicle-tagged account rows of
// submitted journal entries in the date range. The posted debit falls
// back to the account-currency figure; rows without a positive debit
// are skipped.
func (r *JournalEntryRepository) DebitLinesForVehicles(ctx context.Context, vehicles []string, fromDate, toDate string) ([]models.VehicleDebitLine, error) {
	if len(vehicles) == 0 {
		return nil, nil
	}

	query := `
		SELECT a.custom_vehicle, a.parent, a.account, a.debit, a.debit_in_account_currency
		FROM journal_entry_accounts a
		JOIN journal_entries je ON je.name = a.parent
		WHERE je.docstatus = ?
			AND a.custom_vehicle IN (` + placeholders(len(vehicles)) + `)
	`
	args := []interface{}{models.DocstatusSubmitted}
	for _, v := range vehicles {
		args = append(args, v)
	}
	query, args = appendDateRange(query, args, "je.posting_date", fromDate, toDate)
	query += " ORDER BY a.parent, a.idx"

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list journal debit lines", zap.Error(err))
		return nil, fmt.Errorf("failed to list journal debit lines: %w", err)
	}
	defer rows.Close()

	var lines []models.VehicleDebitLine
	for rows.Next() {
		var line models.VehicleDebitLine
		var debit, debitAC float64
		if err := rows.Scan(&line.Vehicle, &line.JournalEntry, &line.Account, &debit, &debitAC); err != nil {
			return nil, fmt.Errorf("failed to scan journal debit line: %w", err)
		}
		line.Debit = debit
		if line.Debit == 0 {
			line.Debit = debitAC
		}
		if line.Debit <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
