package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatehlogistics/erp-backend/internal/models"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"go.uber.org/zap"
)

// UserRepository resolves session users for approval stamping.
type UserRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a user by name, or nil when unknown.
func (r *UserRepository) Get(ctx context.Context, name string) (*models.User, error) {
	query := `
		SELECT name, email, first_name, last_name
		FROM users
		WHERE name = ?
	`

	var user models.User
	err := r.db.Executor(ctx).QueryRowContext(ctx, query, name).Scan(
		&user.Name,
		&user.Email,
		&user.FirstName,
		&user.LastName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
