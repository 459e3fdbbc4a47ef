package repository

import (
	"context"
	"testing"

	"github.com/fatehlogistics/erp-backend/pkg/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB opens an in-memory store with the full schema applied.
// A single connection keeps every query on the same memory database.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := database.NewMigrator(db, zap.NewNop())
	require.NoError(t, migrator.RunMigrations("../../migrations"))

	return db
}

func seed(t *testing.T, db *database.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}
