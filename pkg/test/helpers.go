package test

import (
	"context"
	"log"
	"testing"

	"todoapi/internal/adapter/database"
	"todoapi/internal/shared"
)

// InitTestDB opens an isolated in-memory store with the schema applied.
func InitTestDB() *database.DB {
	db, err := database.Open(context.Background(), shared.DatabaseConfig{
		ConnectionString: ":memory:",
	})

	if err != nil {
		log.Fatal(err)
	}

	return db
}

// SetupTestDB is InitTestDB closed at the end of the test.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db := InitTestDB()
	t.Cleanup(func() { db.Close() })

	return db
}

// CountRows counts every row of table, soft-deleted ones included.
func CountRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()

	var count int

	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows of %s: %v", table, err)
	}

	return count
}
