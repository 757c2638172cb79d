package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/rutvikm/agri-price-be/internal/database"
	"github.com/rutvikm/agri-price-be/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an isolated in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every sqlite connection gets its own ":memory:" database, so keep the
	// pool at a single connection.
	db.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// InsertPrice seeds one price record and returns its assigned id.
func InsertPrice(t *testing.T, db *sql.DB, r models.PriceRecord) string {
	t.Helper()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	_, err := db.Exec(
		"INSERT INTO prices(id, name, district, market, high_price, low_price, date) VALUES(?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.Name, r.District, r.Market, r.HighPrice, r.LowPrice, r.Date,
	)
	if err != nil {
		t.Fatalf("Failed to seed price record: %v", err)
	}
	return r.ID
}
