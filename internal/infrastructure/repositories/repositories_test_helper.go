package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTerminalConfigTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE terminal_configs (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		terminal_id TEXT NOT NULL,
		integration_mode TEXT NOT NULL,
		integrated_mode_display_name TEXT,
		integration_mapping_type TEXT,
		timestamp TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (merchant_id, terminal_id)
	);`)
}

func createSaleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sales (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		terminal_id TEXT NOT NULL,
		pair_key TEXT NOT NULL,
		pos_device_id TEXT,
		short_order_id TEXT,
		amount REAL DEFAULT 0,
		allowed_instruments TEXT,
		auto_accept BOOLEAN DEFAULT 1,
		auto_accept_window_expiry_seconds INTEGER DEFAULT 0,
		pregenerated_dqr_transaction_id TEXT,
		pregenerated_card_transaction_id TEXT,
		transaction_id TEXT NOT NULL,
		created_at_iso TEXT,
		creation_timestamp INTEGER NOT NULL,
		status TEXT NOT NULL,
		invoice_number TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_sales_pending_pair ON sales (pair_key) WHERE status = 'PENDING';`)
}

func createDeploymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deployments (
		id TEXT PRIMARY KEY,
		sim_no TEXT,
		merchant_id TEXT,
		terminal_id TEXT NOT NULL UNIQUE,
		pair_key TEXT,
		pos_device_id TEXT,
		app_id TEXT,
		status TEXT NOT NULL,
		workflow_id TEXT NOT NULL,
		application_number TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verifications (
		id TEXT PRIMARY KEY,
		workflow_id TEXT NOT NULL UNIQUE,
		app_id TEXT,
		otp TEXT NOT NULL,
		is_verified BOOLEAN DEFAULT 0,
		sim_no TEXT,
		latitude TEXT,
		longitude TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
