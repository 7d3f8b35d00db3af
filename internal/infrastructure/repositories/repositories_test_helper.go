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

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		must_change_password BOOLEAN NOT NULL DEFAULT 0,
		pre_confirmed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_roles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, role)
	);`)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		business_name TEXT NOT NULL,
		phone TEXT,
		category TEXT,
		address TEXT,
		state TEXT,
		city TEXT,
		lga TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		approved_at DATETIME,
		approved_by_admin_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCredentialTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_credentials (
		merchant_id TEXT PRIMARY KEY,
		issued_email TEXT NOT NULL,
		temporary_password TEXT NOT NULL,
		created_by_admin_id TEXT NOT NULL,
		password_changed BOOLEAN NOT NULL DEFAULT 0,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWaitlistTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE waitlist_entries (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		entry_type TEXT NOT NULL,
		name TEXT NOT NULL,
		business_name TEXT,
		phone TEXT,
		category TEXT,
		address TEXT,
		state TEXT,
		city TEXT,
		lga TEXT,
		created_at DATETIME,
		UNIQUE (email, entry_type)
	);`)
}
