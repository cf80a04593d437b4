package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Families table
		`CREATE TABLE IF NOT EXISTS families (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Members table
		`CREATE TABLE IF NOT EXISTS members (
			id TEXT PRIMARY KEY,
			family_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'adult',
			color TEXT NOT NULL DEFAULT '#4a7aab',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE
		)`,

		// Spaces table
		`CREATE TABLE IF NOT EXISTS spaces (
			id TEXT PRIMARY KEY,
			family_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE,
			UNIQUE(family_id, name)
		)`,

		// Space access records
		`CREATE TABLE IF NOT EXISTS space_access (
			space_id TEXT NOT NULL,
			member_id TEXT NOT NULL,
			can_manage INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (space_id, member_id),
			FOREIGN KEY (space_id) REFERENCES spaces(id) ON DELETE CASCADE,
			FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
		)`,

		// Categories table
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			space_id TEXT NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '#888888',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (space_id) REFERENCES spaces(id) ON DELETE CASCADE,
			UNIQUE(space_id, name)
		)`,

		// Folders table; parent_id NULL means category root
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			parent_id TEXT,
			name TEXT NOT NULL,
			created_by TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
			FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE CASCADE
		)`,

		// Files table
		`CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			folder_id TEXT NOT NULL,
			name TEXT NOT NULL,
			mime_type TEXT NOT NULL DEFAULT 'application/octet-stream',
			size_bytes INTEGER NOT NULL DEFAULT 0,
			storage_key TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			uploaded_by TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE,
			UNIQUE(folder_id, name)
		)`,

		// Permissions table
		`CREATE TABLE IF NOT EXISTS permissions (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			beneficiary_id TEXT NOT NULL,
			target_type TEXT NOT NULL,
			target_id TEXT NOT NULL,
			level TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			expires_at DATETIME,
			granted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (owner_id) REFERENCES members(id) ON DELETE CASCADE,
			FOREIGN KEY (beneficiary_id) REFERENCES members(id) ON DELETE CASCADE
		)`,

		// Delegation requests table
		`CREATE TABLE IF NOT EXISTS delegation_requests (
			id TEXT PRIMARY KEY,
			requester_id TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			target_type TEXT NOT NULL,
			target_id TEXT NOT NULL,
			level TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			permission_id TEXT,
			requested_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			resolved_at DATETIME,
			resolved_by TEXT,
			FOREIGN KEY (requester_id) REFERENCES members(id) ON DELETE CASCADE,
			FOREIGN KEY (owner_id) REFERENCES members(id) ON DELETE CASCADE,
			FOREIGN KEY (permission_id) REFERENCES permissions(id) ON DELETE SET NULL
		)`,

		// Alerts table
		`CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			target_type TEXT,
			target_id TEXT,
			recurrence TEXT NOT NULL DEFAULT 'none',
			next_trigger_at DATETIME NOT NULL,
			active INTEGER NOT NULL DEFAULT 1,
			last_triggered_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
		)`,

		// Audit log (append-only)
		`CREATE TABLE IF NOT EXISTS audit_log (
			id TEXT PRIMARY KEY,
			family_id TEXT NOT NULL,
			member_id TEXT NOT NULL,
			action TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_members_family ON members(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_spaces_family ON spaces(family_id)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_space ON categories(space_id)`,
		`CREATE INDEX IF NOT EXISTS idx_folders_category ON folders(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_files_folder ON files(folder_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_folders_sibling_name
			ON folders(category_id, IFNULL(parent_id, ''), name)`,
		`CREATE INDEX IF NOT EXISTS idx_permissions_beneficiary
			ON permissions(beneficiary_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_permissions_target
			ON permissions(target_type, target_id)`,
		`CREATE INDEX IF NOT EXISTS idx_delegations_owner
			ON delegation_requests(owner_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_delegations_requester
			ON delegation_requests(requester_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_due
			ON alerts(next_trigger_at) WHERE active = 1`,
		`CREATE INDEX IF NOT EXISTS idx_audit_family ON audit_log(family_id, created_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
