package website

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nortela/website/mail"
)

// Store wraps a SQLite database holding the contact submission log. Every
// accepted submission is persisted whether or not the mail relay delivered
// it, so nothing is lost while the relay is unconfigured or down.
type Store struct {
	db *sql.DB
}

// StoredSubmission is one logged contact-form entry.
type StoredSubmission struct {
	ID        string
	CreatedAt time.Time
	Delivery  string // mail.SendResult string form at submission time
	mail.Submission
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS submissions (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    subject TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    delivery TEXT NOT NULL
);
`)
	return err
}

// SaveSubmission logs one submission with its delivery outcome and returns
// the generated id.
func (s *Store) SaveSubmission(sub mail.Submission, delivery mail.SendResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO submissions (id, created_at, name, email, phone, subject, message, company, delivery) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339),
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.Company,
		delivery.String(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *Store) ListSubmissions(limit int) ([]StoredSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, name, email, phone, subject, message, company, delivery FROM submissions ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []StoredSubmission
	for rows.Next() {
		var sub StoredSubmission
		var createdAt string
		if err := rows.Scan(&sub.ID, &createdAt, &sub.Name, &sub.Email, &sub.Phone, &sub.Subject, &sub.Message, &sub.Company, &sub.Delivery); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sub.CreatedAt = t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
