package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// VisionCacheEntry is a cached vision analysis keyed by image hash.
// Repeated scans of the same photo skip the vision model call.
type VisionCacheEntry struct {
	Description string
	ObjectType  string
}

// AnalysisRecord is a completed pipeline run kept for history.
type AnalysisRecord struct {
	ID         int64
	ObjectType string
	Score      int
	Verdict    string
	Result     []byte // full pipeline result JSON
	CreatedAt  time.Time
}

// Store defines the persistence interface for the pipeline's cache and
// history.
type Store interface {
	GetVisionCache(hash string) (*VisionCacheEntry, error)
	SetVisionCache(hash string, entry *VisionCacheEntry) error

	SaveAnalysis(rec *AnalysisRecord) error
	RecentAnalyses(limit int) ([]AnalysisRecord, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a SQLite-backed store at dbPath, creating
// tables as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	cacheQuery := `
	CREATE TABLE IF NOT EXISTS vision_cache (
		image_hash TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		object_type TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(cacheQuery); err != nil {
		return fmt.Errorf("failed to create vision_cache table: %w", err)
	}

	historyQuery := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		object_type TEXT NOT NULL,
		score INTEGER NOT NULL,
		verdict TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(historyQuery); err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}

	return nil
}

// GetVisionCache retrieves a cached vision result by image hash.
// Returns nil, nil on a cache miss.
func (s *SQLiteStore) GetVisionCache(hash string) (*VisionCacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entry VisionCacheEntry
	err := s.db.QueryRow(
		"SELECT description, object_type FROM vision_cache WHERE image_hash = ?",
		hash,
	).Scan(&entry.Description, &entry.ObjectType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vision cache: %w", err)
	}

	return &entry, nil
}

// SetVisionCache stores or replaces a cached vision result.
func (s *SQLiteStore) SetVisionCache(hash string, entry *VisionCacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO vision_cache (image_hash, description, object_type)
		VALUES (?, ?, ?)
		ON CONFLICT(image_hash) DO UPDATE SET
			description = excluded.description,
			object_type = excluded.object_type,
			created_at = CURRENT_TIMESTAMP
	`, hash, entry.Description, entry.ObjectType)
	if err != nil {
		return fmt.Errorf("failed to save vision cache entry: %w", err)
	}

	return nil
}

// SaveAnalysis appends a completed analysis to the history.
func (s *SQLiteStore) SaveAnalysis(rec *AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO analyses (object_type, score, verdict, result) VALUES (?, ?, ?, ?)",
		rec.ObjectType, rec.Score, rec.Verdict, string(rec.Result),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// RecentAnalyses returns the most recent analyses, newest first.
func (s *SQLiteStore) RecentAnalyses(limit int) ([]AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, object_type, score, verdict, result, created_at FROM analyses ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var result string
		if err := rows.Scan(&rec.ID, &rec.ObjectType, &rec.Score, &rec.Verdict, &result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.Result = []byte(result)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
