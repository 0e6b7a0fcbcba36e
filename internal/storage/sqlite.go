package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/bisforge/internal/models"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS guides (
			id TEXT PRIMARY KEY,
			class TEXT NOT NULL,
			spec TEXT NOT NULL,
			role TEXT NOT NULL,
			url TEXT UNIQUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_guides_class ON guides(class)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// GuideID derives the stable id of a guide from its URL
func GuideID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}

func normalizeSeed(g models.GuideSeed) (models.GuideSeed, error) {
	g.Class = strings.ToLower(strings.TrimSpace(g.Class))
	g.Spec = strings.ToLower(strings.TrimSpace(g.Spec))
	g.URL = strings.TrimSpace(g.URL)
	if g.Class == "" || g.Spec == "" || g.URL == "" {
		return g, fmt.Errorf("guide needs class, spec and url")
	}
	role, ok := models.ParseRole(string(g.Role))
	if !ok {
		return g, fmt.Errorf("guide %s/%s: invalid role %q", g.Class, g.Spec, g.Role)
	}
	g.Role = role
	return g, nil
}

// --- Guides ---

// GetGuides returns guides ordered by class and spec, optionally for one class
func (s *Store) GetGuides(class string) ([]models.Guide, error) {
	var rows *sql.Rows
	var err error

	if class != "" {
		rows, err = s.db.Query(`
			SELECT id, class, spec, role, url, created_at
			FROM guides WHERE class = ? ORDER BY class, spec
		`, strings.ToLower(class))
	} else {
		rows, err = s.db.Query(`
			SELECT id, class, spec, role, url, created_at
			FROM guides ORDER BY class, spec
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guides := []models.Guide{}
	for rows.Next() {
		var g models.Guide
		if err := rows.Scan(&g.ID, &g.Class, &g.Spec, &g.Role, &g.URL, &g.CreatedAt); err != nil {
			return nil, err
		}
		guides = append(guides, g)
	}
	return guides, rows.Err()
}

// GetGuide returns a guide by ID
func (s *Store) GetGuide(id string) (*models.Guide, error) {
	var g models.Guide
	err := s.db.QueryRow(`
		SELECT id, class, spec, role, url, created_at
		FROM guides WHERE id = ?
	`, id).Scan(&g.ID, &g.Class, &g.Spec, &g.Role, &g.URL, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGuide inserts or replaces a guide keyed by its URL
func (s *Store) CreateGuide(seed models.GuideSeed) (*models.Guide, error) {
	seed, err := normalizeSeed(seed)
	if err != nil {
		return nil, err
	}

	g := &models.Guide{
		ID:        GuideID(seed.URL),
		Class:     seed.Class,
		Spec:      seed.Spec,
		Role:      seed.Role,
		URL:       seed.URL,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO guides (id, class, spec, role, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.ID, g.Class, g.Spec, g.Role, g.URL, g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// BulkCreateGuides inserts or replaces multiple guides in a transaction
func (s *Store) BulkCreateGuides(seeds []models.GuideSeed) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO guides (id, class, spec, role, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, seed := range seeds {
		seed, err := normalizeSeed(seed)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(GuideID(seed.URL), seed.Class, seed.Spec, seed.Role, seed.URL, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteGuide removes a guide by ID and reports whether it existed
func (s *Store) DeleteGuide(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM guides WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete guide: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
