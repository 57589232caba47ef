package store

import (
	"context"
	"database/sql"
	"fmt"

	"campuspulse/internal/review/models"
	"campuspulse/pkg/platform/sentinel"
)

// Postgres persists reviews and categories in PostgreSQL. Connections are
// acquired from the pool per call and released on every exit path.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS reviews (
	id            TEXT PRIMARY KEY,
	category_id   INTEGER NOT NULL REFERENCES categories (id),
	item_name     TEXT NOT NULL,
	rating        INTEGER NOT NULL,
	content       TEXT NOT NULL,
	anonymous_id  TEXT NOT NULL,
	timestamp     TEXT NOT NULL,
	helpful_votes INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS reviews_timestamp_idx ON reviews (timestamp DESC);
`

// EnsureSchema creates the tables when they do not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Postgres) SaveReview(ctx context.Context, review *models.Review) error {
	row := review.Row()
	query := `
		INSERT INTO reviews (id, category_id, item_name, rating, content, anonymous_id, timestamp, helpful_votes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		row.ID,
		row.CategoryID,
		row.ItemName,
		row.Rating,
		row.Content,
		row.AnonymousID,
		row.Timestamp,
		row.HelpfulVotes,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (s *Postgres) LoadAllReviews(ctx context.Context) ([]*models.Review, error) {
	// RFC 3339 UTC strings sort lexicographically in time order.
	query := `
		SELECT id, category_id, item_name, rating, content, anonymous_id, timestamp, helpful_votes
		FROM reviews
		ORDER BY timestamp DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var row models.ReviewRow
		err := rows.Scan(
			&row.ID,
			&row.CategoryID,
			&row.ItemName,
			&row.Rating,
			&row.Content,
			&row.AnonymousID,
			&row.Timestamp,
			&row.HelpfulVotes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		review, err := models.ReviewFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode review %s: %w", row.ID, err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

func (s *Postgres) LoadCategories(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// IncrementHelpfulVotes delegates the read-increment-write to the backend so
// concurrent votes against the same review never lose updates.
func (s *Postgres) IncrementHelpfulVotes(ctx context.Context, reviewID string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET helpful_votes = helpful_votes + 1 WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		return fmt.Errorf("increment helpful votes: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment helpful votes: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("review %s: %w", reviewID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *Postgres) UpsertCategory(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
	`
	if _, err := s.db.ExecContext(ctx, query, category.ID, category.Name, category.Description); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}
