package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is a single rated, free-text submission about a named item within a
// category. All fields except HelpfulVotes are immutable once created;
// HelpfulVotes only ever increases.
type Review struct {
	ID           string    `json:"id"`
	CategoryID   int       `json:"category_id"`
	ItemName     string    `json:"item_name"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	AnonymousID  string    `json:"anonymous_id"`
	Timestamp    time.Time `json:"timestamp"`
	HelpfulVotes int       `json:"helpful_votes"`
}

// NewReview constructs a validated submission into a Review, assigning the
// identifier, a fresh pseudonymous tag and the creation timestamp. The tag is
// regenerated per submission, so the same person carries no stable identity
// across reviews.
func NewReview(categoryID int, itemName string, rating int, content string) *Review {
	return &Review{
		ID:           uuid.New().String(),
		CategoryID:   categoryID,
		ItemName:     strings.TrimSpace(itemName),
		Rating:       rating,
		Content:      strings.TrimSpace(content),
		AnonymousID:  "user_" + uuid.New().String()[:8],
		Timestamp:    time.Now().UTC(),
		HelpfulVotes: 0,
	}
}

// ReviewRow is the persisted representation of a Review. The timestamp is
// stored as an RFC 3339 string, matching the backend column.
type ReviewRow struct {
	ID           string `db:"id" json:"id"`
	CategoryID   int    `db:"category_id" json:"category_id"`
	ItemName     string `db:"item_name" json:"item_name"`
	Rating       int    `db:"rating" json:"rating"`
	Content      string `db:"content" json:"content"`
	AnonymousID  string `db:"anonymous_id" json:"anonymous_id"`
	Timestamp    string `db:"timestamp" json:"timestamp"`
	HelpfulVotes int    `db:"helpful_votes" json:"helpful_votes"`
}

// Row converts the Review to its persisted shape.
func (r *Review) Row() ReviewRow {
	return ReviewRow{
		ID:           r.ID,
		CategoryID:   r.CategoryID,
		ItemName:     r.ItemName,
		Rating:       r.Rating,
		Content:      r.Content,
		AnonymousID:  r.AnonymousID,
		Timestamp:    r.Timestamp.Format(time.RFC3339Nano),
		HelpfulVotes: r.HelpfulVotes,
	}
}

// ReviewFromRow reconstructs a Review from its persisted shape. No field is
// regenerated; id, tag and timestamp come back exactly as stored.
func ReviewFromRow(row ReviewRow) (*Review, error) {
	ts, err := time.Parse(time.RFC3339Nano, row.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse review timestamp: %w", err)
	}
	return &Review{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		ItemName:     row.ItemName,
		Rating:       row.Rating,
		Content:      row.Content,
		AnonymousID:  row.AnonymousID,
		Timestamp:    ts,
		HelpfulVotes: row.HelpfulVotes,
	}, nil
}
