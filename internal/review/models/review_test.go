package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	review := NewReview(2, "  Dining Hall  ", 4, "  Great pasta and short queues at lunch.  ")

	_, err := uuid.Parse(review.ID)
	require.NoError(t, err, "review id must be a uuid")

	assert.Equal(t, 2, review.CategoryID)
	assert.Equal(t, "Dining Hall", review.ItemName, "item name is trimmed")
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Great pasta and short queues at lunch.", review.Content, "content is trimmed")
	assert.Regexp(t, `^user_[0-9a-f]{8}$`, review.AnonymousID)
	assert.WithinDuration(t, time.Now().UTC(), review.Timestamp, time.Minute)
	assert.Zero(t, review.HelpfulVotes)
}

func TestAnonymousTagIsFreshPerSubmission(t *testing.T) {
	a := NewReview(1, "Calculus II", 5, "Well structured lectures and fair exams.")
	b := NewReview(1, "Calculus II", 5, "Well structured lectures and fair exams.")

	assert.NotEqual(t, a.AnonymousID, b.AnonymousID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestReviewRowRoundTrip(t *testing.T) {
	original := NewReview(3, "Quiet Floor", 5, "Best place on campus to get actual work done.")
	original.HelpfulVotes = 7

	restored, err := ReviewFromRow(original.Row())
	require.NoError(t, err)

	// Field-for-field equal: nothing regenerated on the way back.
	assert.Equal(t, original, restored)
}

func TestReviewFromRowRejectsBadTimestamp(t *testing.T) {
	row := NewReview(1, "Main Library", 3, "Open late which saves every exam season.").Row()
	row.Timestamp = "yesterday-ish"

	_, err := ReviewFromRow(row)
	assert.Error(t, err)
}
