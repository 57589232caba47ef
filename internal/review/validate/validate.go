package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"campuspulse/internal/platform/config"
)

// Validator checks raw submission fields against the configured domain rules.
// It never constructs entities and has no side effects; callers decide what
// to do with a rejection.
type Validator struct {
	cfg config.Review
}

// New returns a Validator bound to the given rules.
func New(cfg config.Review) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateReview checks the raw fields of a submission in order; the first
// failing rule wins. It returns whether the submission is acceptable and, on
// rejection, a human-readable reason.
func (v *Validator) ValidateReview(categoryID int, itemName string, rating int, content string) (bool, string) {
	if !v.knownCategory(categoryID) {
		return false, fmt.Sprintf("category must be one of %s", joinInts(v.cfg.CategoryIDs))
	}

	if utf8.RuneCountInString(strings.TrimSpace(itemName)) < 2 {
		return false, "item name must be at least 2 characters"
	}

	if rating < v.cfg.MinRating || rating > v.cfg.MaxRating {
		return false, fmt.Sprintf("rating must be between %d and %d", v.cfg.MinRating, v.cfg.MaxRating)
	}

	trimmed := strings.TrimSpace(content)
	if utf8.RuneCountInString(trimmed) < v.cfg.MinContentLength {
		return false, fmt.Sprintf("review must be at least %d characters", v.cfg.MinContentLength)
	}
	if utf8.RuneCountInString(trimmed) > v.cfg.MaxContentLength {
		return false, fmt.Sprintf("review cannot exceed %d characters", v.cfg.MaxContentLength)
	}

	if v.containsBannedWord(trimmed) {
		return false, "review contains inappropriate content"
	}

	return true, ""
}

// ValidateSearchTerm checks free-text search input: non-empty after trimming
// and at least 2 characters.
func (v *Validator) ValidateSearchTerm(term string) (bool, string) {
	if utf8.RuneCountInString(strings.TrimSpace(term)) < 2 {
		return false, "search term must be at least 2 characters"
	}
	return true, ""
}

func (v *Validator) knownCategory(categoryID int) bool {
	for _, id := range v.cfg.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

func (v *Validator) containsBannedWord(content string) bool {
	lowered := strings.ToLower(content)
	for _, word := range v.cfg.BannedWords {
		if strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
