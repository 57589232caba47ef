package models

// ItemStatistics aggregates all reviews sharing an item name. When
// TotalReviews is zero only ItemName and the count are populated; there is no
// meaningful average or distribution to report.
type ItemStatistics struct {
	ItemName           string      `json:"item_name"`
	TotalReviews       int         `json:"total_reviews"`
	AverageRating      float64     `json:"average_rating,omitempty"`
	RatingDistribution map[int]int `json:"rating_distribution,omitempty"`
	TotalHelpfulVotes  int         `json:"total_helpful_votes,omitempty"`
}
