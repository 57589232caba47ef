package ui

import (
	"fmt"
	"strings"

	"campuspulse/internal/review/models"
)

const rule = "------------------------------------------------------------"

func showCategories(categories []*models.Category) {
	fmt.Println("\nSelect a category:")
	for i, c := range categories {
		fmt.Printf("%d. %s\n", i+1, c.Name)
		if c.Description != "" {
			fmt.Printf("   %s\n", c.Description)
		}
	}
}

func showDetailedReviews(reviews []*models.Review) {
	fmt.Printf("\nDetailed Reviews (%d total):\n", len(reviews))
	fmt.Println(strings.Repeat("=", 60))
	for i, r := range reviews {
		fmt.Printf("Review #%d\n", i+1)
		fmt.Printf("Item: %s\n", r.ItemName)
		fmt.Printf("Rating: %s (%d/5)\n", stars(float64(r.Rating)), r.Rating)
		fmt.Printf("Date: %s\n", r.Timestamp.Format("January 2, 2006"))
		fmt.Printf("Review: %s\n", r.Content)
		fmt.Printf("Helpful votes: %d\n", r.HelpfulVotes)
		fmt.Printf("Reviewer: %s\n", r.AnonymousID)
		fmt.Println(rule)
	}
}

func showSearchResults(reviews []*models.Review) {
	for i, r := range reviews {
		fmt.Printf("\n%d. %s - %s\n", i+1, r.ItemName, stars(float64(r.Rating)))
		fmt.Printf("   %q\n", snippet(r.Content, 100))
		fmt.Printf("   %s | Helpful: %d\n", r.Timestamp.Format("January 2, 2006"), r.HelpfulVotes)
	}
}

func showReviewsSummary(reviews []*models.Review) {
	type itemSummary struct {
		name   string
		total  int
		sum    int
		latest *models.Review
	}
	byItem := make(map[string]*itemSummary)
	var order []string
	for _, r := range reviews {
		key := strings.ToLower(r.ItemName)
		s, seen := byItem[key]
		if !seen {
			s = &itemSummary{name: r.ItemName}
			byItem[key] = s
			order = append(order, key)
		}
		s.total++
		s.sum += r.Rating
		if s.latest == nil || r.Timestamp.After(s.latest.Timestamp) {
			s.latest = r
		}
	}

	fmt.Printf("\nFound %d reviews for %d items:\n", len(reviews), len(order))
	fmt.Println(rule)
	for _, key := range order {
		s := byItem[key]
		avg := float64(s.sum) / float64(s.total)
		fmt.Println(s.name)
		fmt.Printf("  Average Rating: %s (%.1f/5)\n", stars(avg), avg)
		fmt.Printf("  Total Reviews: %d\n", s.total)
		fmt.Printf("  Latest: %q\n", snippet(s.latest.Content, 60))
		fmt.Println(rule)
	}
}

func showPopularItems(items []*models.ItemStatistics) {
	fmt.Println("\nMost Reviewed Items:")
	fmt.Println(strings.Repeat("=", 60))
	for i, item := range items {
		fmt.Printf("%d. %s\n", i+1, item.ItemName)
		fmt.Printf("   Average Rating: %s (%.1f/5)\n", stars(item.AverageRating), item.AverageRating)
		fmt.Printf("   Total Reviews: %d\n", item.TotalReviews)
		fmt.Printf("   Total Helpful Votes: %d\n", item.TotalHelpfulVotes)
		fmt.Println("   Rating Distribution:")
		for rating := 5; rating >= 1; rating-- {
			count := item.RatingDistribution[rating]
			bar := ""
			if count > 0 && item.TotalReviews > 0 {
				bar = strings.Repeat("#", count*20/item.TotalReviews)
			}
			fmt.Printf("     %d stars: %2d %s\n", rating, count, bar)
		}
		fmt.Println(rule)
	}
}

func showItemStatistics(stats *models.ItemStatistics) {
	fmt.Printf("\nStatistics for %q:\n", stats.ItemName)
	fmt.Println(rule)
	fmt.Printf("  Total Reviews: %d\n", stats.TotalReviews)
	if stats.TotalReviews == 0 {
		fmt.Println("  No reviews yet.")
		return
	}
	fmt.Printf("  Average Rating: %s (%.1f/5)\n", stars(stats.AverageRating), stats.AverageRating)
	fmt.Printf("  Total Helpful Votes: %d\n", stats.TotalHelpfulVotes)
	for rating := 5; rating >= 1; rating-- {
		fmt.Printf("  %d stars: %d\n", rating, stats.RatingDistribution[rating])
	}
}

func stars(rating float64) string {
	full := int(rating)
	if full > 5 {
		full = 5
	}
	half := 0
	if rating-float64(full) >= 0.5 {
		half = 1
	}
	return strings.Repeat("*", full) + strings.Repeat("-", half) + strings.Repeat(".", 5-full-half)
}

func snippet(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
