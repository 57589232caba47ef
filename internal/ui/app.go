// Package ui renders the interactive terminal client. It consumes the review
// service's structured results and owns nothing but presentation; every
// domain rule stays behind the service.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"campuspulse/internal/review/models"
	"campuspulse/internal/review/service"
)

// App drives the main menu loop.
type App struct {
	reviews *service.Service
	prompt  *Prompter
}

func NewApp(reviews *service.Service) *App {
	return &App{
		reviews: reviews,
		prompt:  NewPrompter(bufio.NewReader(os.Stdin)),
	}
}

// Run executes the menu loop until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("============================================================")
	fmt.Println("    ANONYMOUS REVIEWS PLATFORM")
	fmt.Println("    Your voice matters - share honest feedback anonymously!")
	fmt.Println("============================================================")

	for {
		a.showMainMenu()
		switch a.prompt.MenuChoice(1, 6) {
		case 1:
			a.submitReviewFlow(ctx)
		case 2:
			a.browseReviewsFlow(ctx)
		case 3:
			a.searchReviewsFlow(ctx)
		case 4:
			a.popularItemsFlow(ctx)
		case 5:
			a.itemStatisticsFlow(ctx)
		case 6:
			fmt.Println("\nThank you for using the Anonymous Reviews Platform!")
			return
		}
	}
}

func (a *App) showMainMenu() {
	fmt.Println("\n==================================================")
	fmt.Println("MAIN MENU")
	fmt.Println("==================================================")
	fmt.Println("1. Submit a New Review")
	fmt.Println("2. Browse Reviews")
	fmt.Println("3. Search Reviews")
	fmt.Println("4. View Popular Items")
	fmt.Println("5. Item Statistics")
	fmt.Println("6. Exit Application")
	fmt.Println("==================================================")
}

func (a *App) selectCategory(ctx context.Context) (*models.Category, bool) {
	categories := a.reviews.Categories(ctx)
	if len(categories) == 0 {
		fmt.Println("No categories available. Please contact the administrator.")
		return nil, false
	}
	showCategories(categories)
	choice := a.prompt.MenuChoice(1, len(categories))
	return categories[choice-1], true
}

func (a *App) submitReviewFlow(ctx context.Context) {
	fmt.Println("\nSUBMIT NEW REVIEW")

	category, ok := a.selectCategory(ctx)
	if !ok {
		a.prompt.WaitForEnter()
		return
	}

	itemName := a.prompt.Line("\nEnter the name of the course/service/location: ")

	fmt.Println("\nRate your experience:")
	fmt.Println("1 - Poor")
	fmt.Println("2 - Fair")
	fmt.Println("3 - Good")
	fmt.Println("4 - Very Good")
	fmt.Println("5 - Excellent")
	rating := a.prompt.MenuChoice(1, 5)

	content := a.prompt.MultiLine("\nWrite your detailed review:")

	if ok, reason := a.reviews.Submit(ctx, category.ID, itemName, rating, content); !ok {
		fmt.Printf("\nReview not submitted: %s\n", reason)
	} else {
		fmt.Println("\nThank you! Your review has been submitted.")
	}
	a.prompt.WaitForEnter()
}

func (a *App) browseReviewsFlow(ctx context.Context) {
	fmt.Println("\nBROWSE REVIEWS")

	category, ok := a.selectCategory(ctx)
	if !ok {
		a.prompt.WaitForEnter()
		return
	}

	reviews := a.reviews.ByCategory(ctx, category.ID)
	if len(reviews) == 0 {
		fmt.Printf("\nNo reviews found for %s\n", category.Name)
		a.prompt.WaitForEnter()
		return
	}
	showReviewsSummary(reviews)

	itemName := a.prompt.Line("\nEnter an item name to view detailed reviews (or press Enter to go back): ")
	if itemName != "" {
		itemReviews := a.reviews.ByItem(ctx, itemName)
		if len(itemReviews) == 0 {
			fmt.Println("No reviews found for that item.")
		} else {
			showDetailedReviews(itemReviews)
			a.voteMenu(ctx, itemReviews)
		}
	}
	a.prompt.WaitForEnter()
}

func (a *App) searchReviewsFlow(ctx context.Context) {
	fmt.Println("\nSEARCH REVIEWS")

	var term string
	for {
		term = a.prompt.Line("\nEnter search term (course name, keyword, etc.): ")
		ok, reason := a.reviews.ValidateSearchTerm(term)
		if ok {
			break
		}
		fmt.Println(reason)
	}

	categoryID := 0
	if a.prompt.YesNo("\nFilter by category?") {
		if category, ok := a.selectCategory(ctx); ok {
			categoryID = category.ID
		}
	}

	results := a.reviews.Search(ctx, term, categoryID)
	if len(results) == 0 {
		fmt.Printf("\nNo reviews found matching %q\n", term)
	} else {
		fmt.Printf("\nFound %d reviews matching %q:\n", len(results), term)
		showSearchResults(results)
	}
	a.prompt.WaitForEnter()
}

func (a *App) popularItemsFlow(ctx context.Context) {
	fmt.Println("\nPOPULAR ITEMS")
	fmt.Println("1. All categories")
	fmt.Println("2. Specific category")

	categoryID := 0
	if a.prompt.MenuChoice(1, 2) == 2 {
		if category, ok := a.selectCategory(ctx); ok {
			categoryID = category.ID
		}
	}

	items := a.reviews.PopularItems(ctx, categoryID, 10)
	if len(items) == 0 {
		fmt.Println("\nNo items found.")
	} else {
		showPopularItems(items)
	}
	a.prompt.WaitForEnter()
}

func (a *App) itemStatisticsFlow(ctx context.Context) {
	fmt.Println("\nITEM STATISTICS")
	itemName := a.prompt.Line("\nEnter the item name: ")
	if itemName == "" {
		return
	}
	showItemStatistics(a.reviews.ItemStatistics(ctx, itemName))
	a.prompt.WaitForEnter()
}

func (a *App) voteMenu(ctx context.Context, reviews []*models.Review) {
	for {
		fmt.Println("\nReview Actions:")
		fmt.Println("1. Mark a review as helpful")
		fmt.Println("2. Back to main menu")

		if a.prompt.MenuChoice(1, 2) != 1 {
			return
		}
		raw := a.prompt.Line("Enter review number to mark as helpful: ")
		num, err := strconv.Atoi(raw)
		if err != nil || num < 1 || num > len(reviews) {
			fmt.Println("Invalid review number.")
			continue
		}
		if a.reviews.VoteHelpful(ctx, reviews[num-1].ID) {
			fmt.Println("Thank you! Your vote has been recorded.")
		} else {
			fmt.Println("Failed to record vote.")
		}
	}
}
