package store

import (
	"context"
	"fmt"

	"campuspulse/internal/review/models"
)

// SeedDefaultCategories installs the fixed category set. It is idempotent, so
// every bootstrap path can call it unconditionally.
func SeedDefaultCategories(ctx context.Context, seeder CategorySeeder) error {
	for _, category := range models.DefaultCategories() {
		if err := seeder.UpsertCategory(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", category.Name, err)
		}
	}
	return nil
}
