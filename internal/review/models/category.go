package models

// Category is one of the fixed top-level groupings reviews are filed under.
// Categories are seeded once at bootstrap and never created or deleted by
// end users.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCategories returns the seeded category set in id order.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: 1, Name: "Courses", Description: "Academic courses and modules"},
		{ID: 2, Name: "Services", Description: "Library, Dining, IT Support"},
		{ID: 3, Name: "Locations", Description: "Study Spaces, Facilities"},
		{ID: 4, Name: "Events", Description: "University events and activities"},
	}
}
