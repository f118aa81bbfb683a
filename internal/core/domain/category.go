package domain

// Category groups recipes. Deleting one does not touch recipes that reference it.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DefaultCategories is written to an uninitialised store at startup.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-1", Name: "Breakfasts", Description: "Dishes for the morning meal"},
		{ID: "cat-2", Name: "Soups", Description: "First courses"},
		{ID: "cat-3", Name: "Desserts", Description: "Sweet dishes"},
		{ID: "cat-4", Name: "Salads", Description: "Cold starters"},
	}
}
