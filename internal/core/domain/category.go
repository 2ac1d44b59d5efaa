package domain

// Category is a named video grouping. Titles are unique.
type Category struct {
	CategoryID string
	Title      string
	Timestamps
}

// DefaultCategoryTitle is assigned to videos published without a category.
const DefaultCategoryTitle = "Uncategorised"
