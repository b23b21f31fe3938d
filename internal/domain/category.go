package domain

// Category classifies guides and calculators into a closed set of topics.
// The set is fixed at build time; values double as URL segments.
type Category string

// The closed category set.
const (
	CategorySaaSMetrics Category = "saas-metrics"
	CategoryPaidAds     Category = "paid-ads"
	CategoryFinance     Category = "finance"
)

// CategoryInfo carries the display metadata for a category.
type CategoryInfo struct {
	Slug        Category
	Title       string
	Description string
}

// categories holds the closed set in display order.
var categories = []CategoryInfo{
	{
		Slug:        CategorySaaSMetrics,
		Title:       "SaaS Metrics",
		Description: "Recurring-revenue, retention, and unit-economics calculators for subscription businesses",
	},
	{
		Slug:        CategoryPaidAds,
		Title:       "Paid Ads",
		Description: "Return and efficiency calculators for paid acquisition channels",
	},
	{
		Slug:        CategoryFinance,
		Title:       "Finance",
		Description: "General financial calculators for margins, returns, and break-even analysis",
	},
}

// Categories returns the closed category set in display order.
// The returned slice is a copy; callers may not rely on mutating it.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.Slug == c {
			return true
		}
	}
	return false
}

// GetCategoryInfo returns the display metadata for a category, or nil when
// the category is not part of the closed set.
func GetCategoryInfo(c Category) *CategoryInfo {
	for _, info := range categories {
		if info.Slug == c {
			cp := info
			return &cp
		}
	}
	return nil
}
