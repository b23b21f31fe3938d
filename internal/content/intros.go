package content

import "github.com/shifang52221/metrickit-content/internal/domain"

// categoryIntros maps each category to its ordered intro blocks. A category
// with no entry simply renders no intro.
var categoryIntros = map[domain.Category][]domain.CategoryIntroBlock{
	domain.CategorySaaSMetrics: {
		{
			Title: "Know your unit economics",
			Paragraphs: []string{
				"Subscription businesses live or die on a handful of ratios: what a customer costs to acquire, what they are worth over their lifetime, and how fast the recurring base grows or leaks.",
				"The calculators in this section compute the standard SaaS metrics the way investors and operators expect them, with the definitions spelled out so two teams get the same number from the same inputs.",
			},
			Bullets: []string{
				"Start with MRR and churn before touching composite metrics",
				"Always pair LTV with CAC; neither means much alone",
			},
		},
	},
	domain.CategoryPaidAds: {
		{
			Title: "Measure your paid channels",
			Paragraphs: []string{
				"Paid acquisition only compounds when you know, channel by channel, what a dollar of spend returns. These calculators cover the core efficiency metrics for search, social, and display campaigns.",
			},
			Bullets: []string{
				"Fix one attribution window before comparing anything",
				"Compute break-even ROAS from gross margin, not from habit",
			},
		},
		{
			Title: "From ratios to decisions",
			Paragraphs: []string{
				"A ratio is only useful when it changes a budget. Use the guides alongside each calculator to turn the number into a scaling, holding, or cutting decision.",
			},
		},
	},
	domain.CategoryFinance: {
		{
			Title: "General financial calculators",
			Paragraphs: []string{
				"Margins, returns, and break-even points apply to any business, not just software. These calculators keep the formulas honest and the edge cases visible.",
			},
		},
	},
}

// CategoryIntros returns the authored category intro blocks.
func CategoryIntros() map[domain.Category][]domain.CategoryIntroBlock {
	return categoryIntros
}
