package content

import "github.com/shifang52221/metrickit-content/internal/domain"

// guides is the canonical corpus in authored (display) order. One body per
// slug; earlier drafts that diverged per page have been consolidated into
// the most recently dated version.
var guides = []domain.Guide{
	{
		Slug:        "roas-guide",
		Title:       "ROAS: The Complete Guide to Return on Ad Spend",
		Description: "What ROAS measures, how to calculate it, and the benchmarks that matter for paid acquisition.",
		Category:    domain.CategoryPaidAds,
		UpdatedAt:   "2026-04-12",
		SEO: &domain.SEO{
			Title: "ROAS Calculator Guide: Return on Ad Spend Explained",
		},
		RelatedCalculatorSlugs: []string{
			"roas-calculator",
			"cpc-calculator",
			"cpm-calculator",
		},
		RelatedGlossarySlugs: []string{
			"roas",
			"ad-spend",
			"conversion-rate",
		},
		Sections: []domain.Section{
			domain.Heading(2, "What is ROAS?"),
			domain.Paragraph("Return on ad spend (ROAS) is the revenue your advertising generates for every dollar it costs. A ROAS of 4 means four dollars of tracked revenue for each dollar of spend. It is the first number most paid-acquisition teams look at each morning, because it collapses campaign performance into a single ratio that is comparable across channels, ad sets, and time."),
			domain.Paragraph("ROAS is deliberately narrow. It ignores margin, refunds, and every cost other than the ad spend itself. That narrowness is what makes it fast to compute and easy to compare, and also why it should never be the only number you steer by."),
			domain.Heading(2, "How to calculate ROAS"),
			domain.Paragraph("Divide attributable revenue by ad spend over the same window. If a campaign spent $1,000 and drove $5,000 in tracked revenue, ROAS is 5.0, often written 5:1."),
			domain.Heading(3, "Choosing the attribution window"),
			domain.Paragraph("The revenue side depends entirely on your attribution model. A 7-day click window and a 30-day view-through window can double the apparent revenue of the same campaign. Pick one window, document it, and keep it fixed when comparing periods."),
			domain.Heading(2, "What counts as a good ROAS"),
			domain.Paragraph("Benchmarks vary with gross margin. An e-commerce store at 30% margin breaks even near 3.3:1; a software product with 85% margin can profit below 1.2:1. The table below shows break-even ROAS at common margin levels."),
			domain.Table(
				[]string{"Gross margin", "Break-even ROAS", "Typical target"},
				[]string{"20%", "5.0", "7.0+"},
				[]string{"30%", "3.3", "5.0+"},
				[]string{"50%", "2.0", "3.0+"},
				[]string{"80%", "1.25", "2.0+"},
			),
			domain.Heading(2, "Common mistakes"),
			domain.Bullets(
				"Comparing ROAS across channels with different attribution windows",
				"Optimizing to ROAS alone and starving prospecting campaigns that feed retargeting",
				"Ignoring refunds and cancellations in the revenue figure",
				"Treating platform-reported ROAS as ground truth instead of reconciling with order data",
			),
			domain.Paragraph("When ROAS and blended metrics disagree, trust the blended ones. Platform attribution over-credits retargeting almost universally."),
		},
		FAQs: []domain.FAQ{
			{
				Question: "Is ROAS the same as ROI?",
				Answer:   "No. ROAS compares revenue to ad spend only; ROI compares profit to total cost. A campaign can have a strong ROAS and a negative ROI once product and fulfillment costs are counted.",
			},
			{
				Question: "Should ROAS include VAT or sales tax?",
				Answer:   "Exclude it. Tax collected is not revenue you keep, and platforms differ in whether they report it, which corrupts cross-channel comparison.",
			},
			{
				Question: "What ROAS should a new campaign target?",
				Answer:   "Start from your break-even ROAS (1 divided by gross margin) and add headroom for untracked costs. Most teams target 1.5x to 2x their break-even ratio.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "A $1,000 campaign returning $5,000",
				CalculatorSlug: "roas-calculator",
				Params:         map[string]string{"revenue": "5000", "adSpend": "1000"},
			},
			{
				Label:          "Break-even check at 30% margin",
				CalculatorSlug: "roas-calculator",
				Params:         map[string]string{"revenue": "3300", "adSpend": "1000"},
				Note:           "At 30% gross margin this campaign only covers its own cost.",
			},
		},
	},
	{
		Slug:        "cac-guide",
		Title:       "Customer Acquisition Cost: How to Calculate and Reduce CAC",
		Description: "A practical guide to computing CAC correctly, benchmarking it, and bringing it down.",
		Category:    domain.CategorySaaSMetrics,
		UpdatedAt:   "2026-03-28",
		RelatedCalculatorSlugs: []string{
			"cac-calculator",
			"ltv-calculator",
			"ltv-cac-ratio-calculator",
		},
		RelatedGlossarySlugs: []string{
			"cac",
			"ltv",
			"payback-period",
		},
		Sections: []domain.Section{
			domain.Heading(2, "What is CAC?"),
			domain.Paragraph("Customer acquisition cost (CAC) is the fully loaded cost of winning one new customer: total sales and marketing spend in a period divided by the number of new customers acquired in that period. It is the denominator of SaaS unit economics; nearly every other efficiency metric is built on top of it."),
			domain.Heading(2, "Fully loaded versus media-only CAC"),
			domain.Paragraph("Teams routinely under-count CAC by including only ad spend. A fully loaded figure includes salaries of the sales and marketing org, tooling, agencies, and content production. Both numbers are useful, but label them clearly; a \"CAC\" that halves when the finance team recomputes it destroys trust in the metric."),
			domain.Heading(2, "Benchmarking with the LTV:CAC ratio"),
			domain.Paragraph("CAC on its own says little; the question is what a customer is worth relative to the cost of acquiring them. The conventional health bar is an LTV:CAC ratio of 3:1 or better, with CAC paid back inside 12 months."),
			domain.Bullets(
				"Below 1:1 — every sale loses money; stop scaling spend",
				"1:1 to 3:1 — viable only with strong organic motion or fast payback",
				"3:1 to 5:1 — healthy; most durable SaaS businesses live here",
				"Above 5:1 — often a sign of underinvestment in growth, not excellence",
			),
			domain.Heading(2, "Reducing CAC"),
			domain.Paragraph("The durable levers are conversion-rate work on the funnel you already pay for, pricing and packaging that shortens sales cycles, and compounding channels (SEO, referrals, community) that dilute paid spend. Discounting is the least durable lever: it lowers CAC by lowering LTV at the same time."),
		},
		FAQs: []domain.FAQ{
			{
				Question: "Do I include the salaries of the whole marketing team in CAC?",
				Answer:   "For the fully loaded figure, yes, including recruiters and managers attributable to the function. For channel-level optimization, use media-only CAC, but never mix the two in one dashboard.",
			},
			{
				Question: "How is CAC different for self-serve versus sales-led motions?",
				Answer:   "Self-serve CAC is dominated by media and content costs and is usually measured weekly. Sales-led CAC is dominated by headcount and should be measured over the full sales cycle, often a quarter or more.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "$60,000 quarterly spend, 150 new customers",
				CalculatorSlug: "cac-calculator",
				Params:         map[string]string{"salesMarketingSpend": "60000", "newCustomers": "150"},
			},
		},
	},
	{
		Slug:        "ltv-guide",
		Title:       "Customer Lifetime Value: The SaaS Operator's Guide to LTV",
		Description: "How to estimate lifetime value honestly, and how to avoid the optimistic-LTV trap.",
		Category:    domain.CategorySaaSMetrics,
		UpdatedAt:   "2026-02-14",
		RelatedCalculatorSlugs: []string{
			"ltv-calculator",
			"churn-rate-calculator",
			"ltv-cac-ratio-calculator",
		},
		RelatedGlossarySlugs: []string{
			"ltv",
			"churn-rate",
			"arpu",
			"gross-margin",
		},
		Sections: []domain.Section{
			domain.Heading(2, "What is LTV?"),
			domain.Paragraph("Customer lifetime value (LTV) is the total gross profit you expect from a customer over their whole relationship with you. The standard shortcut is average revenue per account divided by churn rate, multiplied by gross margin. A $100/month customer at 2% monthly churn and 80% margin is worth roughly $4,000."),
			domain.Heading(2, "Why the simple formula flatters you"),
			domain.Paragraph("Dividing by churn assumes churn is constant forever. Real cohorts churn fastest in their first months and settle into a lower rate, so the formula applied to a blended churn number usually overstates early-cohort value and understates mature-cohort value. Cohort-based survival curves are the honest alternative once you have a year of data."),
			domain.Heading(3, "Margin, not revenue"),
			domain.Paragraph("LTV must be a gross-profit figure if you intend to compare it with CAC. Comparing revenue-LTV to cost-CAC overstates the ratio by your cost of goods, which for SaaS with heavy infrastructure or support load can be 30% or more."),
			domain.Heading(2, "Quick reference"),
			domain.Table(
				[]string{"Monthly ARPU", "Monthly churn", "Gross margin", "Approx. LTV"},
				[]string{"$50", "3%", "80%", "$1,333"},
				[]string{"$100", "2%", "80%", "$4,000"},
				[]string{"$500", "1%", "75%", "$37,500"},
			),
		},
		FAQs: []domain.FAQ{
			{
				Question: "Should LTV use revenue or gross margin?",
				Answer:   "Gross margin, whenever LTV will sit next to CAC. Revenue-based LTV is only acceptable for tracking trend direction within one product line.",
			},
			{
				Question: "What churn rate do I use if churn is improving?",
				Answer:   "Use the trailing rate of your mature cohorts, not the blended rate across all customers. Blended churn is dragged up by brand-new cohorts and will understate the value of customers who survive onboarding.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "$100 ARPU, 2% monthly churn, 80% margin",
				CalculatorSlug: "ltv-calculator",
				Params:         map[string]string{"arpu": "100", "churnRate": "2", "grossMargin": "80"},
			},
		},
	},
	{
		Slug:        "churn-rate-guide",
		Title:       "Churn Rate: Measuring and Reducing Customer Churn",
		Description: "Customer versus revenue churn, how to compute each, and what good looks like by segment.",
		Category:    domain.CategorySaaSMetrics,
		UpdatedAt:   "2026-03-05",
		RelatedCalculatorSlugs: []string{
			"churn-rate-calculator",
			"mrr-calculator",
			"ltv-calculator",
		},
		RelatedGlossarySlugs: []string{
			"churn-rate",
			"net-revenue-retention",
			"mrr",
		},
		Sections: []domain.Section{
			domain.Heading(2, "Customer churn versus revenue churn"),
			domain.Paragraph("Customer churn counts logos lost; revenue churn counts dollars lost. They diverge whenever account sizes vary: losing ten $10 customers and one $1,000 customer is 11 logos but very different revenue. Track both, and when you can only watch one, watch revenue churn."),
			domain.Heading(2, "Computing the rate"),
			domain.Paragraph("Monthly customer churn is customers lost during the month divided by customers at the start of the month. Exclude customers acquired within the month from both sides, or a strong sales month will mask a retention problem."),
			domain.Heading(3, "Net revenue retention"),
			domain.Paragraph("Net revenue retention (NRR) folds expansion into the picture: starting MRR of a cohort, minus contraction and churn, plus expansion, divided by starting MRR. NRR above 100% means the install base grows even with zero new sales, which is why investors weight it so heavily."),
			domain.Heading(2, "What good looks like"),
			domain.Bullets(
				"SMB self-serve: 3-5% monthly customer churn is common; under 3% is strong",
				"Mid-market: 1-2% monthly; annual contracts push churn measurement to renewal windows",
				"Enterprise: measured annually; gross revenue churn under 10% a year is the bar",
			),
		},
		FAQs: []domain.FAQ{
			{
				Question: "Is a pause or downgrade churn?",
				Answer:   "A downgrade is contraction, not churn; it belongs in revenue churn but not logo churn. A pause becomes churn when the account passes your reactivation window without returning, typically 60 or 90 days.",
			},
			{
				Question: "Why does annual churn look so much worse than monthly churn?",
				Answer:   "Churn compounds. 3% monthly churn is not 36% annual churn but 1 - 0.97^12, about 30.6%, and intuition routinely underestimates the compounding in both directions.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "500 customers at month start, 15 lost",
				CalculatorSlug: "churn-rate-calculator",
				Params:         map[string]string{"customersStart": "500", "customersLost": "15"},
			},
		},
	},
	{
		Slug:        "mrr-guide",
		Title:       "MRR: Monthly Recurring Revenue from First Principles",
		Description: "What belongs in MRR, what never does, and how to read the MRR movement waterfall.",
		Category:    domain.CategorySaaSMetrics,
		UpdatedAt:   "2026-01-22",
		RelatedCalculatorSlugs: []string{
			"mrr-calculator",
			"churn-rate-calculator",
		},
		RelatedGlossarySlugs: []string{
			"mrr",
			"arr",
			"expansion-revenue",
		},
		Sections: []domain.Section{
			domain.Heading(2, "What MRR is"),
			domain.Paragraph("Monthly recurring revenue (MRR) is the normalized monthly value of all active subscriptions. An annual $1,200 contract contributes $100 of MRR. The normalization is the whole point: it makes businesses with mixed billing periods comparable month over month."),
			domain.Heading(2, "What never belongs in MRR"),
			domain.Bullets(
				"One-time setup or implementation fees",
				"Usage overages that don't recur contractually",
				"Services and consulting revenue",
				"Credits, refunds, and taxes",
			),
			domain.Paragraph("The temptation to stuff non-recurring revenue into MRR is strongest exactly when growth slows, which is when the discipline matters most."),
			domain.Heading(2, "The MRR movement waterfall"),
			domain.Paragraph("Net new MRR decomposes into new business, expansion, reactivation, contraction, and churn. Reading the waterfall tells you whether growth is acquisition-led or retention-led, and which lever is weakening before blended MRR shows it."),
		},
		FAQs: []domain.FAQ{
			{
				Question: "How do discounts affect MRR?",
				Answer:   "Record MRR net of the discount actually invoiced. Listing gross MRR with discounts tracked separately overstates the business and eventually reconciles painfully against cash.",
			},
			{
				Question: "Is ARR just 12 times MRR?",
				Answer:   "Mechanically yes, but convention reserves ARR for businesses dominated by annual contracts. Quoting ARR off one strong month of monthly-billing MRR is a red flag to anyone doing diligence.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "120 customers averaging $85/month",
				CalculatorSlug: "mrr-calculator",
				Params:         map[string]string{"customers": "120", "arpu": "85"},
			},
		},
	},
	{
		Slug:        "roi-guide",
		Title:       "ROI: Return on Investment Beyond the Formula",
		Description: "Computing ROI correctly, annualizing it, and knowing when it is the wrong tool.",
		Category:    domain.CategoryFinance,
		UpdatedAt:   "2026-04-02",
		RelatedCalculatorSlugs: []string{
			"roi-calculator",
			"roas-calculator",
			"break-even-calculator",
		},
		RelatedGlossarySlugs: []string{
			"roi",
			"net-profit",
		},
		Sections: []domain.Section{
			domain.Heading(2, "The formula"),
			domain.Paragraph("Return on investment is net gain divided by cost: (current value - cost) / cost, expressed as a percentage. Spend $10,000, end with $12,500, and ROI is 25%. Unlike ROAS, both sides of the ratio are profit-aware; the cost includes everything it took, and the gain is net of it."),
			domain.Heading(2, "Time is the missing dimension"),
			domain.Paragraph("A 25% ROI over three months and over three years are wildly different investments, yet the formula reports them identically. Annualize before comparing: (1 + ROI)^(1/years) - 1. The three-year 25% becomes roughly 7.7% a year."),
			domain.Heading(2, "When ROI misleads"),
			domain.Bullets(
				"Comparing projects of different durations without annualizing",
				"Ignoring opportunity cost: 15% ROI is poor if the alternative was 20%",
				"Counting soft benefits as gains without counting soft costs",
				"Survivorship: computing ROI only on the projects that finished",
			),
		},
		FAQs: []domain.FAQ{
			{
				Question: "What's the difference between ROI and ROAS?",
				Answer:   "ROAS is revenue over ad spend, a marketing efficiency ratio. ROI is profit over total cost. A 400% ROAS campaign can be negative-ROI once product costs are included.",
			},
			{
				Question: "Can ROI be below -100%?",
				Answer:   "Only if the investment creates liabilities beyond its cost, such as leveraged positions or cleanup obligations. For a simple sunk cost, -100% (total loss) is the floor.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "$10,000 invested, $12,500 returned",
				CalculatorSlug: "roi-calculator",
				Params:         map[string]string{"cost": "10000", "gain": "12500"},
			},
			{
				Label:          "A losing project",
				CalculatorSlug: "roi-calculator",
				Params:         map[string]string{"cost": "8000", "gain": "6000"},
				Note:           "Negative ROI of 25%: the project returned less than it cost.",
			},
		},
	},
	{
		Slug:        "break-even-guide",
		Title:       "Break-Even Analysis: Finding the Point Where You Stop Losing Money",
		Description: "Fixed costs, contribution margin, and how to compute the break-even point for a product or business.",
		Category:    domain.CategoryFinance,
		UpdatedAt:   "2026-02-27",
		RelatedCalculatorSlugs: []string{
			"break-even-calculator",
			"roi-calculator",
		},
		RelatedGlossarySlugs: []string{
			"fixed-costs",
			"contribution-margin",
			"variable-costs",
		},
		Sections: []domain.Section{
			domain.Heading(2, "The break-even point"),
			domain.Paragraph("The break-even point is the sales volume at which total revenue equals total cost. Below it every unit sold still loses money overall; above it each additional unit contributes profit. It is fixed costs divided by contribution margin per unit."),
			domain.Heading(3, "Contribution margin"),
			domain.Paragraph("Contribution margin is price minus variable cost per unit. A $50 product with $20 of variable cost contributes $30 toward fixed costs. With $60,000 of monthly fixed costs, break-even is 2,000 units a month."),
			domain.Heading(2, "Using it for decisions"),
			domain.Paragraph("Break-even analysis shines in pricing and capacity questions: how far can we discount before the volume required becomes implausible, and how much fixed cost can we add before the required volume outruns the market. It is a planning floor, not a target; businesses aiming at break-even hit it from below."),
			domain.Bullets(
				"Raising price lowers the break-even volume faster than cutting variable cost",
				"Fixed-cost additions (hiring, leases) move the point in lockstep",
				"Check break-even in revenue terms too: units times price",
			),
		},
		FAQs: []domain.FAQ{
			{
				Question: "Is marketing spend fixed or variable?",
				Answer:   "Committed brand spend behaves as fixed; performance spend that scales with volume behaves as variable. Split it rather than forcing it into one bucket.",
			},
		},
		Examples: []domain.Example{
			{
				Label:          "$60,000 fixed costs, $50 price, $20 variable cost",
				CalculatorSlug: "break-even-calculator",
				Params:         map[string]string{"fixedCosts": "60000", "pricePerUnit": "50", "variableCostPerUnit": "20"},
			},
		},
	},
}

// Guides returns the full authored corpus in display order.
func Guides() []domain.Guide {
	return guides
}
