package domain

import (
	"errors"
	"testing"
)

// validGuide returns a minimal guide that passes validation. Tests mutate a
// copy to produce specific failures.
func validGuide() Guide {
	return Guide{
		Slug:        "roas-guide",
		Title:       "ROAS: The Complete Guide",
		Description: "What return on ad spend is and how to use it.",
		Category:    CategoryPaidAds,
		UpdatedAt:   "2026-04-12",
		RelatedCalculatorSlugs: []string{
			"roas-calculator",
		},
		RelatedGlossarySlugs: []string{
			"roas",
		},
		Sections: []Section{
			Heading(2, "What is ROAS?"),
			Paragraph("Return on ad spend is revenue divided by ad spend."),
		},
		FAQs: []FAQ{
			{Question: "What is a good ROAS?", Answer: "It depends on margins; 4:1 is a common target."},
		},
		Examples: []Example{
			{
				Label:          "A $1,000 campaign returning $5,000",
				CalculatorSlug: "roas-calculator",
				Params:         map[string]string{"revenue": "5000", "adSpend": "1000"},
			},
		},
	}
}

func TestGuideValidate(t *testing.T) {
	t.Parallel()

	g := validGuide()
	if err := g.Validate(); err != nil {
		t.Fatalf("Expected valid guide, got %v", err)
	}
}

func TestGuideValidateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Guide)
		wantErr error
	}{
		{
			name:    "empty slug",
			mutate:  func(g *Guide) { g.Slug = "" },
			wantErr: ErrGuideSlugEmpty,
		},
		{
			name:    "empty title",
			mutate:  func(g *Guide) { g.Title = "" },
			wantErr: ErrGuideTitleEmpty,
		},
		{
			name:    "unknown category",
			mutate:  func(g *Guide) { g.Category = "crypto" },
			wantErr: ErrGuideCategoryInvalid,
		},
		{
			name:    "no sections",
			mutate:  func(g *Guide) { g.Sections = nil },
			wantErr: ErrGuideSectionsEmpty,
		},
		{
			name: "malformed table section",
			mutate: func(g *Guide) {
				g.Sections = append(g.Sections, Table(
					[]string{"Metric", "Value"},
					[]string{"only one cell"},
				))
			},
			wantErr: ErrTableRowShape,
		},
		{
			name:    "empty related calculator slug",
			mutate:  func(g *Guide) { g.RelatedCalculatorSlugs = []string{""} },
			wantErr: ErrCalculatorSlugEmpty,
		},
		{
			name:    "empty related glossary slug",
			mutate:  func(g *Guide) { g.RelatedGlossarySlugs = []string{""} },
			wantErr: ErrGlossarySlugEmpty,
		},
		{
			name: "faq missing answer",
			mutate: func(g *Guide) {
				g.FAQs = []FAQ{{Question: "Why?", Answer: ""}}
			},
			wantErr: ErrFAQIncomplete,
		},
		{
			name: "example missing label",
			mutate: func(g *Guide) {
				g.Examples[0].Label = ""
			},
			wantErr: ErrExampleLabelEmpty,
		},
		{
			name: "example missing calculator slug",
			mutate: func(g *Guide) {
				g.Examples[0].CalculatorSlug = ""
			},
			wantErr: ErrCalculatorSlugEmpty,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := validGuide()
			tc.mutate(&g)
			err := g.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
