// Package integrity checks the cross-catalog references of the content
// corpus: every calculator slug a guide mentions must exist in the
// calculator catalog, and glossary slugs should exist in the glossary. The
// catalogs are collaborators supplied by the caller; this package never
// fetches them itself, and it reports rather than repairs. It is meant to
// run at build or test time, never per request.
package integrity

import (
	"fmt"

	"github.com/shifang52221/metrickit-content/internal/domain"
)

// CalculatorCatalog is the slice of the external calculator registry the
// validator needs: membership tests by slug.
type CalculatorCatalog interface {
	Has(slug string) bool
}

// GlossaryCatalog is the same contract for the glossary term catalog.
type GlossaryCatalog interface {
	Has(slug string) bool
}

// Severity classifies a finding. Dangling calculator references break
// user-facing links and fail CI; dangling glossary references only warn,
// since the field is optional cross-linking.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one dangling reference, keyed by the guide, the field the slug
// appeared in, and the offending slug itself.
type Finding struct {
	GuideSlug string   `json:"guideSlug"`
	Field     string   `json:"field"`
	Slug      string   `json:"slug"`
	Severity  Severity `json:"severity"`
}

// String renders the finding in the form CI logs show.
func (f Finding) String() string {
	return fmt.Sprintf("[%s] guide %q: %s references unknown slug %q", f.Severity, f.GuideSlug, f.Field, f.Slug)
}

// Report is the full result of a validation run.
type Report struct {
	Findings []Finding `json:"findings"`
}

// Errors returns the error-severity findings.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity findings.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

// HasErrors reports whether any finding should fail the build.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Validate walks every guide's outgoing references and records each slug
// that does not resolve in its target catalog. Findings appear in corpus
// order: per guide, related calculators first, then example calculators,
// then glossary links.
func Validate(guides []domain.Guide, calculators CalculatorCatalog, glossary GlossaryCatalog) Report {
	var report Report

	for i := range guides {
		g := &guides[i]

		for _, slug := range g.RelatedCalculatorSlugs {
			if !calculators.Has(slug) {
				report.Findings = append(report.Findings, Finding{
					GuideSlug: g.Slug,
					Field:     "relatedCalculatorSlugs",
					Slug:      slug,
					Severity:  SeverityError,
				})
			}
		}

		for j, ex := range g.Examples {
			if !calculators.Has(ex.CalculatorSlug) {
				report.Findings = append(report.Findings, Finding{
					GuideSlug: g.Slug,
					Field:     fmt.Sprintf("examples[%d].calculatorSlug", j),
					Slug:      ex.CalculatorSlug,
					Severity:  SeverityError,
				})
			}
		}

		if glossary == nil {
			continue
		}
		for _, slug := range g.RelatedGlossarySlugs {
			if !glossary.Has(slug) {
				report.Findings = append(report.Findings, Finding{
					GuideSlug: g.Slug,
					Field:     "relatedGlossarySlugs",
					Slug:      slug,
					Severity:  SeverityWarning,
				})
			}
		}
	}

	return report
}
