package domain

import (
	"errors"
	"testing"
)

func TestSectionValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section Section
		wantErr error
	}{
		{
			name:    "valid h2 heading",
			section: Heading(2, "How ROAS works"),
		},
		{
			name:    "valid h3 heading",
			section: Heading(3, "Edge cases"),
		},
		{
			name:    "heading level out of range",
			section: Heading(4, "Too deep"),
			wantErr: ErrHeadingLevelInvalid,
		},
		{
			name:    "heading without text",
			section: Heading(2, ""),
			wantErr: ErrSectionTextEmpty,
		},
		{
			name:    "valid paragraph",
			section: Paragraph("Return on ad spend measures revenue per ad dollar."),
		},
		{
			name:    "empty paragraph",
			section: Paragraph(""),
			wantErr: ErrSectionTextEmpty,
		},
		{
			name:    "valid bullets",
			section: Bullets("Track weekly", "Segment by channel"),
		},
		{
			name:    "bullets without items",
			section: Bullets(),
			wantErr: ErrBulletsEmpty,
		},
		{
			name: "valid table",
			section: Table(
				[]string{"Metric", "Formula"},
				[]string{"ROAS", "revenue / ad spend"},
				[]string{"ROI", "(gain - cost) / cost"},
			),
		},
		{
			name:    "table without columns",
			section: Table(nil, []string{"orphan"}),
			wantErr: ErrTableColumnsEmpty,
		},
		{
			name: "table row with wrong cell count",
			section: Table(
				[]string{"Metric", "Formula"},
				[]string{"ROAS"},
			),
			wantErr: ErrTableRowShape,
		},
		{
			name:    "unknown kind",
			section: Section{Kind: "sidebar", Text: "nope"},
			wantErr: ErrSectionKindInvalid,
		},
		{
			name:    "zero value section",
			section: Section{},
			wantErr: ErrSectionKindInvalid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.section.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTablePreservesOrder(t *testing.T) {
	t.Parallel()

	s := Table(
		[]string{"Month", "MRR"},
		[]string{"January", "10000"},
		[]string{"February", "11000"},
	)

	if s.Columns[0] != "Month" || s.Columns[1] != "MRR" {
		t.Errorf("Expected column order to be preserved, got %v", s.Columns)
	}
	if s.Rows[0][0] != "January" || s.Rows[1][0] != "February" {
		t.Errorf("Expected row order to be preserved, got %v", s.Rows)
	}
}
