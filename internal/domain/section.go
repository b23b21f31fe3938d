package domain

import "errors"

// Section-specific validation errors
var (
	// ErrSectionKindInvalid is returned when a section carries an unknown kind.
	ErrSectionKindInvalid = errors.New("section kind is not one of heading, paragraph, bullets, table")

	// ErrHeadingLevelInvalid is returned when a heading level is not 2 or 3.
	ErrHeadingLevelInvalid = errors.New("heading level must be 2 or 3")

	// ErrSectionTextEmpty is returned when a heading or paragraph has no text.
	ErrSectionTextEmpty = errors.New("section text cannot be empty")

	// ErrBulletsEmpty is returned when a bullets section has no items.
	ErrBulletsEmpty = errors.New("bullets section must have at least one item")

	// ErrTableColumnsEmpty is returned when a table section has no columns.
	ErrTableColumnsEmpty = errors.New("table section must have at least one column")

	// ErrTableRowShape is returned when a table row's cell count does not
	// match the column count.
	ErrTableRowShape = errors.New("table row cell count must equal column count")
)

// SectionKind discriminates the closed set of section block variants.
type SectionKind string

// The closed set of section kinds.
const (
	SectionHeading   SectionKind = "heading"
	SectionParagraph SectionKind = "paragraph"
	SectionBullets   SectionKind = "bullets"
	SectionTable     SectionKind = "table"
)

// Section is one content block of a guide. It is a tagged union: Kind
// selects the variant and determines which of the remaining fields are
// meaningful. Section ordering within a guide is significant and preserved
// exactly as authored.
type Section struct {
	Kind SectionKind `json:"kind"`

	// Heading fields. Level is 2 or 3.
	Level int `json:"level,omitempty"`

	// Text carries the heading or paragraph body.
	Text string `json:"text,omitempty"`

	// Items carries the bullet list entries.
	Items []string `json:"items,omitempty"`

	// Table fields. Every row must have exactly len(Columns) cells.
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Heading creates a heading section at the given level (2 or 3).
func Heading(level int, text string) Section {
	return Section{Kind: SectionHeading, Level: level, Text: text}
}

// Paragraph creates a paragraph section.
func Paragraph(text string) Section {
	return Section{Kind: SectionParagraph, Text: text}
}

// Bullets creates a bullet-list section.
func Bullets(items ...string) Section {
	return Section{Kind: SectionBullets, Items: items}
}

// Table creates a table section from ordered column headers and rows.
func Table(columns []string, rows ...[]string) Section {
	return Section{Kind: SectionTable, Columns: columns, Rows: rows}
}

// Validate checks the structural invariants of the section for its kind.
func (s *Section) Validate() error {
	switch s.Kind {
	case SectionHeading:
		if s.Level != 2 && s.Level != 3 {
			return ErrHeadingLevelInvalid
		}
		if s.Text == "" {
			return ErrSectionTextEmpty
		}
	case SectionParagraph:
		if s.Text == "" {
			return ErrSectionTextEmpty
		}
	case SectionBullets:
		if len(s.Items) == 0 {
			return ErrBulletsEmpty
		}
	case SectionTable:
		if len(s.Columns) == 0 {
			return ErrTableColumnsEmpty
		}
		for _, row := range s.Rows {
			if len(row) != len(s.Columns) {
				return ErrTableRowShape
			}
		}
	default:
		return ErrSectionKindInvalid
	}
	return nil
}
