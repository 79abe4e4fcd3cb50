// Package convert implements the two conversion directions between the
// hierarchical record format and the flat relational genealogy document.
package convert

import "genealogycore/pkg/domain"

// Direction identifies a conversion direction.
type Direction string

// Conversion directions.
const (
	// DirectionImport converts hierarchical records to the flat document.
	DirectionImport Direction = "import"
	// DirectionExport converts the flat document to hierarchical records.
	DirectionExport Direction = "export"
)

// Summary reports what a conversion produced, alongside the diagnostics
// collected from the resolver.
type Summary struct {
	Direction     Direction
	Persons       int
	Relationships int
	Marriages     int
	Families      int
	Result        domain.Result
}
