package domain

import "fmt"

// DiagnosticKind classifies a data anomaly observed during resolution.
type DiagnosticKind string

// Diagnostic kinds. None of these abort a conversion; they are collected and
// surfaced alongside the result.
const (
	// DiagMalformedIdentifier reports an operation that received an empty
	// or otherwise unusable identifier. The operation is skipped.
	DiagMalformedIdentifier DiagnosticKind = "malformed_identifier"
	// DiagSlotReplaced reports a husband or wife slot overwrite.
	DiagSlotReplaced DiagnosticKind = "slot_replaced"
	// DiagUnknownSex reports a spouse whose sex code is outside the closed
	// set; the person is assigned the husband slot by policy.
	DiagUnknownSex DiagnosticKind = "unknown_sex"
	// DiagExtraSpouseFamily reports a person accumulating more than one
	// candidate spouse family before disambiguation.
	DiagExtraSpouseFamily DiagnosticKind = "extra_spouse_family"
)

// Diagnostic reports a single anomaly tied to an entity.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Entity   EntityType     `json:"entity"`
	EntityID string         `json:"entity_id"`
	Message  string         `json:"message"`
}

// Result aggregates diagnostics from resolver mutations.
type Result struct {
	Diagnostics []Diagnostic
}

// Merge appends diagnostics from another result.
func (r *Result) Merge(other Result) {
	if len(other.Diagnostics) == 0 {
		return
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// ErrMissingReference is returned when a relationship or marriage names an
// identifier absent from the loaded record set. Continuing would silently
// drop data, so the conversion run aborts.
type ErrMissingReference struct {
	Entity EntityType
	ID     string
}

func (e ErrMissingReference) Error() string {
	return fmt.Sprintf("%s %s referenced but not present in input", e.Entity, e.ID)
}
