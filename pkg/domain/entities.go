// Package domain defines the genealogy entities, the family resolution
// algorithm, and the marriage disambiguation policy used by genealogycore.
package domain

import "fmt"

// EntityType identifies the kind of record a diagnostic refers to.
type EntityType string

// Entity type identifiers used in diagnostics.
const (
	// EntityPerson identifies an individual record.
	EntityPerson EntityType = "person"
	// EntityFamily identifies a family unit record.
	EntityFamily EntityType = "family"
)

// Sex is the closed set of sex codes carried by individual records.
type Sex string

// Recognised sex codes. Anything else is treated as unknown.
const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Person is an individual reconstructed from one conversion pass. All family
// references are pointers into the owning Genealogy, never owned here.
type Person struct {
	Pointer    string
	Name       string
	FirstName  string
	LastName   string
	BirthDate  string
	BirthPlace string
	DeathDate  string
	DeathPlace string
	Sex        Sex

	// FamiliesAsSpouse accumulates candidate spouse families during
	// resolution. Disambiguation later narrows the export set to at most
	// one marriage per person; the candidates themselves are kept.
	FamiliesAsSpouse []string
	// FamiliesAsChild lists families in which this person appears as a
	// child. Never contains duplicates.
	FamiliesAsChild []string
}

// AddFamilyAsSpouse registers a candidate spouse family. Registering a second
// distinct candidate is a data-quality signal (widowhood, remarriage, or a
// duplicate family record) and is reported as a diagnostic. Re-registering a
// family already present is a no-op.
func (p *Person) AddFamilyAsSpouse(familyPointer string) Result {
	var res Result
	if familyPointer == "" {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:     DiagMalformedIdentifier,
			Entity:   EntityPerson,
			EntityID: p.Pointer,
			Message:  fmt.Sprintf("person %s: empty family pointer for spouse family", p.Pointer),
		})
		return res
	}
	for _, existing := range p.FamiliesAsSpouse {
		if existing == familyPointer {
			return res
		}
	}
	if len(p.FamiliesAsSpouse) > 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:     DiagExtraSpouseFamily,
			Entity:   EntityPerson,
			EntityID: p.Pointer,
			Message:  fmt.Sprintf("person %s already has a spouse family, adding candidate %s", p.Pointer, familyPointer),
		})
	}
	p.FamiliesAsSpouse = append(p.FamiliesAsSpouse, familyPointer)
	return res
}

// AddFamilyAsChild records a family in which the person appears as a child.
// Adding the same family twice is a no-op.
func (p *Person) AddFamilyAsChild(familyPointer string) {
	if familyPointer == "" {
		return
	}
	for _, existing := range p.FamiliesAsChild {
		if existing == familyPointer {
			return
		}
	}
	p.FamiliesAsChild = append(p.FamiliesAsChild, familyPointer)
}

// Family is a marriage/family unit owned by a Genealogy. Husband, Wife and
// Children hold person pointers.
type Family struct {
	Pointer       string
	Husband       string
	Wife          string
	Children      []string
	MarriageDate  string
	MarriagePlace string
}

// SetHusband assigns the husband slot. Overwriting an occupied slot proceeds
// but is reported, since it indicates conflicting source records.
func (f *Family) SetHusband(personPointer string) Result {
	return f.setSpouseSlot(&f.Husband, "husband", personPointer)
}

// SetWife assigns the wife slot with the same overwrite semantics as SetHusband.
func (f *Family) SetWife(personPointer string) Result {
	return f.setSpouseSlot(&f.Wife, "wife", personPointer)
}

func (f *Family) setSpouseSlot(slot *string, role, personPointer string) Result {
	var res Result
	if personPointer == "" {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:     DiagMalformedIdentifier,
			Entity:   EntityFamily,
			EntityID: f.Pointer,
			Message:  fmt.Sprintf("family %s: empty person pointer for %s slot", f.Pointer, role),
		})
		return res
	}
	if *slot != "" && *slot != personPointer {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:     DiagSlotReplaced,
			Entity:   EntityFamily,
			EntityID: f.Pointer,
			Message:  fmt.Sprintf("family %s: replacing %s %s with %s", f.Pointer, role, *slot, personPointer),
		})
	}
	*slot = personPointer
	return res
}

// AddChild appends a child pointer. Adding a pointer already present is a
// no-op; an empty pointer is rejected with a diagnostic.
func (f *Family) AddChild(childPointer string) Result {
	var res Result
	if childPointer == "" {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:     DiagMalformedIdentifier,
			Entity:   EntityFamily,
			EntityID: f.Pointer,
			Message:  fmt.Sprintf("family %s: empty child pointer", f.Pointer),
		})
		return res
	}
	for _, existing := range f.Children {
		if existing == childPointer {
			return res
		}
	}
	f.Children = append(f.Children, childPointer)
	return res
}
