package convert

import (
	"fmt"
	"io"
	"strings"

	"genealogycore/internal/flatxml"
	"genealogycore/internal/gedcom"
	"genealogycore/pkg/domain"
)

// Import reads hierarchical records and produces the flat relational
// document: one item per individual, one relationship per parent link, and
// the marriage set that survives disambiguation.
func Import(r io.Reader) (*flatxml.Document, Summary, error) {
	summary := Summary{Direction: DirectionImport}

	doc, err := gedcom.Parse(r)
	if err != nil {
		return nil, summary, fmt.Errorf("parse records: %w", err)
	}

	individuals := doc.Individuals()
	persons := make([]*domain.Person, 0, len(individuals))
	byPointer := make(map[string]*domain.Person, len(individuals))
	for _, el := range individuals {
		given, family := el.Name()
		birthDate, birthPlace := el.BirthData()
		deathDate, deathPlace := el.DeathData()
		p := &domain.Person{
			Pointer:    el.Pointer,
			Name:       strings.TrimSpace(given + " " + family),
			FirstName:  given,
			LastName:   family,
			BirthDate:  birthDate,
			BirthPlace: birthPlace,
			DeathDate:  deathDate,
			DeathPlace: deathPlace,
			Sex:        domain.Sex(el.Sex()),
		}
		persons = append(persons, p)
		byPointer[p.Pointer] = p
	}

	gen := domain.NewGenealogy()
	var relationships []flatxml.Relationship
	seenRelationship := make(map[[2]string]bool)
	seenFamily := make(map[string]bool)

	// Families first: spouse candidates must be in place before parent
	// links resolve, or a child listed ahead of its parents would attach
	// to a throwaway family and the result would depend on record order.
	for _, el := range individuals {
		for _, famEl := range doc.FamiliesAsSpouse(el) {
			if seenFamily[famEl.Pointer] {
				// A family record is folded in once; later references
				// would only re-read partial data.
				continue
			}
			seenFamily[famEl.Pointer] = true
			if err := foldFamilyRecord(gen, famEl, byPointer, &summary.Result); err != nil {
				return nil, summary, err
			}
		}
	}

	for _, el := range individuals {
		child := byPointer[el.Pointer]
		for _, parentEl := range doc.Parents(el) {
			parent := byPointer[parentEl.Pointer]
			key := [2]string{parent.Pointer, child.Pointer}
			if seenRelationship[key] {
				continue
			}
			seenRelationship[key] = true
			summary.Result.Merge(gen.AddRelationship(parent, child))
			relationships = append(relationships, flatxml.Relationship{
				FromPointer: parent.Pointer,
				ToPointer:   child.Pointer,
			})
		}
	}

	marriages := gen.SelectMarriages()
	summary.Persons = len(persons)
	summary.Relationships = len(relationships)
	summary.Marriages = len(marriages)
	summary.Families = len(gen.Families())

	out := &flatxml.Document{Relationships: relationships}
	for _, p := range persons {
		out.Items = append(out.Items, flatxml.Item{
			Pointer:      p.Pointer,
			Name:         p.Name,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  p.BirthDate,
			PlaceOfBirth: p.BirthPlace,
			DateOfDeath:  p.DeathDate,
			PlaceOfDeath: p.DeathPlace,
			Gender:       string(p.Sex),
		})
	}
	for _, fam := range marriages {
		out.Marriages = append(out.Marriages, flatxml.Marriage{
			LeftPointer:  fam.Husband,
			RightPointer: fam.Wife,
			Date:         fam.MarriageDate,
			Place:        fam.MarriagePlace,
		})
	}
	return out, summary, nil
}

// foldFamilyRecord maps one FAM record onto a fresh family unit: spouse
// slots are assigned from the record's explicit roles and each spouse gains
// the family as a candidate, so a person remarried across several records
// keeps every marriage visible to the disambiguator. A record naming a
// spouse absent from the input is fatal.
func foldFamilyRecord(gen *domain.Genealogy, famEl *gedcom.Element, byPointer map[string]*domain.Person, res *domain.Result) error {
	husbandPtr := famEl.ChildValue(gedcom.KindHusband)
	wifePtr := famEl.ChildValue(gedcom.KindWife)
	if husbandPtr == "" && wifePtr == "" {
		return nil
	}
	var husband, wife *domain.Person
	if husbandPtr != "" {
		p, ok := byPointer[husbandPtr]
		if !ok {
			return domain.ErrMissingReference{Entity: domain.EntityPerson, ID: husbandPtr}
		}
		husband = p
	}
	if wifePtr != "" {
		p, ok := byPointer[wifePtr]
		if !ok {
			return domain.ErrMissingReference{Entity: domain.EntityPerson, ID: wifePtr}
		}
		wife = p
	}

	fam := gen.NewFamily()
	if husband != nil {
		res.Merge(fam.SetHusband(husband.Pointer))
		res.Merge(husband.AddFamilyAsSpouse(fam.Pointer))
	}
	if wife != nil {
		res.Merge(fam.SetWife(wife.Pointer))
		res.Merge(wife.AddFamilyAsSpouse(fam.Pointer))
	}
	date, place := famEl.MarriageData()
	fam.MarriageDate = date
	fam.MarriagePlace = place
	return nil
}
