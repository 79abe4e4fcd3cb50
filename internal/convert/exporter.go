package convert

import (
	"fmt"
	"io"

	"genealogycore/internal/flatxml"
	"genealogycore/internal/gedcom"
	"genealogycore/pkg/domain"
)

// Export reads a flat relational document and produces hierarchical records:
// one INDI per item, one FAM per resolved family unit. Marriages are folded
// in before relationships so spouse pairs share a family with their children.
func Export(r io.Reader) (*gedcom.Document, Summary, error) {
	summary := Summary{Direction: DirectionExport}

	doc, err := flatxml.Read(r)
	if err != nil {
		return nil, summary, err
	}

	persons := make([]*domain.Person, 0, len(doc.Items))
	byPointer := make(map[string]*domain.Person, len(doc.Items))
	byID := make(map[string]*domain.Person)
	for i, item := range doc.Items {
		pointer := item.Pointer
		if pointer == "" {
			// Items produced by the diagram tool carry node ids only;
			// assign positional pointers.
			pointer = fmt.Sprintf("@%d@", i+1)
		}
		p := &domain.Person{
			Pointer:    pointer,
			Name:       item.Name,
			FirstName:  item.FirstName,
			LastName:   item.LastName,
			BirthDate:  item.DateOfBirth,
			BirthPlace: item.PlaceOfBirth,
			DeathDate:  item.DateOfDeath,
			DeathPlace: item.PlaceOfDeath,
			Sex:        domain.Sex(item.Gender),
		}
		persons = append(persons, p)
		byPointer[pointer] = p
		if item.ID != "" {
			byID[item.ID] = p
		}
	}

	lookup := func(pointer, id string) (*domain.Person, error) {
		if pointer != "" {
			if p, ok := byPointer[pointer]; ok {
				return p, nil
			}
			return nil, domain.ErrMissingReference{Entity: domain.EntityPerson, ID: pointer}
		}
		if p, ok := byID[id]; ok {
			return p, nil
		}
		return nil, domain.ErrMissingReference{Entity: domain.EntityPerson, ID: id}
	}

	gen := domain.NewGenealogy()
	for _, m := range doc.Marriages {
		husband, err := lookup(m.LeftPointer, m.PersonLeft)
		if err != nil {
			return nil, summary, fmt.Errorf("marriage: %w", err)
		}
		wife, err := lookup(m.RightPointer, m.PersonRight)
		if err != nil {
			return nil, summary, fmt.Errorf("marriage: %w", err)
		}
		fam, res := gen.Marry(husband, wife)
		summary.Result.Merge(res)
		fam.MarriageDate = m.Date
		fam.MarriagePlace = m.Place
		summary.Marriages++
	}

	for _, rel := range doc.Relationships {
		parent, err := lookup(rel.FromPointer, rel.From)
		if err != nil {
			return nil, summary, fmt.Errorf("relationship: %w", err)
		}
		child, err := lookup(rel.ToPointer, rel.To)
		if err != nil {
			return nil, summary, fmt.Errorf("relationship: %w", err)
		}
		summary.Result.Merge(gen.AddRelationship(parent, child))
		summary.Relationships++
	}

	summary.Persons = len(persons)
	summary.Families = len(gen.Families())

	out := gedcom.NewDocument()
	out.Root.Append(gedcom.New(0, "", gedcom.TagHeader, ""))
	for _, p := range persons {
		out.Root.Append(individualRecord(p))
	}
	for _, fam := range gen.Families() {
		out.Root.Append(familyRecord(fam))
	}
	out.Root.Append(gedcom.New(0, "", gedcom.TagTrailer, ""))
	return out, summary, nil
}

// individualRecord serializes a person with the fixed field order: name with
// surname and given name sub-records, sex, birth block, death block, then
// spouse and child family links. Empty blocks are omitted.
func individualRecord(p *domain.Person) *gedcom.Element {
	rec := gedcom.New(0, p.Pointer, gedcom.TagIndividual, "")

	name := gedcom.New(1, "", gedcom.TagName, p.Name)
	if p.LastName != "" {
		name.Append(gedcom.New(2, "", gedcom.TagSurname, p.LastName))
	}
	if p.FirstName != "" {
		name.Append(gedcom.New(2, "", gedcom.TagGivenName, p.FirstName))
	}
	rec.Append(name)

	if p.Sex != "" {
		rec.Append(gedcom.New(1, "", gedcom.TagSex, string(p.Sex)))
	}
	appendEvent(rec, gedcom.TagBirth, p.BirthDate, p.BirthPlace)
	appendEvent(rec, gedcom.TagDeath, p.DeathDate, p.DeathPlace)

	for _, fam := range p.FamiliesAsSpouse {
		rec.Append(gedcom.New(1, "", gedcom.TagFamilySpouse, fam))
	}
	for _, fam := range p.FamiliesAsChild {
		rec.Append(gedcom.New(1, "", gedcom.TagFamilyChild, fam))
	}
	return rec
}

// familyRecord serializes a family unit: husband, wife, marriage block, then
// child links, omitting absent fields.
func familyRecord(fam *domain.Family) *gedcom.Element {
	rec := gedcom.New(0, fam.Pointer, gedcom.TagFamily, "")
	if fam.Husband != "" {
		rec.Append(gedcom.New(1, "", gedcom.TagHusband, fam.Husband))
	}
	if fam.Wife != "" {
		rec.Append(gedcom.New(1, "", gedcom.TagWife, fam.Wife))
	}
	appendEvent(rec, gedcom.TagMarriage, fam.MarriageDate, fam.MarriagePlace)
	for _, child := range fam.Children {
		rec.Append(gedcom.New(1, "", gedcom.TagChild, child))
	}
	return rec
}

func appendEvent(rec *gedcom.Element, tag, date, place string) {
	if date == "" && place == "" {
		return
	}
	event := gedcom.New(1, "", tag, "")
	if date != "" {
		event.Append(gedcom.New(2, "", gedcom.TagDate, date))
	}
	if place != "" {
		event.Append(gedcom.New(2, "", gedcom.TagPlace, place))
	}
	rec.Append(event)
}
