package gedcom

// Document is a parsed record tree. Root is a pseudo element at level -1
// whose children are the level-0 records in file order.
type Document struct {
	Root *Element
}

// NewDocument returns an empty document ready for appending records.
func NewDocument() *Document {
	return &Document{Root: &Element{Level: -1}}
}

// Records returns the level-0 records in file order.
func (d *Document) Records() []*Element {
	return d.Root.Children
}

// Individuals returns the INDI records in file order.
func (d *Document) Individuals() []*Element {
	var out []*Element
	for _, rec := range d.Records() {
		if rec.Kind() == KindIndividual {
			out = append(out, rec)
		}
	}
	return out
}

// Record looks up a level-0 record by its cross reference pointer.
func (d *Document) Record(pointer string) *Element {
	if pointer == "" {
		return nil
	}
	for _, rec := range d.Records() {
		if rec.Pointer == pointer {
			return rec
		}
	}
	return nil
}

// FamiliesAsSpouse returns the FAM records referenced by the individual's
// FAMS links, in link order. Links to records absent from the document are
// skipped; the importer treats dangling spouse pointers inside the family
// record itself as fatal instead.
func (d *Document) FamiliesAsSpouse(individual *Element) []*Element {
	return d.linkedFamilies(individual, KindFamilySpouse)
}

// FamiliesAsChild returns the FAM records referenced by the individual's
// FAMC links, in link order.
func (d *Document) FamiliesAsChild(individual *Element) []*Element {
	return d.linkedFamilies(individual, KindFamilyChild)
}

func (d *Document) linkedFamilies(individual *Element, kind Kind) []*Element {
	var out []*Element
	for _, link := range individual.ChildrenOf(kind) {
		if fam := d.Record(link.Value); fam != nil && fam.Kind() == KindFamily {
			out = append(out, fam)
		}
	}
	return out
}

// Parents returns the individuals occupying the spouse slots of every family
// the individual belongs to as a child, one hop only.
func (d *Document) Parents(individual *Element) []*Element {
	var out []*Element
	for _, fam := range d.FamiliesAsChild(individual) {
		for _, kind := range []Kind{KindHusband, KindWife} {
			pointer := fam.ChildValue(kind)
			if pointer == "" {
				continue
			}
			if parent := d.Record(pointer); parent != nil && parent.Kind() == KindIndividual {
				out = append(out, parent)
			}
		}
	}
	return out
}
