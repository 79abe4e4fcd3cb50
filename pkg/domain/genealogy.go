package domain

import "fmt"

// Genealogy owns every family unit created during a single conversion pass.
// Persons reference families by pointer only; the arena here is the single
// owner. A Genealogy is not safe for concurrent use and is built fresh per
// conversion run.
type Genealogy struct {
	familySeq int
	families  map[string]*Family
	order     []string
}

// NewGenealogy returns an empty genealogy with the family counter at one.
func NewGenealogy() *Genealogy {
	return &Genealogy{
		familySeq: 1,
		families:  make(map[string]*Family),
	}
}

// NewFamily creates and registers a family with the next sequential pointer.
// Pointers use an F prefix so they can never collide with person pointers
// defaulted from input positions.
func (g *Genealogy) NewFamily() *Family {
	pointer := fmt.Sprintf("@F%d@", g.familySeq)
	g.familySeq++
	fam := &Family{Pointer: pointer}
	g.families[pointer] = fam
	g.order = append(g.order, pointer)
	return fam
}

// Family looks up a family by pointer.
func (g *Genealogy) Family(pointer string) (*Family, bool) {
	fam, ok := g.families[pointer]
	return fam, ok
}

// Families returns all families in creation order.
func (g *Genealogy) Families() []*Family {
	out := make([]*Family, 0, len(g.order))
	for _, pointer := range g.order {
		out = append(out, g.families[pointer])
	}
	return out
}

// FamilyAsSpouse returns the family in which the person is a spouse, creating
// one when the person has no candidates yet. The spouse slot is chosen from
// the person's sex code; an unrecognised code defaults to the husband slot
// and is reported. When candidates already exist the first one is
// authoritative: multi-marriage modeling during construction is out of scope
// and resolved later by disambiguation.
func (g *Genealogy) FamilyAsSpouse(p *Person) (*Family, Result) {
	var res Result
	if len(p.FamiliesAsSpouse) == 0 {
		fam := g.NewFamily()
		switch p.Sex {
		case SexMale:
			res.Merge(fam.SetHusband(p.Pointer))
		case SexFemale:
			res.Merge(fam.SetWife(p.Pointer))
		default:
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:     DiagUnknownSex,
				Entity:   EntityPerson,
				EntityID: p.Pointer,
				Message:  fmt.Sprintf("person %s has unknown sex %q, assigning husband slot", p.Pointer, string(p.Sex)),
			})
			res.Merge(fam.SetHusband(p.Pointer))
		}
		res.Merge(p.AddFamilyAsSpouse(fam.Pointer))
	}
	fam := g.families[p.FamiliesAsSpouse[0]]
	return fam, res
}

// Marry resolves a single shared family for the pair and assigns both spouse
// slots from the arguments. Resolution order: the husband's first candidate
// wins, then the wife's, then a fresh family. When both parties already have
// candidates the first argument is preferred; this deterministic asymmetry is
// a documented limitation rather than true remarriage modeling.
func (g *Genealogy) Marry(husband, wife *Person) (*Family, Result) {
	var res Result
	var fam *Family
	switch {
	case len(husband.FamiliesAsSpouse) > 0:
		fam = g.families[husband.FamiliesAsSpouse[0]]
		res.Merge(wife.AddFamilyAsSpouse(fam.Pointer))
	case len(wife.FamiliesAsSpouse) > 0:
		fam = g.families[wife.FamiliesAsSpouse[0]]
		res.Merge(husband.AddFamilyAsSpouse(fam.Pointer))
	default:
		var created Result
		fam, created = g.FamilyAsSpouse(husband)
		res.Merge(created)
		res.Merge(wife.AddFamilyAsSpouse(fam.Pointer))
	}
	res.Merge(fam.SetHusband(husband.Pointer))
	res.Merge(fam.SetWife(wife.Pointer))
	return fam, res
}

// AddRelationship folds a parent→child link into the graph: the parent's
// spouse family gains the child, and the child records the family as a
// family-as-child. Both additions are idempotent.
func (g *Genealogy) AddRelationship(parent, child *Person) Result {
	fam, res := g.FamilyAsSpouse(parent)
	res.Merge(fam.AddChild(child.Pointer))
	child.AddFamilyAsChild(fam.Pointer)
	return res
}
