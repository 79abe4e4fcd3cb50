package domain

// latestMarriages computes, for every person appearing as a spouse in a fully
// populated family, the family judged most recent. A family with a parseable
// marriage date replaces the stored choice when its date is strictly later or
// the stored date is unknown; an unknown date only wins when nothing is
// stored yet. Families are visited in creation order, so ties resolve to the
// earliest-created family deterministically.
func (g *Genealogy) latestMarriages() map[string]*Family {
	latest := make(map[string]*Family)
	for _, fam := range g.Families() {
		if fam.Husband == "" || fam.Wife == "" {
			continue
		}
		for _, spouse := range []string{fam.Husband, fam.Wife} {
			current, ok := latest[spouse]
			if !ok {
				latest[spouse] = fam
				continue
			}
			date, known := ParseDate(fam.MarriageDate)
			if !known {
				continue
			}
			currentDate, currentKnown := ParseDate(current.MarriageDate)
			if !currentKnown || date.After(currentDate) {
				latest[spouse] = fam
			}
		}
	}
	return latest
}

// SelectMarriages returns, in creation order, the families that are the
// current marriage for both of their spouses. A family is excluded when
// either spouse's latest marriage points elsewhere, which guarantees at most
// one exported marriage per person at the cost of dropping earlier marital
// history.
func (g *Genealogy) SelectMarriages() []*Family {
	latest := g.latestMarriages()
	var selected []*Family
	for _, fam := range g.Families() {
		if fam.Husband == "" || fam.Wife == "" {
			continue
		}
		if latest[fam.Husband] == fam && latest[fam.Wife] == fam {
			selected = append(selected, fam)
		}
	}
	return selected
}
