package convert

import (
	"errors"
	"strings"
	"testing"

	"genealogycore/internal/flatxml"
	"genealogycore/internal/gedcom"
	"genealogycore/pkg/domain"
)

const flatFamily = `<?xml version="1.0"?>
<genealogy>
  <item pointer="@I1@" name="Theodor Mustermann" first_name="Theodor" last_name="Mustermann" gender="M" date_of_birth="01 JAN 1950" place_of_birth="Berlin"/>
  <item pointer="@I2@" name="Anneliese Mustereisen" gender="F" date_of_death="31 DEC 2010"/>
  <item pointer="@I3@" name="Hans Mustermann" gender="M"/>
  <relationship from_pointer="@I1@" to_pointer="@I3@"/>
  <relationship from_pointer="@I2@" to_pointer="@I3@"/>
  <marriage left_pointer="@I1@" right_pointer="@I2@" date="01 JUN 1975" place="Hamburg"/>
</genealogy>
`

func TestExportFamily(t *testing.T) {
	doc, summary, err := Export(strings.NewReader(flatFamily))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if summary.Persons != 3 || summary.Relationships != 2 || summary.Marriages != 1 || summary.Families != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	records := doc.Records()
	if records[0].Kind() != gedcom.KindHeader || records[len(records)-1].Kind() != gedcom.KindTrailer {
		t.Fatalf("expected HEAD/TRLR framing")
	}

	father := doc.Record("@I1@")
	if father == nil {
		t.Fatalf("missing @I1@")
	}
	name := father.Child(gedcom.KindName)
	if name == nil || name.Value != "Theodor Mustermann" {
		t.Fatalf("name = %+v", name)
	}
	if name.ChildValue(gedcom.KindSurname) != "Mustermann" || name.ChildValue(gedcom.KindGivenName) != "Theodor" {
		t.Fatalf("name sub-records = %+v", name.Children)
	}
	if date, place := father.BirthData(); date != "01 JAN 1950" || place != "Berlin" {
		t.Fatalf("birth = (%q, %q)", date, place)
	}
	if father.Child(gedcom.KindDeath) != nil {
		t.Fatalf("empty death block must be omitted")
	}

	mother := doc.Record("@I2@")
	if mother.Child(gedcom.KindBirth) != nil {
		t.Fatalf("empty birth block must be omitted")
	}
	if date, _ := mother.DeathData(); date != "31 DEC 2010" {
		t.Fatalf("death date = %q", date)
	}

	var families []*gedcom.Element
	for _, rec := range records {
		if rec.Kind() == gedcom.KindFamily {
			families = append(families, rec)
		}
	}
	if len(families) != 1 {
		t.Fatalf("family records = %d, want 1", len(families))
	}
	fam := families[0]
	if fam.ChildValue(gedcom.KindHusband) != "@I1@" || fam.ChildValue(gedcom.KindWife) != "@I2@" {
		t.Fatalf("family slots = (%s, %s)", fam.ChildValue(gedcom.KindHusband), fam.ChildValue(gedcom.KindWife))
	}
	if date, place := fam.MarriageData(); date != "01 JUN 1975" || place != "Hamburg" {
		t.Fatalf("marriage = (%q, %q)", date, place)
	}
	children := fam.ChildrenOf(gedcom.KindChild)
	if len(children) != 1 || children[0].Value != "@I3@" {
		t.Fatalf("children = %+v", children)
	}

	child := doc.Record("@I3@")
	if got := child.ChildrenOf(gedcom.KindFamilyChild); len(got) != 1 || got[0].Value != fam.Pointer {
		t.Fatalf("child FAMC = %+v, want %s", got, fam.Pointer)
	}
	if got := father.ChildrenOf(gedcom.KindFamilySpouse); len(got) != 1 || got[0].Value != fam.Pointer {
		t.Fatalf("father FAMS = %+v, want %s", got, fam.Pointer)
	}
}

func TestExportDefaultsMissingPointers(t *testing.T) {
	input := `<genealogy>
  <item id="a" name="A" gender="M"/>
  <item id="b" name="B"/>
  <relationship from="a" to="b"/>
</genealogy>`
	doc, _, err := Export(strings.NewReader(input))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.Record("@1@") == nil || doc.Record("@2@") == nil {
		t.Fatalf("expected positional pointers @1@ and @2@")
	}
	fam := doc.Record("@1@").ChildrenOf(gedcom.KindFamilySpouse)
	if len(fam) != 1 {
		t.Fatalf("parent FAMS = %+v", fam)
	}
}

func TestExportIDAddressedMarriage(t *testing.T) {
	input := `<genealogy>
  <item id="left" name="H" gender="M"/>
  <item id="right" name="W" gender="F"/>
  <marriage person_left="left" person_right="right" date="01 JUN 1975"/>
</genealogy>`
	doc, summary, err := Export(strings.NewReader(input))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if summary.Marriages != 1 {
		t.Fatalf("marriages = %d, want 1", summary.Marriages)
	}
	var fam *gedcom.Element
	for _, rec := range doc.Records() {
		if rec.Kind() == gedcom.KindFamily {
			fam = rec
		}
	}
	if fam == nil || fam.ChildValue(gedcom.KindHusband) != "@1@" || fam.ChildValue(gedcom.KindWife) != "@2@" {
		t.Fatalf("family = %+v", fam)
	}
}

func TestExportMissingReferenceAborts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		id    string
	}{
		{
			name:  "relationship",
			input: `<genealogy><item pointer="@1@" name="A"/><relationship from_pointer="@1@" to_pointer="@9@"/></genealogy>`,
			id:    "@9@",
		},
		{
			name:  "marriage",
			input: `<genealogy><item pointer="@1@" name="A" gender="M"/><marriage left_pointer="@1@" right_pointer="@8@"/></genealogy>`,
			id:    "@8@",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Export(strings.NewReader(tc.input))
			var missing domain.ErrMissingReference
			if !errors.As(err, &missing) {
				t.Fatalf("err = %v, want ErrMissingReference", err)
			}
			if missing.ID != tc.id {
				t.Fatalf("missing id = %s, want %s", missing.ID, tc.id)
			}
		})
	}
}

func TestRoundTripRelationships(t *testing.T) {
	// Persons plus parent→child relationships, no marriages: exporting
	// then importing again must preserve every pair exactly once, in
	// either item ordering.
	orderings := [][]flatxml.Item{
		{
			{Pointer: "@1@", Name: "A", Gender: "M"},
			{Pointer: "@2@", Name: "B", Gender: "F"},
			{Pointer: "@3@", Name: "C"},
		},
		{
			{Pointer: "@3@", Name: "C"},
			{Pointer: "@2@", Name: "B", Gender: "F"},
			{Pointer: "@1@", Name: "A", Gender: "M"},
		},
	}
	rels := []flatxml.Relationship{
		{FromPointer: "@1@", ToPointer: "@3@"},
		{FromPointer: "@2@", ToPointer: "@3@"},
	}

	for i, items := range orderings {
		in := &flatxml.Document{Items: items, Relationships: rels}
		var flat strings.Builder
		if err := flatxml.Write(&flat, in); err != nil {
			t.Fatalf("ordering %d: write flat: %v", i, err)
		}
		ged, _, err := Export(strings.NewReader(flat.String()))
		if err != nil {
			t.Fatalf("ordering %d: export: %v", i, err)
		}
		var lines strings.Builder
		if err := ged.Write(&lines); err != nil {
			t.Fatalf("ordering %d: write records: %v", i, err)
		}
		back, _, err := Import(strings.NewReader(lines.String()))
		if err != nil {
			t.Fatalf("ordering %d: import: %v", i, err)
		}

		got := make(map[[2]string]int)
		for _, rel := range back.Relationships {
			got[[2]string{rel.FromPointer, rel.ToPointer}]++
		}
		if len(got) != len(rels) {
			t.Fatalf("ordering %d: relationships = %+v, want %d pairs", i, back.Relationships, len(rels))
		}
		for _, rel := range rels {
			if got[[2]string{rel.FromPointer, rel.ToPointer}] != 1 {
				t.Fatalf("ordering %d: pair %+v not preserved exactly once: %v", i, rel, got)
			}
		}
		if len(back.Marriages) != 0 {
			t.Fatalf("ordering %d: no marriages expected, got %+v", i, back.Marriages)
		}
	}
}

func TestRoundTripMarriage(t *testing.T) {
	ged, _, err := Export(strings.NewReader(flatFamily))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var lines strings.Builder
	if err := ged.Write(&lines); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, _, err := Import(strings.NewReader(lines.String()))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(back.Marriages) != 1 {
		t.Fatalf("marriages = %+v, want one", back.Marriages)
	}
	m := back.Marriages[0]
	if m.LeftPointer != "@I1@" || m.RightPointer != "@I2@" || m.Date != "01 JUN 1975" || m.Place != "Hamburg" {
		t.Fatalf("marriage = %+v", m)
	}
}
