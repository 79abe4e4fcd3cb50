package gedcom

import (
	"strings"
	"testing"
)

const sampleRecords = `0 HEAD
0 @I1@ INDI
1 NAME Theodor /Mustermann/
2 GIVN Theodor
2 SURN Mustermann
1 SEX M
1 BIRT
2 DATE 01 JAN 1950
2 PLAC Berlin
1 FAMS @F1@
0 @I2@ INDI
1 NAME Anneliese /Mustereisen/
1 SEX F
1 DEAT
2 DATE 31 DEC 2010
1 FAMS @F1@
0 @I3@ INDI
1 NAME Hans /Mustermann/
1 SEX M
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 01 JUN 1975
2 PLAC Hamburg
1 CHIL @I3@
0 TRLR
`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sampleRecords))
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return doc
}

func TestParseTreeShape(t *testing.T) {
	doc := parseSample(t)
	records := doc.Records()
	if len(records) != 6 {
		t.Fatalf("records = %d, want 6", len(records))
	}
	if records[0].Kind() != KindHeader || records[5].Kind() != KindTrailer {
		t.Fatalf("expected HEAD first and TRLR last, got %s and %s", records[0].Tag, records[5].Tag)
	}
	indi := doc.Record("@I1@")
	if indi == nil || indi.Kind() != KindIndividual {
		t.Fatalf("missing @I1@ individual")
	}
	name := indi.Child(KindName)
	if name == nil || len(name.Children) != 2 {
		t.Fatalf("NAME sub-records not nested, got %+v", name)
	}
}

func TestIndividualQueries(t *testing.T) {
	doc := parseSample(t)

	indi := doc.Record("@I1@")
	given, family := indi.Name()
	if given != "Theodor" || family != "Mustermann" {
		t.Fatalf("name = (%q, %q), want (Theodor, Mustermann)", given, family)
	}
	if indi.Sex() != "M" {
		t.Fatalf("sex = %q, want M", indi.Sex())
	}
	date, place := indi.BirthData()
	if date != "01 JAN 1950" || place != "Berlin" {
		t.Fatalf("birth = (%q, %q)", date, place)
	}

	wife := doc.Record("@I2@")
	date, place = wife.DeathData()
	if date != "31 DEC 2010" || place != "" {
		t.Fatalf("death = (%q, %q)", date, place)
	}
	if date, _ := wife.BirthData(); date != "" {
		t.Fatalf("missing birth block should yield empty date, got %q", date)
	}
}

func TestNameWithoutSubRecords(t *testing.T) {
	doc := parseSample(t)
	given, family := doc.Record("@I2@").Name()
	if given != "Anneliese" || family != "Mustereisen" {
		t.Fatalf("name = (%q, %q), want (Anneliese, Mustereisen)", given, family)
	}
}

func TestFamilyQueries(t *testing.T) {
	doc := parseSample(t)

	husband := doc.Record("@I1@")
	families := doc.FamiliesAsSpouse(husband)
	if len(families) != 1 || families[0].Pointer != "@F1@" {
		t.Fatalf("families as spouse = %v, want [@F1@]", families)
	}
	date, place := families[0].MarriageData()
	if date != "01 JUN 1975" || place != "Hamburg" {
		t.Fatalf("marriage = (%q, %q)", date, place)
	}

	child := doc.Record("@I3@")
	parents := doc.Parents(child)
	if len(parents) != 2 {
		t.Fatalf("parents = %d, want 2", len(parents))
	}
	if parents[0].Pointer != "@I1@" || parents[1].Pointer != "@I2@" {
		t.Fatalf("parents = [%s %s], want [@I1@ @I2@]", parents[0].Pointer, parents[1].Pointer)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "level skip", input: "0 HEAD\n2 DATE 01 JAN 2000\n"},
		{name: "bad level", input: "x HEAD\n"},
		{name: "pointer without tag", input: "0 @I1@\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.input)); err == nil {
				t.Fatalf("expected parse error for %q", tc.input)
			}
		})
	}
}

func TestParseIgnoresBlankLinesAndBOM(t *testing.T) {
	input := "\ufeff0 HEAD\n\n0 TRLR\n"
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Records()) != 2 {
		t.Fatalf("records = %d, want 2", len(doc.Records()))
	}
}

func TestWriteRoundTrip(t *testing.T) {
	doc := parseSample(t)
	var buf strings.Builder
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != sampleRecords {
		t.Fatalf("round trip mismatch:\n got:\n%s\nwant:\n%s", buf.String(), sampleRecords)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf("indi") != KindIndividual {
		t.Fatalf("tag matching should be case insensitive")
	}
	if KindOf("NOTE") != KindOther {
		t.Fatalf("unknown tags map to KindOther")
	}
}
