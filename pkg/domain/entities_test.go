package domain

import "testing"

func TestFamilyAddChildIdempotent(t *testing.T) {
	fam := &Family{Pointer: "@F1@"}
	if res := fam.AddChild("@5@"); len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if res := fam.AddChild("@5@"); len(res.Diagnostics) != 0 {
		t.Fatalf("duplicate add should be silent, got %v", res.Diagnostics)
	}
	if len(fam.Children) != 1 || fam.Children[0] != "@5@" {
		t.Fatalf("children = %v, want exactly one @5@", fam.Children)
	}
}

func TestFamilyAddChildRejectsEmptyPointer(t *testing.T) {
	fam := &Family{Pointer: "@F1@"}
	res := fam.AddChild("")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != DiagMalformedIdentifier {
		t.Fatalf("diagnostics = %v, want one malformed_identifier", res.Diagnostics)
	}
	if len(fam.Children) != 0 {
		t.Fatalf("children = %v, want none", fam.Children)
	}
}

func TestFamilyChildOrderPreserved(t *testing.T) {
	fam := &Family{Pointer: "@F1@"}
	for _, child := range []string{"@3@", "@1@", "@2@", "@1@"} {
		fam.AddChild(child)
	}
	want := []string{"@3@", "@1@", "@2@"}
	if len(fam.Children) != len(want) {
		t.Fatalf("children = %v, want %v", fam.Children, want)
	}
	for i, child := range want {
		if fam.Children[i] != child {
			t.Fatalf("children[%d] = %s, want %s", i, fam.Children[i], child)
		}
	}
}

func TestFamilySpouseSlotOverwriteReported(t *testing.T) {
	fam := &Family{Pointer: "@F1@"}
	if res := fam.SetHusband("@1@"); len(res.Diagnostics) != 0 {
		t.Fatalf("first assignment should be clean, got %v", res.Diagnostics)
	}
	res := fam.SetHusband("@2@")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != DiagSlotReplaced {
		t.Fatalf("diagnostics = %v, want one slot_replaced", res.Diagnostics)
	}
	if fam.Husband != "@2@" {
		t.Fatalf("husband = %s, want @2@ (overwrite proceeds)", fam.Husband)
	}
}

func TestFamilySpouseSlotReassignSameValueSilent(t *testing.T) {
	fam := &Family{Pointer: "@F1@"}
	fam.SetWife("@2@")
	if res := fam.SetWife("@2@"); len(res.Diagnostics) != 0 {
		t.Fatalf("re-assigning the same wife should be silent, got %v", res.Diagnostics)
	}
}

func TestFamilySpouseSlotRejectsEmptyPointer(t *testing.T) {
	fam := &Family{Pointer: "@F1@", Husband: "@1@"}
	res := fam.SetHusband("")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != DiagMalformedIdentifier {
		t.Fatalf("diagnostics = %v, want one malformed_identifier", res.Diagnostics)
	}
	if fam.Husband != "@1@" {
		t.Fatalf("husband = %s, want untouched @1@", fam.Husband)
	}
}

func TestPersonAddFamilyAsChildIdempotent(t *testing.T) {
	p := &Person{Pointer: "@3@"}
	p.AddFamilyAsChild("@F1@")
	p.AddFamilyAsChild("@F1@")
	p.AddFamilyAsChild("@F2@")
	if len(p.FamiliesAsChild) != 2 {
		t.Fatalf("families as child = %v, want two distinct entries", p.FamiliesAsChild)
	}
}

func TestPersonAddFamilyAsSpouse(t *testing.T) {
	p := &Person{Pointer: "@1@"}
	if res := p.AddFamilyAsSpouse("@F1@"); len(res.Diagnostics) != 0 {
		t.Fatalf("first candidate should be clean, got %v", res.Diagnostics)
	}
	if res := p.AddFamilyAsSpouse("@F1@"); len(res.Diagnostics) != 0 {
		t.Fatalf("re-adding the same family should be silent, got %v", res.Diagnostics)
	}
	res := p.AddFamilyAsSpouse("@F2@")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != DiagExtraSpouseFamily {
		t.Fatalf("diagnostics = %v, want one extra_spouse_family", res.Diagnostics)
	}
	if len(p.FamiliesAsSpouse) != 2 {
		t.Fatalf("candidates = %v, want two", p.FamiliesAsSpouse)
	}
}
