// Package gedcom implements the hierarchical line-record format used at the
// conversion boundary: a tree of level-numbered elements with optional cross
// reference pointers, plus the derived queries the converters need.
package gedcom

import "strings"

// Kind is the closed set of element kinds the converters dispatch on. Tags
// outside the set map to KindOther and pass through untouched.
type Kind string

// Element kinds recognised by the converters.
const (
	KindHeader       Kind = "header"
	KindTrailer      Kind = "trailer"
	KindIndividual   Kind = "individual"
	KindFamily       Kind = "family"
	KindName         Kind = "name"
	KindSurname      Kind = "surname"
	KindGivenName    Kind = "given_name"
	KindSex          Kind = "sex"
	KindBirth        Kind = "birth"
	KindDeath        Kind = "death"
	KindMarriage     Kind = "marriage"
	KindHusband      Kind = "husband"
	KindWife         Kind = "wife"
	KindChild        Kind = "child"
	KindFamilySpouse Kind = "family_spouse"
	KindFamilyChild  Kind = "family_child"
	KindDate         Kind = "date"
	KindPlace        Kind = "place"
	KindOther        Kind = "other"
)

// Record tags of the line format.
const (
	TagHeader       = "HEAD"
	TagTrailer      = "TRLR"
	TagIndividual   = "INDI"
	TagFamily       = "FAM"
	TagName         = "NAME"
	TagSurname      = "SURN"
	TagGivenName    = "GIVN"
	TagSex          = "SEX"
	TagBirth        = "BIRT"
	TagDeath        = "DEAT"
	TagMarriage     = "MARR"
	TagHusband      = "HUSB"
	TagWife         = "WIFE"
	TagChild        = "CHIL"
	TagFamilySpouse = "FAMS"
	TagFamilyChild  = "FAMC"
	TagDate         = "DATE"
	TagPlace        = "PLAC"
)

var kindsByTag = map[string]Kind{
	TagHeader:       KindHeader,
	TagTrailer:      KindTrailer,
	TagIndividual:   KindIndividual,
	TagFamily:       KindFamily,
	TagName:         KindName,
	TagSurname:      KindSurname,
	TagGivenName:    KindGivenName,
	TagSex:          KindSex,
	TagBirth:        KindBirth,
	TagDeath:        KindDeath,
	TagMarriage:     KindMarriage,
	TagHusband:      KindHusband,
	TagWife:         KindWife,
	TagChild:        KindChild,
	TagFamilySpouse: KindFamilySpouse,
	TagFamilyChild:  KindFamilyChild,
	TagDate:         KindDate,
	TagPlace:        KindPlace,
}

// KindOf maps a record tag to its element kind.
func KindOf(tag string) Kind {
	if kind, ok := kindsByTag[strings.ToUpper(tag)]; ok {
		return kind
	}
	return KindOther
}

// Element is one node of the record tree.
type Element struct {
	Level    int
	Pointer  string
	Tag      string
	Value    string
	Children []*Element
}

// New constructs a detached element.
func New(level int, pointer, tag, value string) *Element {
	return &Element{Level: level, Pointer: pointer, Tag: tag, Value: value}
}

// Append adds a child element.
func (e *Element) Append(child *Element) {
	e.Children = append(e.Children, child)
}

// Kind returns the element's kind.
func (e *Element) Kind() Kind {
	return KindOf(e.Tag)
}

// Child returns the first direct child of the given kind, or nil.
func (e *Element) Child(kind Kind) *Element {
	for _, child := range e.Children {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// ChildValue returns the value of the first direct child of the given kind,
// or the empty string.
func (e *Element) ChildValue(kind Kind) string {
	if child := e.Child(kind); child != nil {
		return child.Value
	}
	return ""
}

// ChildrenOf returns all direct children of the given kind in order.
func (e *Element) ChildrenOf(kind Kind) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if child.Kind() == kind {
			out = append(out, child)
		}
	}
	return out
}

// Name returns the given and family name parts of an individual element. The
// NAME value uses slash-delimited surnames ("Given /Family/"); SURN and GIVN
// sub-records take precedence when present.
func (e *Element) Name() (given, family string) {
	name := e.Child(KindName)
	if name == nil {
		return "", ""
	}
	value := name.Value
	if idx := strings.IndexByte(value, '/'); idx >= 0 {
		given = strings.TrimSpace(value[:idx])
		rest := value[idx+1:]
		if end := strings.IndexByte(rest, '/'); end >= 0 {
			family = strings.TrimSpace(rest[:end])
		} else {
			family = strings.TrimSpace(rest)
		}
	} else {
		given = strings.TrimSpace(value)
	}
	if sub := name.ChildValue(KindGivenName); sub != "" {
		given = sub
	}
	if sub := name.ChildValue(KindSurname); sub != "" {
		family = sub
	}
	return given, family
}

// Sex returns the individual's sex code, empty when absent.
func (e *Element) Sex() string {
	return e.ChildValue(KindSex)
}

// BirthData returns the date and place recorded under the BIRT block.
func (e *Element) BirthData() (date, place string) {
	return e.eventData(KindBirth)
}

// DeathData returns the date and place recorded under the DEAT block.
func (e *Element) DeathData() (date, place string) {
	return e.eventData(KindDeath)
}

// MarriageData returns the date and place recorded under the MARR block.
func (e *Element) MarriageData() (date, place string) {
	return e.eventData(KindMarriage)
}

func (e *Element) eventData(kind Kind) (date, place string) {
	event := e.Child(kind)
	if event == nil {
		return "", ""
	}
	return event.ChildValue(KindDate), event.ChildValue(KindPlace)
}
