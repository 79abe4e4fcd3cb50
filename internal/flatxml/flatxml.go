// Package flatxml reads and writes the flat relational genealogy document:
// a genealogy root with item, relationship and marriage nodes carrying
// free-text attributes. Missing attributes decode to empty strings.
package flatxml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Item describes one person. Pointer carries the record identifier when the
// source had one; ID is the diagram-assigned node identifier some producers
// use instead.
type Item struct {
	Pointer      string `xml:"pointer,attr,omitempty"`
	ID           string `xml:"id,attr,omitempty"`
	Name         string `xml:"name,attr,omitempty"`
	FirstName    string `xml:"first_name,attr,omitempty"`
	LastName     string `xml:"last_name,attr,omitempty"`
	DateOfBirth  string `xml:"date_of_birth,attr,omitempty"`
	PlaceOfBirth string `xml:"place_of_birth,attr,omitempty"`
	DateOfDeath  string `xml:"date_of_death,attr,omitempty"`
	PlaceOfDeath string `xml:"place_of_death,attr,omitempty"`
	Gender       string `xml:"gender,attr,omitempty"`
}

// Relationship is a directional parent→child link between two persons.
type Relationship struct {
	FromPointer string `xml:"from_pointer,attr,omitempty"`
	ToPointer   string `xml:"to_pointer,attr,omitempty"`
	// From and To reference item IDs instead of pointers; producers emit
	// one addressing form or the other.
	From string `xml:"from,attr,omitempty"`
	To   string `xml:"to,attr,omitempty"`
}

// Marriage links two persons as spouses. Left is the husband side by
// convention of the source format.
type Marriage struct {
	LeftPointer  string `xml:"left_pointer,attr,omitempty"`
	RightPointer string `xml:"right_pointer,attr,omitempty"`
	// PersonLeft and PersonRight reference item IDs instead of pointers.
	PersonLeft  string `xml:"person_left,attr,omitempty"`
	PersonRight string `xml:"person_right,attr,omitempty"`
	Date        string `xml:"date,attr,omitempty"`
	Place       string `xml:"place,attr,omitempty"`
}

// Document is the genealogy root node.
type Document struct {
	XMLName       xml.Name       `xml:"genealogy"`
	Items         []Item         `xml:"item"`
	Relationships []Relationship `xml:"relationship"`
	Marriages     []Marriage     `xml:"marriage"`
}

// Read decodes a flat relational document.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode genealogy document: %w", err)
	}
	return &doc, nil
}

// Write encodes the document with indentation and an XML header.
func Write(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode genealogy document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush encoder: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
