package gedcom

import (
	"bufio"
	"fmt"
	"io"
)

// Write serializes the document back to the line format, depth first in
// element order.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range d.Records() {
		if err := writeElement(bw, rec); err != nil {
			return fmt.Errorf("write records: %w", err)
		}
	}
	return bw.Flush()
}

func writeElement(w *bufio.Writer, e *Element) error {
	if _, err := fmt.Fprintf(w, "%d", e.Level); err != nil {
		return err
	}
	if e.Pointer != "" {
		if _, err := fmt.Fprintf(w, " %s", e.Pointer); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, " %s", e.Tag); err != nil {
		return err
	}
	if e.Value != "" {
		if _, err := fmt.Fprintf(w, " %s", e.Value); err != nil {
			return err
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := writeElement(w, child); err != nil {
			return err
		}
	}
	return nil
}
