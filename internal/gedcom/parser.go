package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the line-record format into a document. Each line is
// "LEVEL [@XREF@] TAG [value]". A child may only be nested one level deeper
// than its parent; blank lines are ignored. Record content is not validated
// beyond structure.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	stack := []*Element{doc.Root}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		el, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		parent := stack[len(stack)-1]
		if el.Level > parent.Level+1 {
			return nil, fmt.Errorf("line %d: level %d skips levels under level %d", lineNo, el.Level, parent.Level)
		}
		for el.Level <= parent.Level {
			stack = stack[:len(stack)-1]
			parent = stack[len(stack)-1]
		}
		parent.Append(el)
		stack = append(stack, el)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return doc, nil
}

func parseLine(line string) (*Element, error) {
	rest := strings.TrimLeft(line, " \t")
	levelText, rest, _ := cutAny(rest)
	level, err := strconv.Atoi(levelText)
	if err != nil || level < 0 {
		return nil, fmt.Errorf("invalid level %q", levelText)
	}
	token, rest, _ := cutAny(rest)
	if token == "" {
		return nil, fmt.Errorf("missing tag")
	}
	pointer := ""
	if strings.HasPrefix(token, "@") && strings.HasSuffix(token, "@") && len(token) > 2 {
		pointer = token
		token, rest, _ = cutAny(rest)
		if token == "" {
			return nil, fmt.Errorf("missing tag after pointer %s", pointer)
		}
	}
	return New(level, pointer, strings.ToUpper(token), rest), nil
}

// cutAny splits off the first whitespace-delimited token, returning the
// remainder with a single separator consumed so values keep interior spacing.
func cutAny(s string) (token, rest string, found bool) {
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], strings.TrimLeft(s[idx+1:], " \t"), true
}
