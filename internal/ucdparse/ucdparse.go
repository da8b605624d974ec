/*
Package ucdparse provides a parser for Unicode Character Database files.

The format of UCD data files is defined in
http://www.unicode.org/reports/tr44/. Every data line starts with a
code-point or a range of code-points, followed by semicolon-separated
fields and an optional comment:

	0028; 0029 # LEFT PARENTHESIS
	000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>

Empty lines and comment lines are skipped.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token holds the content of a data line.
type Token struct {
	LineNo   int      // line number, starting at 1
	From, To rune     // code-point range of the item, From == To for single items
	Fields   []string // fields following the code-point(s), trimmed
	Comment  string   // rest-of-line comment
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo, token.From, token.To, token.Fields)
}

// Field gets field #i (1…n) of a data item, or "" if there is no such field.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range of a data item.
func (token *Token) Range() (from, to rune) {
	return token.From, token.To
}

// Parse iterates over the data lines of a UCD file and calls f for each of
// them. Parsing stops at the first malformed line.
func Parse(r io.Reader, f func(token *Token)) error {
	if r == nil {
		return errors.New("ucdparse: no input present")
	}
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		token, err := parseLine(lines.Text(), lineno)
		if err != nil {
			return err
		}
		if token != nil {
			f(token)
		}
	}
	return lines.Err()
}

// A line is scanned by a chain of step functions, each consuming a part of
// the line and returning the next step, or nil to accept.
type scanStep func(line string, token *Token) (string, scanStep, error)

// parseLine returns nil for lines without data.
func parseLine(line string, lineno int) (*Token, error) {
	line, comment, _ := strings.Cut(line, "#")
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	token := &Token{LineNo: lineno, Comment: strings.TrimSpace(comment)}
	var err error
	for step := scanRange; step != nil; {
		if line, step, err = step(line, token); err != nil {
			return nil, fmt.Errorf("ucdparse: line %d: %w", lineno, err)
		}
	}
	return token, nil
}

func scanRange(line string, token *Token) (string, scanStep, error) {
	head, rest, ok := strings.Cut(line, ";")
	if !ok {
		return line, nil, errors.New("missing field separator")
	}
	from, to, isRange := strings.Cut(strings.TrimSpace(head), "..")
	var err error
	if token.From, err = hexRune(from); err != nil {
		return line, nil, err
	}
	token.To = token.From
	if isRange {
		if token.To, err = hexRune(to); err != nil {
			return line, nil, err
		}
	}
	return rest, scanFields, nil
}

func scanFields(line string, token *Token) (string, scanStep, error) {
	token.Fields = strings.Split(line, ";")
	for i, f := range token.Fields {
		token.Fields[i] = strings.TrimSpace(f)
	}
	return "", nil, nil
}

func hexRune(s string) (rune, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
