package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader(`# LineBreak.txt
000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>

0028; 0029 # LEFT PARENTHESIS
`)
	var tokens []*Token
	if err := Parse(input, func(token *Token) {
		tokens = append(tokens, token)
	}); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 data lines, have %d", len(tokens))
	}
	t.Logf("token = %v", tokens[0])
	if tokens[0].Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", tokens[0].Field(1))
	}
	from, to := tokens[0].Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if tokens[1].LineNo != 4 || tokens[1].From != '(' || tokens[1].Field(1) != "0029" {
		t.Errorf("unexpected token %v", tokens[1])
	}
	if tokens[1].Comment != "LEFT PARENTHESIS" || tokens[1].Field(2) != "" {
		t.Errorf("unexpected comment or fields of token %v", tokens[1])
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{"0028 0029", "XYZ; 0029", "0020..; WS"} {
		if err := Parse(strings.NewReader(line), func(*Token) {}); err == nil {
			t.Errorf("expected error for line %q", line)
		}
	}
	if err := Parse(nil, nil); err == nil {
		t.Errorf("expected error for missing input")
	}
}
