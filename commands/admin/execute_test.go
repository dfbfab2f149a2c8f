package admin

import (
	"strings"
	"testing"
)

func TestCleanupCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "return 1", "return 1"},
		{"inline backticks", "`return 1`", "return 1"},
		{"fenced", "```\nreturn 1\n```", "return 1"},
		{"fenced with language", "```lua\nreturn 1\n```", "return 1"},
		{"fenced multiline", "```lua\nlocal x = 1\nreturn x\n```", "local x = 1\nreturn x"},
		{"fence without trailing newline", "```lua\nreturn 1```", "return 1"},
		{"surrounding whitespace", "\n`return 1`\n", "return 1"},
	}

	for _, c := range cases {
		if got := cleanupCode(c.in); got != c.want {
			t.Errorf("%v: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestCodeBlock(t *testing.T) {
	block, ok := codeBlock("return 1")
	if !ok {
		t.Error("expected a short body to fit in a message")
	}
	if block != "```lua\nreturn 1\n```" {
		t.Errorf("unexpected block: %q", block)
	}

	// the fence adds 11 characters, so a 1989 character body is the longest
	// that still fits in a 2000 character message
	if _, ok := codeBlock(strings.Repeat("x", 1989)); !ok {
		t.Error("expected a 2000 character block to fit")
	}
	if _, ok := codeBlock(strings.Repeat("x", 1990)); ok {
		t.Error("expected a 2001 character block to be sent as a file")
	}
}
