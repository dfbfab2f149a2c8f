package admin

import (
	"testing"

	"emperror.dev/errors"
)

func TestPrefixArg(t *testing.T) {
	// the check runs against the given token itself: any 1-4 character
	// token with no whitespace passes through unchanged
	valid := []string{"!", "?", ";;", "p!", "four", "!!!!", "ぷ", "🎶"}
	for _, in := range valid {
		out, err := prefixArg(in)
		if err != nil {
			t.Errorf("prefixArg(%q) returned error: %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("prefixArg(%q) = %q, expected the token unchanged", in, out)
		}
	}

	invalid := []string{"", "aaaaa", "a b", " ", "\t", "ab\nc", "a    "}
	for _, in := range invalid {
		_, err := prefixArg(in)
		if err == nil {
			t.Errorf("prefixArg(%q) did not return an error", in)
			continue
		}

		var conv *ConversionError
		if !errors.As(err, &conv) {
			t.Errorf("prefixArg(%q) returned %T, expected *ConversionError", in, err)
		} else if conv.Argument != in {
			t.Errorf("expected argument %q, got %q", in, conv.Argument)
		}
	}
}

// A raw ID argument resolves to the channel it names; the failure cases are
// an ID no channel matches, or a token that isn't an ID at all. Only the
// parse step is covered here, the lookup needs a gateway connection.
func TestChannelIDArg(t *testing.T) {
	id, err := channelIDArg("497440210177363921")
	if err != nil {
		t.Fatalf("channelIDArg returned error: %v", err)
	}
	if id.String() != "497440210177363921" {
		t.Errorf("expected 497440210177363921, got %v", id)
	}

	for _, in := range []string{"", "abc", "12a4", "12.5", "#general"} {
		_, err := channelIDArg(in)
		var conv *ConversionError
		if !errors.As(err, &conv) {
			t.Errorf("channelIDArg(%q) = %v, expected a *ConversionError", in, err)
		}
	}
}
