package admin

import (
	"testing"

	"emperror.dev/errors"

	"github.com/steward-bot/steward/extensions"
)

func TestFailMessageTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		conv string
		want string
	}{
		{
			"capability",
			errNoCustomPrefixes,
			"",
			"This deployment cannot use custom prefixes",
		},
		{
			"conversion",
			&ConversionError{Argument: "!!!!!", Reason: "not a valid prefix"},
			"`%v` is not a valid prefix",
			"`!!!!!` is not a valid prefix",
		},
		{
			"list mode conversion",
			&ConversionError{Argument: "everything", Reason: "not a valid list mode"},
			"Invalid list mode `%v`",
			"Invalid list mode `everything`",
		},
		{
			"not found",
			&extensions.NotFoundError{Name: "commands/mod"},
			"",
			"Cog `commands/mod` was not found",
		},
		{
			"already loaded",
			&extensions.AlreadyLoadedError{Name: "commands/admin"},
			"",
			"Cog `commands/admin` is already loaded",
		},
		{
			"not loaded",
			&extensions.NotLoadedError{Name: "commands/mod"},
			"",
			"Cog `commands/mod` is already unloaded",
		},
		{
			"no entrypoint",
			&extensions.NoEntrypointError{Name: "commands/mod"},
			"",
			"Cog `commands/mod` is missing its entrypoint",
		},
		{
			"setup failed",
			&extensions.SetupError{Name: "commands/mod", Err: errors.New("no database")},
			"",
			"Cog `commands/mod` initialization failed: `no database`",
		},
	}

	for _, c := range cases {
		if got := failMessage(c.err, c.conv); got != c.want {
			t.Errorf("%v: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestFailMessageUnrecognized(t *testing.T) {
	// no fall-through: anything unrecognized is left for the reporter
	if got := failMessage(errors.New("connection reset"), ""); got != "" {
		t.Errorf("expected no message, got %q", got)
	}

	// conversion failures only render for commands that pass a message
	if got := failMessage(&ConversionError{Argument: "x", Reason: "nope"}, ""); got != "" {
		t.Errorf("expected no message, got %q", got)
	}
}

func TestFailMessageWrapped(t *testing.T) {
	err := errors.Wrap(&extensions.NotFoundError{Name: "commands/mod"}, "loading extension")
	if got := failMessage(err, ""); got != "Cog `commands/mod` was not found" {
		t.Errorf("expected the wrapped failure to be recognized, got %q", got)
	}
}
