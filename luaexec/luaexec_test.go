package luaexec

import (
	"strings"
	"testing"

	"emperror.dev/errors"
)

func TestRunCapturesPrint(t *testing.T) {
	res, err := New().Run(`print("hello", 42)`, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Output != "hello\t42\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
	if res.Value != "" {
		t.Fatalf("expected no return value, got %q", res.Value)
	}
}

func TestRunReturnValue(t *testing.T) {
	res, err := New().Run(`return 1 + 2`, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Value != "3" {
		t.Fatalf("expected value 3, got %q", res.Value)
	}
	if res.Output != "" {
		t.Fatalf("expected no output, got %q", res.Output)
	}
}

func TestRunOutputAndReturn(t *testing.T) {
	res, err := New().Run(`print("calculating") return 6 * 7`, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Output != "calculating\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
	if res.Value != "42" {
		t.Fatalf("expected value 42, got %q", res.Value)
	}
}

func TestRunMultipleReturns(t *testing.T) {
	res, err := New().Run(`return 1, "two", true`, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Value != "1\ttwo\ttrue" {
		t.Fatalf("unexpected value: %q", res.Value)
	}
}

func TestRunNilReturn(t *testing.T) {
	res, err := New().Run(`return nil`, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Value != "" {
		t.Fatalf("expected empty value for nil return, got %q", res.Value)
	}
}

func TestRunEnvInjection(t *testing.T) {
	env := Env{
		"channel": map[string]interface{}{
			"id":   "123456789",
			"name": "general",
		},
		"count": 3,
	}

	res, err := New().Run(`print(channel.id, channel.name, count)`, env)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Output != "123456789\tgeneral\t3\n" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestRunCompileError(t *testing.T) {
	_, err := New().Run(`this is not lua`, nil)

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}

func TestRunRuntimeError(t *testing.T) {
	_, err := New().Run(`print("before") error("boom")`, nil)

	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if re.Output != "before\n" {
		t.Fatalf("expected captured output before failure, got %q", re.Output)
	}
	if !strings.Contains(re.Error(), "boom") {
		t.Fatalf("expected error message to mention boom, got %q", re.Error())
	}
}

func TestRunsAreIsolated(t *testing.T) {
	r := New()

	if _, err := r.Run(`leaked = 5`, nil); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}

	res, err := r.Run(`return leaked`, nil)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if res.Value != "" {
		t.Fatalf("expected globals to not leak between runs, got %q", res.Value)
	}
}
