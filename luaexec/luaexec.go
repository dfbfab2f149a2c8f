// Package luaexec runs owner-supplied code in an embedded Lua interpreter.
//
// This is the bot's remote code execution surface and it is deliberately kept
// in its own package: anything that wants to run code has to hold a Runner,
// and the only place one is handed out is bot startup. There is no sandboxing
// here. The full standard libraries are open and scripts can block the
// calling goroutine forever; the trust boundary is the owner check in front
// of the command, not anything in this package.
package luaexec

import (
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
)

// Runner executes a chunk of code with the given environment injected.
type Runner interface {
	Run(code string, env Env) (Result, error)
}

// Env holds values exposed to the script as globals, keyed by global name.
// Supported value types are nil, bool, int, int64, float64, string, []string,
// []interface{} and map[string]interface{}; anything else is stringified.
// Snowflake IDs should be passed as strings: Lua numbers are floats and lose
// precision past 2^53.
type Env map[string]interface{}

// Result is the outcome of a successful run. Output is everything the script
// printed. Value is the rendered chunk return value, tab-joined when the
// chunk returns more than one, empty when it returns nothing or a single nil.
type Result struct {
	Output string
	Value  string
}

// CompileError reports that a chunk failed to parse. Nothing was executed.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// RuntimeError reports that a chunk failed while running. Output holds
// anything the script printed before it failed.
type RuntimeError struct {
	Err    error
	Output string
}

func (e *RuntimeError) Error() string {
	return e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Interpreter is the Lua implementation of Runner. Each Run gets a fresh
// interpreter state, so scripts can't leak globals into each other.
type Interpreter struct{}

var _ Runner = (*Interpreter)(nil)

func New() *Interpreter {
	return &Interpreter{}
}

func (*Interpreter) Run(code string, env Env) (Result, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	var out strings.Builder
	state.PushGoFunction(capturePrint(&out))
	state.SetGlobal("print")

	for name, value := range env {
		pushValue(state, value)
		state.SetGlobal(name)
	}

	if err := lua.LoadString(state, code); err != nil {
		return Result{}, &CompileError{Err: err}
	}

	if err := state.ProtectedCall(0, lua.MultipleReturns, 0); err != nil {
		return Result{Output: out.String()}, &RuntimeError{Err: err, Output: out.String()}
	}

	// the chunk was the only thing on the stack, so whatever is left on it
	// now is the chunk's return values
	var values []string
	for i := 1; i <= state.Top(); i++ {
		values = append(values, displayString(state, i))
	}
	if len(values) == 1 && state.TypeOf(1) == lua.TypeNil {
		values = nil
	}

	return Result{Output: out.String(), Value: strings.Join(values, "\t")}, nil
}

// capturePrint returns a print replacement that renders its arguments the way
// the stock print does, into a builder instead of stdout.
func capturePrint(out *strings.Builder) lua.Function {
	return func(l *lua.State) int {
		n := l.Top()
		for i := 1; i <= n; i++ {
			if i > 1 {
				out.WriteByte('\t')
			}
			out.WriteString(displayString(l, i))
		}
		out.WriteByte('\n')
		return 0
	}
}

// displayString renders the value at index through the script's own tostring,
// so __tostring metamethods are respected.
func displayString(l *lua.State, index int) string {
	l.Global("tostring")
	l.PushValue(index)
	l.Call(1, 1)

	s, _ := l.ToString(-1)
	l.Pop(1)
	return s
}

func pushValue(state *lua.State, value interface{}) {
	switch value := value.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(value)
	case int:
		state.PushInteger(value)
	case int64:
		state.PushInteger(int(value))
	case float64:
		state.PushNumber(value)
	case string:
		state.PushString(value)
	case []string:
		state.NewTable()
		for i, v := range value {
			state.PushString(v)
			state.RawSetInt(-2, i+1)
		}
	case []interface{}:
		state.NewTable()
		for i, v := range value {
			pushValue(state, v)
			state.RawSetInt(-2, i+1)
		}
	case map[string]interface{}:
		state.NewTable()
		for k, v := range value {
			pushValue(state, v)
			state.SetField(-2, k)
		}
	default:
		state.PushString(fmt.Sprint(value))
	}
}
