// Package extensions implements the bot's loadable extension registry.
//
// An extension is a named unit of functionality with a setup entrypoint that
// builds a cog: a bundle of commands and gateway listeners. The registry owns
// the mapping from names to extensions and cogs, so command handlers receive
// it by handle instead of reaching into package-level state.
package extensions

import (
	"reflect"

	"github.com/starshine-sys/bcr"
)

// Extension is a registered, loadable unit. Name is a module-path-like key
// such as "commands/admin". A nil Setup means the extension has no entrypoint
// and can never load.
type Extension struct {
	Name  string
	Setup func() (*Cog, error)
}

// Cog is the live result of loading an extension: a named bundle of commands
// and gateway event listeners.
type Cog struct {
	Name        string
	Description string

	Commands  []*Command
	Listeners []interface{}
}

// Command wraps a framework command with an explicit subcommand tree. The
// framework registers subcommands internally but doesn't let us walk them, and
// both "cog info" and the unload gate need to.
type Command struct {
	*bcr.Command

	Subcommands []*Command
}

// CommandNames returns the names of every command in the cog, subcommands
// included, as dotted paths ("cog.load").
func (c *Cog) CommandNames() []string {
	var names []string
	for _, cmd := range c.Commands {
		names = append(names, commandNames("", cmd)...)
	}
	return names
}

func commandNames(prefix string, cmd *Command) []string {
	name := cmd.Name
	if prefix != "" {
		name = prefix + "." + name
	}

	names := []string{name}
	for _, sub := range cmd.Subcommands {
		names = append(names, commandNames(name, sub)...)
	}
	return names
}

// ListenerNames returns a readable name for every listener in the cog, derived
// from the event type each one handles.
func (c *Cog) ListenerNames() []string {
	var names []string
	for _, l := range c.Listeners {
		names = append(names, listenerName(l))
	}
	return names
}

func listenerName(l interface{}) string {
	t := reflect.TypeOf(l)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() == 0 {
		return "unknown"
	}

	in := t.In(0)
	for in.Kind() == reflect.Ptr {
		in = in.Elem()
	}
	return in.Name()
}
