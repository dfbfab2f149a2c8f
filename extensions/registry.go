package extensions

import (
	"sort"
	"sync"

	"emperror.dev/errors"
	"github.com/starshine-sys/bcr"
)

// CommandAdder is the part of the command router the registry needs.
type CommandAdder interface {
	AddCommand(*bcr.Command) *bcr.Command
}

// Registry tracks which extensions exist and which are loaded. All lookups by
// command handlers go through it.
type Registry struct {
	router CommandAdder

	// addHandler registers a gateway listener on every shard and returns a
	// function that removes it again.
	addHandler func(interface{}) func()

	mu         sync.RWMutex
	available  map[string]Extension
	loaded     map[string]*loadedExtension
	cogs       map[string]string
	registered map[string]bool
}

type loadedExtension struct {
	cog      *Cog
	removers []func()
}

func New(router CommandAdder, addHandler func(interface{}) func()) *Registry {
	return &Registry{
		router:     router,
		addHandler: addHandler,
		available:  make(map[string]Extension),
		loaded:     make(map[string]*loadedExtension),
		cogs:       make(map[string]string),
		registered: make(map[string]bool),
	}
}

// Register makes an extension available to load. It does not load it.
func (r *Registry) Register(ext Extension) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.available[ext.Name] = ext
}

// Load runs an extension's setup function, registers its commands on the
// router, and attaches its listeners. Failures leave the registry unchanged.
func (r *Registry) Load(name string) (*Cog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ext, ok := r.available[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if _, ok := r.loaded[name]; ok {
		return nil, &AlreadyLoadedError{Name: name}
	}
	if ext.Setup == nil {
		return nil, &NoEntrypointError{Name: name}
	}

	cog, err := ext.Setup()
	if err != nil {
		return nil, &SetupError{Name: name, Err: err}
	}
	if cog == nil {
		return nil, &SetupError{Name: name, Err: errors.New("setup returned no cog")}
	}

	le := &loadedExtension{cog: cog}
	for _, l := range cog.Listeners {
		le.removers = append(le.removers, r.addHandler(l))
	}

	r.loaded[name] = le
	r.cogs[cog.Name] = name

	// The router has no command removal, so each command is registered once,
	// on first load, behind a gate that goes dead while the extension is
	// unloaded. Reloads swap the live cog underneath the same gates.
	if !r.registered[name] {
		for _, c := range cog.Commands {
			r.addGated(name, nil, c, r.router.AddCommand)
		}
		r.registered[name] = true
	}

	return cog, nil
}

// Unload detaches an extension's listeners and drops its cog. Its commands
// stay registered on the router but their gates make them behave like unknown
// commands until the extension loads again.
func (r *Registry) Unload(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	le, ok := r.loaded[name]
	if !ok {
		return &NotLoadedError{Name: name}
	}

	for _, rm := range le.removers {
		rm()
	}

	delete(r.cogs, le.cog.Name)
	delete(r.loaded, name)
	return nil
}

// Reload unloads an extension and loads it again. An extension that was never
// loaded fails with NotLoadedError, same as Unload.
func (r *Registry) Reload(name string) (*Cog, error) {
	if err := r.Unload(name); err != nil {
		return nil, err
	}
	return r.Load(name)
}

// IsLoaded reports whether the named extension is currently loaded.
func (r *Registry) IsLoaded(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.loaded[name]
	return ok
}

// Cog returns a loaded cog by its cog name.
func (r *Registry) Cog(name string) (*Cog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext, ok := r.cogs[name]
	if !ok {
		return nil, false
	}
	return r.loaded[ext].cog, true
}

// Extension returns a loaded cog by its extension name.
func (r *Registry) Extension(name string) (*Cog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	le, ok := r.loaded[name]
	if !ok {
		return nil, false
	}
	return le.cog, true
}

// Cogs returns all loaded cogs, sorted by cog name.
func (r *Registry) Cogs() []*Cog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cogs := make([]*Cog, 0, len(r.loaded))
	for _, le := range r.loaded {
		cogs = append(cogs, le.cog)
	}

	sort.Slice(cogs, func(i, j int) bool { return cogs[i].Name < cogs[j].Name })
	return cogs
}

// Extensions returns the names of all loaded extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loaded))
	for name := range r.loaded {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// addGated registers a copy of the command tree rooted at node, with every
// handler replaced by a gate that resolves the live handler at call time.
func (r *Registry) addGated(ext string, path []string, node *Command, add func(*bcr.Command) *bcr.Command) {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = node.Name

	added := add(&bcr.Command{
		Name:        node.Name,
		Aliases:     node.Aliases,
		Summary:     node.Summary,
		Description: node.Description,
		Usage:       node.Usage,
		Args:        node.Args,
		Flags:       node.Flags,
		Permissions: node.Permissions,

		Command: r.gate(ext, p),
	})

	for _, sub := range node.Subcommands {
		r.addGated(ext, p, sub, func(c *bcr.Command) *bcr.Command {
			added.AddSubcommand(c)
			return c
		})
	}
}

func (r *Registry) gate(ext string, path []string) func(*bcr.Context) error {
	return func(ctx *bcr.Context) error {
		fn := r.liveHandler(ext, path)
		if fn == nil {
			return nil
		}
		return fn(ctx)
	}
}

// liveHandler resolves the current handler for a command path, or nil if the
// extension is unloaded or its current cog no longer has the command.
func (r *Registry) liveHandler(ext string, path []string) func(*bcr.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	le, ok := r.loaded[ext]
	if !ok {
		return nil
	}

	var node *Command
	nodes := le.cog.Commands
	for _, name := range path {
		node = nil
		for _, c := range nodes {
			if c.Name == name {
				node = c
				break
			}
		}
		if node == nil {
			return nil
		}
		nodes = node.Subcommands
	}

	return node.Command.Command
}
