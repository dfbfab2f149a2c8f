package extensions

// The registry reports lifecycle failures as typed errors so command handlers
// can match on the failure kind without parsing messages.

// NotFoundError is returned when no extension is registered under a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "extension " + e.Name + " not found"
}

// AlreadyLoadedError is returned when loading an extension that is loaded.
type AlreadyLoadedError struct {
	Name string
}

func (e *AlreadyLoadedError) Error() string {
	return "extension " + e.Name + " is already loaded"
}

// NotLoadedError is returned when unloading an extension that isn't loaded.
type NotLoadedError struct {
	Name string
}

func (e *NotLoadedError) Error() string {
	return "extension " + e.Name + " is not loaded"
}

// NoEntrypointError is returned when an extension has no setup function.
type NoEntrypointError struct {
	Name string
}

func (e *NoEntrypointError) Error() string {
	return "extension " + e.Name + " has no setup entrypoint"
}

// SetupError wraps a failure from an extension's setup function.
type SetupError struct {
	Name string
	Err  error
}

func (e *SetupError) Error() string {
	return "setting up extension " + e.Name + ": " + e.Err.Error()
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
