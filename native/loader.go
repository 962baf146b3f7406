package native

import (
	"errors"
	"fmt"
)

// FactorySymbol is the exported factory looked up in the client library.
const FactorySymbol = "FabricCreateLocalClient"

// DefaultLibrary is the client library name resolved through the system
// search path.
const DefaultLibrary = "FabricClient.dll"

// ErrUnsupportedPlatform is returned by the default loader on platforms
// without the native client runtime.
var ErrUnsupportedPlatform = errors.New("native: client runtime is not available on this platform")

// Loader opens a client library.
type Loader interface {
	Load(path string) (Library, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (Library, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (Library, error) {
	return f(path)
}

// Library is an opened client library.
type Library interface {
	// CreateLocalClient calls the library factory and returns the root
	// client object viewed through iid. The caller owns the reference.
	CreateLocalClient(iid GUID) (Unknown, error)

	// Runtime returns the agile reference runtime objects from this
	// library are registered with.
	Runtime() Runtime

	// Close unloads the library. Objects obtained from it must all have
	// been released.
	Close() error
}

// LoadError describes a failure to open a library or locate its factory.
type LoadError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("native: load %s: symbol %s: %v", e.Path, e.Symbol, e.Err)
	}
	return fmt.Sprintf("native: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
