//go:build !windows

package native

// DefaultLoader returns a loader that always fails with
// ErrUnsupportedPlatform.
func DefaultLoader() Loader {
	return LoaderFunc(func(path string) (Library, error) {
		return nil, &LoadError{Path: path, Err: ErrUnsupportedPlatform}
	})
}
