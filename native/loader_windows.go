//go:build windows

package native

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// loadWithAlteredSearchPath resolves the library's own dependencies from
// its directory when a full path is given.
const loadWithAlteredSearchPath = 0x00000008

// DefaultLoader returns a loader backed by LoadLibraryEx.
func DefaultLoader() Loader {
	return LoaderFunc(loadLibrary)
}

type dll struct {
	path    string
	handle  windows.Handle
	factory uintptr
}

func loadLibrary(path string) (Library, error) {
	h, err := windows.LoadLibraryEx(path, 0, loadWithAlteredSearchPath)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	proc, err := windows.GetProcAddress(h, FactorySymbol)
	if err != nil {
		_ = windows.FreeLibrary(h)
		return nil, &LoadError{Path: path, Symbol: FactorySymbol, Err: err}
	}
	return &dll{path: path, handle: h, factory: proc}, nil
}

func (d *dll) CreateLocalClient(iid GUID) (Unknown, error) {
	var out uintptr
	hr, _, _ := syscall.SyscallN(d.factory,
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := HRESULT(hr).Err(); err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, E_POINTER
	}
	return Bind(iid, &comObject{ptr: out}), nil
}

func (d *dll) Runtime() Runtime {
	return platformRuntime{}
}

func (d *dll) Close() error {
	return windows.FreeLibrary(d.handle)
}
