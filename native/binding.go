package native

import "sync"

// Pointer is implemented by objects backed by a raw native interface
// pointer.
type Pointer interface {
	Pointer() uintptr
}

// BindFunc wraps a raw object, already viewed through the interface it is
// registered for, in a typed Go view such as a ServiceManagementClient.
type BindFunc func(obj Unknown) Unknown

var bindings sync.Map // GUID -> BindFunc

// RegisterBinding installs the typed wrapper used for objects obtained
// through iid. Generated bindings call it from init; without one, objects
// from the Windows loader only satisfy Unknown.
func RegisterBinding(iid GUID, bind BindFunc) {
	bindings.Store(iid, bind)
}

// Bind returns obj wrapped by the binding registered for iid, or obj
// itself when none is registered.
func Bind(iid GUID, obj Unknown) Unknown {
	if v, ok := bindings.Load(iid); ok {
		return v.(BindFunc)(obj)
	}
	return obj
}
