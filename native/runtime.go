package native

import "sync/atomic"

// Runtime produces agile references for thread-affine objects.
type Runtime interface {
	// AgileReference registers obj, viewed through iid, and returns a
	// reference that can be resolved from any thread. obj itself stays
	// owned by the caller.
	AgileReference(obj Unknown, iid GUID) (AgileReference, error)
}

// AgileReference is a thread-independent handle to a native object.
// Resolve returns a new reference, usable on the calling thread, that the
// caller must Release.
type AgileReference interface {
	Unknown
	Resolve(iid GUID) (Unknown, error)
}

// FreeThreaded is the Runtime for objects that are safe to use from any
// thread. Registration holds a reference to the object and resolution is a
// QueryInterface. Objects that refuse marshaling through INoMarshal are
// rejected with CO_E_NOT_SUPPORTED, as the platform runtime does.
type FreeThreaded struct{}

// AgileReference implements Runtime.
func (FreeThreaded) AgileReference(obj Unknown, iid GUID) (AgileReference, error) {
	if obj == nil {
		return nil, E_POINTER
	}
	if nm, err := obj.QueryInterface(IID_INoMarshal); err == nil {
		nm.Release()
		return nil, CO_E_NOT_SUPPORTED
	}
	view, err := obj.QueryInterface(iid)
	if err != nil {
		return nil, err
	}
	r := &freeThreadedRef{obj: view}
	r.refs.Store(1)
	return r, nil
}

type freeThreadedRef struct {
	obj  Unknown
	refs atomic.Int32
}

func (r *freeThreadedRef) QueryInterface(iid GUID) (Unknown, error) {
	if iid == IID_IUnknown {
		r.AddRef()
		return r, nil
	}
	return nil, E_NOINTERFACE
}

func (r *freeThreadedRef) AddRef() uint32 {
	return uint32(r.refs.Add(1))
}

func (r *freeThreadedRef) Release() uint32 {
	n := r.refs.Add(-1)
	switch {
	case n == 0:
		r.obj.Release()
	case n < 0:
		panic("native: agile reference released too many times")
	}
	return uint32(max(n, 0))
}

func (r *freeThreadedRef) Resolve(iid GUID) (Unknown, error) {
	if r.refs.Load() <= 0 {
		return nil, RPC_E_DISCONNECTED
	}
	return r.obj.QueryInterface(iid)
}
