package fabric

import (
	"reflect"
	"sync/atomic"

	"github.com/ozanturksever/go-fabric/native"
)

// AgileRef is a goroutine-safe handle to a thread-affine native object.
//
// Handles share one agile registration. Clone hands out another handle to
// the same registration; the registration is released when the last handle
// is released. Objects returned by Resolve belong to the calling OS thread
// and must be released by the caller, with the thread locked for as long
// as they are in use.
type AgileRef[T native.Unknown] struct {
	slot     *agileSlot
	iid      native.GUID
	released atomic.Bool
}

type agileSlot struct {
	ref  native.AgileReference
	refs atomic.Int64
}

// NewAgileRef registers obj with rt. The object is registered through its
// IUnknown view, so any interface it supports can later be resolved; iid
// selects the interface Resolve returns. obj remains owned by the caller.
func NewAgileRef[T native.Unknown](rt native.Runtime, obj native.Unknown, iid native.GUID) (*AgileRef[T], error) {
	if obj == nil {
		return nil, &NativeError{Op: "QueryInterface", HRESULT: native.E_POINTER}
	}
	unk, err := obj.QueryInterface(native.IID_IUnknown)
	if err != nil {
		return nil, nativeError("QueryInterface", err)
	}
	defer unk.Release()

	ref, err := rt.AgileReference(unk, native.IID_IUnknown)
	if err != nil {
		return nil, nativeError("RoGetAgileReference", err)
	}
	slot := &agileSlot{ref: ref}
	slot.refs.Store(1)
	return &AgileRef[T]{slot: slot, iid: iid}, nil
}

// IID returns the interface Resolve produces.
func (r *AgileRef[T]) IID() native.GUID {
	return r.iid
}

// Resolve returns the object viewed through the handle's interface, usable
// on the calling OS thread.
func (r *AgileRef[T]) Resolve() (T, error) {
	var zero T
	if r.released.Load() {
		return zero, ErrReleased
	}
	unk, err := r.slot.ref.Resolve(native.IID_IUnknown)
	if err != nil {
		return zero, nativeError("IAgileReference.Resolve", err)
	}
	defer unk.Release()

	obj, err := unk.QueryInterface(r.iid)
	if err != nil {
		return zero, nativeError("QueryInterface", err)
	}
	t, ok := obj.(T)
	if !ok {
		obj.Release()
		return zero, &NativeError{Op: "QueryInterface " + reflect.TypeFor[T]().String(), HRESULT: native.E_NOINTERFACE}
	}
	return t, nil
}

// Clone returns a new handle sharing the registration. It fails with
// ErrReleased once the registration has been released, even when a
// concurrent Release of the last handle wins the race.
func (r *AgileRef[T]) Clone() (*AgileRef[T], error) {
	if r.released.Load() {
		return nil, ErrReleased
	}
	for {
		n := r.slot.refs.Load()
		if n <= 0 {
			return nil, ErrReleased
		}
		if r.slot.refs.CompareAndSwap(n, n+1) {
			return &AgileRef[T]{slot: r.slot, iid: r.iid}, nil
		}
	}
}

// Release drops this handle. It is safe to call more than once.
func (r *AgileRef[T]) Release() {
	if !r.released.CompareAndSwap(false, true) {
		return
	}
	if r.slot.refs.Add(-1) == 0 {
		r.slot.ref.Release()
	}
}
