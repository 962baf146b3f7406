//go:build windows

package native

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type unknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// comObject is an Unknown backed by a raw interface pointer.
type comObject struct {
	ptr uintptr
}

func (o *comObject) Pointer() uintptr {
	return o.ptr
}

func (o *comObject) vtbl() *unknownVtbl {
	return *(**unknownVtbl)(unsafe.Pointer(o.ptr))
}

func (o *comObject) QueryInterface(iid GUID) (Unknown, error) {
	var out uintptr
	hr, _, _ := syscall.SyscallN(o.vtbl().QueryInterface, o.ptr,
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := HRESULT(hr).Err(); err != nil {
		return nil, err
	}
	return Bind(iid, &comObject{ptr: out}), nil
}

func (o *comObject) AddRef() uint32 {
	n, _, _ := syscall.SyscallN(o.vtbl().AddRef, o.ptr)
	return uint32(n)
}

func (o *comObject) Release() uint32 {
	n, _, _ := syscall.SyscallN(o.vtbl().Release, o.ptr)
	return uint32(n)
}

type agileReferenceVtbl struct {
	unknownVtbl
	Resolve uintptr
}

// agileReference wraps IAgileReference.
type agileReference struct {
	comObject
}

func (r *agileReference) Resolve(iid GUID) (Unknown, error) {
	vt := (*agileReferenceVtbl)(unsafe.Pointer(r.vtbl()))
	var out uintptr
	hr, _, _ := syscall.SyscallN(vt.Resolve, r.ptr,
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := HRESULT(hr).Err(); err != nil {
		return nil, err
	}
	return Bind(iid, &comObject{ptr: out}), nil
}

var (
	modcombase              = windows.NewLazySystemDLL("combase.dll")
	procRoGetAgileReference = modcombase.NewProc("RoGetAgileReference")
)

// agileRefDefault is AGILEREFERENCE_DEFAULT.
const agileRefDefault = 0

// platformRuntime registers objects with RoGetAgileReference.
type platformRuntime struct{}

func (platformRuntime) AgileReference(obj Unknown, iid GUID) (AgileReference, error) {
	p, ok := obj.(Pointer)
	if !ok {
		return FreeThreaded{}.AgileReference(obj, iid)
	}
	if err := procRoGetAgileReference.Find(); err != nil {
		return nil, err
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var out uintptr
	hr, _, _ := syscall.SyscallN(procRoGetAgileReference.Addr(),
		agileRefDefault,
		uintptr(unsafe.Pointer(&iid)),
		p.Pointer(),
		uintptr(unsafe.Pointer(&out)))
	if err := HRESULT(hr).Err(); err != nil {
		return nil, err
	}
	return &agileReference{comObject{ptr: out}}, nil
}
