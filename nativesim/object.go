package nativesim

import (
	"sync"
	"sync/atomic"

	"github.com/ozanturksever/go-fabric/native"
)

// refCount is the reference count shared by every simulated object.
type refCount struct {
	sim  *Cluster
	refs atomic.Int32
}

func (r *refCount) init(sim *Cluster) {
	r.sim = sim
	r.refs.Store(1)
	sim.live.Add(1)
}

func (r *refCount) AddRef() uint32 {
	return uint32(r.refs.Add(1))
}

func (r *refCount) Release() uint32 {
	n := r.refs.Add(-1)
	switch {
	case n == 0:
		r.sim.live.Add(-1)
	case n < 0:
		r.refs.Add(1)
		r.sim.overReleased.Add(1)
		r.sim.logger.Error("release of object without references")
		return 0
	}
	return uint32(n)
}

// asyncContext is the token returned by Begin and consumed by End.
type asyncContext struct {
	refCount
	op          string
	cb          native.AsyncOperationCallback
	synchronous bool
	completed   atomic.Bool
	canceled    atomic.Bool

	mu     sync.Mutex
	hr     native.HRESULT
	result native.Unknown
}

func (a *asyncContext) QueryInterface(iid native.GUID) (native.Unknown, error) {
	if iid != native.IID_IUnknown && iid != native.IID_IFabricAsyncOperationContext {
		return nil, native.E_NOINTERFACE
	}
	a.AddRef()
	return a, nil
}

func (a *asyncContext) Release() uint32 {
	n := a.refCount.Release()
	if n != 0 {
		return n
	}
	// Results that End never claimed.
	a.mu.Lock()
	r := a.result
	a.result = nil
	a.mu.Unlock()
	if r != nil {
		r.Release()
	}
	return n
}

// finish records the outcome and marks the operation completed.
func (a *asyncContext) finish(result native.Unknown, hr native.HRESULT) {
	a.mu.Lock()
	a.result, a.hr = result, hr
	a.mu.Unlock()
	a.completed.Store(true)
}

func (a *asyncContext) IsCompleted() bool {
	return a.completed.Load()
}

func (a *asyncContext) CompletedSynchronously() bool {
	return a.synchronous
}

func (a *asyncContext) Callback() (native.AsyncOperationCallback, error) {
	a.cb.AddRef()
	return a.cb, nil
}

func (a *asyncContext) Cancel() error {
	a.canceled.Store(true)
	return nil
}

// claim hands the completed result to End exactly once.
func (a *asyncContext) claim() (native.Unknown, native.HRESULT) {
	if !a.completed.Load() {
		return nil, native.FABRIC_E_OPERATION_NOT_COMPLETE
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hr.Failed() {
		return nil, a.hr
	}
	r := a.result
	a.result = nil
	if r == nil {
		return nil, native.E_UNEXPECTED
	}
	return r, native.S_OK
}

// resolveResult owns a ResolvedServicePartition and the memory it points
// into.
type resolveResult struct {
	refCount
	raw  *native.ResolvedServicePartition
	keep []any
}

func (r *resolveResult) QueryInterface(iid native.GUID) (native.Unknown, error) {
	if iid != native.IID_IUnknown {
		return nil, native.E_NOINTERFACE
	}
	r.AddRef()
	return r, nil
}

func (r *resolveResult) Partition() *native.ResolvedServicePartition {
	return r.raw
}

// listResult owns a ServicePartitionQueryResultList and the memory it
// points into.
type listResult struct {
	refCount
	raw  *native.ServicePartitionQueryResultList
	keep []any
}

func (r *listResult) QueryInterface(iid native.GUID) (native.Unknown, error) {
	if iid != native.IID_IUnknown {
		return nil, native.E_NOINTERFACE
	}
	r.AddRef()
	return r, nil
}

func (r *listResult) PartitionList() *native.ServicePartitionQueryResultList {
	return r.raw
}
