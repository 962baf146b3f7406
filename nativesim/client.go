package nativesim

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"
	"unsafe"

	"github.com/ozanturksever/go-fabric/native"
)

// client is the root object created by the factory. One object answers
// for every client interface, as the native runtime does.
type client struct {
	refCount
}

func (c *client) QueryInterface(iid native.GUID) (native.Unknown, error) {
	switch iid {
	case native.IID_IUnknown, native.IID_IFabricQueryClient, native.IID_IFabricServiceManagementClient:
	case native.IID_INoMarshal:
		if !c.sim.nonAgile {
			return nil, native.E_NOINTERFACE
		}
	default:
		return nil, native.E_NOINTERFACE
	}
	c.AddRef()
	return c, nil
}

func (c *client) BeginResolveServicePartition(name *uint16, keyType native.PartitionKeyType, key unsafe.Pointer,
	_ native.ResolvedServicePartitionResult, timeoutMs uint32, cb native.AsyncOperationCallback) (native.AsyncOperationContext, error) {
	if hr := c.sim.beginCall(OpResolveServicePartition); hr.Failed() {
		return nil, hr
	}
	if cb == nil {
		return nil, native.E_POINTER
	}
	service, err := serviceName(name)
	if err != nil {
		return nil, err
	}

	var (
		intKey int64
		strKey string
	)
	switch keyType {
	case native.PartitionKeyTypeNone:
	case native.PartitionKeyTypeInt64:
		if key == nil {
			return nil, native.E_POINTER
		}
		intKey = *(*int64)(key)
	case native.PartitionKeyTypeString:
		if key == nil {
			return nil, native.E_POINTER
		}
		if strKey, err = native.UTF16PtrToString((*uint16)(key)); err != nil {
			return nil, native.E_INVALIDARG
		}
	default:
		return nil, native.E_INVALIDARG
	}

	return c.start(OpResolveServicePartition, timeoutMs, cb, func(ctx context.Context) (native.Unknown, native.HRESULT) {
		svc, hr := c.lookup(ctx, service)
		if hr.Failed() {
			return nil, hr
		}
		p := findPartition(svc, keyType, intKey, strKey)
		if p == nil {
			return nil, native.FABRIC_E_INVALID_PARTITION_KEY
		}
		return newResolveResult(c.sim, svc, p), native.S_OK
	})
}

func (c *client) EndResolveServicePartition(ctx native.AsyncOperationContext) (native.ResolvedServicePartitionResult, error) {
	r, err := c.end(OpResolveServicePartition, ctx)
	if err != nil {
		return nil, err
	}
	return r.(*resolveResult), nil
}

func (c *client) BeginGetPartitionList(desc *native.ServicePartitionQueryDescription, timeoutMs uint32,
	cb native.AsyncOperationCallback) (native.AsyncOperationContext, error) {
	if hr := c.sim.beginCall(OpGetPartitionList); hr.Failed() {
		return nil, hr
	}
	if desc == nil || cb == nil {
		return nil, native.E_POINTER
	}
	service, err := serviceName(desc.ServiceName)
	if err != nil {
		return nil, err
	}
	filter := desc.PartitionIDFilter

	return c.start(OpGetPartitionList, timeoutMs, cb, func(ctx context.Context) (native.Unknown, native.HRESULT) {
		svc, hr := c.lookup(ctx, service)
		if hr.Failed() {
			return nil, hr
		}
		return newListResult(c.sim, svc, filter), native.S_OK
	})
}

func (c *client) EndGetPartitionList(ctx native.AsyncOperationContext) (native.GetPartitionListResult, error) {
	r, err := c.end(OpGetPartitionList, ctx)
	if err != nil {
		return nil, err
	}
	return r.(*listResult), nil
}

func serviceName(p *uint16) (string, error) {
	if p == nil {
		return "", native.E_POINTER
	}
	s, err := native.UTF16PtrToString(p)
	if err != nil {
		return "", native.E_INVALIDARG
	}
	if !strings.HasPrefix(s, "fabric:/") {
		return "", native.FABRIC_E_INVALID_NAME_URI
	}
	return s, nil
}

func (c *client) lookup(ctx context.Context, name string) (*Service, native.HRESULT) {
	svc, err := c.sim.catalog.Service(ctx, name)
	switch {
	case errors.Is(err, ErrServiceNotFound):
		return nil, native.FABRIC_E_SERVICE_DOES_NOT_EXIST
	case errors.Is(err, context.DeadlineExceeded):
		return nil, native.FABRIC_E_TIMEOUT
	case err != nil:
		c.sim.logger.Warn("catalog lookup failed", "service", name, "error", err)
		return nil, native.E_FAIL
	}
	return svc, native.S_OK
}

// start creates the operation context and schedules its completion: inline
// for a synchronous cluster, otherwise on a new goroutine locked to its own
// OS thread.
func (c *client) start(op string, timeoutMs uint32, cb native.AsyncOperationCallback,
	work func(context.Context) (native.Unknown, native.HRESULT)) (native.AsyncOperationContext, error) {
	cb.AddRef()
	actx := &asyncContext{op: op, cb: cb, synchronous: c.sim.synchronous}
	actx.init(c.sim)

	// The caller gets its own reference to the token.
	actx.AddRef()

	c.sim.wg.Add(1)
	complete := func() {
		defer c.sim.wg.Done()
		c.complete(actx, timeoutMs, work)
	}
	if c.sim.synchronous {
		complete()
	} else {
		go func() {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			complete()
		}()
	}
	return actx, nil
}

func (c *client) complete(actx *asyncContext, timeoutMs uint32, work func(context.Context) (native.Unknown, native.HRESULT)) {
	defer actx.Release()
	defer actx.cb.Release()

	delay, endHR, drop := c.sim.completionPlan(actx.op)
	timeout := time.Duration(timeoutMs) * time.Millisecond

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
	}

	var (
		result native.Unknown
		hr     native.HRESULT
	)
	switch {
	case ctx.Err() != nil:
		hr = native.FABRIC_E_TIMEOUT
	case actx.canceled.Load():
		hr = native.E_ABORT
	case endHR.Failed():
		hr = endHR
	default:
		result, hr = work(ctx)
	}
	actx.finish(result, hr)

	if drop {
		c.sim.logger.Debug("dropping completion callback", "op", actx.op)
		return
	}
	actx.cb.Invoke(actx)
}

func (c *client) end(op string, ctx native.AsyncOperationContext) (native.Unknown, error) {
	actx, ok := ctx.(*asyncContext)
	if !ok || actx.sim != c.sim || actx.op != op {
		return nil, native.E_INVALIDARG
	}
	r, hr := actx.claim()
	if hr.Failed() {
		return nil, hr
	}
	return r, nil
}
