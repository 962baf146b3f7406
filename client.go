package fabric

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/ozanturksever/go-fabric/native"
)

// Client owns a loaded client library and the root client object created
// by its factory. Typed clients obtained from it stay valid after Close;
// the library is unloaded once the Client and every typed client are
// closed.
type Client struct {
	cfg     Config
	lib     native.Library
	rt      native.Runtime
	root    *AgileRef[native.Unknown]
	env     *opEnv
	logger  *slog.Logger
	closed  atomic.Bool
	handles usage
}

// usage counts the holders of a resource and calls done after the last one
// lets go. Once the count reaches zero it cannot be acquired again.
type usage struct {
	n    atomic.Int32
	done func() error
}

func (u *usage) acquire() bool {
	for {
		n := u.n.Load()
		if n <= 0 {
			return false
		}
		if u.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (u *usage) release() error {
	if u.n.Add(-1) != 0 {
		return nil
	}
	return u.done()
}

// New loads the client library and creates the root client object.
func New(cfg Config, opts ...Option) (*Client, error) {
	o := defaultClientOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger != nil {
		cfg.Logger = o.logger
	}
	if o.retry != nil {
		cfg.Retry = *o.retry
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	cfg.applyDefaults()
	if o.loader == nil {
		return nil, fmt.Errorf("%w: no loader", ErrInvalidArgument)
	}

	logger := cfg.Logger.With("component", "fabric")

	lib, path, err := loadLibrary(o.loader, cfg.LibraryPaths)
	if err != nil {
		return nil, err
	}
	rt := o.runtime
	if rt == nil {
		rt = lib.Runtime()
	}

	root, err := createRoot(lib, rt)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}

	c := &Client{
		cfg:  cfg,
		lib:  lib,
		rt:   rt,
		root: root,
		env: &opEnv{
			logger:  logger,
			metrics: o.metrics,
			retry:   cfg.Retry,
			timeout: cfg.OperationTimeout,
		},
		logger: logger,
	}
	c.handles.done = c.unload
	c.handles.n.Store(1)
	logger.Info("native client created", "library", path)
	return c, nil
}

// loadLibrary tries each path in order and returns the first library that
// loads, or every failure joined.
func loadLibrary(l native.Loader, paths []string) (native.Library, string, error) {
	var errs []error
	for _, p := range paths {
		lib, err := l.Load(p)
		if err == nil {
			return lib, p, nil
		}
		var le *native.LoadError
		if !errors.As(err, &le) {
			err = &native.LoadError{Path: p, Err: err}
		}
		errs = append(errs, err)
	}
	return nil, "", errors.Join(errs...)
}

func createRoot(lib native.Library, rt native.Runtime) (*AgileRef[native.Unknown], error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	obj, err := lib.CreateLocalClient(native.IID_IFabricQueryClient)
	if err != nil {
		return nil, nativeError(native.FactorySymbol, err)
	}
	defer obj.Release()

	return NewAgileRef[native.Unknown](rt, obj, native.IID_IUnknown)
}

// MakeClient returns an agile reference to the root object viewed through
// iid. It fails when the root does not implement the interface.
func MakeClient[T native.Unknown](c *Client, iid native.GUID) (*AgileRef[T], error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	handle, err := c.root.Clone()
	if err != nil {
		return nil, ErrClientClosed
	}
	defer handle.Release()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	root, err := handle.Resolve()
	if err != nil {
		return nil, err
	}
	defer root.Release()

	obj, err := root.QueryInterface(iid)
	if err != nil {
		return nil, nativeError("QueryInterface", err)
	}
	defer obj.Release()

	return NewAgileRef[T](c.rt, obj, iid)
}

// ServiceManagementClient returns a client for partition resolution.
func (c *Client) ServiceManagementClient() (*ServiceManagementClient, error) {
	if !c.handles.acquire() {
		return nil, ErrClientClosed
	}
	ref, err := MakeClient[native.ServiceManagementClient](c, native.IID_IFabricServiceManagementClient)
	if err != nil {
		c.handles.release()
		return nil, err
	}
	sm := &ServiceManagementClient{ref: ref, env: c.env}
	sm.users.done = c.handles.release
	sm.users.n.Store(1)
	return sm, nil
}

// QueryClient returns a client for cluster queries.
func (c *Client) QueryClient() (*QueryClient, error) {
	if !c.handles.acquire() {
		return nil, ErrClientClosed
	}
	ref, err := MakeClient[native.QueryClient](c, native.IID_IFabricQueryClient)
	if err != nil {
		c.handles.release()
		return nil, err
	}
	qc := &QueryClient{ref: ref, env: c.env}
	qc.users.done = c.handles.release
	qc.users.n.Store(1)
	return qc, nil
}

// Close releases the root client object.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.root.Release()
	return c.handles.release()
}

func (c *Client) unload() error {
	c.logger.Debug("unloading native client library")
	return c.lib.Close()
}
