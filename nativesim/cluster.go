package nativesim

import (
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ozanturksever/go-fabric/native"
)

// Operation names accepted by the fault injection methods.
const (
	OpResolveServicePartition = "ResolveServicePartition"
	OpGetPartitionList        = "GetPartitionList"
)

// ErrLibraryNotFound is reported for library paths the cluster does not
// answer to.
var ErrLibraryNotFound = errors.New("nativesim: library not found")

// Cluster is an in-process stand-in for the native client runtime. It acts
// as both the Loader and the loaded Library, and every object it hands out
// is reference counted so that leaks show up in LiveObjects.
type Cluster struct {
	catalog Catalog
	logger  *slog.Logger

	synchronous bool
	nonAgile    bool
	paths       []string

	mu          sync.Mutex
	delay       time.Duration
	failBegin   map[string]*fault
	failEnd     map[string]*fault
	drop        map[string]int
	failFactory native.HRESULT
	calls       map[string]int
	loads       int

	live         atomic.Int64
	overReleased atomic.Int64
	wg           sync.WaitGroup
}

type fault struct {
	hr        native.HRESULT
	remaining int // negative means forever
}

// take consumes one occurrence and reports whether the fault fires.
func (f *fault) take() bool {
	if f == nil || f.remaining == 0 {
		return false
	}
	if f.remaining > 0 {
		f.remaining--
	}
	return true
}

// Option configures a Cluster.
type Option func(*Cluster)

// Synchronous makes every operation complete inline, invoking the callback
// before Begin returns.
func Synchronous(on bool) Option {
	return func(c *Cluster) {
		c.synchronous = on
	}
}

// NonAgile makes the root object refuse agile registration.
func NonAgile(on bool) Option {
	return func(c *Cluster) {
		c.nonAgile = on
	}
}

// Delay sets how long operations take to complete.
func Delay(d time.Duration) Option {
	return func(c *Cluster) {
		c.delay = d
	}
}

// LibraryPaths restricts the paths Load succeeds for. By default every
// path loads.
func LibraryPaths(paths ...string) Option {
	return func(c *Cluster) {
		c.paths = paths
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cluster) {
		c.logger = l
	}
}

// NewCluster returns a simulated runtime serving catalog.
func NewCluster(catalog Catalog, opts ...Option) *Cluster {
	c := &Cluster{
		catalog:   catalog,
		logger:    slog.Default(),
		failBegin: make(map[string]*fault),
		failEnd:   make(map[string]*fault),
		drop:      make(map[string]int),
		calls:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "nativesim")
	return c
}

// FailBegin makes the next n Begin calls of op fail with hr. A negative n
// fails every call.
func (c *Cluster) FailBegin(op string, hr native.HRESULT, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failBegin[op] = &fault{hr: hr, remaining: n}
}

// FailEnd makes the next n completions of op report hr from End. A
// negative n fails every call.
func (c *Cluster) FailEnd(op string, hr native.HRESULT, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failEnd[op] = &fault{hr: hr, remaining: n}
}

// DropCallbacks makes the next n operations of op release their callback
// without invoking it.
func (c *Cluster) DropCallbacks(op string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drop[op] = n
}

// FailFactory makes the library factory fail with hr.
func (c *Cluster) FailFactory(hr native.HRESULT) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failFactory = hr
}

// SetDelay changes how long operations take to complete.
func (c *Cluster) SetDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

// Calls returns how many times Begin was called for op.
func (c *Cluster) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// LiveObjects returns the number of simulated objects that still hold a
// reference.
func (c *Cluster) LiveObjects() int64 {
	return c.live.Load()
}

// OverReleases returns how many Release calls found no reference to drop.
func (c *Cluster) OverReleases() int64 {
	return c.overReleased.Load()
}

// Loads returns the number of successful Load calls not yet closed.
func (c *Cluster) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

// Wait blocks until every pending completion has run.
func (c *Cluster) Wait() {
	c.wg.Wait()
}

// Load implements native.Loader.
func (c *Cluster) Load(path string) (native.Library, error) {
	if len(c.paths) > 0 && !slices.Contains(c.paths, path) {
		return nil, &native.LoadError{Path: path, Err: ErrLibraryNotFound}
	}
	c.mu.Lock()
	c.loads++
	c.mu.Unlock()
	return c, nil
}

// CreateLocalClient implements native.Library.
func (c *Cluster) CreateLocalClient(iid native.GUID) (native.Unknown, error) {
	c.mu.Lock()
	hr := c.failFactory
	c.mu.Unlock()
	if hr.Failed() {
		return nil, hr
	}

	root := &client{}
	root.init(c)
	obj, err := root.QueryInterface(iid)
	root.Release()
	return obj, err
}

// Runtime implements native.Library.
func (c *Cluster) Runtime() native.Runtime {
	return native.FreeThreaded{}
}

// Close implements native.Library.
func (c *Cluster) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loads > 0 {
		c.loads--
	}
	return nil
}

// beginCall counts a Begin call and returns the fault it should fail with.
func (c *Cluster) beginCall(op string) native.HRESULT {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[op]++
	if f := c.failBegin[op]; f.take() {
		return f.hr
	}
	return native.S_OK
}

// completionPlan returns the delay, End fault and drop decision for the
// next completion of op.
func (c *Cluster) completionPlan(op string) (time.Duration, native.HRESULT, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hr := native.S_OK
	if f := c.failEnd[op]; f.take() {
		hr = f.hr
	}
	drop := false
	if c.drop[op] > 0 {
		c.drop[op]--
		drop = true
	}
	return c.delay, hr, drop
}
