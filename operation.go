package fabric

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ozanturksever/go-fabric/native"
)

// outcome is what a completed operation publishes.
type outcome[T any] struct {
	val T
	err error
}

// pending is the one-shot channel an operation completes through. It
// receives at most one value, and is closed without one if the operation is
// abandoned.
type pending[T any] struct {
	ch   chan outcome[T]
	once sync.Once
}

func newPending[T any]() *pending[T] {
	return &pending[T]{ch: make(chan outcome[T], 1)}
}

// publish never blocks; it reports whether o was the value delivered.
func (p *pending[T]) publish(o outcome[T]) bool {
	sent := false
	p.once.Do(func() {
		p.ch <- o
		close(p.ch)
		sent = true
	})
	return sent
}

func (p *pending[T]) abandon() bool {
	closed := false
	p.once.Do(func() {
		close(p.ch)
		closed = true
	})
	return closed
}

// asyncOp describes one Begin/End pair.
type asyncOp[C, R native.Unknown, T any] struct {
	name    string
	begin   func(c C, cb native.AsyncOperationCallback) (native.AsyncOperationContext, error)
	end     func(c C, ctx native.AsyncOperationContext) (R, error)
	project func(r R) (T, error)
}

// asyncCallback is the callback object handed to Begin. It is reference
// counted like any native object: the final Release without a prior Invoke
// abandons the operation.
type asyncCallback[C, R native.Unknown, T any] struct {
	op      asyncOp[C, R, T]
	client  *AgileRef[C]
	pending *pending[T]
	logger  *slog.Logger
	refs    atomic.Int32
	invoked atomic.Bool
	failed  atomic.Bool // Begin returned an error
}

func (cb *asyncCallback[C, R, T]) QueryInterface(iid native.GUID) (native.Unknown, error) {
	if iid != native.IID_IUnknown && iid != native.IID_IFabricAsyncOperationCallback {
		return nil, native.E_NOINTERFACE
	}
	cb.AddRef()
	return cb, nil
}

func (cb *asyncCallback[C, R, T]) AddRef() uint32 {
	return uint32(cb.refs.Add(1))
}

func (cb *asyncCallback[C, R, T]) Release() uint32 {
	n := cb.refs.Add(-1)
	if n != 0 {
		return uint32(max(n, 0))
	}
	cb.client.Release()
	if cb.pending.abandon() && !cb.failed.Load() {
		cb.logger.Warn("native operation abandoned", "op", cb.op.name)
	}
	return 0
}

func (cb *asyncCallback[C, R, T]) Invoke(ctx native.AsyncOperationContext) {
	if !cb.invoked.CompareAndSwap(false, true) {
		cb.logger.Warn("ignoring repeated completion callback", "op", cb.op.name)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			cb.logger.Error("panic in completion callback", "op", cb.op.name, "panic", r)
			cb.pending.publish(outcome[T]{err: fmt.Errorf("fabric: %s: panic in completion: %v", cb.op.name, r)})
		}
	}()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	val, err := cb.complete(ctx)
	cb.pending.publish(outcome[T]{val: val, err: err})
}

// complete runs End and projects the result on the calling thread.
func (cb *asyncCallback[C, R, T]) complete(ctx native.AsyncOperationContext) (T, error) {
	var zero T
	client, err := cb.client.Resolve()
	if err != nil {
		return zero, err
	}
	defer client.Release()

	res, err := cb.op.end(client, ctx)
	if err != nil {
		return zero, nativeError("End"+cb.op.name, err)
	}
	defer res.Release()

	return cb.op.project(res)
}

// opEnv carries what every operation of a client shares.
type opEnv struct {
	logger  *slog.Logger
	metrics *Metrics
	retry   RetryPolicy
	timeout time.Duration
}

// retryPolicy returns the client's policy with retries counted in metrics.
func (e *opEnv) retryPolicy() RetryPolicy {
	p := e.retry
	onRetry := p.OnRetry
	p.OnRetry = func(op string, attempt int, err error) {
		e.metrics.ObserveRetry(op, CodeOf(err))
		if onRetry != nil {
			onRetry(op, attempt, err)
		}
	}
	return p
}

// timeoutMillis converts d to the native millisecond timeout, using the
// client default for zero and clamping to the representable range.
func (e *opEnv) timeoutMillis(d time.Duration) uint32 {
	if d <= 0 {
		d = e.timeout
	}
	ms := d.Milliseconds()
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}

// invokeAsync runs one Begin/End attempt and waits for its result. The
// callback may complete inline inside Begin or later on any thread.
// Cancelling ctx stops the wait; a late completion is discarded.
func invokeAsync[C, R native.Unknown, T any](ctx context.Context, env *opEnv, client *AgileRef[C], op asyncOp[C, R, T]) (T, error) {
	var zero T

	handle, err := client.Clone()
	if err != nil {
		if errors.Is(err, ErrReleased) {
			return zero, ErrClientClosed
		}
		return zero, err
	}
	p := newPending[T]()
	cb := &asyncCallback[C, R, T]{
		op:      op,
		client:  handle,
		pending: p,
		logger:  env.logger,
	}
	cb.refs.Store(1)

	done := env.metrics.operationStarted(op.name)

	err = beginOnLockedThread(handle, cb, op.begin)
	if err != nil {
		cb.failed.Store(true)
	}
	cb.Release()
	if err != nil {
		done(OutcomeFailed)
		return zero, nativeError("Begin"+op.name, err)
	}

	select {
	case o, ok := <-p.ch:
		if !ok {
			done(OutcomeAbandoned)
			return zero, &AbandonedError{Op: op.name}
		}
		if o.err != nil {
			done(OutcomeFailed)
			return zero, o.err
		}
		done(OutcomeCompleted)
		return o.val, nil
	case <-ctx.Done():
		done(OutcomeCanceled)
		env.logger.Debug("stopped waiting for native operation", "op", op.name, "error", ctx.Err())
		return zero, ctx.Err()
	}
}

func beginOnLockedThread[C native.Unknown](client *AgileRef[C], cb native.AsyncOperationCallback,
	begin func(C, native.AsyncOperationCallback) (native.AsyncOperationContext, error)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	c, err := client.Resolve()
	if err != nil {
		return err
	}
	defer c.Release()

	token, err := begin(c, cb)
	if err != nil {
		return err
	}
	if token != nil {
		token.Release()
	}
	return nil
}
