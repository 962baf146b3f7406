package fabric

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozanturksever/go-fabric/native"
	"github.com/ozanturksever/go-fabric/nativesim"
)

func TestPendingPublishOnce(t *testing.T) {
	p := newPending[int]()

	assert.True(t, p.publish(outcome[int]{val: 1}))
	assert.False(t, p.publish(outcome[int]{val: 2}))
	assert.False(t, p.abandon())

	o, ok := <-p.ch
	require.True(t, ok)
	assert.Equal(t, 1, o.val)
	_, ok = <-p.ch
	assert.False(t, ok)
}

func TestPendingAbandon(t *testing.T) {
	p := newPending[int]()

	assert.True(t, p.abandon())
	assert.False(t, p.publish(outcome[int]{val: 1}))

	_, ok := <-p.ch
	assert.False(t, ok)
}

// callbackFixture builds a callback for a query client on a simulated
// cluster.
func callbackFixture(t *testing.T, op asyncOp[native.QueryClient, native.Unknown, string]) (*asyncCallback[native.QueryClient, native.Unknown, string], *nativesim.Cluster, *bytes.Buffer) {
	t.Helper()

	cat, err := nativesim.NewMemoryCatalog()
	require.NoError(t, err)
	sim := nativesim.NewCluster(cat)

	obj, err := sim.CreateLocalClient(native.IID_IFabricQueryClient)
	require.NoError(t, err)
	ref, err := NewAgileRef[native.QueryClient](sim.Runtime(), obj, native.IID_IFabricQueryClient)
	require.NoError(t, err)
	obj.Release()

	var buf bytes.Buffer
	cb := &asyncCallback[native.QueryClient, native.Unknown, string]{
		op:      op,
		client:  ref,
		pending: newPending[string](),
		logger:  slog.New(slog.NewTextHandler(&buf, nil)),
	}
	cb.refs.Store(1)
	return cb, sim, &buf
}

func TestCallbackRepeatedInvoke(t *testing.T) {
	calls := 0
	cb, sim, buf := callbackFixture(t, asyncOp[native.QueryClient, native.Unknown, string]{
		name: "Probe",
		end: func(c native.QueryClient, _ native.AsyncOperationContext) (native.Unknown, error) {
			calls++
			c.AddRef()
			return c, nil
		},
		project: func(native.Unknown) (string, error) {
			return "done", nil
		},
	})

	cb.Invoke(nil)
	cb.Invoke(nil)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "ignoring repeated completion callback")

	o, ok := <-cb.pending.ch
	require.True(t, ok)
	assert.Equal(t, "done", o.val)

	assert.Equal(t, uint32(0), cb.Release())
	assert.NotContains(t, buf.String(), "native operation abandoned")
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestCallbackEndFailure(t *testing.T) {
	cb, sim, _ := callbackFixture(t, asyncOp[native.QueryClient, native.Unknown, string]{
		name: "Probe",
		end: func(native.QueryClient, native.AsyncOperationContext) (native.Unknown, error) {
			return nil, native.FABRIC_E_TIMEOUT
		},
	})

	cb.Invoke(nil)
	o := <-cb.pending.ch
	var ne *NativeError
	require.ErrorAs(t, o.err, &ne)
	assert.Equal(t, "EndProbe", ne.Op)
	assert.Equal(t, CodeOperationTimedOut, ne.Code())

	cb.Release()
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestCallbackPanicBecomesError(t *testing.T) {
	cb, sim, buf := callbackFixture(t, asyncOp[native.QueryClient, native.Unknown, string]{
		name: "Probe",
		end: func(c native.QueryClient, _ native.AsyncOperationContext) (native.Unknown, error) {
			c.AddRef()
			return c, nil
		},
		project: func(native.Unknown) (string, error) {
			panic("boom")
		},
	})

	assert.NotPanics(t, func() { cb.Invoke(nil) })
	o := <-cb.pending.ch
	require.Error(t, o.err)
	assert.Contains(t, o.err.Error(), "boom")
	assert.Contains(t, buf.String(), "panic in completion callback")

	cb.Release()
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestCallbackReleaseWithoutInvoke(t *testing.T) {
	cb, sim, buf := callbackFixture(t, asyncOp[native.QueryClient, native.Unknown, string]{name: "Probe"})

	unk, err := cb.QueryInterface(native.IID_IFabricAsyncOperationCallback)
	require.NoError(t, err)
	_, err = cb.QueryInterface(native.IID_IFabricQueryClient)
	assert.ErrorIs(t, err, native.E_NOINTERFACE)

	assert.Equal(t, uint32(1), unk.Release())
	assert.Equal(t, uint32(0), cb.Release())

	_, ok := <-cb.pending.ch
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "native operation abandoned")
	assert.Equal(t, int64(0), sim.LiveObjects())
}
