package fabric_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/native"
	"github.com/ozanturksever/go-fabric/nativesim"
	"github.com/ozanturksever/go-fabric/testutil"
)

// newRoot creates a root object on sim and returns it with the runtime
// that registers it.
func newRoot(t *testing.T, sim *nativesim.Cluster) (native.Unknown, native.Runtime) {
	t.Helper()
	obj, err := sim.CreateLocalClient(native.IID_IFabricQueryClient)
	require.NoError(t, err)
	return obj, sim.Runtime()
}

func TestAgileRefResolve(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	obj, rt := newRoot(t, sim)

	ref, err := fabric.NewAgileRef[native.QueryClient](rt, obj, native.IID_IFabricQueryClient)
	require.NoError(t, err)
	obj.Release()
	assert.Equal(t, native.IID_IFabricQueryClient, ref.IID())

	runtime.LockOSThread()
	qc, err := ref.Resolve()
	require.NoError(t, err)
	qc.Release()
	runtime.UnlockOSThread()

	ref.Release()
	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestAgileRefClone(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	obj, rt := newRoot(t, sim)

	ref, err := fabric.NewAgileRef[native.Unknown](rt, obj, native.IID_IUnknown)
	require.NoError(t, err)
	obj.Release()

	clone, err := ref.Clone()
	require.NoError(t, err)

	ref.Release()
	ref.Release()

	_, err = ref.Resolve()
	assert.ErrorIs(t, err, fabric.ErrReleased)
	_, err = ref.Clone()
	assert.ErrorIs(t, err, fabric.ErrReleased)

	// The registration survives while a clone holds it.
	unk, err := clone.Resolve()
	require.NoError(t, err)
	unk.Release()

	clone.Release()
	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestAgileRefInterfaceMismatch(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	obj, rt := newRoot(t, sim)
	defer obj.Release()

	// The root does not implement the callback interface.
	ref, err := fabric.NewAgileRef[native.Unknown](rt, obj, native.IID_IFabricAsyncOperationCallback)
	require.NoError(t, err)
	defer ref.Release()
	_, err = ref.Resolve()
	assert.ErrorIs(t, err, native.E_NOINTERFACE)

	// The interface resolves but does not satisfy the Go type.
	mismatched, err := fabric.NewAgileRef[native.AsyncOperationCallback](rt, obj, native.IID_IFabricQueryClient)
	require.NoError(t, err)
	defer mismatched.Release()
	_, err = mismatched.Resolve()
	var ne *fabric.NativeError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, native.E_NOINTERFACE, ne.HRESULT)
}

func TestAgileRefNil(t *testing.T) {
	_, err := fabric.NewAgileRef[native.Unknown](native.FreeThreaded{}, nil, native.IID_IUnknown)
	assert.ErrorIs(t, err, native.E_POINTER)
}

func TestAgileRefConcurrentResolve(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	obj, rt := newRoot(t, sim)

	ref, err := fabric.NewAgileRef[native.ServiceManagementClient](rt, obj, native.IID_IFabricServiceManagementClient)
	require.NoError(t, err)
	obj.Release()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		handle, err := ref.Clone()
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer handle.Release()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			for j := 0; j < 100; j++ {
				sc, err := handle.Resolve()
				if err != nil {
					t.Error(err)
					return
				}
				sc.Release()
			}
		}()
	}
	wg.Wait()
	ref.Release()

	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestAgileRefCloneRacingLastRelease(t *testing.T) {
	sim := testutil.StartSimCluster(t)

	for i := 0; i < 500; i++ {
		obj, rt := newRoot(t, sim)
		ref, err := fabric.NewAgileRef[native.Unknown](rt, obj, native.IID_IUnknown)
		require.NoError(t, err)
		obj.Release()

		var (
			wg    sync.WaitGroup
			clone *fabric.AgileRef[native.Unknown]
			cerr  error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			clone, cerr = ref.Clone()
		}()
		go func() {
			defer wg.Done()
			ref.Release()
		}()
		wg.Wait()

		if cerr != nil {
			require.ErrorIs(t, cerr, fabric.ErrReleased)
			continue
		}
		runtime.LockOSThread()
		unk, err := clone.Resolve()
		require.NoError(t, err)
		unk.Release()
		runtime.UnlockOSThread()
		clone.Release()
	}

	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestAgileRefCloneOfReleasedRegistration(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	obj, rt := newRoot(t, sim)

	ref, err := fabric.NewAgileRef[native.Unknown](rt, obj, native.IID_IUnknown)
	require.NoError(t, err)
	obj.Release()
	clone, err := ref.Clone()
	require.NoError(t, err)

	ref.Release()
	clone.Release()

	_, err = clone.Clone()
	assert.ErrorIs(t, err, fabric.ErrReleased)
	assert.Equal(t, int64(0), sim.LiveObjects())
}
