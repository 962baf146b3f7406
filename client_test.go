package fabric_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/native"
	"github.com/ozanturksever/go-fabric/nativesim"
	"github.com/ozanturksever/go-fabric/testutil"
)

func serviceClient(t *testing.T, c *fabric.Client) *fabric.ServiceManagementClient {
	t.Helper()
	sm, err := c.ServiceManagementClient()
	require.NoError(t, err)
	t.Cleanup(func() { sm.Close() })
	return sm
}

func queryClient(t *testing.T, c *fabric.Client) *fabric.QueryClient {
	t.Helper()
	qc, err := c.QueryClient()
	require.NoError(t, err)
	t.Cleanup(func() { qc.Close() })
	return qc
}

func TestResolveInt64Partition(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))

	p, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 742, 0)
	require.NoError(t, err)

	assert.Equal(t, fabric.ServicePartitionKindInt64Range, p.Kind)
	assert.Equal(t, fabric.Int64RangePartitionInformation{ID: testutil.OrdersHighID, LowKey: 500, HighKey: 999}, p.Info)
	assert.Equal(t, testutil.OrdersService, p.ServiceName)

	primary, ok := p.Primary()
	require.True(t, ok)
	assert.Equal(t, "tcp://10.0.0.2:20002", primary.Address)
}

func TestResolveSingletonPartition(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))

	p, err := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, time.Second)
	require.NoError(t, err)

	assert.Equal(t, fabric.SingletonPartitionInformation{ID: testutil.WebID}, p.Info)
	assert.Equal(t, []fabric.ServiceEndpoint{
		{Address: "http://10.0.0.1:8080", Role: fabric.EndpointRoleStateless},
		{Address: "http://10.0.0.2:8080", Role: fabric.EndpointRoleStateless},
	}, p.Endpoints)
	_, ok := p.Primary()
	assert.False(t, ok)
}

func TestResolveNamedPartition(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))

	p, err := sm.ResolveNamedPartition(context.Background(), testutil.RegionsService, "west", 0)
	require.NoError(t, err)
	assert.Equal(t, fabric.NamedPartitionInformation{ID: testutil.RegionWestID, Name: "west"}, p.Info)
	assert.NotNil(t, p.Endpoints)
	assert.Empty(t, p.Endpoints)
}

func TestResolveRejectsBadArguments(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))
	ctx := context.Background()

	_, err := sm.ResolveServicePartition(ctx, testutil.RegionsService, fabric.PartitionKeyTypeString, 0, 0)
	assert.ErrorIs(t, err, fabric.ErrInvalidArgument)

	_, err = sm.ResolveServicePartition(ctx, testutil.OrdersService, fabric.PartitionKeyTypeInvalid, 0, 0)
	assert.ErrorIs(t, err, fabric.ErrInvalidArgument)

	_, err = sm.ResolveServicePartition(ctx, "fabric:/a\x00b", fabric.PartitionKeyTypeNone, 0, 0)
	assert.ErrorIs(t, err, fabric.ErrInvalidArgument)

	assert.Equal(t, 0, sim.Calls(nativesim.OpResolveServicePartition))
}

func TestResolveKeyMissIsNotRetried(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))

	_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 5000, 0)
	assert.Equal(t, fabric.CodeInvalidPartitionKey, fabric.CodeOf(err))
	assert.Equal(t, 1, sim.Calls(nativesim.OpResolveServicePartition))

	var ne *fabric.NativeError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "EndResolveServicePartition", ne.Op)
}

func TestResolveUnknownServiceRetriesUntilExhausted(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))

	_, err := sm.ResolveServicePartition(context.Background(), "fabric:/Shop/Missing", fabric.PartitionKeyTypeNone, 0, 0)
	assert.Equal(t, fabric.CodeServiceNotFound, fabric.CodeOf(err))
	assert.Equal(t, fabric.DefaultRetryMaxAttempts, sim.Calls(nativesim.OpResolveServicePartition))
}

func TestResolveRetriesTransientEndFailures(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))
	sim.FailEnd(nativesim.OpResolveServicePartition, native.FABRIC_E_LOADBALANCER_NOT_READY, 3)

	p, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, testutil.OrdersLowID, p.Info.PartitionID())
	assert.Equal(t, 4, sim.Calls(nativesim.OpResolveServicePartition))
}

func TestBeginFailureIsReturnedImmediately(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))
	sim.FailBegin(nativesim.OpResolveServicePartition, native.E_INVALIDARG, 1)

	_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
	var ne *fabric.NativeError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "BeginResolveServicePartition", ne.Op)
	assert.Equal(t, native.E_INVALIDARG, ne.HRESULT)
	assert.Equal(t, 1, sim.Calls(nativesim.OpResolveServicePartition))
}

func TestBeginTransientFailureIsRetried(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sm := serviceClient(t, testutil.NewClient(t, sim))
	sim.FailBegin(nativesim.OpResolveServicePartition, native.FABRIC_E_OBJECT_CLOSED, 2)

	_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, sim.Calls(nativesim.OpResolveServicePartition))
}

func TestAbandonedOperation(t *testing.T) {
	for _, inline := range []bool{false, true} {
		sim := testutil.StartSimCluster(t, nativesim.Synchronous(inline))
		sm := serviceClient(t, testutil.NewClient(t, sim))
		sim.DropCallbacks(nativesim.OpResolveServicePartition, 1)

		_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
		require.ErrorIs(t, err, fabric.ErrAbandoned)
		var ae *fabric.AbandonedError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "ResolveServicePartition", ae.Op)
		assert.Equal(t, 1, sim.Calls(nativesim.OpResolveServicePartition))

		// The next call is unaffected.
		_, err = sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
		assert.NoError(t, err)
	}
}

func TestSynchronousCompletion(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.Synchronous(true))
	sm := serviceClient(t, testutil.NewClient(t, sim))

	done := make(chan error, 1)
	go func() {
		_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("synchronous completion deadlocked")
	}
}

func TestOperationTimeout(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.Delay(time.Second))
	sm := serviceClient(t, testutil.NewClient(t, sim))

	start := time.Now()
	_, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 20*time.Millisecond)
	assert.Equal(t, fabric.CodeOperationTimedOut, fabric.CodeOf(err))
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestContextCancellationStopsWaiting(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.Delay(300*time.Millisecond))
	c := testutil.NewClient(t, sim)
	sm := serviceClient(t, c)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := sm.ResolveServicePartition(ctx, testutil.OrdersService, fabric.PartitionKeyTypeInt64, 1, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The late completion is discarded and cleans up after itself.
	sim.Wait()
	require.NoError(t, sm.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestConcurrentOperations(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	c := testutil.NewClient(t, sim)
	sm := serviceClient(t, c)
	qc := queryClient(t, c)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			key := int64(i * 31)
			p, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, key, 0)
			if err != nil {
				errs <- err
				return
			}
			if !p.Info.(fabric.Int64RangePartitionInformation).Contains(key) {
				errs <- errors.New("resolved partition does not contain key")
				return
			}
			if _, err := qc.GetPartitionList(context.Background(), testutil.OrdersService, 0); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	sim.Wait()
	require.NoError(t, sm.Close())
	require.NoError(t, qc.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
	assert.Equal(t, 0, sim.Loads())
}

func TestGetPartitionList(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	qc := queryClient(t, testutil.NewClient(t, sim))

	items, err := qc.GetPartitionList(context.Background(), testutil.OrdersService, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	high, ok := items[1].(fabric.StatefulServicePartition)
	require.True(t, ok)
	assert.Equal(t, fabric.StatefulServicePartition{
		Info:                   fabric.Int64RangePartitionInformation{ID: testutil.OrdersHighID, LowKey: 500, HighKey: 999},
		TargetReplicaSetSize:   3,
		MinReplicaSetSize:      2,
		HealthState:            fabric.HealthStateWarning,
		PartitionStatus:        fabric.PartitionStatusReconfiguring,
		LastQuorumLossDuration: 12 * time.Second,
	}, high)

	items, err = qc.GetPartitionList(context.Background(), testutil.WebService, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fabric.StatelessServicePartition{
		Info:            fabric.SingletonPartitionInformation{ID: testutil.WebID},
		InstanceCount:   2,
		HealthState:     fabric.HealthStateOk,
		PartitionStatus: fabric.PartitionStatusReady,
	}, items[0])
}

func TestGetPartition(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	qc := queryClient(t, testutil.NewClient(t, sim))
	ctx := context.Background()

	item, err := qc.GetPartition(ctx, testutil.RegionsService, testutil.RegionEastID, 0)
	require.NoError(t, err)
	assert.Equal(t, fabric.NamedPartitionInformation{ID: testutil.RegionEastID, Name: "east"}, item.PartitionInformation())
	assert.Equal(t, fabric.ServiceKindStateful, item.ServiceKind())

	_, err = qc.GetPartition(ctx, testutil.RegionsService, uuid.New(), 0)
	assert.ErrorIs(t, err, fabric.ErrPartitionNotFound)

	_, err = qc.GetPartition(ctx, testutil.RegionsService, uuid.Nil, 0)
	assert.ErrorIs(t, err, fabric.ErrInvalidArgument)
}

func TestNewTriesLibraryPathsInOrder(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.LibraryPaths(`C:\SF\bin\FabricClient.dll`))

	c, err := fabric.New(fabric.Config{
		LibraryPaths: []string{`D:\missing\FabricClient.dll`, `C:\SF\bin\FabricClient.dll`},
	}, fabric.WithLoader(sim))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = fabric.New(fabric.Config{}, fabric.WithLoader(sim))
	require.ErrorIs(t, err, nativesim.ErrLibraryNotFound)
	var le *native.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, native.DefaultLibrary, le.Path)
}

func TestNewFactoryFailure(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	sim.FailFactory(native.E_OUTOFMEMORY)

	_, err := fabric.New(fabric.Config{}, fabric.WithLoader(sim))
	var ne *fabric.NativeError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, native.FactorySymbol, ne.Op)
	assert.Equal(t, native.E_OUTOFMEMORY, ne.HRESULT)
	assert.Equal(t, 0, sim.Loads())
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestNewNonAgileRoot(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.NonAgile(true))

	_, err := fabric.New(fabric.Config{}, fabric.WithLoader(sim))
	assert.ErrorIs(t, err, native.CO_E_NOT_SUPPORTED)
	assert.Equal(t, int64(0), sim.LiveObjects())
}

func TestNewDefaultLoaderUnsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("native runtime may be present")
	}
	_, err := fabric.New(fabric.Config{})
	assert.ErrorIs(t, err, native.ErrUnsupportedPlatform)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := fabric.New(fabric.Config{OperationTimeout: -time.Second})
	assert.ErrorIs(t, err, fabric.ErrInvalidArgument)
}

func TestClosedClients(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	c := testutil.NewClient(t, sim)
	sm := serviceClient(t, c)

	require.NoError(t, sm.Close())
	require.NoError(t, sm.Close())
	_, err := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, 0)
	assert.ErrorIs(t, err, fabric.ErrClientClosed)

	qc := queryClient(t, c)
	require.NoError(t, c.Close())
	_, err = c.ServiceManagementClient()
	assert.ErrorIs(t, err, fabric.ErrClientClosed)

	// Typed clients outlive the Client that made them.
	_, err = qc.GetPartitionList(context.Background(), testutil.WebService, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sim.Loads())

	require.NoError(t, qc.Close())
	assert.Equal(t, 0, sim.Loads())
}

func TestCloseDuringOperations(t *testing.T) {
	sim := testutil.StartSimCluster(t, nativesim.Delay(200*time.Millisecond))
	c := testutil.NewClient(t, sim)
	sm := serviceClient(t, c)
	qc := queryClient(t, c)

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, 0)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := qc.GetPartitionList(context.Background(), testutil.OrdersService, 0)
			errs <- err
		}()
	}

	require.Eventually(t, func() bool {
		return sim.Calls(nativesim.OpResolveServicePartition) == n && sim.Calls(nativesim.OpGetPartitionList) == n
	}, 5*time.Second, time.Millisecond)

	require.NoError(t, sm.Close())
	require.NoError(t, qc.Close())
	require.NoError(t, c.Close())

	// The library stays loaded for the operations still running.
	assert.Equal(t, 1, sim.Loads())

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	_, err := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, 0)
	assert.ErrorIs(t, err, fabric.ErrClientClosed)

	sim.Wait()
	assert.Equal(t, 0, sim.Loads())
	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestClientCloseRacingTypedClients(t *testing.T) {
	sim := testutil.StartSimCluster(t)

	for i := 0; i < 200; i++ {
		c := testutil.NewClient(t, sim)

		var (
			wg sync.WaitGroup
			sm *fabric.ServiceManagementClient
			err error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			sm, err = c.ServiceManagementClient()
		}()
		go func() {
			defer wg.Done()
			c.Close()
		}()
		wg.Wait()

		if err != nil {
			require.ErrorIs(t, err, fabric.ErrClientClosed)
		} else {
			_, rerr := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, 0)
			require.NoError(t, rerr)
			require.Equal(t, 1, sim.Loads())
			require.NoError(t, sm.Close())
		}
		require.Equal(t, 0, sim.Loads())
	}

	sim.Wait()
	assert.Equal(t, int64(0), sim.LiveObjects())
	assert.Equal(t, int64(0), sim.OverReleases())
}

func TestOperationMetrics(t *testing.T) {
	sim := testutil.StartSimCluster(t)
	m := fabric.NewMetrics()
	sm := serviceClient(t, testutil.NewClient(t, sim, fabric.WithMetrics(m)))
	sim.FailEnd(nativesim.OpResolveServicePartition, native.FABRIC_E_LOADBALANCER_NOT_READY, 2)

	_, err := sm.ResolveServicePartition(context.Background(), testutil.WebService, fabric.PartitionKeyTypeNone, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.OperationsTotal.WithLabelValues("ResolveServicePartition", fabric.OutcomeCompleted)))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.OperationsTotal.WithLabelValues("ResolveServicePartition", fabric.OutcomeFailed)))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.RetriesTotal.WithLabelValues("ResolveServicePartition", "PLBNotReady")))
	assert.Equal(t, 0.0, promtestutil.ToFloat64(m.OperationsInFlight.WithLabelValues("ResolveServicePartition")))
}
