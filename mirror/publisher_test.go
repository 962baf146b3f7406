package mirror_test

import (
	"context"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/mirror"
	"github.com/ozanturksever/go-fabric/native"
	"github.com/ozanturksever/go-fabric/nativesim"
	"github.com/ozanturksever/go-fabric/testutil"
)

type fixture struct {
	catalog *nativesim.MemoryCatalog
	sim     *nativesim.Cluster
	sm      *fabric.ServiceManagementClient
	qc      *fabric.QueryClient
	ns      *testutil.NATSServer
}

func newFixture(t *testing.T, opts ...fabric.Option) *fixture {
	t.Helper()

	cat := testutil.SampleCatalog(t)
	sim := nativesim.NewCluster(cat)
	c := testutil.NewClient(t, sim, opts...)

	sm, err := c.ServiceManagementClient()
	require.NoError(t, err)
	t.Cleanup(func() { sm.Close() })
	qc, err := c.QueryClient()
	require.NoError(t, err)
	t.Cleanup(func() { qc.Close() })

	return &fixture{catalog: cat, sim: sim, sm: sm, qc: qc, ns: testutil.StartNATS(t)}
}

func (f *fixture) publisher(t *testing.T, cfg mirror.Config) *mirror.Publisher {
	t.Helper()
	if cfg.Conn == nil && len(cfg.NATSURLs) == 0 {
		cfg.Conn = f.ns.Connect(t)
	}
	if len(cfg.Services) == 0 {
		cfg.Services = []string{testutil.OrdersService, testutil.WebService, testutil.RegionsService}
	}
	if cfg.Instance == "" {
		cfg.Instance = "test-instance"
	}
	pub, err := mirror.NewPublisher(context.Background(), cfg, f.sm, f.qc)
	require.NoError(t, err)
	t.Cleanup(pub.Close)
	return pub
}

func TestPublisherSyncOnce(t *testing.T) {
	f := newFixture(t)
	pub := f.publisher(t, mirror.Config{})
	ctx := context.Background()

	require.NoError(t, pub.SyncOnce(ctx))

	status := pub.Status()
	assert.Equal(t, uint64(1), status.Syncs)
	assert.Equal(t, 3, status.Services)
	assert.Equal(t, 5, status.Partitions)
	assert.Empty(t, status.LastError)

	cat := mirror.NewCatalog(pub.KeyValue())
	records, err := cat.Records(ctx, testutil.OrdersService)
	require.NoError(t, err)
	require.Len(t, records, 2)

	low := records[0]
	assert.Equal(t, testutil.OrdersLowID, low.Partition.ID)
	assert.Equal(t, "Stateful", low.ServiceKind)
	assert.Equal(t, "test-instance", low.Instance)
	assert.Equal(t, []nativesim.Endpoint{
		{Address: "tcp://10.0.0.1:20001", Role: "StatefulPrimary"},
		{Address: "tcp://10.0.0.2:20001", Role: "StatefulSecondary"},
		{Address: "tcp://10.0.0.3:20001", Role: "StatefulSecondary"},
	}, low.Partition.Endpoints)
	assert.Equal(t, int64(12), records[1].Partition.LastQuorumLossSeconds)

	names, err := cat.Services(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.OrdersService, testutil.RegionsService, testutil.WebService}, names)
}

func TestCatalogServesMirroredPartitions(t *testing.T) {
	f := newFixture(t)
	pub := f.publisher(t, mirror.Config{})
	require.NoError(t, pub.SyncOnce(context.Background()))

	// A simulated cluster answering from the bucket resolves what the
	// source cluster resolves.
	replica := nativesim.NewCluster(mirror.NewCatalog(pub.KeyValue()))
	c := testutil.NewClient(t, replica)
	sm, err := c.ServiceManagementClient()
	require.NoError(t, err)
	defer sm.Close()

	for _, key := range []int64{0, 499, 500, 999} {
		want, err := f.sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, key, 0)
		require.NoError(t, err)
		got, err := sm.ResolveServicePartition(context.Background(), testutil.OrdersService, fabric.PartitionKeyTypeInt64, key, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := sm.ResolveNamedPartition(context.Background(), testutil.RegionsService, "east", 0)
	require.NoError(t, err)
	assert.Equal(t, testutil.RegionEastID, got.Info.PartitionID())

	_, err = sm.ResolveServicePartition(context.Background(), "fabric:/Shop/Missing", fabric.PartitionKeyTypeNone, 0, 0)
	assert.Equal(t, fabric.CodeServiceNotFound, fabric.CodeOf(err))
}

func TestPublisherRemovesStalePartitions(t *testing.T) {
	f := newFixture(t)
	pub := f.publisher(t, mirror.Config{})
	ctx := context.Background()
	require.NoError(t, pub.SyncOnce(ctx))

	require.NoError(t, f.catalog.Put(nativesim.Service{
		Name: testutil.RegionsService,
		Kind: nativesim.KindStateful,
		Partitions: []nativesim.Partition{
			{ID: testutil.RegionEastID, Kind: nativesim.PartitionNamed, Name: "east"},
		},
	}))
	f.catalog.Delete(testutil.WebService)

	require.NoError(t, pub.SyncOnce(ctx))

	cat := mirror.NewCatalog(pub.KeyValue())
	records, err := cat.Records(ctx, testutil.RegionsService)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, testutil.RegionEastID, records[0].Partition.ID)

	_, err = cat.Service(ctx, testutil.WebService)
	assert.ErrorIs(t, err, nativesim.ErrServiceNotFound)
	assert.Equal(t, 3, pub.Status().Partitions)
}

func TestPublisherKeepsRecordsOnFailure(t *testing.T) {
	f := newFixture(t)
	var statuses []mirror.Status
	pub := f.publisher(t, mirror.Config{
		Services: []string{testutil.OrdersService},
		OnSync:   func(s mirror.Status) { statuses = append(statuses, s) },
	})
	ctx := context.Background()
	require.NoError(t, pub.SyncOnce(ctx))

	f.sim.FailEnd(nativesim.OpResolveServicePartition, native.E_FAIL, 1)
	err := pub.SyncOnce(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), testutil.OrdersService)

	records, err := mirror.NewCatalog(pub.KeyValue()).Records(ctx, testutil.OrdersService)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.Len(t, statuses, 2)
	assert.Empty(t, statuses[0].LastError)
	assert.NotEmpty(t, statuses[1].LastError)
}

func TestPublisherMetrics(t *testing.T) {
	m := fabric.NewMetrics()
	f := newFixture(t, fabric.WithMetrics(m))
	pub := f.publisher(t, mirror.Config{Bucket: "parts", Metrics: m})

	require.NoError(t, pub.SyncOnce(context.Background()))

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.MirrorSyncTotal.WithLabelValues("parts", "success")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.MirrorPartitions.WithLabelValues("parts", testutil.OrdersService)))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.MirrorPartitions.WithLabelValues("parts", testutil.WebService)))
	assert.Equal(t, 3.0, promtestutil.ToFloat64(m.OperationsTotal.WithLabelValues("GetPartitionList", fabric.OutcomeCompleted)))
	assert.Equal(t, 5.0, promtestutil.ToFloat64(m.OperationsTotal.WithLabelValues("ResolveServicePartition", fabric.OutcomeCompleted)))
}

func TestPublisherRun(t *testing.T) {
	f := newFixture(t)
	pub := f.publisher(t, mirror.Config{Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pub.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.Status().Syncs >= 3 }, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestCatalogWatch(t *testing.T) {
	f := newFixture(t)
	pub := f.publisher(t, mirror.Config{Services: []string{testutil.WebService, testutil.RegionsService}})
	cat := mirror.NewCatalog(pub.KeyValue())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := cat.Watch(ctx, testutil.RegionsService)
	require.NoError(t, err)

	require.NoError(t, pub.SyncOnce(ctx))

	seen := map[string]mirror.Event{}
	for len(seen) < 2 {
		select {
		case ev := <-events:
			assert.Equal(t, mirror.EventPut, ev.Type)
			assert.Equal(t, testutil.RegionsService, ev.Service)
			require.NotNil(t, ev.Record)
			seen[ev.Record.Partition.Name] = ev
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for watch events")
		}
	}
	assert.Equal(t, testutil.RegionWestID, seen["west"].PartitionID)

	f.catalog.Delete(testutil.RegionsService)
	require.NoError(t, pub.SyncOnce(ctx))

	deleted := 0
	for deleted < 2 {
		select {
		case ev := <-events:
			if ev.Type == mirror.EventDelete {
				assert.Nil(t, ev.Record)
				deleted++
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for delete events")
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config mirror.Config
		errMsg string
	}{
		{"no NATS", mirror.Config{Services: []string{"fabric:/a"}}, "at least one NATS URL is required"},
		{"no services", mirror.Config{NATSURLs: []string{"nats://x"}}, "at least one service is required"},
		{"bad service", mirror.Config{NATSURLs: []string{"nats://x"}, Services: []string{"a"}}, "Services[0] must be a fabric:/ name"},
		{"bad bucket", mirror.Config{NATSURLs: []string{"nats://x"}, Services: []string{"fabric:/a"}, Bucket: "a.b"}, `Bucket "a.b" contains '.'`},
		{"negative interval", mirror.Config{NATSURLs: []string{"nats://x"}, Services: []string{"fabric:/a"}, Interval: -1}, "Interval must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}

	valid := mirror.Config{NATSURLs: []string{"nats://x"}, Services: []string{"fabric:/a"}}
	assert.NoError(t, valid.Validate())
}
