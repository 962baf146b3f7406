package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/nativesim"
)

// Services in the sample catalog.
const (
	OrdersService  = "fabric:/Shop/Orders"
	WebService     = "fabric:/Shop/Web"
	RegionsService = "fabric:/Shop/Regions"
)

// Partition IDs in the sample catalog.
var (
	OrdersLowID  = uuid.MustParse("6c4a3f0e-0f3a-4a55-9d38-0b8f5f7b5a01")
	OrdersHighID = uuid.MustParse("6c4a3f0e-0f3a-4a55-9d38-0b8f5f7b5a02")
	WebID        = uuid.MustParse("0d1f9e8a-7b6c-4d5e-8f90-a1b2c3d4e5f6")
	RegionEastID = uuid.MustParse("a3c1d2e4-1111-4a2b-9c3d-000000000001")
	RegionWestID = uuid.MustParse("a3c1d2e4-1111-4a2b-9c3d-000000000002")
)

// SampleCatalog returns a catalog with a ranged stateful service, a
// singleton stateless service and a service with named partitions.
func SampleCatalog(t *testing.T) *nativesim.MemoryCatalog {
	t.Helper()

	cat, err := nativesim.NewMemoryCatalog(
		nativesim.Service{
			Name: OrdersService,
			Kind: nativesim.KindStateful,
			Partitions: []nativesim.Partition{
				{
					ID: OrdersLowID, Kind: nativesim.PartitionInt64Range, LowKey: 0, HighKey: 499,
					TargetReplicaSetSize: 3, MinReplicaSetSize: 2,
					Endpoints: []nativesim.Endpoint{
						{Address: "tcp://10.0.0.1:20001", Role: "StatefulPrimary"},
						{Address: "tcp://10.0.0.2:20001", Role: "StatefulSecondary"},
						{Address: "tcp://10.0.0.3:20001", Role: "StatefulSecondary"},
					},
				},
				{
					ID: OrdersHighID, Kind: nativesim.PartitionInt64Range, LowKey: 500, HighKey: 999,
					TargetReplicaSetSize: 3, MinReplicaSetSize: 2,
					Health: "Warning", Status: "Reconfiguring", LastQuorumLossSeconds: 12,
					Endpoints: []nativesim.Endpoint{
						{Address: "tcp://10.0.0.2:20002", Role: "StatefulPrimary"},
					},
				},
			},
		},
		nativesim.Service{
			Name: WebService,
			Kind: nativesim.KindStateless,
			Partitions: []nativesim.Partition{
				{
					ID: WebID, Kind: nativesim.PartitionSingleton, InstanceCount: 2,
					Endpoints: []nativesim.Endpoint{
						{Address: "http://10.0.0.1:8080", Role: "Stateless"},
						{Address: "http://10.0.0.2:8080", Role: "Stateless"},
					},
				},
			},
		},
		nativesim.Service{
			Name: RegionsService,
			Kind: nativesim.KindStateful,
			Partitions: []nativesim.Partition{
				{ID: RegionEastID, Kind: nativesim.PartitionNamed, Name: "east",
					Endpoints: []nativesim.Endpoint{{Address: "tcp://east:1", Role: "StatefulPrimary"}}},
				{ID: RegionWestID, Kind: nativesim.PartitionNamed, Name: "west"},
			},
		},
	)
	if err != nil {
		t.Fatalf("failed to build sample catalog: %v", err)
	}
	return cat
}

// StartSimCluster returns a simulated cluster serving the sample catalog.
func StartSimCluster(t *testing.T, opts ...nativesim.Option) *nativesim.Cluster {
	t.Helper()
	return nativesim.NewCluster(SampleCatalog(t), opts...)
}

// NewClient creates a client backed by sim and closes it when the test
// ends. Retries are paced at one millisecond.
func NewClient(t *testing.T, sim *nativesim.Cluster, opts ...fabric.Option) *fabric.Client {
	t.Helper()

	opts = append([]fabric.Option{
		fabric.WithLoader(sim),
		fabric.WithRetryPolicy(fabric.RetryPolicy{Interval: time.Millisecond, MaxAttempts: fabric.DefaultRetryMaxAttempts}),
	}, opts...)

	c, err := fabric.New(fabric.Config{}, opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
	})
	return c
}
