package fabric

import (
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozanturksever/go-fabric/native"
)

func wide(t *testing.T, s string) *uint16 {
	t.Helper()
	p, err := native.UTF16PtrFromString(s)
	require.NoError(t, err)
	return p
}

func TestProjectServicePartitionKinds(t *testing.T) {
	id := uuid.New()
	gid := native.GUIDFromUUID(id)

	tests := []struct {
		name string
		info native.ServicePartitionInformation
		want ServicePartitionInformation
	}{
		{
			name: "singleton",
			info: native.ServicePartitionInformation{
				Kind:  native.ServicePartitionKindSingleton,
				Value: unsafe.Pointer(&native.SingletonPartitionInformation{ID: gid}),
			},
			want: SingletonPartitionInformation{ID: id},
		},
		{
			name: "int64 range",
			info: native.ServicePartitionInformation{
				Kind:  native.ServicePartitionKindInt64Range,
				Value: unsafe.Pointer(&native.Int64RangePartitionInformation{ID: gid, LowKey: -10, HighKey: 10}),
			},
			want: Int64RangePartitionInformation{ID: id, LowKey: -10, HighKey: 10},
		},
		{
			name: "named",
			info: native.ServicePartitionInformation{
				Kind:  native.ServicePartitionKindNamed,
				Value: unsafe.Pointer(&native.NamedPartitionInformation{ID: gid, Name: wide(t, "east")}),
			},
			want: NamedPartitionInformation{ID: id, Name: "east"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eps := []native.ResolvedServiceEndpoint{
				{Address: wide(t, "tcp://10.0.0.1:1"), Role: native.ServiceRoleStatefulPrimary},
				{Address: wide(t, "tcp://10.0.0.2:1"), Role: native.ServiceRoleStatefulSecondary},
			}
			raw := &native.ResolvedServicePartition{
				Info:          tt.info,
				EndpointCount: uint32(len(eps)),
				Endpoints:     &eps[0],
				ServiceName:   wide(t, "fabric:/App/Svc"),
			}

			p, err := projectServicePartition(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), p.Kind)
			assert.Equal(t, tt.want, p.Info)
			assert.Equal(t, "fabric:/App/Svc", p.ServiceName)
			assert.Equal(t, []ServiceEndpoint{
				{Address: "tcp://10.0.0.1:1", Role: EndpointRoleStatefulPrimary},
				{Address: "tcp://10.0.0.2:1", Role: EndpointRoleStatefulSecondary},
			}, p.Endpoints)
		})
	}
}

func TestProjectServicePartitionInvalidKind(t *testing.T) {
	for _, kind := range []native.ServicePartitionKind{native.ServicePartitionKindInvalid, 42} {
		raw := &native.ResolvedServicePartition{Info: native.ServicePartitionInformation{Kind: kind}}

		p, err := projectServicePartition(raw)
		require.NoError(t, err)
		assert.Equal(t, ServicePartitionKindInvalid, p.Kind)
		assert.Nil(t, p.Info)
	}
}

func TestProjectServicePartitionEmptyEndpoints(t *testing.T) {
	raw := &native.ResolvedServicePartition{
		Info: native.ServicePartitionInformation{
			Kind:  native.ServicePartitionKindSingleton,
			Value: unsafe.Pointer(&native.SingletonPartitionInformation{}),
		},
	}

	p, err := projectServicePartition(raw)
	require.NoError(t, err)
	assert.NotNil(t, p.Endpoints)
	assert.Empty(t, p.Endpoints)
	assert.Equal(t, "", p.ServiceName)
}

func TestProjectServicePartitionNullEndpointArray(t *testing.T) {
	raw := &native.ResolvedServicePartition{EndpointCount: 3}

	_, err := projectServicePartition(raw)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Endpoints", de.Field)
	assert.ErrorIs(t, err, native.ErrNullArray)
}

func TestProjectServicePartitionInvalidUTF16Address(t *testing.T) {
	bad := []uint16{'t', 'c', 'p', 0xD800, 0}
	eps := []native.ResolvedServiceEndpoint{
		{Address: wide(t, "tcp://ok:1"), Role: native.ServiceRoleStateless},
		{Address: &bad[0], Role: native.ServiceRoleStateless},
	}
	raw := &native.ResolvedServicePartition{EndpointCount: 2, Endpoints: &eps[0]}

	p, err := projectServicePartition(raw)
	assert.Nil(t, p)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Endpoints[1].Address", de.Field)
	assert.ErrorIs(t, err, native.ErrInvalidUTF16)
}

func TestProjectEndpointRoleUnknown(t *testing.T) {
	ep, err := projectServiceEndpoint(&native.ResolvedServiceEndpoint{Role: 99})
	require.NoError(t, err)
	assert.Equal(t, EndpointRoleInvalid, ep.Role)
	assert.Equal(t, "", ep.Address)
}

func TestProjectPartitionList(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	info1 := native.ServicePartitionInformation{
		Kind:  native.ServicePartitionKindInt64Range,
		Value: unsafe.Pointer(&native.Int64RangePartitionInformation{ID: native.GUIDFromUUID(id1), LowKey: 0, HighKey: 9}),
	}
	info2 := native.ServicePartitionInformation{
		Kind:  native.ServicePartitionKindSingleton,
		Value: unsafe.Pointer(&native.SingletonPartitionInformation{ID: native.GUIDFromUUID(id2)}),
	}
	items := []native.ServicePartitionQueryResultItem{
		{
			Kind: native.ServiceKindStateful,
			Value: unsafe.Pointer(&native.StatefulServicePartitionQueryResultItem{
				PartitionInformation:            &info1,
				TargetReplicaSetSize:            3,
				MinReplicaSetSize:               2,
				HealthState:                     native.HealthStateWarning,
				PartitionStatus:                 native.PartitionStatusInQuorumLoss,
				LastQuorumLossDurationInSeconds: 90,
			}),
		},
		{
			Kind: native.ServiceKindStateless,
			Value: unsafe.Pointer(&native.StatelessServicePartitionQueryResultItem{
				PartitionInformation: &info2,
				InstanceCount:        5,
				HealthState:          native.HealthStateUnknown,
				PartitionStatus:      native.PartitionStatusReady,
			}),
		},
	}
	raw := &native.ServicePartitionQueryResultList{Count: 2, Items: &items[0]}

	got, err := projectPartitionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []PartitionQueryResultItem{
		StatefulServicePartition{
			Info:                   Int64RangePartitionInformation{ID: id1, LowKey: 0, HighKey: 9},
			TargetReplicaSetSize:   3,
			MinReplicaSetSize:      2,
			HealthState:            HealthStateWarning,
			PartitionStatus:        PartitionStatusInQuorumLoss,
			LastQuorumLossDuration: 90 * time.Second,
		},
		StatelessServicePartition{
			Info:            SingletonPartitionInformation{ID: id2},
			InstanceCount:   5,
			HealthState:     HealthStateUnknown,
			PartitionStatus: PartitionStatusReady,
		},
	}, got)
}

func TestProjectPartitionListEmpty(t *testing.T) {
	got, err := projectPartitionList(&native.ServicePartitionQueryResultList{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectQueryResultItemUnknownServiceKind(t *testing.T) {
	_, err := projectQueryResultItem(&native.ServicePartitionQueryResultItem{Kind: 7})
	assert.ErrorIs(t, err, ErrInvalidServiceKind)

	_, err = projectQueryResultItem(&native.ServicePartitionQueryResultItem{Kind: native.ServiceKindInvalid})
	assert.ErrorIs(t, err, ErrInvalidServiceKind)
}

func TestProjectQueryResultItemInvalidPartitionKind(t *testing.T) {
	info := native.ServicePartitionInformation{Kind: native.ServicePartitionKindInvalid}
	item := &native.ServicePartitionQueryResultItem{
		Kind:  native.ServiceKindStateless,
		Value: unsafe.Pointer(&native.StatelessServicePartitionQueryResultItem{PartitionInformation: &info}),
	}

	_, err := projectQueryResultItem(item)
	assert.ErrorIs(t, err, ErrInvalidServicePartitionKind)
	assert.False(t, errors.Is(err, ErrInvalidServiceKind))
}

func TestProjectPartitionListDecodeErrorNamesItem(t *testing.T) {
	bad := []uint16{0xDC00, 0}
	info := native.ServicePartitionInformation{
		Kind:  native.ServicePartitionKindNamed,
		Value: unsafe.Pointer(&native.NamedPartitionInformation{Name: &bad[0]}),
	}
	items := []native.ServicePartitionQueryResultItem{{
		Kind:  native.ServiceKindStateful,
		Value: unsafe.Pointer(&native.StatefulServicePartitionQueryResultItem{PartitionInformation: &info}),
	}}

	_, err := projectPartitionList(&native.ServicePartitionQueryResultList{Count: 1, Items: &items[0]})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Items[0].PartitionInformation.Named.Name", de.Field)
}
