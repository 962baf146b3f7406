package native

import "unsafe"

// ServicePartitionKind is FABRIC_SERVICE_PARTITION_KIND.
type ServicePartitionKind int32

const (
	ServicePartitionKindInvalid    ServicePartitionKind = 0
	ServicePartitionKindSingleton  ServicePartitionKind = 1
	ServicePartitionKindInt64Range ServicePartitionKind = 2
	ServicePartitionKindNamed      ServicePartitionKind = 3
)

// ServiceEndpointRole is FABRIC_SERVICE_ENDPOINT_ROLE.
type ServiceEndpointRole int32

const (
	ServiceRoleInvalid                  ServiceEndpointRole = 0
	ServiceRoleStateless                ServiceEndpointRole = 1
	ServiceRoleStatefulPrimary          ServiceEndpointRole = 2
	ServiceRoleStatefulSecondary        ServiceEndpointRole = 3
	ServiceRoleStatefulPrimaryAuxiliary ServiceEndpointRole = 4
	ServiceRoleStatefulAuxiliary        ServiceEndpointRole = 5
)

// PartitionKeyType is FABRIC_PARTITION_KEY_TYPE.
type PartitionKeyType int32

const (
	PartitionKeyTypeInvalid PartitionKeyType = 0
	PartitionKeyTypeNone    PartitionKeyType = 1
	PartitionKeyTypeInt64   PartitionKeyType = 2
	PartitionKeyTypeString  PartitionKeyType = 3
)

// ServiceKind is FABRIC_SERVICE_KIND.
type ServiceKind int32

const (
	ServiceKindInvalid   ServiceKind = 0
	ServiceKindStateless ServiceKind = 1
	ServiceKindStateful  ServiceKind = 2
)

// HealthState is FABRIC_HEALTH_STATE.
type HealthState int32

const (
	HealthStateInvalid HealthState = 0
	HealthStateOk      HealthState = 1
	HealthStateWarning HealthState = 2
	HealthStateError   HealthState = 3
	HealthStateUnknown HealthState = 0xffff
)

// QueryServicePartitionStatus is FABRIC_QUERY_SERVICE_PARTITION_STATUS.
type QueryServicePartitionStatus int32

const (
	PartitionStatusInvalid       QueryServicePartitionStatus = 0
	PartitionStatusReady         QueryServicePartitionStatus = 1
	PartitionStatusNotReady      QueryServicePartitionStatus = 2
	PartitionStatusInQuorumLoss  QueryServicePartitionStatus = 3
	PartitionStatusReconfiguring QueryServicePartitionStatus = 4
	PartitionStatusDeleting      QueryServicePartitionStatus = 5
)

// ServicePartitionInformation is FABRIC_SERVICE_PARTITION_INFORMATION, a
// union discriminated by Kind.
type ServicePartitionInformation struct {
	Kind  ServicePartitionKind
	Value unsafe.Pointer
}

// SingletonPartitionInformation is FABRIC_SINGLETON_PARTITION_INFORMATION.
type SingletonPartitionInformation struct {
	ID       GUID
	Reserved unsafe.Pointer
}

// Int64RangePartitionInformation is FABRIC_INT64_RANGE_PARTITION_INFORMATION.
type Int64RangePartitionInformation struct {
	ID       GUID
	LowKey   int64
	HighKey  int64
	Reserved unsafe.Pointer
}

// NamedPartitionInformation is FABRIC_NAMED_PARTITION_INFORMATION.
type NamedPartitionInformation struct {
	ID       GUID
	Name     *uint16
	Reserved unsafe.Pointer
}

// Singleton returns the union payload when Kind is Singleton, nil otherwise.
func (i *ServicePartitionInformation) Singleton() *SingletonPartitionInformation {
	if i == nil || i.Kind != ServicePartitionKindSingleton {
		return nil
	}
	return (*SingletonPartitionInformation)(i.Value)
}

// Int64Range returns the union payload when Kind is Int64Range, nil otherwise.
func (i *ServicePartitionInformation) Int64Range() *Int64RangePartitionInformation {
	if i == nil || i.Kind != ServicePartitionKindInt64Range {
		return nil
	}
	return (*Int64RangePartitionInformation)(i.Value)
}

// Named returns the union payload when Kind is Named, nil otherwise.
func (i *ServicePartitionInformation) Named() *NamedPartitionInformation {
	if i == nil || i.Kind != ServicePartitionKindNamed {
		return nil
	}
	return (*NamedPartitionInformation)(i.Value)
}

// ResolvedServiceEndpoint is FABRIC_RESOLVED_SERVICE_ENDPOINT.
type ResolvedServiceEndpoint struct {
	Address  *uint16
	Role     ServiceEndpointRole
	Reserved unsafe.Pointer
}

// ResolvedServicePartition is FABRIC_RESOLVED_SERVICE_PARTITION.
type ResolvedServicePartition struct {
	Info          ServicePartitionInformation
	EndpointCount uint32
	Endpoints     *ResolvedServiceEndpoint
	ServiceName   *uint16
	Reserved      unsafe.Pointer
}

// EndpointList returns a view over the Endpoints array.
func (p *ResolvedServicePartition) EndpointList() ([]ResolvedServiceEndpoint, error) {
	return Slice(p.Endpoints, p.EndpointCount)
}

// ServicePartitionQueryDescription is FABRIC_SERVICE_PARTITION_QUERY_DESCRIPTION.
// A zero PartitionIDFilter matches every partition.
type ServicePartitionQueryDescription struct {
	ServiceName       *uint16
	PartitionIDFilter GUID
	Reserved          unsafe.Pointer
}

// ServicePartitionQueryResultItem is FABRIC_SERVICE_PARTITION_QUERY_RESULT_ITEM,
// a union discriminated by Kind.
type ServicePartitionQueryResultItem struct {
	Kind  ServiceKind
	Value unsafe.Pointer
}

// Stateful returns the union payload when Kind is Stateful, nil otherwise.
func (i *ServicePartitionQueryResultItem) Stateful() *StatefulServicePartitionQueryResultItem {
	if i == nil || i.Kind != ServiceKindStateful {
		return nil
	}
	return (*StatefulServicePartitionQueryResultItem)(i.Value)
}

// Stateless returns the union payload when Kind is Stateless, nil otherwise.
func (i *ServicePartitionQueryResultItem) Stateless() *StatelessServicePartitionQueryResultItem {
	if i == nil || i.Kind != ServiceKindStateless {
		return nil
	}
	return (*StatelessServicePartitionQueryResultItem)(i.Value)
}

// StatefulServicePartitionQueryResultItem is
// FABRIC_STATEFUL_SERVICE_PARTITION_QUERY_RESULT_ITEM.
type StatefulServicePartitionQueryResultItem struct {
	PartitionInformation            *ServicePartitionInformation
	TargetReplicaSetSize            uint32
	MinReplicaSetSize               uint32
	HealthState                     HealthState
	PartitionStatus                 QueryServicePartitionStatus
	LastQuorumLossDurationInSeconds int64
	Reserved                        unsafe.Pointer
}

// StatelessServicePartitionQueryResultItem is
// FABRIC_STATELESS_SERVICE_PARTITION_QUERY_RESULT_ITEM.
type StatelessServicePartitionQueryResultItem struct {
	PartitionInformation *ServicePartitionInformation
	InstanceCount        uint32
	HealthState          HealthState
	PartitionStatus      QueryServicePartitionStatus
	Reserved             unsafe.Pointer
}

// ServicePartitionQueryResultList is FABRIC_SERVICE_PARTITION_QUERY_RESULT_LIST.
type ServicePartitionQueryResultList struct {
	Count uint32
	Items *ServicePartitionQueryResultItem
}

// ItemList returns a view over the Items array.
func (l *ServicePartitionQueryResultList) ItemList() ([]ServicePartitionQueryResultItem, error) {
	return Slice(l.Items, l.Count)
}
