package fabric

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServicePartitionKind identifies how a service is partitioned.
type ServicePartitionKind int

const (
	ServicePartitionKindInvalid ServicePartitionKind = iota
	ServicePartitionKindSingleton
	ServicePartitionKindInt64Range
	ServicePartitionKindNamed
)

var servicePartitionKindNames = []string{"Invalid", "Singleton", "Int64Range", "Named"}

func (k ServicePartitionKind) String() string {
	return enumString(servicePartitionKindNames, int(k))
}

// ParseServicePartitionKind is the inverse of ServicePartitionKind.String.
func ParseServicePartitionKind(s string) (ServicePartitionKind, error) {
	i, err := enumParse("partition kind", servicePartitionKindNames, s)
	return ServicePartitionKind(i), err
}

// PartitionKeyType selects how a resolution key is interpreted.
type PartitionKeyType int

const (
	PartitionKeyTypeInvalid PartitionKeyType = iota
	PartitionKeyTypeNone
	PartitionKeyTypeInt64
	PartitionKeyTypeString
)

var partitionKeyTypeNames = []string{"Invalid", "None", "Int64", "String"}

func (t PartitionKeyType) String() string {
	return enumString(partitionKeyTypeNames, int(t))
}

// ParsePartitionKeyType is the inverse of PartitionKeyType.String.
func ParsePartitionKeyType(s string) (PartitionKeyType, error) {
	i, err := enumParse("partition key type", partitionKeyTypeNames, s)
	return PartitionKeyType(i), err
}

// EndpointRole is the role of the replica or instance behind an endpoint.
type EndpointRole int

const (
	EndpointRoleInvalid EndpointRole = iota
	EndpointRoleStateless
	EndpointRoleStatefulPrimary
	EndpointRoleStatefulSecondary
	EndpointRoleStatefulPrimaryAuxiliary
	EndpointRoleStatefulAuxiliary
)

var endpointRoleNames = []string{
	"Invalid", "Stateless", "StatefulPrimary", "StatefulSecondary",
	"StatefulPrimaryAuxiliary", "StatefulAuxiliary",
}

func (r EndpointRole) String() string {
	return enumString(endpointRoleNames, int(r))
}

// ParseEndpointRole is the inverse of EndpointRole.String.
func ParseEndpointRole(s string) (EndpointRole, error) {
	i, err := enumParse("endpoint role", endpointRoleNames, s)
	return EndpointRole(i), err
}

// ServiceKind distinguishes stateless from stateful services.
type ServiceKind int

const (
	ServiceKindInvalid ServiceKind = iota
	ServiceKindStateless
	ServiceKindStateful
)

var serviceKindNames = []string{"Invalid", "Stateless", "Stateful"}

func (k ServiceKind) String() string {
	return enumString(serviceKindNames, int(k))
}

// ParseServiceKind is the inverse of ServiceKind.String.
func ParseServiceKind(s string) (ServiceKind, error) {
	i, err := enumParse("service kind", serviceKindNames, s)
	return ServiceKind(i), err
}

// HealthState is the aggregated health of an entity.
type HealthState int

const (
	HealthStateInvalid HealthState = iota
	HealthStateOk
	HealthStateWarning
	HealthStateError
	HealthStateUnknown
)

var healthStateNames = []string{"Invalid", "Ok", "Warning", "Error", "Unknown"}

func (h HealthState) String() string {
	return enumString(healthStateNames, int(h))
}

// ParseHealthState is the inverse of HealthState.String.
func ParseHealthState(s string) (HealthState, error) {
	i, err := enumParse("health state", healthStateNames, s)
	return HealthState(i), err
}

// PartitionStatus is the lifecycle status of a partition.
type PartitionStatus int

const (
	PartitionStatusInvalid PartitionStatus = iota
	PartitionStatusReady
	PartitionStatusNotReady
	PartitionStatusInQuorumLoss
	PartitionStatusReconfiguring
	PartitionStatusDeleting
)

var partitionStatusNames = []string{"Invalid", "Ready", "NotReady", "InQuorumLoss", "Reconfiguring", "Deleting"}

func (s PartitionStatus) String() string {
	return enumString(partitionStatusNames, int(s))
}

// ParsePartitionStatus is the inverse of PartitionStatus.String.
func ParsePartitionStatus(s string) (PartitionStatus, error) {
	i, err := enumParse("partition status", partitionStatusNames, s)
	return PartitionStatus(i), err
}

func enumString(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", names[0], i)
}

func enumParse(what string, names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidArgument, what, s)
}

// ServicePartitionInformation describes one partition. It is one of
// SingletonPartitionInformation, Int64RangePartitionInformation or
// NamedPartitionInformation.
type ServicePartitionInformation interface {
	PartitionID() uuid.UUID
	Kind() ServicePartitionKind
	isPartitionInformation()
}

// SingletonPartitionInformation is the only partition of a service.
type SingletonPartitionInformation struct {
	ID uuid.UUID
}

// Int64RangePartitionInformation covers the keys LowKey through HighKey
// inclusive.
type Int64RangePartitionInformation struct {
	ID      uuid.UUID
	LowKey  int64
	HighKey int64
}

// NamedPartitionInformation is a partition addressed by name.
type NamedPartitionInformation struct {
	ID   uuid.UUID
	Name string
}

func (p SingletonPartitionInformation) PartitionID() uuid.UUID  { return p.ID }
func (p Int64RangePartitionInformation) PartitionID() uuid.UUID { return p.ID }
func (p NamedPartitionInformation) PartitionID() uuid.UUID      { return p.ID }

func (SingletonPartitionInformation) Kind() ServicePartitionKind {
	return ServicePartitionKindSingleton
}

func (Int64RangePartitionInformation) Kind() ServicePartitionKind {
	return ServicePartitionKindInt64Range
}

func (NamedPartitionInformation) Kind() ServicePartitionKind {
	return ServicePartitionKindNamed
}

func (SingletonPartitionInformation) isPartitionInformation()  {}
func (Int64RangePartitionInformation) isPartitionInformation() {}
func (NamedPartitionInformation) isPartitionInformation()      {}

// Contains reports whether key falls inside the range.
func (p Int64RangePartitionInformation) Contains(key int64) bool {
	return key >= p.LowKey && key <= p.HighKey
}

// ServiceEndpoint is one address published by a partition.
type ServiceEndpoint struct {
	Address string
	Role    EndpointRole
}

// ServicePartition is the result of resolving a service partition.
type ServicePartition struct {
	Kind ServicePartitionKind

	// Info is nil when Kind is ServicePartitionKindInvalid.
	Info ServicePartitionInformation

	// Endpoints is never nil.
	Endpoints []ServiceEndpoint

	ServiceName string
}

// Primary returns the stateful primary endpoint, if any.
func (p *ServicePartition) Primary() (ServiceEndpoint, bool) {
	for _, ep := range p.Endpoints {
		if ep.Role == EndpointRoleStatefulPrimary {
			return ep, true
		}
	}
	return ServiceEndpoint{}, false
}

// PartitionQueryResultItem is one entry of a partition list. It is either a
// StatefulServicePartition or a StatelessServicePartition.
type PartitionQueryResultItem interface {
	ServiceKind() ServiceKind
	PartitionInformation() ServicePartitionInformation
	Health() HealthState
	Status() PartitionStatus
	isPartitionQueryResultItem()
}

// StatefulServicePartition is a partition of a stateful service.
type StatefulServicePartition struct {
	Info                   ServicePartitionInformation
	TargetReplicaSetSize   uint32
	MinReplicaSetSize      uint32
	HealthState            HealthState
	PartitionStatus        PartitionStatus
	LastQuorumLossDuration time.Duration
}

// StatelessServicePartition is a partition of a stateless service.
type StatelessServicePartition struct {
	Info            ServicePartitionInformation
	InstanceCount   uint32
	HealthState     HealthState
	PartitionStatus PartitionStatus
}

func (StatefulServicePartition) ServiceKind() ServiceKind  { return ServiceKindStateful }
func (StatelessServicePartition) ServiceKind() ServiceKind { return ServiceKindStateless }

func (p StatefulServicePartition) PartitionInformation() ServicePartitionInformation  { return p.Info }
func (p StatelessServicePartition) PartitionInformation() ServicePartitionInformation { return p.Info }

func (p StatefulServicePartition) Health() HealthState  { return p.HealthState }
func (p StatelessServicePartition) Health() HealthState { return p.HealthState }

func (p StatefulServicePartition) Status() PartitionStatus  { return p.PartitionStatus }
func (p StatelessServicePartition) Status() PartitionStatus { return p.PartitionStatus }

func (StatefulServicePartition) isPartitionQueryResultItem()  {}
func (StatelessServicePartition) isPartitionQueryResultItem() {}
