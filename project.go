package fabric

import (
	"errors"
	"fmt"
	"time"

	"github.com/ozanturksever/go-fabric/native"
)

// Projection copies native result structures into owned Go values. The
// native structures are only valid while their result object is alive, so
// nothing returned from here may alias native memory.

func projectServicePartition(raw *native.ResolvedServicePartition) (*ServicePartition, error) {
	if raw == nil {
		return nil, &DecodeError{Field: "ResolvedServicePartition", Err: native.ErrNullPointer}
	}

	p := &ServicePartition{}
	info, err := projectPartitionInformation(&raw.Info)
	switch {
	case errors.Is(err, ErrInvalidServicePartitionKind):
		p.Kind = ServicePartitionKindInvalid
	case err != nil:
		return nil, err
	default:
		p.Kind = info.Kind()
		p.Info = info
	}

	eps, err := raw.EndpointList()
	if err != nil {
		return nil, &DecodeError{Field: "Endpoints", Err: err}
	}
	p.Endpoints = make([]ServiceEndpoint, 0, len(eps))
	for i := range eps {
		ep, err := projectServiceEndpoint(&eps[i])
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				de.Field = fmt.Sprintf("Endpoints[%d].%s", i, de.Field)
			}
			return nil, err
		}
		p.Endpoints = append(p.Endpoints, ep)
	}

	if p.ServiceName, err = native.UTF16PtrToString(raw.ServiceName); err != nil {
		return nil, &DecodeError{Field: "ServiceName", Err: err}
	}
	return p, nil
}

func projectServiceEndpoint(raw *native.ResolvedServiceEndpoint) (ServiceEndpoint, error) {
	addr, err := native.UTF16PtrToString(raw.Address)
	if err != nil {
		return ServiceEndpoint{}, &DecodeError{Field: "Address", Err: err}
	}
	return ServiceEndpoint{Address: addr, Role: projectEndpointRole(raw.Role)}, nil
}

func projectEndpointRole(r native.ServiceEndpointRole) EndpointRole {
	switch r {
	case native.ServiceRoleStateless:
		return EndpointRoleStateless
	case native.ServiceRoleStatefulPrimary:
		return EndpointRoleStatefulPrimary
	case native.ServiceRoleStatefulSecondary:
		return EndpointRoleStatefulSecondary
	case native.ServiceRoleStatefulPrimaryAuxiliary:
		return EndpointRoleStatefulPrimaryAuxiliary
	case native.ServiceRoleStatefulAuxiliary:
		return EndpointRoleStatefulAuxiliary
	default:
		return EndpointRoleInvalid
	}
}

// projectPartitionInformation fails with ErrInvalidServicePartitionKind for
// the Invalid kind and for kinds it does not know.
func projectPartitionInformation(raw *native.ServicePartitionInformation) (ServicePartitionInformation, error) {
	if raw == nil {
		return nil, &DecodeError{Field: "PartitionInformation", Err: native.ErrNullPointer}
	}
	switch raw.Kind {
	case native.ServicePartitionKindSingleton:
		s := raw.Singleton()
		if s == nil {
			return nil, &DecodeError{Field: "PartitionInformation.Singleton", Err: native.ErrNullPointer}
		}
		return SingletonPartitionInformation{ID: s.ID.UUID()}, nil

	case native.ServicePartitionKindInt64Range:
		r := raw.Int64Range()
		if r == nil {
			return nil, &DecodeError{Field: "PartitionInformation.Int64Range", Err: native.ErrNullPointer}
		}
		return Int64RangePartitionInformation{ID: r.ID.UUID(), LowKey: r.LowKey, HighKey: r.HighKey}, nil

	case native.ServicePartitionKindNamed:
		n := raw.Named()
		if n == nil {
			return nil, &DecodeError{Field: "PartitionInformation.Named", Err: native.ErrNullPointer}
		}
		name, err := native.UTF16PtrToString(n.Name)
		if err != nil {
			return nil, &DecodeError{Field: "PartitionInformation.Named.Name", Err: err}
		}
		return NamedPartitionInformation{ID: n.ID.UUID(), Name: name}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidServicePartitionKind, raw.Kind)
	}
}

func projectQueryResultItem(raw *native.ServicePartitionQueryResultItem) (PartitionQueryResultItem, error) {
	switch raw.Kind {
	case native.ServiceKindStateful:
		s := raw.Stateful()
		if s == nil {
			return nil, &DecodeError{Field: "Stateful", Err: native.ErrNullPointer}
		}
		info, err := projectPartitionInformation(s.PartitionInformation)
		if err != nil {
			return nil, err
		}
		return StatefulServicePartition{
			Info:                   info,
			TargetReplicaSetSize:   s.TargetReplicaSetSize,
			MinReplicaSetSize:      s.MinReplicaSetSize,
			HealthState:            projectHealthState(s.HealthState),
			PartitionStatus:        projectPartitionStatus(s.PartitionStatus),
			LastQuorumLossDuration: time.Duration(s.LastQuorumLossDurationInSeconds) * time.Second,
		}, nil

	case native.ServiceKindStateless:
		s := raw.Stateless()
		if s == nil {
			return nil, &DecodeError{Field: "Stateless", Err: native.ErrNullPointer}
		}
		info, err := projectPartitionInformation(s.PartitionInformation)
		if err != nil {
			return nil, err
		}
		return StatelessServicePartition{
			Info:            info,
			InstanceCount:   s.InstanceCount,
			HealthState:     projectHealthState(s.HealthState),
			PartitionStatus: projectPartitionStatus(s.PartitionStatus),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidServiceKind, raw.Kind)
	}
}

func projectPartitionList(raw *native.ServicePartitionQueryResultList) ([]PartitionQueryResultItem, error) {
	if raw == nil {
		return nil, &DecodeError{Field: "ServicePartitionQueryResultList", Err: native.ErrNullPointer}
	}
	items, err := raw.ItemList()
	if err != nil {
		return nil, &DecodeError{Field: "Items", Err: err}
	}
	out := make([]PartitionQueryResultItem, 0, len(items))
	for i := range items {
		item, err := projectQueryResultItem(&items[i])
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				de.Field = fmt.Sprintf("Items[%d].%s", i, de.Field)
			}
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func projectHealthState(h native.HealthState) HealthState {
	switch h {
	case native.HealthStateInvalid:
		return HealthStateInvalid
	case native.HealthStateOk:
		return HealthStateOk
	case native.HealthStateWarning:
		return HealthStateWarning
	case native.HealthStateError:
		return HealthStateError
	default:
		return HealthStateUnknown
	}
}

func projectPartitionStatus(s native.QueryServicePartitionStatus) PartitionStatus {
	if s < native.PartitionStatusInvalid || s > native.PartitionStatusDeleting {
		return PartitionStatusInvalid
	}
	return PartitionStatus(s)
}
