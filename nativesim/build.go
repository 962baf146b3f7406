package nativesim

import (
	"unsafe"

	"github.com/ozanturksever/go-fabric/native"
)

// Result objects are laid out the way the native runtime lays them out:
// structures holding pointers and counts into separately allocated arrays
// and NUL-terminated UTF-16 strings. The result keeps every allocation
// reachable until it is released.

func findPartition(svc *Service, keyType native.PartitionKeyType, intKey int64, strKey string) *Partition {
	for i := range svc.Partitions {
		p := &svc.Partitions[i]
		switch keyType {
		case native.PartitionKeyTypeNone:
			if p.Kind == PartitionSingleton {
				return p
			}
		case native.PartitionKeyTypeInt64:
			if p.Kind == PartitionInt64Range && intKey >= p.LowKey && intKey <= p.HighKey {
				return p
			}
		case native.PartitionKeyTypeString:
			if p.Kind == PartitionNamed && p.Name == strKey {
				return p
			}
		}
	}
	return nil
}

type arena struct {
	keep []any
}

func (a *arena) wide(s string) *uint16 {
	w, err := native.UTF16FromString(s)
	if err != nil {
		// Catalog validation rejects embedded NULs.
		w = []uint16{0}
	}
	a.keep = append(a.keep, w)
	return &w[0]
}

func (a *arena) partitionInfo(p *Partition) native.ServicePartitionInformation {
	id := native.GUIDFromUUID(p.ID)
	var (
		kind  native.ServicePartitionKind
		value unsafe.Pointer
	)
	switch p.Kind {
	case PartitionSingleton:
		v := &native.SingletonPartitionInformation{ID: id}
		kind, value = native.ServicePartitionKindSingleton, unsafe.Pointer(v)
	case PartitionInt64Range:
		v := &native.Int64RangePartitionInformation{ID: id, LowKey: p.LowKey, HighKey: p.HighKey}
		kind, value = native.ServicePartitionKindInt64Range, unsafe.Pointer(v)
	case PartitionNamed:
		v := &native.NamedPartitionInformation{ID: id, Name: a.wide(p.Name)}
		kind, value = native.ServicePartitionKindNamed, unsafe.Pointer(v)
	}
	if value != nil {
		a.keep = append(a.keep, value)
	}
	return native.ServicePartitionInformation{Kind: kind, Value: value}
}

func newResolveResult(sim *Cluster, svc *Service, p *Partition) *resolveResult {
	a := &arena{}
	raw := &native.ResolvedServicePartition{
		Info:          a.partitionInfo(p),
		EndpointCount: uint32(len(p.Endpoints)),
		ServiceName:   a.wide(svc.Name),
	}
	if len(p.Endpoints) > 0 {
		eps := make([]native.ResolvedServiceEndpoint, len(p.Endpoints))
		for i, ep := range p.Endpoints {
			eps[i] = native.ResolvedServiceEndpoint{
				Address: a.wide(ep.Address),
				Role:    endpointRole(ep.Role),
			}
		}
		a.keep = append(a.keep, eps)
		raw.Endpoints = &eps[0]
	}

	r := &resolveResult{raw: raw, keep: a.keep}
	r.init(sim)
	return r
}

func newListResult(sim *Cluster, svc *Service, filter native.GUID) *listResult {
	a := &arena{}
	var items []native.ServicePartitionQueryResultItem
	for i := range svc.Partitions {
		p := &svc.Partitions[i]
		if !filter.IsZero() && native.GUIDFromUUID(p.ID) != filter {
			continue
		}
		info := a.partitionInfo(p)
		a.keep = append(a.keep, &info)

		var item native.ServicePartitionQueryResultItem
		if svc.Kind == KindStateful {
			v := &native.StatefulServicePartitionQueryResultItem{
				PartitionInformation:            &info,
				TargetReplicaSetSize:            p.TargetReplicaSetSize,
				MinReplicaSetSize:               p.MinReplicaSetSize,
				HealthState:                     healthState(p.Health),
				PartitionStatus:                 partitionStatus(p.Status),
				LastQuorumLossDurationInSeconds: p.LastQuorumLossSeconds,
			}
			a.keep = append(a.keep, v)
			item = native.ServicePartitionQueryResultItem{Kind: native.ServiceKindStateful, Value: unsafe.Pointer(v)}
		} else {
			v := &native.StatelessServicePartitionQueryResultItem{
				PartitionInformation: &info,
				InstanceCount:        p.InstanceCount,
				HealthState:          healthState(p.Health),
				PartitionStatus:      partitionStatus(p.Status),
			}
			a.keep = append(a.keep, v)
			item = native.ServicePartitionQueryResultItem{Kind: native.ServiceKindStateless, Value: unsafe.Pointer(v)}
		}
		items = append(items, item)
	}

	raw := &native.ServicePartitionQueryResultList{Count: uint32(len(items))}
	if len(items) > 0 {
		a.keep = append(a.keep, items)
		raw.Items = &items[0]
	}

	r := &listResult{raw: raw, keep: a.keep}
	r.init(sim)
	return r
}

func endpointRole(s string) native.ServiceEndpointRole {
	switch s {
	case "Stateless":
		return native.ServiceRoleStateless
	case "StatefulPrimary":
		return native.ServiceRoleStatefulPrimary
	case "StatefulSecondary":
		return native.ServiceRoleStatefulSecondary
	case "StatefulPrimaryAuxiliary":
		return native.ServiceRoleStatefulPrimaryAuxiliary
	case "StatefulAuxiliary":
		return native.ServiceRoleStatefulAuxiliary
	default:
		return native.ServiceRoleInvalid
	}
}

func healthState(s string) native.HealthState {
	switch s {
	case "", "Ok":
		return native.HealthStateOk
	case "Warning":
		return native.HealthStateWarning
	case "Error":
		return native.HealthStateError
	case "Invalid":
		return native.HealthStateInvalid
	default:
		return native.HealthStateUnknown
	}
}

func partitionStatus(s string) native.QueryServicePartitionStatus {
	switch s {
	case "", "Ready":
		return native.PartitionStatusReady
	case "NotReady":
		return native.PartitionStatusNotReady
	case "InQuorumLoss":
		return native.PartitionStatusInQuorumLoss
	case "Reconfiguring":
		return native.PartitionStatusReconfiguring
	case "Deleting":
		return native.PartitionStatusDeleting
	default:
		return native.PartitionStatusInvalid
	}
}
