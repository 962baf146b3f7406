package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	fabric "github.com/ozanturksever/go-fabric"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func roleString(r fabric.EndpointRole) string {
	switch r {
	case fabric.EndpointRoleStatefulPrimary:
		return color.New(color.FgGreen).Sprint(r)
	case fabric.EndpointRoleInvalid:
		return color.New(color.FgRed).Sprint(r)
	default:
		return r.String()
	}
}

func healthString(h fabric.HealthState) string {
	switch h {
	case fabric.HealthStateOk:
		return color.New(color.FgGreen).Sprint(h)
	case fabric.HealthStateWarning:
		return color.New(color.FgYellow).Sprint(h)
	case fabric.HealthStateError:
		return color.New(color.FgRed).Sprint(h)
	default:
		return h.String()
	}
}

// describeInfo returns the key range or name of a partition.
func describeInfo(info fabric.ServicePartitionInformation) string {
	switch i := info.(type) {
	case fabric.Int64RangePartitionInformation:
		return fmt.Sprintf("%d..%d", i.LowKey, i.HighKey)
	case fabric.NamedPartitionInformation:
		return i.Name
	case fabric.SingletonPartitionInformation:
		return "-"
	default:
		return "?"
	}
}

// partitionView is the JSON form of a resolved partition.
type partitionView struct {
	Service   string         `json:"service"`
	ID        string         `json:"id,omitempty"`
	Kind      string         `json:"kind"`
	Key       string         `json:"key,omitempty"`
	Endpoints []endpointView `json:"endpoints"`
}

type endpointView struct {
	Address string `json:"address"`
	Role    string `json:"role"`
}

func newPartitionView(p *fabric.ServicePartition) partitionView {
	v := partitionView{
		Service:   p.ServiceName,
		Kind:      p.Kind.String(),
		Endpoints: make([]endpointView, len(p.Endpoints)),
	}
	if p.Info != nil {
		v.ID = p.Info.PartitionID().String()
		v.Key = describeInfo(p.Info)
	}
	for i, ep := range p.Endpoints {
		v.Endpoints[i] = endpointView{Address: ep.Address, Role: ep.Role.String()}
	}
	return v
}

// itemView is the JSON form of a listed partition.
type itemView struct {
	ID                     string `json:"id"`
	ServiceKind            string `json:"serviceKind"`
	Kind                   string `json:"kind"`
	Key                    string `json:"key"`
	Health                 string `json:"health"`
	Status                 string `json:"status"`
	TargetReplicaSetSize   uint32 `json:"targetReplicaSetSize,omitempty"`
	MinReplicaSetSize      uint32 `json:"minReplicaSetSize,omitempty"`
	InstanceCount          uint32 `json:"instanceCount,omitempty"`
	LastQuorumLossDuration string `json:"lastQuorumLossDuration,omitempty"`
}

func newItemView(item fabric.PartitionQueryResultItem) itemView {
	info := item.PartitionInformation()
	v := itemView{
		ID:          info.PartitionID().String(),
		ServiceKind: item.ServiceKind().String(),
		Kind:        info.Kind().String(),
		Key:         describeInfo(info),
		Health:      item.Health().String(),
		Status:      item.Status().String(),
	}
	switch it := item.(type) {
	case fabric.StatefulServicePartition:
		v.TargetReplicaSetSize = it.TargetReplicaSetSize
		v.MinReplicaSetSize = it.MinReplicaSetSize
		if it.LastQuorumLossDuration > 0 {
			v.LastQuorumLossDuration = it.LastQuorumLossDuration.String()
		}
	case fabric.StatelessServicePartition:
		v.InstanceCount = it.InstanceCount
	}
	return v
}
