package mirror

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/nativesim"
)

// keyPrefix starts every partition key. Keys have the form
// svc.<service>.<partition id> with the service name base64url encoded.
const keyPrefix = "svc."

// PartitionRecord is the value stored for one partition.
type PartitionRecord struct {
	Service     string              `json:"service"`
	ServiceKind string              `json:"service_kind"`
	Partition   nativesim.Partition `json:"partition"`
	Instance    string              `json:"instance"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Key returns the key of the record.
func (r *PartitionRecord) Key() string {
	return PartitionKey(r.Service, r.Partition.ID)
}

// PartitionKey returns the key a partition of service is stored under.
func PartitionKey(service string, id uuid.UUID) string {
	return ServicePrefix(service) + id.String()
}

// ServicePrefix returns the key prefix shared by every partition of service.
func ServicePrefix(service string) string {
	return keyPrefix + base64.RawURLEncoding.EncodeToString([]byte(service)) + "."
}

// parseKey splits a partition key into the service name and partition ID.
func parseKey(key string) (string, uuid.UUID, error) {
	rest, ok := strings.CutPrefix(key, keyPrefix)
	if !ok {
		return "", uuid.Nil, fmt.Errorf("key %q is not a partition key", key)
	}
	enc, id, ok := strings.Cut(rest, ".")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("key %q is not a partition key", key)
	}
	name, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("key %q: service: %w", key, err)
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("key %q: partition: %w", key, err)
	}
	return string(name), pid, nil
}

// newRecord combines a listed partition with its resolved endpoints.
func newRecord(service string, item fabric.PartitionQueryResultItem, resolved *fabric.ServicePartition,
	instance string, now time.Time) (*PartitionRecord, error) {
	p := nativesim.Partition{
		Health: item.Health().String(),
		Status: item.Status().String(),
	}

	switch info := item.PartitionInformation().(type) {
	case fabric.SingletonPartitionInformation:
		p.ID = info.ID
		p.Kind = nativesim.PartitionSingleton
	case fabric.Int64RangePartitionInformation:
		p.ID = info.ID
		p.Kind = nativesim.PartitionInt64Range
		p.LowKey = info.LowKey
		p.HighKey = info.HighKey
	case fabric.NamedPartitionInformation:
		p.ID = info.ID
		p.Kind = nativesim.PartitionNamed
		p.Name = info.Name
	default:
		return nil, fmt.Errorf("%w: partition of %s", fabric.ErrInvalidServicePartitionKind, service)
	}

	switch it := item.(type) {
	case fabric.StatefulServicePartition:
		p.TargetReplicaSetSize = it.TargetReplicaSetSize
		p.MinReplicaSetSize = it.MinReplicaSetSize
		p.LastQuorumLossSeconds = int64(it.LastQuorumLossDuration / time.Second)
	case fabric.StatelessServicePartition:
		p.InstanceCount = it.InstanceCount
	}

	if resolved != nil {
		p.Endpoints = make([]nativesim.Endpoint, len(resolved.Endpoints))
		for i, ep := range resolved.Endpoints {
			p.Endpoints[i] = nativesim.Endpoint{Address: ep.Address, Role: ep.Role.String()}
		}
	}

	return &PartitionRecord{
		Service:     service,
		ServiceKind: item.ServiceKind().String(),
		Partition:   p,
		Instance:    instance,
		UpdatedAt:   now,
	}, nil
}
