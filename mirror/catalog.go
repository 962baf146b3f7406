package mirror

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/ozanturksever/go-fabric/nativesim"
)

// Catalog reads mirrored partitions back from the bucket. It implements
// nativesim.Catalog, so a simulated cluster can serve what a publisher
// mirrored.
type Catalog struct {
	kv jetstream.KeyValue
}

var _ nativesim.Catalog = (*Catalog)(nil)

// NewCatalog returns a catalog over kv.
func NewCatalog(kv jetstream.KeyValue) *Catalog {
	return &Catalog{kv: kv}
}

// OpenCatalog opens an existing bucket.
func OpenCatalog(ctx context.Context, js jetstream.JetStream, bucket string) (*Catalog, error) {
	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open KV bucket %s: %w", bucket, err)
	}
	return NewCatalog(kv), nil
}

// Records returns the records of service ordered by partition.
func (c *Catalog) Records(ctx context.Context, service string) ([]*PartitionRecord, error) {
	keys, err := c.kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	prefix := ServicePrefix(service)
	var records []*PartitionRecord
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		entry, err := c.kv.Get(ctx, key)
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			continue // deleted since listing
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}
		r, err := decodeRecord(entry.Value())
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", key, err)
		}
		records = append(records, r)
	}

	slices.SortFunc(records, func(a, b *PartitionRecord) int {
		pa, pb := a.Partition, b.Partition
		return cmp.Or(
			cmp.Compare(pa.LowKey, pb.LowKey),
			cmp.Compare(pa.Name, pb.Name),
			cmp.Compare(pa.ID.String(), pb.ID.String()),
		)
	})
	return records, nil
}

// Service implements nativesim.Catalog.
func (c *Catalog) Service(ctx context.Context, name string) (*nativesim.Service, error) {
	records, err := c.Records(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", nativesim.ErrServiceNotFound, name)
	}

	svc := &nativesim.Service{
		Name:       name,
		Kind:       records[0].ServiceKind,
		Partitions: make([]nativesim.Partition, len(records)),
	}
	for i, r := range records {
		svc.Partitions[i] = r.Partition
	}
	return svc, nil
}

// Services returns the names of every mirrored service, sorted.
func (c *Catalog) Services(ctx context.Context) ([]string, error) {
	keys, err := c.kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var names []string
	for _, key := range keys {
		name, _, err := parseKey(key)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func decodeRecord(data []byte) (*PartitionRecord, error) {
	var r PartitionRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// EventType is the kind of change a watch reports.
type EventType int

const (
	// EventPut reports a new or updated record.
	EventPut EventType = iota
	// EventDelete reports a removed record.
	EventDelete
)

func (t EventType) String() string {
	switch t {
	case EventPut:
		return "put"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is one change to a mirrored partition.
type Event struct {
	Type        EventType
	Service     string
	PartitionID uuid.UUID
	Revision    uint64

	// Record is nil for deletes.
	Record *PartitionRecord
}

// Watch streams changes to the records of service, or of every service when
// service is empty. Existing records are delivered first. The channel is
// closed when ctx is done.
func (c *Catalog) Watch(ctx context.Context, service string) (<-chan Event, error) {
	pattern := keyPrefix + ">"
	if service != "" {
		pattern = ServicePrefix(service) + "*"
	}
	watcher, err := c.kv.Watch(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", pattern, err)
	}

	ch := make(chan Event, 64)
	go func() {
		defer close(ch)
		defer watcher.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-watcher.Updates():
				if !ok {
					return
				}
				if entry == nil {
					continue
				}
				ev, err := toEvent(entry)
				if err != nil {
					continue
				}
				select {
				case ch <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func toEvent(entry jetstream.KeyValueEntry) (Event, error) {
	service, id, err := parseKey(entry.Key())
	if err != nil {
		return Event{}, err
	}
	ev := Event{
		Type:        EventPut,
		Service:     service,
		PartitionID: id,
		Revision:    entry.Revision(),
	}
	switch entry.Operation() {
	case jetstream.KeyValueDelete, jetstream.KeyValuePurge:
		ev.Type = EventDelete
	default:
		ev.Record, err = decodeRecord(entry.Value())
		if err != nil {
			return Event{}, err
		}
	}
	return ev, nil
}
