package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sourcegraph/conc/pool"

	fabric "github.com/ozanturksever/go-fabric"
)

const (
	DefaultConcurrency = 8
	DefaultHistory     = 5
)

// Resolver resolves service partitions. *fabric.ServiceManagementClient
// implements it.
type Resolver interface {
	ResolveServicePartition(ctx context.Context, serviceName string, keyType fabric.PartitionKeyType, key int64,
		timeout time.Duration) (*fabric.ServicePartition, error)
	ResolveNamedPartition(ctx context.Context, serviceName, partitionName string,
		timeout time.Duration) (*fabric.ServicePartition, error)
}

// Lister lists service partitions. *fabric.QueryClient implements it.
type Lister interface {
	GetPartitionList(ctx context.Context, serviceName string, timeout time.Duration) ([]fabric.PartitionQueryResultItem, error)
}

// Config configures a Publisher.
type Config struct {
	// NATSURLs are dialed when Conn is nil.
	NATSURLs        []string
	NATSCredentials string

	// Conn is an existing connection to publish on. It is not closed by
	// the publisher.
	Conn *nats.Conn

	Bucket   string
	Instance string

	// Services are the fabric:/ names mirrored on every sync.
	Services []string

	Interval         time.Duration
	Concurrency      int
	OperationTimeout time.Duration

	Metrics *fabric.Metrics
	Logger  *slog.Logger

	// OnSync is called with the publisher status after every sync.
	OnSync func(Status)
}

func (c *Config) Validate() error {
	if c.Conn == nil && len(c.NATSURLs) == 0 {
		return fmt.Errorf("at least one NATS URL is required")
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	for i, s := range c.Services {
		if !strings.HasPrefix(s, "fabric:/") {
			return fmt.Errorf("Services[%d] must be a fabric:/ name", i)
		}
	}
	for _, r := range c.Bucket {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return fmt.Errorf("Bucket %q contains %q", c.Bucket, r)
		}
	}
	if c.Interval < 0 {
		return fmt.Errorf("Interval must not be negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("Concurrency must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Bucket == "" {
		c.Bucket = fabric.DefaultMirrorBucket
	}
	if c.Instance == "" {
		c.Instance, _ = os.Hostname()
	}
	if c.Interval == 0 {
		c.Interval = fabric.DefaultMirrorInterval
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Status describes the most recent sync.
type Status struct {
	Instance     string
	Bucket       string
	Syncs        uint64
	LastSync     time.Time
	LastDuration time.Duration
	Services     int
	Partitions   int
	LastError    string
}

// Publisher mirrors the partitions of a set of services into a JetStream
// key-value bucket.
type Publisher struct {
	cfg      Config
	resolver Resolver
	lister   Lister
	logger   *slog.Logger

	nc      *nats.Conn
	ownConn bool
	kv      jetstream.KeyValue

	mu     sync.RWMutex
	status Status
}

// NewPublisher connects to NATS and creates or updates the bucket.
func NewPublisher(ctx context.Context, cfg Config, resolver Resolver, lister Lister) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.applyDefaults()
	if resolver == nil || lister == nil {
		return nil, fmt.Errorf("%w: resolver and lister are required", fabric.ErrInvalidArgument)
	}

	p := &Publisher{
		cfg:      cfg,
		resolver: resolver,
		lister:   lister,
		logger:   cfg.Logger.With("component", "mirror", "bucket", cfg.Bucket),
		nc:       cfg.Conn,
		status:   Status{Instance: cfg.Instance, Bucket: cfg.Bucket},
	}

	if p.nc == nil {
		nc, err := p.connectNATS()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		p.nc = nc
		p.ownConn = true
	}

	js, err := jetstream.New(p.nc)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "Resolved Service Fabric partitions",
		History:     DefaultHistory,
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to create KV bucket: %w", err)
	}
	p.kv = kv

	return p, nil
}

func (p *Publisher) connectNATS() (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("sf-mirror-" + p.cfg.Instance),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			p.logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			p.logger.Info("NATS reconnected", "server", nc.ConnectedUrl())
		}),
	}
	if p.cfg.NATSCredentials != "" {
		opts = append(opts, nats.UserCredentials(p.cfg.NATSCredentials))
	}
	return nats.Connect(strings.Join(p.cfg.NATSURLs, ","), opts...)
}

// Conn returns the NATS connection the publisher uses.
func (p *Publisher) Conn() *nats.Conn {
	return p.nc
}

// KeyValue returns the bucket records are written to.
func (p *Publisher) KeyValue() jetstream.KeyValue {
	return p.kv
}

// Run syncs immediately and then on every interval until ctx is done.
// Failed syncs are logged and retried on the next tick.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := p.SyncOnce(ctx); err != nil && ctx.Err() == nil {
			p.logger.Error("mirror sync failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// SyncOnce mirrors every configured service once. A service that fails to
// sync keeps its previous records.
func (p *Publisher) SyncOnce(ctx context.Context) error {
	start := time.Now()

	var (
		errs       []error
		partitions int
	)
	for _, svc := range p.cfg.Services {
		n, err := p.syncService(ctx, svc)
		if err != nil {
			errs = append(errs, fmt.Errorf("sync %s: %w", svc, err))
		}
		partitions += n
		p.cfg.Metrics.SetMirrorPartitions(p.cfg.Bucket, svc, n)
	}
	err := errors.Join(errs...)
	elapsed := time.Since(start)
	p.cfg.Metrics.ObserveMirrorSync(p.cfg.Bucket, elapsed, err)

	p.mu.Lock()
	p.status.Syncs++
	p.status.LastSync = start
	p.status.LastDuration = elapsed
	p.status.Services = len(p.cfg.Services)
	p.status.Partitions = partitions
	p.status.LastError = ""
	if err != nil {
		p.status.LastError = err.Error()
	}
	status := p.status
	p.mu.Unlock()

	if p.cfg.OnSync != nil {
		p.cfg.OnSync(status)
	}
	p.logger.Debug("mirror sync complete",
		"services", status.Services,
		"partitions", partitions,
		"duration", elapsed,
		"error", err)
	return err
}

// Status returns the result of the most recent sync.
func (p *Publisher) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// syncService lists and resolves the partitions of svc, writes their
// records and removes records of partitions that no longer exist. It
// returns the number of records written.
func (p *Publisher) syncService(ctx context.Context, svc string) (int, error) {
	items, err := p.lister.GetPartitionList(ctx, svc, p.cfg.OperationTimeout)
	if fabric.CodeOf(err) == fabric.CodeServiceNotFound {
		p.logger.Warn("mirrored service not found", "service", svc)
		return 0, p.deleteStale(ctx, svc, nil)
	}
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	rp := pool.NewWithResults[*PartitionRecord]().
		WithContext(ctx).
		WithMaxGoroutines(p.cfg.Concurrency)
	for _, item := range items {
		rp.Go(func(ctx context.Context) (*PartitionRecord, error) {
			resolved, err := p.resolve(ctx, svc, item)
			if err != nil {
				return nil, err
			}
			return newRecord(svc, item, resolved, p.cfg.Instance, now)
		})
	}
	records, resolveErr := rp.Wait()

	keep := make(map[string]struct{}, len(records))
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return 0, err
		}
		if _, err := p.kv.Put(ctx, r.Key(), data); err != nil {
			return 0, fmt.Errorf("failed to store partition %s: %w", r.Partition.ID, err)
		}
		keep[r.Key()] = struct{}{}
	}
	if resolveErr != nil {
		return len(records), resolveErr
	}
	return len(records), p.deleteStale(ctx, svc, keep)
}

func (p *Publisher) resolve(ctx context.Context, svc string, item fabric.PartitionQueryResultItem) (*fabric.ServicePartition, error) {
	var (
		resolved *fabric.ServicePartition
		err      error
	)
	listed := item.PartitionInformation()
	switch info := listed.(type) {
	case fabric.SingletonPartitionInformation:
		resolved, err = p.resolver.ResolveServicePartition(ctx, svc, fabric.PartitionKeyTypeNone, 0, p.cfg.OperationTimeout)
	case fabric.Int64RangePartitionInformation:
		resolved, err = p.resolver.ResolveServicePartition(ctx, svc, fabric.PartitionKeyTypeInt64, info.LowKey, p.cfg.OperationTimeout)
	case fabric.NamedPartitionInformation:
		resolved, err = p.resolver.ResolveNamedPartition(ctx, svc, info.Name, p.cfg.OperationTimeout)
	default:
		return nil, fmt.Errorf("%w: listed partition of %s", fabric.ErrInvalidServicePartitionKind, svc)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve partition %s: %w", listed.PartitionID(), err)
	}
	if resolved.Info == nil || resolved.Info.PartitionID() != listed.PartitionID() {
		return nil, fmt.Errorf("resolve partition %s: resolved a different partition", listed.PartitionID())
	}
	return resolved, nil
}

// deleteStale removes the records of svc whose keys are not in keep.
func (p *Publisher) deleteStale(ctx context.Context, svc string, keep map[string]struct{}) error {
	keys, err := p.kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	prefix := ServicePrefix(svc)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if _, ok := keep[key]; ok {
			continue
		}
		if err := p.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
		p.logger.Info("removed stale partition", "service", svc, "key", key)
	}
	return nil
}

// Close closes the NATS connection if the publisher opened it.
func (p *Publisher) Close() {
	if p.ownConn && p.nc != nil {
		p.nc.Close()
	}
}
