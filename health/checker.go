package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// States reported in Response.State.
const (
	StateStarting = "starting"
	StateHealthy  = "healthy"
	StateDegraded = "degraded"
)

type Config struct {
	Bucket          string
	Instance        string
	NATSURLs        []string
	NATSCredentials string

	// Conn is used instead of dialing NATSURLs when set. It is not closed
	// by Stop.
	Conn *nats.Conn

	Logger *slog.Logger
}

func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("Bucket is required")
	}
	if c.Instance == "" {
		return fmt.Errorf("Instance is required")
	}
	if strings.ContainsAny(c.Bucket+c.Instance, ".*> ") {
		return fmt.Errorf("Bucket and Instance must be single subject tokens")
	}
	if c.Conn == nil && len(c.NATSURLs) == 0 {
		return fmt.Errorf("at least one NATS URL is required")
	}
	return nil
}

// Subject returns the subject instance of bucket answers health requests on.
func Subject(bucket, instance string) string {
	return fmt.Sprintf("fabric.mirror.%s.health.%s", bucket, instance)
}

type Response struct {
	Instance   string         `json:"instance"`
	State      string         `json:"state"`
	LastSync   int64          `json:"lastSync,omitempty"`
	Services   int            `json:"services"`
	Partitions int            `json:"partitions"`
	LastError  string         `json:"lastError,omitempty"`
	UptimeMs   int64          `json:"uptimeMs"`
	Timestamp  int64          `json:"timestamp"`
	Custom     map[string]any `json:"custom,omitempty"`
}

type Checker struct {
	cfg        Config
	logger     *slog.Logger
	subject    string
	mu         sync.RWMutex
	state      string
	lastSync   time.Time
	services   int
	partitions int
	lastError  string
	custom     map[string]any
	startedAt  time.Time
	nc         *nats.Conn
	ownConn    bool
	sub        *nats.Subscription
}

func NewChecker(cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		cfg:     cfg,
		logger:  logger.With("component", "health", "bucket", cfg.Bucket, "instance", cfg.Instance),
		subject: Subject(cfg.Bucket, cfg.Instance),
		state:   StateStarting,
		custom:  make(map[string]any),
	}, nil
}

func (c *Checker) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nc != nil {
		return nil
	}

	nc := c.cfg.Conn
	own := false
	if nc == nil {
		var err error
		nc, err = c.connect(nats.MaxReconnects(-1), nats.ReconnectWait(2*time.Second))
		if err != nil {
			return fmt.Errorf("connect NATS: %w", err)
		}
		own = true
	}

	sub, err := nc.Subscribe(c.subject, c.handleRequest)
	if err != nil {
		if own {
			nc.Close()
		}
		return fmt.Errorf("subscribe health subject: %w", err)
	}

	c.nc = nc
	c.ownConn = own
	c.sub = sub
	c.startedAt = time.Now()

	c.logger.Info("health checker started", "subject", c.subject)
	return nil
}

func (c *Checker) connect(opts ...nats.Option) (*nats.Conn, error) {
	if c.cfg.NATSCredentials != "" {
		opts = append(opts, nats.UserCredentials(c.cfg.NATSCredentials))
	}
	return nats.Connect(strings.Join(c.cfg.NATSURLs, ","), opts...)
}

func (c *Checker) Stop() {
	c.mu.Lock()
	sub := c.sub
	nc := c.nc
	own := c.ownConn
	c.sub = nil
	c.nc = nil
	c.mu.Unlock()

	if sub != nil {
		_ = sub.Unsubscribe()
	}
	if nc != nil && own {
		nc.Close()
	}
	c.logger.Info("health checker stopped")
}

// ReportSync records the outcome of a mirror sync. A failed sync marks the
// instance degraded until the next successful one.
func (c *Checker) ReportSync(at time.Time, services, partitions int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSync = at
	c.services = services
	c.partitions = partitions
	if err != nil {
		c.state = StateDegraded
		c.lastError = err.Error()
	} else {
		c.state = StateHealthy
		c.lastError = ""
	}
}

func (c *Checker) SetCustom(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[key] = value
}

// QueryInstance asks another instance mirroring the same bucket for its
// status.
func (c *Checker) QueryInstance(ctx context.Context, instance string, timeout time.Duration) (Response, error) {
	if instance == "" {
		return Response{}, fmt.Errorf("instance is required")
	}

	subject := Subject(c.cfg.Bucket, instance)
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c.mu.RLock()
	nc := c.nc
	c.mu.RUnlock()
	if nc == nil {
		nc = c.cfg.Conn
	}

	var msg *nats.Msg
	var err error

	if nc != nil && nc.IsConnected() {
		msg, err = nc.RequestWithContext(reqCtx, subject, nil)
	} else {
		tmp, errConn := c.connect(nats.Timeout(timeout))
		if errConn != nil {
			return Response{}, fmt.Errorf("connect NATS: %w", errConn)
		}
		defer tmp.Close()
		msg, err = tmp.RequestWithContext(reqCtx, subject, nil)
	}

	if err != nil {
		return Response{}, err
	}

	var resp Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

func (c *Checker) handleRequest(msg *nats.Msg) {
	if msg.Reply == "" {
		return
	}

	resp := c.buildResponse()
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error("failed to marshal health response", "error", err)
		return
	}

	if err := msg.Respond(data); err != nil {
		c.logger.Error("failed to respond to health request", "error", err)
	}
}

func (c *Checker) buildResponse() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	var uptimeMs int64
	if !c.startedAt.IsZero() {
		uptimeMs = now.Sub(c.startedAt).Milliseconds()
	}
	var lastSync int64
	if !c.lastSync.IsZero() {
		lastSync = c.lastSync.UnixMilli()
	}

	custom := make(map[string]any, len(c.custom))
	for k, v := range c.custom {
		custom[k] = v
	}

	return Response{
		Instance:   c.cfg.Instance,
		State:      c.state,
		LastSync:   lastSync,
		Services:   c.services,
		Partitions: c.partitions,
		LastError:  c.lastError,
		UptimeMs:   uptimeMs,
		Timestamp:  now.UnixMilli(),
		Custom:     custom,
	}
}
