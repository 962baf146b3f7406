package nativesim

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrServiceNotFound is returned by catalogs for unknown services.
var ErrServiceNotFound = errors.New("nativesim: service not found")

// Names used in catalogs. They match the String forms of the fabric
// package enums.
const (
	KindStateless = "Stateless"
	KindStateful  = "Stateful"

	PartitionSingleton  = "Singleton"
	PartitionInt64Range = "Int64Range"
	PartitionNamed      = "Named"
)

// Catalog supplies the services the simulated cluster knows about.
type Catalog interface {
	Service(ctx context.Context, name string) (*Service, error)
}

// Service is a service as the simulated cluster reports it.
type Service struct {
	Name       string      `yaml:"name" json:"name"`
	Kind       string      `yaml:"kind" json:"kind"`
	Partitions []Partition `yaml:"partitions" json:"partitions"`
}

// Partition is one partition of a Service.
type Partition struct {
	ID      uuid.UUID `yaml:"id" json:"id"`
	Kind    string    `yaml:"kind" json:"kind"`
	LowKey  int64     `yaml:"lowKey,omitempty" json:"lowKey,omitempty"`
	HighKey int64     `yaml:"highKey,omitempty" json:"highKey,omitempty"`
	Name    string    `yaml:"name,omitempty" json:"name,omitempty"`

	Health string `yaml:"health,omitempty" json:"health,omitempty"`
	Status string `yaml:"status,omitempty" json:"status,omitempty"`

	TargetReplicaSetSize  uint32 `yaml:"targetReplicaSetSize,omitempty" json:"targetReplicaSetSize,omitempty"`
	MinReplicaSetSize     uint32 `yaml:"minReplicaSetSize,omitempty" json:"minReplicaSetSize,omitempty"`
	InstanceCount         uint32 `yaml:"instanceCount,omitempty" json:"instanceCount,omitempty"`
	LastQuorumLossSeconds int64  `yaml:"lastQuorumLossSeconds,omitempty" json:"lastQuorumLossSeconds,omitempty"`

	Endpoints []Endpoint `yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
}

// Endpoint is an address published by a partition.
type Endpoint struct {
	Address string `yaml:"address" json:"address"`
	Role    string `yaml:"role" json:"role"`
}

// Validate checks that s can be served.
func (s *Service) Validate() error {
	if !strings.HasPrefix(s.Name, "fabric:/") {
		return fmt.Errorf("service %q: name must start with fabric:/", s.Name)
	}
	if s.Kind != KindStateless && s.Kind != KindStateful {
		return fmt.Errorf("service %s: unknown kind %q", s.Name, s.Kind)
	}
	if len(s.Partitions) == 0 {
		return fmt.Errorf("service %s: no partitions", s.Name)
	}
	for i, p := range s.Partitions {
		if p.ID == uuid.Nil {
			return fmt.Errorf("service %s: partition %d has no id", s.Name, i)
		}
		switch p.Kind {
		case PartitionSingleton:
			if len(s.Partitions) != 1 {
				return fmt.Errorf("service %s: singleton partition must be the only one", s.Name)
			}
		case PartitionInt64Range:
			if p.LowKey > p.HighKey {
				return fmt.Errorf("service %s: partition %s has lowKey > highKey", s.Name, p.ID)
			}
		case PartitionNamed:
			if p.Name == "" {
				return fmt.Errorf("service %s: named partition %s has no name", s.Name, p.ID)
			}
		default:
			return fmt.Errorf("service %s: partition %s has unknown kind %q", s.Name, p.ID, p.Kind)
		}
		for _, ep := range p.Endpoints {
			if strings.ContainsRune(ep.Address, 0) {
				return fmt.Errorf("service %s: endpoint address contains NUL", s.Name)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Service) Clone() *Service {
	c := *s
	c.Partitions = make([]Partition, len(s.Partitions))
	for i, p := range s.Partitions {
		p.Endpoints = slices.Clone(p.Endpoints)
		c.Partitions[i] = p
	}
	return &c
}

// MemoryCatalog is a Catalog held in memory. It is safe for concurrent use.
type MemoryCatalog struct {
	mu       sync.RWMutex
	services map[string]*Service
}

// NewMemoryCatalog returns a catalog holding services.
func NewMemoryCatalog(services ...Service) (*MemoryCatalog, error) {
	c := &MemoryCatalog{services: make(map[string]*Service)}
	for _, s := range services {
		if err := c.Put(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Put adds or replaces a service.
func (c *MemoryCatalog) Put(s Service) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[s.Name] = s.Clone()
	return nil
}

// Delete removes a service.
func (c *MemoryCatalog) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, name)
}

// Service implements Catalog.
func (c *MemoryCatalog) Service(_ context.Context, name string) (*Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.services[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	return s.Clone(), nil
}

// Names returns the service names in sorted order.
func (c *MemoryCatalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.services))
	for n := range c.services {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

type catalogFile struct {
	Services []Service `yaml:"services"`
}

// LoadCatalogFile reads a YAML catalog of the form
//
//	services:
//	  - name: fabric:/App/Svc
//	    kind: Stateful
//	    partitions: [...]
func LoadCatalogFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return NewMemoryCatalog(f.Services...)
}
