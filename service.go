package fabric

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/ozanturksever/go-fabric/native"
)

// ServiceManagementClient resolves service partitions. It is safe for
// concurrent use.
type ServiceManagementClient struct {
	ref    *AgileRef[native.ServiceManagementClient]
	env    *opEnv
	users  usage
	closed atomic.Bool
}

// ResolveServicePartition resolves the partition of serviceName that owns
// key. keyType must be PartitionKeyTypeNone, for singleton services, or
// PartitionKeyTypeInt64; named partitions are resolved with
// ResolveNamedPartition. A zero timeout uses the client default.
func (c *ServiceManagementClient) ResolveServicePartition(ctx context.Context, serviceName string,
	keyType PartitionKeyType, key int64, timeout time.Duration) (*ServicePartition, error) {
	switch keyType {
	case PartitionKeyTypeNone, PartitionKeyTypeInt64:
	case PartitionKeyTypeString:
		return nil, fmt.Errorf("%w: string keys are resolved with ResolveNamedPartition", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: partition key type %s", ErrInvalidArgument, keyType)
	}
	return c.resolve(ctx, serviceName, keyType, unsafe.Pointer(&key), timeout)
}

// ResolveNamedPartition resolves the named partition partitionName of
// serviceName.
func (c *ServiceManagementClient) ResolveNamedPartition(ctx context.Context, serviceName, partitionName string,
	timeout time.Duration) (*ServicePartition, error) {
	name, err := native.UTF16PtrFromString(partitionName)
	if err != nil {
		return nil, fmt.Errorf("%w: partition name: %v", ErrInvalidArgument, err)
	}
	return c.resolve(ctx, serviceName, PartitionKeyTypeString, unsafe.Pointer(name), timeout)
}

func (c *ServiceManagementClient) resolve(ctx context.Context, serviceName string, keyType PartitionKeyType,
	key unsafe.Pointer, timeout time.Duration) (*ServicePartition, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	name, err := native.UTF16PtrFromString(serviceName)
	if err != nil {
		return nil, fmt.Errorf("%w: service name: %v", ErrInvalidArgument, err)
	}
	if keyType == PartitionKeyTypeNone {
		key = nil
	}
	ms := c.env.timeoutMillis(timeout)

	op := asyncOp[native.ServiceManagementClient, native.ResolvedServicePartitionResult, *ServicePartition]{
		name: "ResolveServicePartition",
		begin: func(sc native.ServiceManagementClient, cb native.AsyncOperationCallback) (native.AsyncOperationContext, error) {
			return sc.BeginResolveServicePartition(name, native.PartitionKeyType(keyType), key, nil, ms, cb)
		},
		end: func(sc native.ServiceManagementClient, ctx native.AsyncOperationContext) (native.ResolvedServicePartitionResult, error) {
			return sc.EndResolveServicePartition(ctx)
		},
		project: func(r native.ResolvedServicePartitionResult) (*ServicePartition, error) {
			return projectServicePartition(r.Partition())
		},
	}
	if !c.users.acquire() {
		return nil, ErrClientClosed
	}
	defer c.users.release()
	ref, err := c.ref.Clone()
	if err != nil {
		return nil, ErrClientClosed
	}
	defer ref.Release()

	return Retry(ctx, c.env.retryPolicy(), c.env.logger, op.name, func(ctx context.Context) (*ServicePartition, error) {
		return invokeAsync(ctx, c.env, ref, op)
	})
}

// Close releases the client. Operations already running complete normally;
// the library stays loaded until they do.
func (c *ServiceManagementClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.ref.Release()
	return c.users.release()
}
