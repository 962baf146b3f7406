package fabric

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ozanturksever/go-fabric/native"
)

// QueryClient runs cluster queries. It is safe for concurrent use.
type QueryClient struct {
	ref    *AgileRef[native.QueryClient]
	env    *opEnv
	users  usage
	closed atomic.Bool
}

// GetPartitionList lists the partitions of serviceName. A zero timeout uses
// the client default.
func (c *QueryClient) GetPartitionList(ctx context.Context, serviceName string,
	timeout time.Duration) ([]PartitionQueryResultItem, error) {
	return c.partitions(ctx, serviceName, native.GUID{}, timeout)
}

// GetPartition returns the partition of serviceName with the given ID, or
// ErrPartitionNotFound.
func (c *QueryClient) GetPartition(ctx context.Context, serviceName string, partitionID uuid.UUID,
	timeout time.Duration) (PartitionQueryResultItem, error) {
	if partitionID == uuid.Nil {
		return nil, fmt.Errorf("%w: nil partition ID", ErrInvalidArgument)
	}
	items, err := c.partitions(ctx, serviceName, native.GUIDFromUUID(partitionID), timeout)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.PartitionInformation().PartitionID() == partitionID {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrPartitionNotFound, partitionID, serviceName)
}

func (c *QueryClient) partitions(ctx context.Context, serviceName string, filter native.GUID,
	timeout time.Duration) ([]PartitionQueryResultItem, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	name, err := native.UTF16PtrFromString(serviceName)
	if err != nil {
		return nil, fmt.Errorf("%w: service name: %v", ErrInvalidArgument, err)
	}
	desc := &native.ServicePartitionQueryDescription{
		ServiceName:       name,
		PartitionIDFilter: filter,
	}
	ms := c.env.timeoutMillis(timeout)

	op := asyncOp[native.QueryClient, native.GetPartitionListResult, []PartitionQueryResultItem]{
		name: "GetPartitionList",
		begin: func(qc native.QueryClient, cb native.AsyncOperationCallback) (native.AsyncOperationContext, error) {
			return qc.BeginGetPartitionList(desc, ms, cb)
		},
		end: func(qc native.QueryClient, ctx native.AsyncOperationContext) (native.GetPartitionListResult, error) {
			return qc.EndGetPartitionList(ctx)
		},
		project: func(r native.GetPartitionListResult) ([]PartitionQueryResultItem, error) {
			return projectPartitionList(r.PartitionList())
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

	return Retry(ctx, c.env.retryPolicy(), c.env.logger, op.name, func(ctx context.Context) ([]PartitionQueryResultItem, error) {
		return invokeAsync(ctx, c.env, ref, op)
	})
}

// Close releases the client. Operations already running complete normally;
// the library stays loaded until they do.
func (c *QueryClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.ref.Release()
	return c.users.release()
}
