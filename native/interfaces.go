package native

import "unsafe"

// Unknown is the base of every native object.
//
// QueryInterface returns a new reference that the caller must Release. A
// failed lookup returns E_NOINTERFACE. Release returns the remaining count;
// the object must not be used once its last reference is gone.
type Unknown interface {
	QueryInterface(iid GUID) (Unknown, error)
	AddRef() uint32
	Release() uint32
}

// AsyncOperationContext is the token returned by a Begin call and handed
// back to the matching End call.
type AsyncOperationContext interface {
	Unknown
	IsCompleted() bool
	CompletedSynchronously() bool
	Callback() (AsyncOperationCallback, error)
	Cancel() error
}

// AsyncOperationCallback is implemented by the caller of a Begin method.
// The native side invokes it exactly once, on a thread of its choosing,
// unless the operation is abandoned. It keeps a reference to the callback
// until it has finished with it.
type AsyncOperationCallback interface {
	Unknown
	Invoke(ctx AsyncOperationContext)
}

// ServiceManagementClient is the subset of IFabricServiceManagementClient
// used for partition resolution.
type ServiceManagementClient interface {
	Unknown

	// BeginResolveServicePartition starts resolution of name. key points at
	// an int64 for PartitionKeyTypeInt64, at a NUL-terminated UTF-16 string
	// for PartitionKeyTypeString, and is nil for PartitionKeyTypeNone.
	// previous may be nil.
	BeginResolveServicePartition(name *uint16, keyType PartitionKeyType, key unsafe.Pointer,
		previous ResolvedServicePartitionResult, timeoutMs uint32, cb AsyncOperationCallback) (AsyncOperationContext, error)
	EndResolveServicePartition(ctx AsyncOperationContext) (ResolvedServicePartitionResult, error)
}

// ResolvedServicePartitionResult owns a ResolvedServicePartition. The
// returned structure is valid until the result is released.
type ResolvedServicePartitionResult interface {
	Unknown
	Partition() *ResolvedServicePartition
}

// QueryClient is the subset of IFabricQueryClient used for partition
// listing.
type QueryClient interface {
	Unknown
	BeginGetPartitionList(desc *ServicePartitionQueryDescription, timeoutMs uint32,
		cb AsyncOperationCallback) (AsyncOperationContext, error)
	EndGetPartitionList(ctx AsyncOperationContext) (GetPartitionListResult, error)
}

// GetPartitionListResult owns a ServicePartitionQueryResultList. The
// returned structure is valid until the result is released.
type GetPartitionListResult interface {
	Unknown
	PartitionList() *ServicePartitionQueryResultList
}
