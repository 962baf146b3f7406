// Package native describes the boundary to the native Service Fabric client
// runtime: reference-counted COM-style objects, Begin/End operation pairs,
// and the raw result structures those operations hand back.
//
// Nothing outside this package touches raw memory. Result structures are
// exposed as Go structs that mirror the native layout, and every pointer,
// array view, union and UTF-16 string is read through the accessors defined
// here ([Slice], [UTF16PtrToString], [ServicePartitionInformation.Singleton]
// and friends).
//
// # Objects
//
// Every native object implements [Unknown]. Typed views such as
// [ServiceManagementClient] and [QueryClient] are obtained with
// QueryInterface and must be released by whoever obtained them.
//
// Objects returned by the native runtime are bound to the thread (apartment)
// that produced them. To use an object from another goroutine, register it
// with a [Runtime] to obtain an [AgileReference] and resolve that reference
// on the thread that needs it.
//
// # Loading
//
// A [Loader] opens the client library and exposes the
// FabricCreateLocalClient factory. On Windows [DefaultLoader] uses
// LoadLibraryEx and GetProcAddress; on other platforms it reports
// [ErrUnsupportedPlatform] and a loader has to be supplied by the caller.
//
// # Bindings
//
// The Windows loader returns objects that only implement [Unknown]. Typed
// views come from wrappers installed with [RegisterBinding], one per
// interface ID, and this module does not ship generated wrappers for the
// FabricClient interfaces. Until a binding package registers them,
// resolving a [ServiceManagementClient] or [QueryClient] from a real
// library fails with E_NOINTERFACE. Completion callbacks are likewise not
// exported as COM objects on that path. The in-process simulator in
// package nativesim implements the typed interfaces directly.
package native
