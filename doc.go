// Package fabric is a Go client for the native Service Fabric client
// runtime.
//
// The native runtime exposes reference-counted objects bound to the thread
// that created them, and reports completion of every operation through a
// Begin call, a callback invoked on a runtime thread, and an End call. This
// package hides both: clients are safe to share between goroutines, and
// every operation is a blocking call that honors a context and retries
// transient failures.
//
// # Quick Start
//
//	client, err := fabric.New(fabric.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	sm, err := client.ServiceManagementClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sm.Close()
//
//	p, err := sm.ResolveServicePartition(ctx, "fabric:/App/Svc",
//	    fabric.PartitionKeyTypeInt64, 42, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ep := range p.Endpoints {
//	    fmt.Println(ep.Role, ep.Address)
//	}
//
// # Threading
//
// Native objects are held as [AgileRef] values. Each use resolves the
// reference on the calling OS thread with the thread locked, and releases
// what it resolved before unlocking. Completion callbacks may run inline
// inside Begin or later on any runtime thread; either way the result is
// handed to the waiting caller through a one-slot channel without
// blocking the runtime.
//
// # Errors
//
// Failures reported by the runtime are [*NativeError] values carrying the
// HRESULT; [CodeOf] classifies them against the status code table.
// Operations retry codes on a fixed transient list (see [TransientCodes])
// at a fixed interval. Malformed results are [*DecodeError]s, and an
// operation the runtime dropped without completing returns an error
// matching [ErrAbandoned].
//
// On platforms without the native runtime, supply a loader with
// [WithLoader]; package nativesim provides an in-process one.
package fabric
