// Package nativesim is an in-process implementation of the native client
// runtime boundary, for tests and for running the client on machines
// without the native runtime.
//
// A [Cluster] serves services from a [Catalog]. It loads like a library,
// creates a root client object, and completes Begin/End operations the way
// the native runtime does: callbacks run later on a dedicated OS thread, or
// inline inside Begin when the cluster is [Synchronous]. Every object it
// hands out is reference counted; [Cluster.LiveObjects] exposes leaks.
//
// Faults are injected per operation with [Cluster.FailBegin],
// [Cluster.FailEnd] and [Cluster.DropCallbacks].
package nativesim
