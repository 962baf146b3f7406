// Package mirror publishes resolved Service Fabric partitions into a NATS
// JetStream key-value bucket and reads them back.
//
// A Publisher lists the partitions of each configured service, resolves
// every partition's endpoints and stores one JSON PartitionRecord per
// partition. Records of partitions that disappear are deleted.
//
//	pub, err := mirror.NewPublisher(ctx, mirror.Config{
//	    NATSURLs: []string{"nats://localhost:4222"},
//	    Services: []string{"fabric:/Shop/Orders"},
//	}, smClient, queryClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pub.Close()
//	go pub.Run(ctx)
//
// A Catalog reads the bucket. It satisfies nativesim.Catalog, so a
// simulated cluster can answer from mirrored data on hosts without the
// native runtime.
//
// # Keys
//
// Records are stored under svc.<service>.<partition id>, where <service> is
// the base64url encoding of the fabric:/ name without padding.
package mirror
