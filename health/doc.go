// Package health answers status requests for a running partition mirror
// over NATS request/reply.
//
// The publisher pushes the outcome of every sync with ReportSync; other
// instances, or the command line tool, query it with QueryInstance.
//
// # Usage
//
//	checker, err := health.NewChecker(health.Config{
//	    Bucket:   "sf_partitions",
//	    Instance: "host-1",
//	    NATSURLs: []string{"nats://localhost:4222"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := checker.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer checker.Stop()
//
//	checker.ReportSync(time.Now(), 3, 12, nil)
//
//	resp, err := checker.QueryInstance(ctx, "host-2", 5*time.Second)
//
// # NATS Subject Pattern
//
// Health requests use the subject pattern: fabric.mirror.<bucket>.health.<instance>
package health
