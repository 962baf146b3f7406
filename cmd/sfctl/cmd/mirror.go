package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/health"
	"github.com/ozanturksever/go-fabric/mirror"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror resolved partitions into NATS",
}

var mirrorRunCmd = &cobra.Command{
	Use:   "run [service...]",
	Short: "Run the partition mirror",
	Long: `Resolve the partitions of the given services on an interval and store
them in a NATS JetStream key-value bucket.

Services default to mirror.services from the settings file. The mirror
answers health requests and serves Prometheus metrics while it runs.

Example:
  sfctl mirror run fabric:/Shop/Orders fabric:/Shop/Web --nats nats://localhost:4222
  sfctl mirror run --settings /etc/sfctl/settings.yaml`,
	RunE: runMirror,
}

var mirrorListCmd = &cobra.Command{
	Use:   "list [service]",
	Short: "List mirrored services or the partitions of one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMirrorList,
}

var mirrorWatchCmd = &cobra.Command{
	Use:   "watch [service]",
	Short: "Stream changes to mirrored partitions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMirrorWatch,
}

var mirrorStatusCmd = &cobra.Command{
	Use:   "status <instance>",
	Short: "Query the status of a running mirror",
	Args:  cobra.ExactArgs(1),
	RunE:  runMirrorStatus,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)
	mirrorCmd.AddCommand(mirrorRunCmd, mirrorListCmd, mirrorWatchCmd, mirrorStatusCmd)

	mirrorRunCmd.Flags().Duration("interval", 0, "sync interval (default 30s)")
	mirrorRunCmd.Flags().String("instance", "", "instance name (default: hostname)")
	mirrorRunCmd.Flags().String("metrics-addr", "", "Prometheus metrics HTTP address (default :9090)")
	mirrorRunCmd.Flags().Bool("once", false, "sync once and exit")
}

func runMirror(cmd *cobra.Command, args []string) error {
	fc, err := loadSettings()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		fc.Mirror.Services = args
	}
	if s, _ := cmd.Flags().GetString("instance"); s != "" {
		fc.Mirror.Instance = s
	}
	if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
		fc.Mirror.SyncIntervalMs = d.Milliseconds()
	}
	if s, _ := cmd.Flags().GetString("metrics-addr"); s != "" {
		fc.Metrics.Addr = s
	}
	if len(fc.Mirror.Services) == 0 {
		return errors.New("no services to mirror")
	}

	logger := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := fabric.NewMetrics()
	c, closeClient, err := openClient(ctx, fc, logger, fabric.WithMetrics(metrics))
	if err != nil {
		return err
	}
	defer closeClient()

	sm, err := c.ServiceManagementClient()
	if err != nil {
		return err
	}
	defer sm.Close()
	qc, err := c.QueryClient()
	if err != nil {
		return err
	}
	defer qc.Close()

	nc, err := connectNATS(fc)
	if err != nil {
		return err
	}
	defer nc.Close()

	checker, err := health.NewChecker(health.Config{
		Bucket:   fc.Mirror.Bucket,
		Instance: fc.Mirror.Instance,
		Conn:     nc,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	pub, err := mirror.NewPublisher(ctx, mirror.Config{
		Conn:             nc,
		Bucket:           fc.Mirror.Bucket,
		Instance:         fc.Mirror.Instance,
		Services:         fc.Mirror.Services,
		Interval:         time.Duration(fc.Mirror.SyncIntervalMs) * time.Millisecond,
		OperationTimeout: time.Duration(fc.Client.OperationTimeoutMs) * time.Millisecond,
		Metrics:          metrics,
		Logger:           logger,
		OnSync: func(s mirror.Status) {
			var err error
			if s.LastError != "" {
				err = errors.New(s.LastError)
			}
			checker.ReportSync(s.LastSync, s.Services, s.Partitions, err)
		},
	}, sm, qc)
	if err != nil {
		return err
	}
	defer pub.Close()

	if once, _ := cmd.Flags().GetBool("once"); once {
		err := pub.SyncOnce(ctx)
		printStatus(pub.Status())
		return err
	}

	if err := checker.Start(ctx); err != nil {
		return err
	}
	defer checker.Stop()

	if err := metrics.Start(ctx, fc.Metrics.Addr); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	defer metrics.Stop()

	fmt.Println("Starting partition mirror...")
	fmt.Printf("  Instance:  %s\n", fc.Mirror.Instance)
	fmt.Printf("  Bucket:    %s\n", fc.Mirror.Bucket)
	fmt.Printf("  Services:  %d\n", len(fc.Mirror.Services))
	fmt.Printf("  Interval:  %s\n", time.Duration(fc.Mirror.SyncIntervalMs)*time.Millisecond)
	fmt.Printf("  Metrics:   %s\n", metrics.Addr())
	fmt.Println()
	fmt.Println("Mirror started. Press Ctrl+C to stop.")

	err = pub.Run(ctx)
	fmt.Println("Mirror stopped.")
	return err
}

func printStatus(s mirror.Status) {
	state := color.New(color.FgGreen).Sprint("✓ synced")
	if s.LastError != "" {
		state = color.New(color.FgRed).Sprint("✗ failed")
	}
	fmt.Printf("%s %d partitions of %d services in %s\n", state, s.Partitions, s.Services, s.LastDuration.Round(time.Millisecond))
	if s.LastError != "" {
		fmt.Printf("  %s\n", s.LastError)
	}
}

func openCatalog(ctx context.Context) (*mirror.Catalog, func(), error) {
	fc, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	nc, err := connectNATS(fc)
	if err != nil {
		return nil, nil, err
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	cat, err := mirror.OpenCatalog(ctx, js, fc.Mirror.Bucket)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	return cat, nc.Close, nil
}

func runMirrorList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cat, closeCatalog, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer closeCatalog()

	if len(args) == 0 {
		names, err := cat.Services(ctx)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(names)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	records, err := cat.Records(ctx, args[0])
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(records)
	}

	w := newTable(os.Stdout)
	fmt.Fprintln(w, "PARTITION\tKIND\tHEALTH\tENDPOINTS\tINSTANCE\tUPDATED")
	for _, r := range records {
		p := r.Partition
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Kind, p.Health, len(p.Endpoints), r.Instance, time.Since(r.UpdatedAt).Round(time.Second))
	}
	return w.Flush()
}

func runMirrorWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, closeCatalog, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer closeCatalog()

	service := ""
	if len(args) > 0 {
		service = args[0]
	}
	events, err := cat.Watch(ctx, service)
	if err != nil {
		return err
	}

	for ev := range events {
		if jsonOutput() {
			if err := printJSON(ev); err != nil {
				return err
			}
			continue
		}
		switch ev.Type {
		case mirror.EventPut:
			fmt.Printf("%s %s %s (%d endpoints)\n",
				color.New(color.FgGreen).Sprint("PUT   "), ev.Service, ev.PartitionID, len(ev.Record.Partition.Endpoints))
		case mirror.EventDelete:
			fmt.Printf("%s %s %s\n", color.New(color.FgRed).Sprint("DELETE"), ev.Service, ev.PartitionID)
		}
	}
	return nil
}

func runMirrorStatus(cmd *cobra.Command, args []string) error {
	fc, err := loadSettings()
	if err != nil {
		return err
	}
	nc, err := connectNATS(fc)
	if err != nil {
		return err
	}
	defer nc.Close()

	checker, err := health.NewChecker(health.Config{
		Bucket:   fc.Mirror.Bucket,
		Instance: "sfctl",
		Conn:     nc,
		Logger:   newLogger(),
	})
	if err != nil {
		return err
	}

	resp, err := checker.QueryInstance(context.Background(), args[0], 5*time.Second)
	if err != nil {
		return fmt.Errorf("instance %s did not answer: %w", args[0], err)
	}
	if jsonOutput() {
		return printJSON(resp)
	}

	state := resp.State
	switch resp.State {
	case health.StateHealthy:
		state = color.New(color.FgGreen).Sprint("✓ " + state)
	case health.StateDegraded:
		state = color.New(color.FgRed).Sprint("✗ " + state)
	default:
		state = color.New(color.FgYellow).Sprint("? " + state)
	}
	fmt.Printf("Instance:   %s\n", resp.Instance)
	fmt.Printf("State:      %s\n", state)
	fmt.Printf("Services:   %d\n", resp.Services)
	fmt.Printf("Partitions: %d\n", resp.Partitions)
	if resp.LastSync > 0 {
		fmt.Printf("Last sync:  %s ago\n", time.Since(time.UnixMilli(resp.LastSync)).Round(time.Second))
	}
	fmt.Printf("Uptime:     %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	if resp.LastError != "" {
		fmt.Printf("Error:      %s\n", resp.LastError)
	}
	return nil
}
