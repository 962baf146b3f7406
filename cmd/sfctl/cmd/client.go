package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/mirror"
	"github.com/ozanturksever/go-fabric/nativesim"
)

// loadSettings reads the settings file, if any, and applies the flags,
// environment and config file values that were set explicitly.
func loadSettings() (*fabric.FileConfig, error) {
	fc := &fabric.FileConfig{}
	if path := viper.GetString("settings"); path != "" {
		loaded, err := fabric.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		fc = loaded
	}

	if viper.IsSet("library") {
		fc.Client.LibraryPaths = viper.GetStringSlice("library")
	}
	if viper.IsSet("timeout") {
		fc.Client.OperationTimeoutMs = viper.GetDuration("timeout").Milliseconds()
	}
	if viper.IsSet("nats") {
		fc.Mirror.NATS.Servers = viper.GetStringSlice("nats")
	}
	if viper.IsSet("bucket") {
		fc.Mirror.Bucket = viper.GetString("bucket")
	}

	fc.ApplyDefaults()
	if err := fc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return fc, nil
}

// connectNATS connects to the mirror's NATS servers.
func connectNATS(fc *fabric.FileConfig) (*nats.Conn, error) {
	servers := fc.Mirror.NATS.Servers
	if len(servers) == 0 {
		servers = []string{nats.DefaultURL}
	}
	opts := []nats.Option{nats.Name("sfctl"), nats.Timeout(5 * time.Second)}
	if fc.Mirror.NATS.Credentials != "" {
		opts = append(opts, nats.UserCredentials(fc.Mirror.NATS.Credentials))
	}
	nc, err := nats.Connect(strings.Join(servers, ","), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// openClient creates a client for the native runtime, or for a simulated
// cluster when --catalog or --from-mirror is set. The returned function
// closes the client and anything opened for it.
func openClient(ctx context.Context, fc *fabric.FileConfig, logger *slog.Logger, opts ...fabric.Option) (*fabric.Client, func(), error) {
	opts = append([]fabric.Option{fabric.WithLogger(logger)}, opts...)
	cleanup := func() {}

	switch {
	case viper.GetString("catalog") != "":
		cat, err := nativesim.LoadCatalogFile(viper.GetString("catalog"))
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, fabric.WithLoader(nativesim.NewCluster(cat, nativesim.WithLogger(logger))))

	case viper.GetBool("from-mirror"):
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
		opts = append(opts, fabric.WithLoader(nativesim.NewCluster(cat, nativesim.WithLogger(logger))))
		cleanup = nc.Close
	}

	c, err := fabric.New(fc.ToConfig(logger), opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return c, func() {
		c.Close()
		cleanup()
	}, nil
}
