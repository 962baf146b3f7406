package fabric

import (
	"log/slog"

	"github.com/ozanturksever/go-fabric/native"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	loader  native.Loader
	runtime native.Runtime
	metrics *Metrics
	logger  *slog.Logger
	retry   *RetryPolicy
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		loader: native.DefaultLoader(),
	}
}

// WithLoader sets the loader used to open the client library.
func WithLoader(l native.Loader) Option {
	return func(o *clientOptions) {
		o.loader = l
	}
}

// WithRuntime overrides the agile reference runtime. By default the loaded
// library's runtime is used.
func WithRuntime(rt native.Runtime) Option {
	return func(o *clientOptions) {
		o.runtime = rt
	}
}

// WithMetrics records operation metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *clientOptions) {
		o.metrics = m
	}
}

// WithLogger overrides Config.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithRetryPolicy overrides Config.Retry.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *clientOptions) {
		o.retry = &p
	}
}
