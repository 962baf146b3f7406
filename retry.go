package fabric

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Retry defaults.
const (
	DefaultRetryInterval    = 200 * time.Millisecond
	DefaultRetryMaxAttempts = 10
)

// RetryPolicy controls how transient native failures are retried. Only
// codes on the transient list are ever retried; the policy sets the pacing.
type RetryPolicy struct {
	// Interval is the fixed wait between attempts.
	Interval time.Duration `yaml:"interval" json:"interval"`

	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts"`

	// OnRetry is called before each wait.
	OnRetry func(op string, attempt int, err error) `yaml:"-" json:"-"`
}

// DefaultRetryPolicy returns the fixed-interval policy used by every
// client operation unless configured otherwise.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Interval:    DefaultRetryInterval,
		MaxAttempts: DefaultRetryMaxAttempts,
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.Interval <= 0 {
		p.Interval = DefaultRetryInterval
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultRetryMaxAttempts
	}
	return p
}

var transientCodes = sync.OnceValue(func() map[ErrorCode]struct{} {
	codes := []ErrorCode{
		CodeFabricHealthEntityNotFound,
		CodePLBNotReady,
		CodeInvalidReplicaStateForReplicaOperation,
		CodeObjectClosed,
		CodeServiceNotFound,
		CodeAlreadyAuxiliaryReplica,
		CodeAlreadyInstance,
		CodeAlreadySecondaryReplica,
		CodeAlreadyPrimaryReplica,
		CodeFabricVersionAlreadyExists,
		CodeFabricUpgradeInProgress,
		CodeFabricAlreadyInTargetVersion,
		CodeStopInProgress,
	}
	m := make(map[ErrorCode]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
})

func isTransient(c ErrorCode) bool {
	_, ok := transientCodes()[c]
	return ok
}

// TransientCodes returns the codes that are retried, in ascending order.
func TransientCodes() []ErrorCode {
	m := transientCodes()
	codes := make([]ErrorCode, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Retry runs fn until it succeeds, fails with an error that is not a
// transient native failure, or the policy's attempts are used up. The last
// error is returned unchanged. Cancelling ctx stops the wait between
// attempts.
func Retry[T any](ctx context.Context, policy RetryPolicy, logger *slog.Logger, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	policy = policy.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	for attempt := 1; ; attempt++ {
		val, err := fn(ctx)
		if err == nil {
			return val, nil
		}
		if !IsRetryable(err) || attempt >= policy.MaxAttempts {
			return zero, err
		}

		logger.Warn("retrying native operation",
			"op", op,
			"code", CodeOf(err).String(),
			"attempt", attempt,
			"error", err)
		if policy.OnRetry != nil {
			policy.OnRetry(op, attempt, err)
		}

		timer := time.NewTimer(policy.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, errors.Join(ctx.Err(), err)
		case <-timer.C:
		}
	}
}

// RunWithRetry is Retry with the default policy and logger.
func RunWithRetry[T any](ctx context.Context, op string, fn func(context.Context) (T, error)) (T, error) {
	return Retry(ctx, DefaultRetryPolicy(), slog.Default(), op, fn)
}
