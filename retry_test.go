package fabric_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/native"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func transient() error {
	return &fabric.NativeError{Op: "EndResolveServicePartition", HRESULT: native.FABRIC_E_LOADBALANCER_NOT_READY}
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := fabric.DefaultRetryPolicy()
	assert.Equal(t, 200*time.Millisecond, p.Interval)
	assert.Equal(t, 10, p.MaxAttempts)
}

func TestTransientCodes(t *testing.T) {
	assert.ElementsMatch(t, []fabric.ErrorCode{
		fabric.CodeFabricHealthEntityNotFound,
		fabric.CodePLBNotReady,
		fabric.CodeInvalidReplicaStateForReplicaOperation,
		fabric.CodeObjectClosed,
		fabric.CodeServiceNotFound,
		fabric.CodeAlreadyAuxiliaryReplica,
		fabric.CodeAlreadyInstance,
		fabric.CodeAlreadySecondaryReplica,
		fabric.CodeAlreadyPrimaryReplica,
		fabric.CodeFabricVersionAlreadyExists,
		fabric.CodeFabricUpgradeInProgress,
		fabric.CodeFabricAlreadyInTargetVersion,
		fabric.CodeStopInProgress,
	}, fabric.TransientCodes())

	codes := fabric.TransientCodes()
	codes[0] = fabric.CodeUnknown
	assert.NotContains(t, fabric.TransientCodes(), fabric.CodeUnknown)
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	logger, buf := bufferLogger()
	policy := fabric.RetryPolicy{Interval: 20 * time.Millisecond, MaxAttempts: 10}

	var retried []int
	policy.OnRetry = func(op string, attempt int, err error) {
		assert.Equal(t, "ResolveServicePartition", op)
		retried = append(retried, attempt)
	}

	attempts := 0
	start := time.Now()
	got, err := fabric.Retry(context.Background(), policy, logger, "ResolveServicePartition", func(context.Context) (string, error) {
		attempts++
		if attempts <= 3 {
			return "", transient()
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []int{1, 2, 3}, retried)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	assert.Equal(t, 3, strings.Count(buf.String(), "retrying native operation"))
	assert.Contains(t, buf.String(), "code=PLBNotReady")
}

func TestRetryStopsOnNonTransientCode(t *testing.T) {
	attempts := 0
	want := &fabric.NativeError{Op: "EndResolveServicePartition", HRESULT: native.FABRIC_E_INVALID_PARTITION_KEY}

	_, err := fabric.Retry(context.Background(), fabric.DefaultRetryPolicy(), nil, "op", func(context.Context) (int, error) {
		attempts++
		return 0, want
	})

	assert.Equal(t, 1, attempts)
	assert.Same(t, want, err)
}

func TestRetryStopsOnNonNativeErrors(t *testing.T) {
	for _, want := range []error{
		&fabric.AbandonedError{Op: "op"},
		&fabric.DecodeError{Field: "Endpoints", Err: native.ErrNullArray},
		fabric.ErrInvalidServiceKind,
		context.Canceled,
	} {
		attempts := 0
		_, err := fabric.Retry(context.Background(), fabric.DefaultRetryPolicy(), nil, "op", func(context.Context) (int, error) {
			attempts++
			return 0, want
		})
		assert.Equal(t, 1, attempts)
		assert.Same(t, want, err)
	}
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	policy := fabric.RetryPolicy{Interval: time.Millisecond, MaxAttempts: 10}

	var last error
	attempts := 0
	_, err := fabric.Retry(context.Background(), policy, nil, "op", func(context.Context) (int, error) {
		attempts++
		last = transient()
		return 0, last
	})

	assert.Equal(t, 10, attempts)
	assert.Same(t, last, err)
	assert.Equal(t, fabric.CodePLBNotReady, fabric.CodeOf(err))
}

func TestRetryHonorsContextWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	attempts := 0
	start := time.Now()
	_, err := fabric.Retry(ctx, fabric.RetryPolicy{Interval: time.Hour, MaxAttempts: 3}, nil, "op", func(context.Context) (int, error) {
		attempts++
		return 0, transient()
	})

	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, fabric.IsRetryable(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunWithRetry(t *testing.T) {
	got, err := fabric.RunWithRetry(context.Background(), "op", func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	boom := errors.New("boom")
	_, err = fabric.RunWithRetry(context.Background(), "op", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.Same(t, boom, err)
}
