package fabric

import (
	"errors"
	"fmt"

	"github.com/ozanturksever/go-fabric/native"
)

// Client errors.
var (
	// ErrAbandoned indicates the native side released an operation's
	// callback without ever invoking it.
	ErrAbandoned = errors.New("fabric: operation abandoned by native runtime")

	// ErrInvalidServiceKind indicates a query item with an unknown service kind.
	ErrInvalidServiceKind = errors.New("fabric: invalid service kind")

	// ErrInvalidServicePartitionKind indicates partition information with an
	// unknown or invalid kind where a valid one is required.
	ErrInvalidServicePartitionKind = errors.New("fabric: invalid service partition kind")

	// ErrReleased indicates use of an agile reference after Release.
	ErrReleased = errors.New("fabric: agile reference released")

	// ErrPartitionNotFound indicates a partition query matched nothing.
	ErrPartitionNotFound = errors.New("fabric: partition not found")

	// ErrInvalidArgument indicates a caller-supplied value was rejected
	// before reaching the native runtime.
	ErrInvalidArgument = errors.New("fabric: invalid argument")

	// ErrClientClosed indicates use of a client after Close.
	ErrClientClosed = errors.New("fabric: client closed")
)

// NativeError is a failure status reported by the native runtime.
type NativeError struct {
	Op      string
	HRESULT native.HRESULT
}

func (e *NativeError) Error() string {
	code := e.Code()
	if code == CodeUnknown {
		return fmt.Sprintf("fabric: %s: HRESULT 0x%08X", e.Op, uint32(e.HRESULT))
	}
	return fmt.Sprintf("fabric: %s: %s (0x%08X)", e.Op, code, uint32(e.HRESULT))
}

// Unwrap exposes the raw HRESULT so errors.As can match native.HRESULT.
func (e *NativeError) Unwrap() error {
	return e.HRESULT
}

// Code classifies the status against the code table.
func (e *NativeError) Code() ErrorCode {
	c, _ := LookupErrorCode(e.HRESULT)
	return c
}

// Retryable reports whether the code is on the transient allow-list.
func (e *NativeError) Retryable() bool {
	return isTransient(e.Code())
}

// DecodeError reports a malformed native result.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fabric: decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AbandonedError is returned when an operation's callback was released
// without being invoked.
type AbandonedError struct {
	Op string
}

func (e *AbandonedError) Error() string {
	return fmt.Sprintf("fabric: %s: operation abandoned by native runtime", e.Op)
}

func (e *AbandonedError) Is(target error) bool {
	return target == ErrAbandoned
}

// CodeOf returns the native code carried by err, or CodeUnknown.
func CodeOf(err error) ErrorCode {
	var ne *NativeError
	if errors.As(err, &ne) {
		return ne.Code()
	}
	return CodeUnknown
}

// IsRetryable reports whether err is a native failure on the transient
// allow-list.
func IsRetryable(err error) bool {
	var ne *NativeError
	return errors.As(err, &ne) && ne.Retryable()
}

// nativeError converts a failure returned across the native boundary into a
// NativeError. Other errors are wrapped with op.
func nativeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ne *NativeError
	if errors.As(err, &ne) {
		return err
	}
	var hr native.HRESULT
	if errors.As(err, &hr) {
		return &NativeError{Op: op, HRESULT: hr}
	}
	return fmt.Errorf("fabric: %s: %w", op, err)
}
