package fabric

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ozanturksever/go-fabric/native"
)

// ErrorCode is a status code reported by the native client. The values are
// HRESULTs; the set of names is closed and lives in errcode_table.go.
type ErrorCode uint32

// LookupErrorCode maps an HRESULT onto the code table. Values that are not
// in the table map to CodeUnknown with ok false.
func LookupErrorCode(hr native.HRESULT) (code ErrorCode, ok bool) {
	c := ErrorCode(hr)
	if _, ok := errorCodeNames[c]; ok {
		return c, true
	}
	return CodeUnknown, false
}

// HRESULT returns the raw status value of c.
func (c ErrorCode) HRESULT() native.HRESULT {
	return native.HRESULT(c)
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	if c == CodeUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("ErrorCode(0x%08X)", uint32(c))
}

var (
	codeByNameOnce sync.Once
	codeByName     map[string]ErrorCode
)

// ParseErrorCode returns the code with the given name.
func ParseErrorCode(name string) (ErrorCode, error) {
	codeByNameOnce.Do(func() {
		codeByName = make(map[string]ErrorCode, len(errorCodeNames))
		for c, n := range errorCodeNames {
			codeByName[n] = c
		}
	})
	if c, ok := codeByName[name]; ok {
		return c, nil
	}
	return CodeUnknown, fmt.Errorf("%w: unknown error code %q", ErrInvalidArgument, name)
}

// ErrorCodes returns every known code in ascending order.
func ErrorCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorCodeNames))
	for c := range errorCodeNames {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
