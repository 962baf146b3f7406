package native

import "fmt"

// HRESULT is a native status code. The high bit marks failure.
type HRESULT uint32

// Common status codes.
const (
	S_OK               HRESULT = 0x00000000
	S_FALSE            HRESULT = 0x00000001
	E_NOTIMPL          HRESULT = 0x80004001
	E_NOINTERFACE      HRESULT = 0x80004002
	E_POINTER          HRESULT = 0x80004003
	E_ABORT            HRESULT = 0x80004004
	E_FAIL             HRESULT = 0x80004005
	CO_E_NOT_SUPPORTED HRESULT = 0x80004021
	E_UNEXPECTED       HRESULT = 0x8000FFFF
	RPC_E_DISCONNECTED HRESULT = 0x80010108
	RPC_E_WRONG_THREAD HRESULT = 0x8001010E
	E_OUTOFMEMORY      HRESULT = 0x8007000E
	E_INVALIDARG       HRESULT = 0x80070057
)

// Fabric status codes the boundary itself needs to produce.
const (
	FABRIC_E_INVALID_NAME_URI        HRESULT = 0x80071BBE
	FABRIC_E_INVALID_PARTITION_KEY   HRESULT = 0x80071BBF
	FABRIC_E_OPERATION_NOT_COMPLETE  HRESULT = 0x80071BC8
	FABRIC_E_SERVICE_DOES_NOT_EXIST  HRESULT = 0x80071BCD
	FABRIC_E_PARTITION_NOT_FOUND     HRESULT = 0x80071BE7
	FABRIC_E_OBJECT_CLOSED           HRESULT = 0x80071BFE
	FABRIC_E_TIMEOUT                 HRESULT = 0x80071BFF
	FABRIC_E_HEALTH_ENTITY_NOT_FOUND HRESULT = 0x80071C17
	FABRIC_E_LOADBALANCER_NOT_READY  HRESULT = 0x80071C3C
)

// Failed reports whether hr denotes an error.
func (hr HRESULT) Failed() bool {
	return hr&0x80000000 != 0
}

// Succeeded reports whether hr denotes success.
func (hr HRESULT) Succeeded() bool {
	return !hr.Failed()
}

// Err returns hr as an error, or nil when it denotes success.
func (hr HRESULT) Err() error {
	if hr.Succeeded() {
		return nil
	}
	return hr
}

func (hr HRESULT) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}
