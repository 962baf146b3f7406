package native

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// GUID mirrors the in-memory layout of a Windows GUID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Interface identifiers used by the client.
var (
	IID_IUnknown                       = MustParseGUID("00000000-0000-0000-c000-000000000046")
	IID_IAgileObject                   = MustParseGUID("94ea2b94-e9cc-49e0-c0ff-ee64ca8f5b90")
	IID_INoMarshal                     = MustParseGUID("ecc8691b-c1db-4dc0-855e-65f6c551af49")
	IID_IFabricAsyncOperationCallback  = MustParseGUID("86f08d7e-14dd-4575-8489-b1d5d679029c")
	IID_IFabricAsyncOperationContext   = MustParseGUID("841720bf-c9e8-4e6f-9c3f-6b7f4ac73bcd")
	IID_IFabricQueryClient             = MustParseGUID("c629e422-90ba-4efd-8f64-cecf51bc3df0")
	IID_IFabricServiceManagementClient = MustParseGUID("8180db27-7d0b-43b0-82e0-4a8e022fc238")
)

// GUIDFromUUID converts a canonical UUID into the native GUID layout.
func GUIDFromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}

// ParseGUID parses the textual form of a GUID, with or without braces.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, err
	}
	return GUIDFromUUID(u), nil
}

// MustParseGUID is like ParseGUID but panics on malformed input.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic("native: invalid GUID " + s + ": " + err.Error())
	}
	return g
}

// UUID returns the canonical UUID form of g.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

// IsZero reports whether g is the nil GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

func (g GUID) String() string {
	return g.UUID().String()
}
