package native_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ozanturksever/go-fabric/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGUIDLayout(t *testing.T) {
	g, err := native.ParseGUID("c629e422-90ba-4efd-8f64-cecf51bc3df0")
	require.NoError(t, err)

	assert.Equal(t, uint32(0xc629e422), g.Data1)
	assert.Equal(t, uint16(0x90ba), g.Data2)
	assert.Equal(t, uint16(0x4efd), g.Data3)
	assert.Equal(t, [8]byte{0x8f, 0x64, 0xce, 0xcf, 0x51, 0xbc, 0x3d, 0xf0}, g.Data4)
	assert.Equal(t, native.IID_IFabricQueryClient, g)
}

func TestGUIDUUIDRoundTrip(t *testing.T) {
	u := uuid.New()
	g := native.GUIDFromUUID(u)

	assert.Equal(t, u, g.UUID())
	assert.Equal(t, u.String(), g.String())
	assert.False(t, g.IsZero())
	assert.True(t, native.GUID{}.IsZero())
}

func TestParseGUIDInvalid(t *testing.T) {
	_, err := native.ParseGUID("not-a-guid")
	assert.Error(t, err)
	assert.Panics(t, func() { native.MustParseGUID("nope") })
}

func TestHRESULT(t *testing.T) {
	assert.True(t, native.S_OK.Succeeded())
	assert.True(t, native.S_FALSE.Succeeded())
	assert.NoError(t, native.S_OK.Err())

	assert.True(t, native.FABRIC_E_TIMEOUT.Failed())
	err := native.FABRIC_E_TIMEOUT.Err()
	require.Error(t, err)
	assert.Equal(t, "HRESULT 0x80071BFF", err.Error())

	var hr native.HRESULT
	assert.ErrorAs(t, err, &hr)
	assert.Equal(t, native.FABRIC_E_TIMEOUT, hr)
}
