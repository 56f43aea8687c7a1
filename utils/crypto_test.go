package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer([]byte("secret"), "session")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte(`{"reserved":["2"]}`))
	require.NoError(t, err)

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"reserved":["2"]}`, string(plain))
}

func TestSealer_NonceMakesOutputsDiffer(t *testing.T) {
	s, err := NewSealer([]byte("secret"), "session")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_RejectsTampering(t *testing.T) {
	s, err := NewSealer([]byte("secret"), "session")
	require.NoError(t, err)
	sealed, err := s.Seal([]byte("payload"))
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	_, err = s.Open(base64.RawURLEncoding.EncodeToString(raw))
	assert.Error(t, err)

	_, err = s.Open("%%%")
	assert.Error(t, err)

	_, err = s.Open("c2hvcnQ")
	assert.Error(t, err)
}

func TestSealer_PurposeAndSecretSeparate(t *testing.T) {
	session, err := NewSealer([]byte("secret"), "session")
	require.NoError(t, err)
	other, err := NewSealer([]byte("secret"), "other")
	require.NoError(t, err)
	rotated, err := NewSealer([]byte("rotated"), "session")
	require.NoError(t, err)

	sealed, err := session.Seal([]byte("payload"))
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.Error(t, err)
	_, err = rotated.Open(sealed)
	assert.Error(t, err)
}

func TestNewSealer_EmptySecret(t *testing.T) {
	_, err := NewSealer(nil, "session")
	assert.Error(t, err)
}
