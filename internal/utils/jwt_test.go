package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionToken_Roundtrip(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 2*time.Second)

	id, err := ParseSessionToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 15)
	require.NoError(t, err)

	_, err = ParseSessionToken("another-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Expired(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, -1)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Tampered(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 15)
	require.NoError(t, err)

	tampered := tok.Token[:len(tok.Token)-2] + "xx"
	_, err = ParseSessionToken(testSecret, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
