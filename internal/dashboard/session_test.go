package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSessionIssueVerify(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	token, err := sessions.Issue("admin")
	require.NoError(t, err)

	username, ok := sessions.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	_, ok := sessions.Verify("not-a-token")
	assert.False(t, ok)
	_, ok = sessions.Verify("")
	assert.False(t, ok)
}

func TestSessionVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewSessions("secret-a", time.Hour)
	verifier := NewSessions("secret-b", time.Hour)

	token, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestSessionVerifyRejectsExpired(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Hour)

	token, err := sessions.Issue("admin")
	require.NoError(t, err)

	_, ok := sessions.Verify(token)
	assert.False(t, ok)
}

func TestCredentialsMatch(t *testing.T) {
	creds := Credentials{Username: "admin", Password: "admin123"}

	assert.True(t, creds.Match("admin", "admin123"))
	assert.False(t, creds.Match("admin", "wrong"))
	assert.False(t, creds.Match("root", "admin123"))
	assert.False(t, creds.Match("", ""))
}

func TestCredentialsMatchWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := Credentials{Username: "admin", Password: "ignored", Hash: string(hash)}

	assert.True(t, creds.Match("admin", "s3cret"))
	// the plain password is ignored once a hash is configured
	assert.False(t, creds.Match("admin", "ignored"))
	assert.False(t, creds.Match("other", "s3cret"))
}
