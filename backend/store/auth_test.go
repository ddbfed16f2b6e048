package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticateUserEmailIsCaseInsensitive(t *testing.T) {
	s := seedStore()

	u := s.AuthenticateUser("A@B.COM", "x")
	assert.NotNil(t, u)
	assert.Equal(t, 1, u.ID)
	assert.NotEmpty(t, u.LastLogin)

	// The stamp is persisted on the record, not only the returned copy.
	assert.Equal(t, u.LastLogin, s.UserByID(1).LastLogin)
}

func TestAuthenticateUserPasswordIsExact(t *testing.T) {
	s := seedStore()

	assert.Nil(t, s.AuthenticateUser("a@b.com", "y"))
	assert.Nil(t, s.AuthenticateUser("a@b.com", "X"))
	assert.Empty(t, s.UserByID(1).LastLogin)
}

func TestAuthenticateUserUnknownEmail(t *testing.T) {
	s := seedStore()
	assert.Nil(t, s.AuthenticateUser("ghost@b.com", "x"))
}
