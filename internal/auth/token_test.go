package auth

import (
	"testing"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	user := &domain.User{
		ID:       "u1",
		Username: "ananda",
		Roles:    []domain.Role{domain.RoleDonor, domain.RoleMonasteryAdmin},
	}

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", actor.ID)
	assert.Equal(t, []domain.Role{domain.RoleDonor, domain.RoleMonasteryAdmin}, actor.Roles)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Roles: []domain.Role{domain.RoleDonor}})
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Roles: []domain.Role{domain.RoleDonor}})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Parse("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_DropsUnknownRoles(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Roles: []domain.Role{domain.RoleDonor, "sorcerer"}})
	require.NoError(t, err)

	actor, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleDonor}, actor.Roles)
}
