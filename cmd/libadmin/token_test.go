//go:build unit

package main

import (
	"testing"
	"time"

	"library-admin/internal/domain/user"
	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAdminToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "cli-secret", Duration: "1h", Issuer: "library-admin"}
	id := uuid.New()

	token, err := mintAdminToken(cfg, id, 0)
	require.NoError(t, err)

	claims, err := jwt.NewService(cfg.Secret, time.Hour, cfg.Issuer).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, user.RoleAdmin.String(), claims.Role)
}

func TestMintAdminToken_InvalidDuration(t *testing.T) {
	_, err := mintAdminToken(config.JWTConfig{Secret: "s", Duration: "soon"}, uuid.New(), 0)
	assert.Error(t, err)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "token"}, names)
}
